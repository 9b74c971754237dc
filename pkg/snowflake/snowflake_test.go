package snowflake

import (
	"sync"
	"testing"
)

func TestGenTransactionID(t *testing.T) {
	id := GenTransactionID()
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	t.Logf("generated transaction id: %d", id)
}

// 唯一性测试：单线程生成
func TestGenTransactionID_Unique(t *testing.T) {
	const n = 10000
	ids := make(map[uint64]struct{}, n)

	for i := 0; i < n; i++ {
		id := GenTransactionID()
		if _, exists := ids[id]; exists {
			t.Fatalf("duplicate id found: %d", id)
		}
		ids[id] = struct{}{}
	}
}

// 并发测试：多 goroutine 生成
func TestGenTransactionID_Concurrent(t *testing.T) {
	const (
		goroutines = 20
		perRoutine = 5000
		total      = goroutines * perRoutine
	)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[uint64]struct{}, total)
	)

	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perRoutine; i++ {
				id := GenTransactionID()

				mu.Lock()
				if _, exists := ids[id]; exists {
					mu.Unlock()
					t.Errorf("duplicate id found in concurrent test: %d", id)
					return
				}
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
}

// 顺序性测试：流水按 ID 排序即按创建顺序排序
func TestGenTransactionID_Order(t *testing.T) {
	prev := GenTransactionID()

	for i := 0; i < 1000; i++ {
		curr := GenTransactionID()
		if curr <= prev {
			t.Fatalf("ids not increasing: prev=%d curr=%d", prev, curr)
		}
		prev = curr
	}
}

func TestGenOrderSn(t *testing.T) {
	sn := GenOrderSn()
	if sn == "" {
		t.Fatal("expected non-empty order sn")
	}
	if sn == GenOrderSn() {
		t.Fatal("order sn should be unique per call")
	}
}
