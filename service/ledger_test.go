package service

import (
	"EcomCredits/config"
	"EcomCredits/models"
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestValidateTransaction(t *testing.T) {
	cases := []struct {
		name    string
		tx      *models.CreditTransaction
		wantErr bool
	}{
		{"nil", nil, true},
		{"missing user", &models.CreditTransaction{Type: models.TxTypeEarned, Amount: 10}, true},
		{"zero amount", &models.CreditTransaction{UserID: 1, Type: models.TxTypeEarned, Amount: 0}, true},
		{"negative amount", &models.CreditTransaction{UserID: 1, Type: models.TxTypeEarned, Amount: -5}, true},
		{"unknown type", &models.CreditTransaction{UserID: 1, Type: "bonus", Amount: 10}, true},
		{"ok earned", &models.CreditTransaction{UserID: 1, Type: models.TxTypeEarned, Amount: 10}, false},
		{"ok spent", &models.CreditTransaction{UserID: 1, Type: models.TxTypeSpent, Amount: 10}, false},
		{"ok refund", &models.CreditTransaction{UserID: 1, Type: models.TxTypeRefund, Amount: 10}, false},
	}
	for _, c := range cases {
		err := validateTransaction(c.tx)
		if c.wantErr && err == nil {
			t.Fatalf("%s: expected error, got nil", c.name)
		}
		if !c.wantErr && err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if c.wantErr && !IsValidation(err) {
			t.Fatalf("%s: expected ValidationError, got %T", c.name, err)
		}
	}
}

func TestSignedDelta(t *testing.T) {
	earned := &models.CreditTransaction{Type: models.TxTypeEarned, Amount: 25}
	if earned.SignedDelta() != 25 {
		t.Fatalf("earned delta = %d, want 25", earned.SignedDelta())
	}
	spent := &models.CreditTransaction{Type: models.TxTypeSpent, Amount: 60}
	if spent.SignedDelta() != -60 {
		t.Fatalf("spent delta = %d, want -60", spent.SignedDelta())
	}
	refund := &models.CreditTransaction{Type: models.TxTypeRefund, Amount: 60}
	if refund.SignedDelta() != 60 {
		t.Fatalf("refund delta = %d, want 60", refund.SignedDelta())
	}
}

// 余额恒等于全部流水的带符号和
func TestSumDeltas(t *testing.T) {
	txs := []models.CreditTransaction{
		{Type: models.TxTypeEarned, Amount: 25},
		{Type: models.TxTypeReferral, Amount: 25},
		{Type: models.TxTypeVideo, Amount: 2},
		{Type: models.TxTypeSpent, Amount: 40},
		{Type: models.TxTypeRefund, Amount: 40},
	}
	if got := SumDeltas(txs); got != 52 {
		t.Fatalf("SumDeltas = %d, want 52", got)
	}
	if got := SumDeltas(nil); got != 0 {
		t.Fatalf("SumDeltas(nil) = %d, want 0", got)
	}
}

// 流水状态不参与余额计算
func TestSumDeltasIgnoresStatus(t *testing.T) {
	txs := []models.CreditTransaction{
		{Type: models.TxTypeEarned, Amount: 10, Status: models.TxStatusPending},
		{Type: models.TxTypeEarned, Amount: 10, Status: models.TxStatusCompleted},
		{Type: models.TxTypeVideo, Amount: 10, Status: models.TxStatusApproved},
	}
	if got := SumDeltas(txs); got != 30 {
		t.Fatalf("SumDeltas = %d, want 30", got)
	}
}

func TestCheckSufficient(t *testing.T) {
	// 默认策略：余额 25 花 150 直接拒绝
	if err := checkSufficient(25, 150, false); err == nil {
		t.Fatal("expected insufficient balance error, got nil")
	} else if !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	// 刚好花完允许
	if err := checkSufficient(150, 150, false); err != nil {
		t.Fatalf("exact spend rejected: %v", err)
	}

	// 透支策略打开时放行
	if err := checkSufficient(25, 150, true); err != nil {
		t.Fatalf("overdraft policy should allow spend: %v", err)
	}
}

// fakeLedgerStore 记录写入调用，用于验证追加路径的行为与顺序
type fakeLedgerStore struct {
	account     *models.CreditAccount
	accountErr  error
	updateRows  int64
	createTxErr error

	calls   []string
	created []*models.CreditTransaction
}

func (f *fakeLedgerStore) GetAccount(context.Context, uint64) (*models.CreditAccount, error) {
	f.calls = append(f.calls, "get_account")
	if f.accountErr != nil {
		return &models.CreditAccount{}, f.accountErr
	}
	return f.account, nil
}

func (f *fakeLedgerStore) CreateAccount(_ context.Context, userID uint64, initial int64) error {
	f.calls = append(f.calls, "create_account")
	f.account = &models.CreditAccount{UserID: userID, Balance: initial}
	return nil
}

func (f *fakeLedgerStore) CreateTransaction(_ context.Context, tx *models.CreditTransaction) error {
	f.calls = append(f.calls, "create_transaction")
	if f.createTxErr != nil {
		return f.createTxErr
	}
	f.created = append(f.created, tx)
	return nil
}

func (f *fakeLedgerStore) UpdateBalance(_ context.Context, _ uint64, delta int64) (int64, error) {
	f.calls = append(f.calls, "update_balance")
	if f.updateRows > 0 && f.account != nil {
		f.account.Balance += delta
	}
	return f.updateRows, nil
}

func defaultPolicyLedger() *LedgerService {
	return &LedgerService{Config: &config.Config{Rewards: config.DefaultRewards()}}
}

// 余额不足的 spent 在任何写入发生之前就被拒绝
func TestAppendRejectsOverdraftBeforeWrites(t *testing.T) {
	store := &fakeLedgerStore{account: &models.CreditAccount{UserID: 1, Balance: 25}, updateRows: 1}
	l := defaultPolicyLedger()

	err := l.append(context.Background(), store, &models.CreditTransaction{
		UserID: 1, Type: models.TxTypeSpent, Amount: 150,
	})
	if !IsValidation(err) {
		t.Fatalf("expected insufficient balance rejection, got %v", err)
	}
	for _, call := range store.calls {
		if call == "update_balance" || call == "create_transaction" {
			t.Fatalf("write %q happened despite rejected spend: %v", call, store.calls)
		}
	}
}

// 流水落库失败必须把错误抛出去，让外层事务整体回滚
func TestAppendCreateTransactionFailurePropagates(t *testing.T) {
	store := &fakeLedgerStore{
		account:     &models.CreditAccount{UserID: 1, Balance: 25},
		updateRows:  1,
		createTxErr: errors.New("insert failed"),
	}
	l := defaultPolicyLedger()

	err := l.append(context.Background(), store, &models.CreditTransaction{
		UserID: 1, Type: models.TxTypeEarned, Amount: 10,
	})
	if err == nil {
		t.Fatal("expected error when transaction insert fails")
	}

	want := []string{"get_account", "update_balance", "create_transaction"}
	if len(store.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", store.calls, want)
	}
	for i := range want {
		if store.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", store.calls, want)
		}
	}
}

// 新用户自动开户，余额快照从 0 起算
func TestAppendAutoCreatesAccount(t *testing.T) {
	store := &fakeLedgerStore{accountErr: gorm.ErrRecordNotFound}
	l := defaultPolicyLedger()

	tx := &models.CreditTransaction{UserID: 9, Type: models.TxTypeEarned, Amount: 25}
	if err := l.append(context.Background(), store, tx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Balance != 25 {
		t.Fatalf("balance snapshot = %d, want 25", tx.Balance)
	}

	found := false
	for _, call := range store.calls {
		if call == "create_account" {
			found = true
		}
	}
	if !found {
		t.Fatalf("account was not auto-created: %v", store.calls)
	}
}

// 透支策略打开时，超额 spent 也能入账
func TestAppendOverdraftPolicy(t *testing.T) {
	store := &fakeLedgerStore{account: &models.CreditAccount{UserID: 1, Balance: 25}, updateRows: 1}
	l := defaultPolicyLedger()
	l.Config.Rewards.AllowNegativeBalance = true

	tx := &models.CreditTransaction{UserID: 1, Type: models.TxTypeSpent, Amount: 150}
	if err := l.append(context.Background(), store, tx); err != nil {
		t.Fatalf("overdraft policy should allow spend: %v", err)
	}
	if tx.Balance != -125 {
		t.Fatalf("balance snapshot = %d, want -125", tx.Balance)
	}
}
