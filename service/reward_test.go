package service

import (
	"EcomCredits/config"
	"EcomCredits/models"
	"EcomCredits/types"
	"context"
	"testing"

	"gorm.io/gorm"
)

func TestBuildTransactionSignup(t *testing.T) {
	rules := config.DefaultRewards()
	tx, err := buildTransaction(rules, &types.RewardEvent{Kind: types.RewardSignup, UserID: 7, SourceID: "signup:7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Type != models.TxTypeEarned || tx.Amount != 25 {
		t.Fatalf("signup -> %s/%d, want earned/25", tx.Type, tx.Amount)
	}
	if tx.UserID != 7 || tx.SourceID != "signup:7" {
		t.Fatalf("event fields not carried over: %+v", tx)
	}
}

func TestBuildTransactionReferral(t *testing.T) {
	tx, err := buildTransaction(config.DefaultRewards(), &types.RewardEvent{Kind: types.RewardReferral, UserID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Type != models.TxTypeReferral || tx.Amount != 25 {
		t.Fatalf("referral -> %s/%d, want referral/25", tx.Type, tx.Amount)
	}
}

func TestBuildTransactionVideoEngagement(t *testing.T) {
	like, err := buildTransaction(config.DefaultRewards(), &types.RewardEvent{Kind: types.RewardVideoLike, UserID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if like.Type != models.TxTypeVideo || like.Amount != 2 {
		t.Fatalf("like -> %s/%d, want video/2", like.Type, like.Amount)
	}

	share, err := buildTransaction(config.DefaultRewards(), &types.RewardEvent{Kind: types.RewardVideoShare, UserID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if share.Type != models.TxTypeVideo || share.Amount != 5 {
		t.Fatalf("share -> %s/%d, want video/5", share.Type, share.Amount)
	}
}

// 投稿奖励数额由运营给定，引擎只校验区间 [50, 100]
func TestBuildTransactionUpload(t *testing.T) {
	rules := config.DefaultRewards()
	for _, amount := range []int64{50, 75, 100} {
		tx, err := buildTransaction(rules, &types.RewardEvent{Kind: types.RewardVideoUpload, UserID: 1, UploadReward: amount})
		if err != nil {
			t.Fatalf("upload reward %d rejected: %v", amount, err)
		}
		if tx.Amount != amount || tx.Type != models.TxTypeVideo {
			t.Fatalf("upload -> %s/%d, want video/%d", tx.Type, tx.Amount, amount)
		}
		if tx.Status != models.TxStatusApproved {
			t.Fatalf("upload status = %s, want approved", tx.Status)
		}
	}

	for _, amount := range []int64{0, 49, 101} {
		if _, err := buildTransaction(rules, &types.RewardEvent{Kind: types.RewardVideoUpload, UserID: 1, UploadReward: amount}); !IsValidation(err) {
			t.Fatalf("upload reward %d should fail validation, got %v", amount, err)
		}
	}
}

func TestBuildTransactionPurchaseCashback(t *testing.T) {
	rules := config.DefaultRewards()

	tx, err := buildTransaction(rules, &types.RewardEvent{Kind: types.RewardPurchaseCash, UserID: 1, OrderAmount: 1000, CashbackPercent: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Amount != 20 || tx.Type != models.TxTypeEarned {
		t.Fatalf("cashback -> %s/%d, want earned/20", tx.Type, tx.Amount)
	}
	if tx.Status != models.TxStatusPending {
		t.Fatalf("cashback status = %s, want pending", tx.Status)
	}

	// 比例缺省取下限 1%
	tx, err = buildTransaction(rules, &types.RewardEvent{Kind: types.RewardPurchaseCash, UserID: 1, OrderAmount: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Amount != 10 {
		t.Fatalf("default percent cashback = %d, want 10", tx.Amount)
	}

	// 向下取整：199 * 1% = 1
	tx, err = buildTransaction(rules, &types.RewardEvent{Kind: types.RewardPurchaseCash, UserID: 1, OrderAmount: 199, CashbackPercent: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Amount != 1 {
		t.Fatalf("floor cashback = %d, want 1", tx.Amount)
	}

	// 金额太小产生 0 返现时报错
	if _, err := buildTransaction(rules, &types.RewardEvent{Kind: types.RewardPurchaseCash, UserID: 1, OrderAmount: 99, CashbackPercent: 1}); !IsValidation(err) {
		t.Fatalf("zero cashback should fail validation, got %v", err)
	}

	// 比例越界
	if _, err := buildTransaction(rules, &types.RewardEvent{Kind: types.RewardPurchaseCash, UserID: 1, OrderAmount: 1000, CashbackPercent: 4}); !IsValidation(err) {
		t.Fatalf("percent 4 should fail validation, got %v", err)
	}

	if _, err := buildTransaction(rules, &types.RewardEvent{Kind: types.RewardPurchaseCash, UserID: 1, OrderAmount: 0}); !IsValidation(err) {
		t.Fatalf("zero order amount should fail validation, got %v", err)
	}
}

// 固定汇率：1 积分抵扣 5 卢比，向下取整
func TestBuildTransactionRedeem(t *testing.T) {
	rules := config.DefaultRewards()

	tx, err := buildTransaction(rules, &types.RewardEvent{Kind: types.RewardRedeemCredits, UserID: 1, OrderAmount: 101})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Type != models.TxTypeSpent || tx.Amount != 20 {
		t.Fatalf("redeem -> %s/%d, want spent/20", tx.Type, tx.Amount)
	}

	if _, err := buildTransaction(rules, &types.RewardEvent{Kind: types.RewardRedeemCredits, UserID: 1, OrderAmount: 4}); !IsValidation(err) {
		t.Fatalf("amount below credit value should fail validation, got %v", err)
	}
}

func TestBuildTransactionUnknownKind(t *testing.T) {
	_, err := buildTransaction(config.DefaultRewards(), &types.RewardEvent{Kind: "mystery_box", UserID: 1})
	if !IsUnknownEvent(err) {
		t.Fatalf("expected UnknownEventError, got %v", err)
	}
}

func TestBuildTransactionBadEvent(t *testing.T) {
	if _, err := buildTransaction(config.DefaultRewards(), nil); !IsValidation(err) {
		t.Fatalf("nil event should fail validation, got %v", err)
	}
	if _, err := buildTransaction(config.DefaultRewards(), &types.RewardEvent{Kind: types.RewardSignup}); !IsValidation(err) {
		t.Fatalf("event without user should fail validation, got %v", err)
	}
}

// 自定义规则数值要原样生效
func TestBuildTransactionCustomRules(t *testing.T) {
	rules := &config.Rewards{
		SignupBonus:        100,
		ReferralBonus:      30,
		VideoLikeBonus:     1,
		VideoShareBonus:    3,
		UploadRewardMin:    10,
		UploadRewardMax:    20,
		CashbackPercentMin: 2,
		CashbackPercentMax: 5,
		CreditValue:        10,
	}

	tx, err := buildTransaction(rules, &types.RewardEvent{Kind: types.RewardSignup, UserID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Amount != 100 {
		t.Fatalf("custom signup bonus = %d, want 100", tx.Amount)
	}

	tx, err = buildTransaction(rules, &types.RewardEvent{Kind: types.RewardRedeemCredits, UserID: 1, OrderAmount: 95})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Amount != 9 {
		t.Fatalf("custom redeem = %d, want 9", tx.Amount)
	}
}

type fakeTxFinder struct {
	txs map[string]*models.CreditTransaction
}

func (f *fakeTxFinder) FindBySource(_ context.Context, _ uint64, sourceID string) (*models.CreditTransaction, error) {
	if tx, ok := f.txs[sourceID]; ok {
		return tx, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// recordingLedger 记录追加次数，落账写回 finder 模拟真实流水表
type recordingLedger struct {
	finder  *fakeTxFinder
	appends int
}

func (r *recordingLedger) AppendTransaction(_ context.Context, tx *models.CreditTransaction) (*models.CreditTransaction, error) {
	r.appends++
	tx.ID = uint64(r.appends)
	r.finder.txs[tx.SourceID] = tx
	return tx, nil
}

func (r *recordingLedger) GetBalance(context.Context, uint64) (int64, error) {
	return 0, nil
}

func (r *recordingLedger) ListTransactions(context.Context, uint64, *types.ListTransactionsReq) (*types.ListTransactionsResp, error) {
	return nil, nil
}

func (r *recordingLedger) GetDashboard(context.Context, uint64) (*types.LedgerDashboard, error) {
	return nil, nil
}

// 同一业务单号重复提交：返回已有流水，不再追加
func TestApplyEventIdempotent(t *testing.T) {
	finder := &fakeTxFinder{txs: make(map[string]*models.CreditTransaction)}
	ledger := &recordingLedger{finder: finder}
	svc := &RewardService{
		Config:    &config.Config{Rewards: config.DefaultRewards()},
		LedgerDAO: finder,
		Ledger:    ledger,
	}

	ev := &types.RewardEvent{Kind: types.RewardSignup, UserID: 7, SourceID: "signup:7"}

	first, err := svc.ApplyEvent(context.Background(), ev)
	if err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if ledger.appends != 1 {
		t.Fatalf("first apply appended %d times, want 1", ledger.appends)
	}

	second, err := svc.ApplyEvent(context.Background(), ev)
	if err != nil {
		t.Fatalf("duplicate apply failed: %v", err)
	}
	if ledger.appends != 1 {
		t.Fatalf("duplicate event appended: %d appends, want 1", ledger.appends)
	}
	if second.ID != first.ID {
		t.Fatalf("duplicate apply returned a new transaction: id %d, want %d", second.ID, first.ID)
	}
}

// 空业务单号由引擎生成，两次提交是两个事件
func TestApplyEventGeneratesSourceID(t *testing.T) {
	finder := &fakeTxFinder{txs: make(map[string]*models.CreditTransaction)}
	ledger := &recordingLedger{finder: finder}
	svc := &RewardService{
		Config:    &config.Config{Rewards: config.DefaultRewards()},
		LedgerDAO: finder,
		Ledger:    ledger,
	}

	ev := func() *types.RewardEvent {
		return &types.RewardEvent{Kind: types.RewardVideoShare, UserID: 7}
	}
	first, err := svc.ApplyEvent(context.Background(), ev())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.SourceID == "" {
		t.Fatal("engine should assign a source id when the event carries none")
	}
	if _, err := svc.ApplyEvent(context.Background(), ev()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ledger.appends != 2 {
		t.Fatalf("two distinct events appended %d times, want 2", ledger.appends)
	}
}
