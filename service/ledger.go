package service

import (
	"EcomCredits/config"
	"EcomCredits/dao"
	"EcomCredits/dao/cache"
	"EcomCredits/models"
	"EcomCredits/pkg/log"
	"EcomCredits/pkg/snowflake"
	"EcomCredits/types"
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LedgerService 单用户积分账本：余额查询 + 流水追加 + 流水查询
// 流水只追加，余额恒等于全部流水的带符号和
type LedgerService struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     *redis.Client
	LedgerDAO *dao.Ledger
	Cache     *cache.BalanceCache
}

var _ ILedgerService = (*LedgerService)(nil)

type ILedgerService interface {
	GetBalance(ctx context.Context, userID uint64) (int64, error)
	AppendTransaction(ctx context.Context, tx *models.CreditTransaction) (*models.CreditTransaction, error)
	ListTransactions(ctx context.Context, userID uint64, req *types.ListTransactionsReq) (*types.ListTransactionsResp, error)
	GetDashboard(ctx context.Context, userID uint64) (*types.LedgerDashboard, error)
}

// validateTransaction 追加前的本地校验
func validateTransaction(tx *models.CreditTransaction) error {
	if tx == nil {
		return validationf("流水不能为空")
	}
	if tx.UserID == 0 {
		return validationf("流水缺少用户ID")
	}
	if tx.Amount <= 0 {
		return validationf("流水数额必须大于0")
	}
	if !models.ValidType(tx.Type) {
		return validationf("无法识别的流水类型: %s", tx.Type)
	}
	return nil
}

// checkSufficient 余额充足性校验，allowNegative 打开时跳过
func checkSufficient(balance, amount int64, allowNegative bool) error {
	if allowNegative {
		return nil
	}
	if balance < amount {
		return validationf("积分余额不足: 当前 %d, 需要 %d", balance, amount)
	}
	return nil
}

// SumDeltas 按定义重算余额：spent 为负，其余为正
func SumDeltas(txs []models.CreditTransaction) int64 {
	var sum int64
	for i := range txs {
		sum += txs[i].SignedDelta()
	}
	return sum
}

func (l *LedgerService) GetBalance(ctx context.Context, userID uint64) (int64, error) {
	if balance, ok := l.Cache.Get(ctx, userID); ok {
		return balance, nil
	}

	account, err := l.LedgerDAO.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if err := l.Cache.Set(ctx, userID, account.Balance); err != nil {
		log.L.Warn("balance cache set failed", zap.Uint64("userID", userID), zap.Error(err))
	}
	return account.Balance, nil
}

// ledgerStore 追加流水所需的写入面，事务内外用同一套方法
type ledgerStore interface {
	GetAccount(ctx context.Context, userID uint64) (*models.CreditAccount, error)
	CreateAccount(ctx context.Context, userID uint64, initial int64) error
	CreateTransaction(ctx context.Context, tx *models.CreditTransaction) error
	UpdateBalance(ctx context.Context, userID uint64, delta int64) (int64, error)
}

// AppendTransaction 追加一条流水并同步余额
// ID 与时间缺省时补齐，余额不足（默认策略下）拒绝 spent
// 余额更新与流水落库在同一个数据库事务内，任一步失败整体回滚
func (l *LedgerService) AppendTransaction(ctx context.Context, tx *models.CreditTransaction) (*models.CreditTransaction, error) {
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}
	if tx.ID == 0 {
		tx.ID = snowflake.GenTransactionID()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	if tx.Status == "" {
		tx.Status = models.TxStatusCompleted
	}

	err := l.DB.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		// DAO 必须挂在事务连接上，否则回滚保护不了余额
		return l.append(ctx, dao.NewLedger(dbtx), tx)
	})
	if err != nil {
		return nil, err
	}

	if err := l.Cache.Set(ctx, tx.UserID, tx.Balance); err != nil {
		log.L.Warn("balance cache set failed", zap.Uint64("userID", tx.UserID), zap.Error(err))
	}
	return tx, nil
}

// append 读余额、校验、更新、落流水，全部走传入的 store
func (l *LedgerService) append(ctx context.Context, store ledgerStore, tx *models.CreditTransaction) error {
	var balance int64
	account, err := store.GetAccount(ctx, tx.UserID)
	switch {
	case err == nil:
		balance = account.Balance
	case errors.Is(err, gorm.ErrRecordNotFound):
		balance = 0
	default:
		return err
	}

	if tx.Type == models.TxTypeSpent {
		if err := checkSufficient(balance, tx.Amount, l.Config.Rewards.AllowNegativeBalance); err != nil {
			return err
		}
	}

	delta := tx.SignedDelta()
	rows, err := store.UpdateBalance(ctx, tx.UserID, delta)
	if err != nil {
		return err
	}
	if rows == 0 {
		// 新用户自动开户，开户失败必须捕获，防止出现有流水没账户的情况
		if err := store.CreateAccount(ctx, tx.UserID, delta); err != nil {
			return err
		}
	}

	tx.Balance = balance + delta
	return store.CreateTransaction(ctx, tx)
}

func (l *LedgerService) ListTransactions(ctx context.Context, userID uint64, req *types.ListTransactionsReq) (*types.ListTransactionsResp, error) {
	limit := req.Limit
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	logs, err := l.LedgerDAO.ListTransactions(ctx, userID, models.TransactionType(req.Type), req.SortBy, req.Cursor, limit+1)
	if err != nil {
		return nil, err
	}

	resp := &types.ListTransactionsResp{
		Records: make([]types.TransactionRecord, 0),
	}
	if len(logs) > limit {
		resp.HasMore = true
		logs = logs[:limit]
		resp.NextCursor = logs[len(logs)-1].ID
	}

	for i := range logs {
		t := &logs[i]
		direction := "INCOME"
		if t.Type == models.TxTypeSpent {
			direction = "EXPENSE"
		}
		resp.Records = append(resp.Records, types.TransactionRecord{
			ID:          t.ID,
			Type:        string(t.Type),
			Amount:      t.SignedDelta(),
			Balance:     t.Balance,
			Direction:   direction,
			Status:      string(t.Status),
			Description: t.Description,
			CreatedAt:   t.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp, nil
}

func (l *LedgerService) GetDashboard(ctx context.Context, userID uint64) (*types.LedgerDashboard, error) {
	account, err := l.LedgerDAO.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 没有记录说明是新用户，直接返回初始状态
			return &types.LedgerDashboard{}, nil
		}
		return nil, err
	}
	pCount, pAmount, err := l.LedgerDAO.GetPendingStats(ctx, userID)
	if err != nil {
		pCount, pAmount = 0, 0
	}
	return &types.LedgerDashboard{
		Balance:       account.Balance,
		TotalEarned:   int64(account.TotalEarned),
		TotalUsed:     int64(account.TotalUsed),
		PendingCount:  int(pCount),
		PendingAmount: pAmount,
	}, nil
}
