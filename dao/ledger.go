package dao

import (
	"EcomCredits/models"
	"context"

	"gorm.io/gorm"
)

type Ledger struct {
	Repo[models.CreditAccount]
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{
		Repo: NewRepo[models.CreditAccount](db),
	}
}

// FindBySource 按业务单号查已有流水（幂等判断）
func (l *Ledger) FindBySource(ctx context.Context, userID uint64, sourceID string) (*models.CreditTransaction, error) {
	var tx models.CreditTransaction
	err := l.Db.WithContext(ctx).
		Where("user_id = ? AND source_id = ?", userID, sourceID).
		First(&tx).Error
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// GetAccount 获取账户信息
func (l *Ledger) GetAccount(ctx context.Context, userID uint64) (*models.CreditAccount, error) {
	var account models.CreditAccount
	err := l.Db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error
	return &account, err
}

// CreateAccount 初始化账户（针对新用户）
func (l *Ledger) CreateAccount(ctx context.Context, userID uint64, initial int64) error {
	newAccount := &models.CreditAccount{
		UserID:  userID,
		Balance: initial,
	}
	if initial > 0 {
		newAccount.TotalEarned = uint64(initial)
	}
	return l.Db.WithContext(ctx).Create(newAccount).Error
}

func (l *Ledger) CreateTransaction(ctx context.Context, tx *models.CreditTransaction) error {
	return l.Db.WithContext(ctx).Create(tx).Error
}

// UpdateBalance 按带符号增量原子更新余额及累计口径
// 返回受影响行数，用于 Service 判断是否需要自动开户
func (l *Ledger) UpdateBalance(ctx context.Context, userID uint64, delta int64) (int64, error) {
	updates := map[string]interface{}{
		// gorm.Expr 保证了并发下的原子加减，避免数据覆盖
		"balance": gorm.Expr("balance + ?", delta),
	}
	if delta >= 0 {
		updates["total_earned"] = gorm.Expr("total_earned + ?", delta)
	} else {
		updates["total_used"] = gorm.Expr("total_used + ?", -delta)
	}
	result := l.Db.WithContext(ctx).Model(&models.CreditAccount{}).
		Where("user_id = ?", userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// GetPendingStats 统计待入账返现数据
func (l *Ledger) GetPendingStats(ctx context.Context, userID uint64) (count int64, amount int64, err error) {
	var res struct {
		Count  int64
		Amount int64
	}
	err = l.Db.WithContext(ctx).Table("credit_transactions").
		Select("COUNT(*) AS count, IFNULL(SUM(amount), 0) AS amount").
		Where("user_id = ? AND status = ?", userID, models.TxStatusPending).
		Scan(&res).Error
	return res.Count, res.Amount, err
}

// ListTransactions 分页筛选查询流水
// sortBy=date 按创建顺序倒序（ID 即创建顺序），sortBy=amount 按数额倒序
func (l *Ledger) ListTransactions(ctx context.Context, userID uint64, txType models.TransactionType, sortBy string, cursor uint64, limit int) ([]models.CreditTransaction, error) {
	query := l.Db.WithContext(ctx).Where("user_id = ?", userID)
	if txType != "" {
		query = query.Where("type = ?", txType)
	}

	switch sortBy {
	case "amount":
		// Amount 恒为正数，直接倒序即按绝对值倒序
		if cursor > 0 {
			var last models.CreditTransaction
			if err := l.Db.WithContext(ctx).Where("id = ?", cursor).First(&last).Error; err == nil {
				query = query.Where("amount < ? OR (amount = ? AND id < ?)", last.Amount, last.Amount, cursor)
			}
		}
		query = query.Order("amount DESC").Order("id DESC")
	default:
		if cursor > 0 {
			query = query.Where("id < ?", cursor)
		}
		query = query.Order("id DESC")
	}

	var logs []models.CreditTransaction
	err := query.Limit(limit).Find(&logs).Error
	return logs, err
}
