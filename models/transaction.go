package models

import "time"

// CreditAccount 用户积分账户，余额与流水日志保持一致
type CreditAccount struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	UserID      uint64    `gorm:"column:user_id;uniqueIndex"`
	Balance     int64     `gorm:"column:balance;default:0"`
	TotalEarned uint64    `gorm:"column:total_earned;default:0"`
	TotalUsed   uint64    `gorm:"column:total_used;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (CreditAccount) TableName() string {
	return "credit_accounts"
}

// TransactionType 流水类型，spent 以外均为入账方向
type TransactionType string

const (
	TxTypeEarned   TransactionType = "earned"   // 购物返现、注册奖励等常规收入
	TxTypeSpent    TransactionType = "spent"    // 积分抵扣支出
	TxTypeRefund   TransactionType = "refund"   // 订单退款返还
	TxTypeReferral TransactionType = "referral" // 邀请好友奖励
	TxTypeVideo    TransactionType = "video"    // 视频互动/投稿奖励
)

// TxStatus 流水状态，仅用于展示，不参与余额计算
type TxStatus string

const (
	TxStatusPending   TxStatus = "pending"
	TxStatusCompleted TxStatus = "completed"
	TxStatusApproved  TxStatus = "approved"
)

// CreditTransaction 积分流水，只追加，不修改不删除
// ID 使用雪花算法生成，天然按创建顺序可排序
type CreditTransaction struct {
	ID          uint64          `gorm:"primaryKey;column:id"`
	UserID      uint64          `gorm:"column:user_id;index:idx_user_id"`
	Type        TransactionType `gorm:"column:type;size:16"`
	Amount      int64           `gorm:"column:amount"`  // 变动数额，恒为正数，方向由 Type 决定
	Balance     int64           `gorm:"column:balance"` // 变动后余额快照
	Status      TxStatus        `gorm:"column:status;size:16;default:completed"`
	SourceID    string          `gorm:"column:source_id;index:idx_source_id;size:64"` // 唯一业务单号（幂等关键）
	Description string          `gorm:"column:description;size:255"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (CreditTransaction) TableName() string {
	return "credit_transactions"
}

// ValidType 校验流水类型是否在枚举范围内
func ValidType(t TransactionType) bool {
	switch t {
	case TxTypeEarned, TxTypeSpent, TxTypeRefund, TxTypeReferral, TxTypeVideo:
		return true
	}
	return false
}

// SignedDelta 流水对余额的带符号贡献：spent 为负，其余为正
func (t *CreditTransaction) SignedDelta() int64 {
	if t.Type == TxTypeSpent {
		return -t.Amount
	}
	return t.Amount
}
