package models

import "time"

// 支付方式
const (
	PayMethodMoney   = 1 // 现金支付（产生购物返现）
	PayMethodCredits = 2 // 积分抵扣支付
)

// 订单状态
const (
	OrderStatusCreated  = 0
	OrderStatusPaid     = 1
	OrderStatusRefunded = 2
)

// Order 订单主表，积分相关字段记录下单时刻的换算结果
type Order struct {
	ID              uint64    `gorm:"primaryKey;column:id"`
	OrderSn         string    `gorm:"column:order_sn;uniqueIndex;size:64"` // 业务单号，积分流水以此幂等
	UserID          uint64    `gorm:"column:user_id;index:idx_order_user"`
	ProductID       uint64    `gorm:"column:product_id"`
	ProductName     string    `gorm:"size:255;not null;column:product_name"` // 冗余商品名称，防止原商品删除/更名
	Quantity        uint32    `gorm:"default:1;not null;column:quantity"`
	TotalAmount     uint32    `gorm:"not null;column:total_amount"`       // 订单总额（整卢比）
	PayMethod       int8      `gorm:"column:pay_method;default:1"`        // 1-现金, 2-积分
	CreditsUsed     int64     `gorm:"column:credits_used;default:0"`      // 积分支付时消耗的积分数
	CashbackPercent uint8     `gorm:"column:cashback_percent;default:0"`  // 现金支付时返现比例
	CashbackCredits int64     `gorm:"column:cashback_credits;default:0"`  // 实际返现积分（向下取整）
	Status          int8      `gorm:"column:status;default:0;index:idx_order_status"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}
