package dao

import (
	"EcomCredits/models"
	"context"

	"gorm.io/gorm"
)

type Order struct {
	Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{
		Repo: NewRepo[models.Order](db),
	}
}

func (o *Order) FindBySn(ctx context.Context, orderSn string) (*models.Order, error) {
	var order models.Order
	err := o.Db.WithContext(ctx).Where("order_sn = ?", orderSn).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (o *Order) UpdateStatus(ctx context.Context, orderSn string, from, to int8) (int64, error) {
	result := o.Db.WithContext(ctx).Model(&models.Order{}).
		Where("order_sn = ? AND status = ?", orderSn, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

// ListByUser 游标分页，按 ID 倒序
func (o *Order) ListByUser(ctx context.Context, userID uint64, cursor uint64, limit int) ([]*models.Order, error) {
	query := o.Db.WithContext(ctx).Where("user_id = ?", userID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	var orders []*models.Order
	err := query.Order("id DESC").Limit(limit).Find(&orders).Error
	return orders, err
}
