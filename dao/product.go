package dao

import (
	"EcomCredits/models"
	"context"

	"gorm.io/gorm"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

func (p *Product) CountByName(ctx context.Context, name string) (int64, error) {
	var count int64
	err := p.Db.WithContext(ctx).Model(&models.Product{}).
		Where("product_name = ? AND deleted_at IS NULL", name).
		Count(&count).Error
	return count, err
}

// ListOnline 拉取全部上架商品，筛选排序在内存中完成
func (p *Product) ListOnline(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	err := p.Db.WithContext(ctx).
		Where("status = ?", 1).
		Order("id ASC").
		Find(&products).Error
	return products, err
}

// DecrStock 下单扣库存，库存不足时影响行数为 0
func (p *Product) DecrStock(ctx context.Context, productID uint64, quantity uint32) (int64, error) {
	result := p.Db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	return result.RowsAffected, result.Error
}

// IncrStock 回补库存（支付失败补偿、退款）
func (p *Product) IncrStock(ctx context.Context, productID uint64, quantity uint32) error {
	return p.Db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", quantity)).Error
}
