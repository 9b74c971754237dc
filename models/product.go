package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product 对应数据库中的 products 表
type Product struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`                                  // ID: 自增主键，同时充当"最新"排序依据
	ProductName   string         `gorm:"uniqueIndex:idx_product_name;not null;column:product_name" json:"product_name"` // ProductName: 商品名称
	Brand         string         `gorm:"size:64;not null;column:brand" json:"brand"`                                    // Brand: 品牌展示名
	BrandID       string         `gorm:"size:64;index:idx_brand_id;column:brand_id" json:"brand_id"`                    // BrandID: 品牌标识（筛选维度）
	Category      string         `gorm:"size:64;index:idx_category;column:category" json:"category"`                    // Category: 分类标识（筛选维度）
	Price         uint32         `gorm:"not null;column:price" json:"price"`                                            // Price: 售卖价（整卢比）
	OriginalPrice uint32         `gorm:"default:0;column:original_price" json:"original_price"`                         // OriginalPrice: 展示原价，0 表示无原价
	Discount      uint8          `gorm:"default:0;column:discount" json:"discount"`                                     // Discount: 折扣百分比，由价格推导，不接受外部输入
	Rating        float32        `gorm:"default:0;column:rating" json:"rating"`                                         // Rating: 0-5 星，半星粒度
	ReviewCount   uint32         `gorm:"default:0;column:review_count" json:"review_count"`                             // ReviewCount: 评价数（热度排序依据）
	Stock         uint32         `gorm:"default:0;not null;column:stock" json:"stock"`                                  // Stock: 库存数量
	VariantType   string         `gorm:"size:32;default:'';column:variant_type" json:"variant_type"`                    // VariantType: 规格维度名（颜色/尺寸等）
	Variants      datatypes.JSON `gorm:"column:variants" json:"variants"`                                               // Variants: 可选规格列表，含各自价格
	CoverImage    string         `gorm:"size:512;default:'';column:cover_image" json:"cover_image"`                     // CoverImage: 封面图 URL
	Description   string         `gorm:"type:text;column:description" json:"description"`                               // Description: 商品详细描述
	Status        int8           `gorm:"default:1;not null;index:idx_status;column:status" json:"status"`               // Status: 状态 (0-下架, 1-上架)
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index:idx_products_deleted_at;column:deleted_at" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// InStock 库存大于 0 即视为有货
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// ProductVariant 单个规格选项，价格可覆盖主商品价格
type ProductVariant struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price uint32 `json:"price"`
}
