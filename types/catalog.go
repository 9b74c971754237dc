package types

import "EcomCredits/models"

// 排序键，与前端下拉框取值一致
const (
	SortRelevance    = "relevance"      // 不重排，保持原始顺序
	SortPriceLowHigh = "price-low-high" // 价格升序
	SortPriceHighLow = "price-high-low" // 价格降序
	SortRating       = "rating"         // 评分降序
	SortNewest       = "newest"         // ID 降序（创建顺序即时间顺序）
	SortPopularity   = "popularity"     // 评价数降序
)

// FilterCriteria 筛选条件，各维度之间取 AND
// 不持久化，随一次查询创建随用随弃
type FilterCriteria struct {
	Categories  []string // 为空表示不按分类筛
	Brands      []string // 为空表示不按品牌筛
	PriceMin    uint32   // 价格下限（含）
	PriceMax    uint32   // 价格上限（含），0 表示无上限
	Rating      float32  // 最低评分，0 表示不筛
	InStockOnly bool     // 仅看有货
	Query       string   // 名称/品牌模糊搜索
}

// ListProductsReq 商品列表请求
type ListProductsReq struct {
	Categories []string `form:"category"`
	Brands     []string `form:"brand"`
	PriceMin   uint32   `form:"price_min"`
	PriceMax   uint32   `form:"price_max"`
	Rating     float32  `form:"rating" binding:"omitempty,min=0,max=5"`
	InStock    bool     `form:"in_stock"`
	Query      string   `form:"q"`
	Sort       string   `form:"sort" binding:"omitempty,oneof=relevance price-low-high price-high-low rating newest popularity"`
}

// CreateProductReq 商品创建请求，折扣不接受外部输入，由价格推导
type CreateProductReq struct {
	ProductName   string                  `json:"product_name" binding:"required"`
	Brand         string                  `json:"brand" binding:"required"`
	BrandID       string                  `json:"brand_id" binding:"required"`
	Category      string                  `json:"category" binding:"required"`
	Price         uint32                  `json:"price" binding:"required,min=1"`
	OriginalPrice uint32                  `json:"original_price"`
	Rating        float32                 `json:"rating" binding:"omitempty,min=0,max=5"`
	ReviewCount   uint32                  `json:"review_count"`
	Stock         uint32                  `json:"stock"`
	VariantType   string                  `json:"variant_type"`
	Variants      []models.ProductVariant `json:"variants"`
	CoverImage    string                  `json:"cover_image"`
	Description   string                  `json:"description"`
	Status        int8                    `json:"status"`
}

// ProductItem 列表页商品卡片
type ProductItem struct {
	ID            uint64  `json:"id,string"`
	ProductName   string  `json:"product_name"`
	Brand         string  `json:"brand"`
	BrandID       string  `json:"brand_id"`
	Category      string  `json:"category"`
	Price         uint32  `json:"price"`
	OriginalPrice uint32  `json:"original_price"`
	Discount      uint8   `json:"discount"`
	Rating        float32 `json:"rating"`
	ReviewCount   uint32  `json:"review_count"`
	InStock       bool    `json:"in_stock"`
	CoverImage    string  `json:"cover_image"`
}

// ListProductsResp 商品列表响应
type ListProductsResp struct {
	Products []ProductItem `json:"products"`
	Total    int           `json:"total"`
}

// ProductDetailResp 商品详情
type ProductDetailResp struct {
	ProductItem
	VariantType string                  `json:"variant_type"`
	Variants    []models.ProductVariant `json:"variants"`
	Description string                  `json:"description"`
	Stock       uint32                  `json:"stock"`
}
