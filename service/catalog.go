package service

import (
	"EcomCredits/config"
	"EcomCredits/dao"
	"EcomCredits/models"
	"EcomCredits/types"
	"context"
	"encoding/json"
	"sort"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CatalogService 商品目录的筛选/排序/详情
// 筛选排序是纯内存变换，数据库只负责取全量上架商品
type CatalogService struct {
	Config     *config.Config
	DB         *gorm.DB
	ProductDAO *dao.Product
}

var _ ICatalogService = (*CatalogService)(nil)

type ICatalogService interface {
	List(ctx context.Context, req *types.ListProductsReq) (*types.ListProductsResp, error)
	GetDetail(ctx context.Context, productID uint64) (*types.ProductDetailResp, error)
	CreateProduct(ctx context.Context, req *types.CreateProductReq) error
}

// matchCriteria 各维度之间取 AND，维度未激活时放行
func matchCriteria(p *models.Product, c *types.FilterCriteria) bool {
	if c == nil {
		return true
	}
	if c.Query != "" {
		q := strings.ToLower(c.Query)
		if !strings.Contains(strings.ToLower(p.ProductName), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) {
			return false
		}
	}
	if len(c.Categories) > 0 && !containsString(c.Categories, p.Category) {
		return false
	}
	if len(c.Brands) > 0 && !containsString(c.Brands, p.BrandID) {
		return false
	}
	if p.Price < c.PriceMin {
		return false
	}
	if c.PriceMax > 0 && p.Price > c.PriceMax {
		return false
	}
	if c.Rating > 0 && p.Rating < c.Rating {
		return false
	}
	if c.InStockOnly && !p.InStock() {
		return false
	}
	return true
}

func containsString(list []string, target string) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}

// QueryProducts 确定性的纯变换：筛选 + 稳定排序
// relevance 不重排；其余排序稳定，平手保持原始顺序
// 对任意合法商品集合都是全函数，空结果是正常返回而非错误
func QueryProducts(products []*models.Product, criteria *types.FilterCriteria, sortKey string) []*models.Product {
	filtered := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if matchCriteria(p, criteria) {
			filtered = append(filtered, p)
		}
	}

	switch sortKey {
	case types.SortPriceLowHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case types.SortPriceHighLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case types.SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case types.SortNewest:
		// ID 即创建顺序（自增/雪花同样单调）
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ID > filtered[j].ID
		})
	case types.SortPopularity:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ReviewCount > filtered[j].ReviewCount
		})
	default:
		// relevance: 保持原始顺序
	}

	return filtered
}

func (s *CatalogService) List(ctx context.Context, req *types.ListProductsReq) (*types.ListProductsResp, error) {
	products, err := s.ProductDAO.ListOnline(ctx)
	if err != nil {
		return nil, err
	}

	criteria := &types.FilterCriteria{
		Categories:  req.Categories,
		Brands:      req.Brands,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		Rating:      req.Rating,
		InStockOnly: req.InStock,
		Query:       req.Query,
	}
	result := QueryProducts(products, criteria, req.Sort)

	resp := &types.ListProductsResp{
		Products: make([]types.ProductItem, 0, len(result)),
		Total:    len(result),
	}
	for _, p := range result {
		resp.Products = append(resp.Products, toProductItem(p))
	}
	return resp, nil
}

func (s *CatalogService) GetDetail(ctx context.Context, productID uint64) (*types.ProductDetailResp, error) {
	p, err := s.ProductDAO.FindByID(ctx, productID)
	if err != nil {
		return nil, validationf("商品不存在")
	}

	var variants []models.ProductVariant
	if len(p.Variants) > 0 {
		// 规格存的是 JSON，坏数据按无规格处理
		_ = json.Unmarshal(p.Variants, &variants)
	}

	return &types.ProductDetailResp{
		ProductItem: toProductItem(p),
		VariantType: p.VariantType,
		Variants:    variants,
		Description: p.Description,
		Stock:       p.Stock,
	}, nil
}

// deriveDiscount 折扣按价格推导：floor((原价-现价)/原价*100)
func deriveDiscount(price, originalPrice uint32) uint8 {
	if originalPrice == 0 || price >= originalPrice {
		return 0
	}
	return uint8(uint64(originalPrice-price) * 100 / uint64(originalPrice))
}

func (s *CatalogService) CreateProduct(ctx context.Context, req *types.CreateProductReq) error {
	if req.OriginalPrice > 0 && req.Price > req.OriginalPrice {
		return validationf("售卖价不得高于原价")
	}

	count, err := s.ProductDAO.CountByName(ctx, req.ProductName)
	if err != nil {
		return err
	}
	if count > 0 {
		return validationf("已存在同名商品，请更换名称")
	}

	var variants datatypes.JSON
	if len(req.Variants) > 0 {
		raw, err := json.Marshal(req.Variants)
		if err != nil {
			return validationf("商品规格格式错误")
		}
		variants = datatypes.JSON(raw)
	}

	product := &models.Product{
		ProductName:   req.ProductName,
		Brand:         req.Brand,
		BrandID:       req.BrandID,
		Category:      req.Category,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Discount:      deriveDiscount(req.Price, req.OriginalPrice),
		Rating:        req.Rating,
		ReviewCount:   req.ReviewCount,
		Stock:         req.Stock,
		VariantType:   req.VariantType,
		Variants:      variants,
		CoverImage:    req.CoverImage,
		Description:   req.Description,
		Status:        req.Status,
	}
	return s.ProductDAO.Create(ctx, product)
}

func toProductItem(p *models.Product) types.ProductItem {
	return types.ProductItem{
		ID:            p.ID,
		ProductName:   p.ProductName,
		Brand:         p.Brand,
		BrandID:       p.BrandID,
		Category:      p.Category,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Discount:      p.Discount,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		InStock:       p.InStock(),
		CoverImage:    p.CoverImage,
	}
}
