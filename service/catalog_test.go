package service

import (
	"EcomCredits/models"
	"EcomCredits/types"
	"testing"
)

func sampleProducts() []*models.Product {
	return []*models.Product{
		{ID: 1, ProductName: "Velocity Running Shoes", Brand: "Nike", BrandID: "nike", Category: "footwear", Price: 200, Rating: 4.5, ReviewCount: 320, Stock: 12},
		{ID: 2, ProductName: "Classic Leather Wallet", Brand: "Fossil", BrandID: "fossil", Category: "accessories", Price: 50, Rating: 4.8, ReviewCount: 95, Stock: 0},
		{ID: 3, ProductName: "Air Max Sneakers", Brand: "Nike", BrandID: "nike", Category: "footwear", Price: 100, Rating: 4.2, ReviewCount: 540, Stock: 3},
		{ID: 4, ProductName: "Cotton Crew T-Shirt", Brand: "Uniqlo", BrandID: "uniqlo", Category: "apparel", Price: 100, Rating: 3.9, ReviewCount: 210, Stock: 40},
	}
}

func ids(products []*models.Product) []uint64 {
	out := make([]uint64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func assertOrder(t *testing.T, got []*models.Product, want []uint64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(got))
	}
	for i, p := range got {
		if p.ID != want[i] {
			t.Fatalf("position %d: expected id %d, got %d (full: %v)", i, want[i], p.ID, ids(got))
		}
	}
}

func TestQueryProductsPriceLowHigh(t *testing.T) {
	got := QueryProducts(sampleProducts(), nil, types.SortPriceLowHigh)
	assertOrder(t, got, []uint64{2, 3, 4, 1})
}

func TestQueryProductsPriceHighLow(t *testing.T) {
	got := QueryProducts(sampleProducts(), nil, types.SortPriceHighLow)
	assertOrder(t, got, []uint64{1, 3, 4, 2})
}

// 同价商品在价格排序下保持输入顺序
func TestQueryProductsStableOnTies(t *testing.T) {
	got := QueryProducts(sampleProducts(), nil, types.SortPriceLowHigh)
	for i := range got {
		if got[i].ID == 3 {
			if i+1 >= len(got) || got[i+1].ID != 4 {
				t.Fatalf("tie on price 100 not stable: %v", ids(got))
			}
			return
		}
	}
	t.Fatalf("product 3 missing from result: %v", ids(got))
}

func TestQueryProductsRating(t *testing.T) {
	got := QueryProducts(sampleProducts(), nil, types.SortRating)
	assertOrder(t, got, []uint64{2, 1, 3, 4})
}

func TestQueryProductsNewest(t *testing.T) {
	got := QueryProducts(sampleProducts(), nil, types.SortNewest)
	assertOrder(t, got, []uint64{4, 3, 2, 1})
}

func TestQueryProductsPopularity(t *testing.T) {
	got := QueryProducts(sampleProducts(), nil, types.SortPopularity)
	assertOrder(t, got, []uint64{3, 1, 4, 2})
}

func TestQueryProductsRelevanceKeepsOrder(t *testing.T) {
	got := QueryProducts(sampleProducts(), nil, types.SortRelevance)
	assertOrder(t, got, []uint64{1, 2, 3, 4})
}

// 各维度取 AND，价格区间边界包含
func TestQueryProductsFilterCombined(t *testing.T) {
	criteria := &types.FilterCriteria{
		Categories: []string{"footwear"},
		PriceMin:   100,
		PriceMax:   200,
	}
	got := QueryProducts(sampleProducts(), criteria, types.SortRelevance)
	assertOrder(t, got, []uint64{1, 3})
}

func TestQueryProductsPriceMaxZeroMeansNoCap(t *testing.T) {
	criteria := &types.FilterCriteria{PriceMin: 60}
	got := QueryProducts(sampleProducts(), criteria, types.SortRelevance)
	assertOrder(t, got, []uint64{1, 3, 4})
}

func TestQueryProductsInStockOnly(t *testing.T) {
	criteria := &types.FilterCriteria{InStockOnly: true}
	got := QueryProducts(sampleProducts(), criteria, types.SortRelevance)
	for _, p := range got {
		if p.Stock == 0 {
			t.Fatalf("out-of-stock product %d leaked into result", p.ID)
		}
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 in-stock products, got %d", len(got))
	}
}

// 评分门槛是“大于等于”
func TestQueryProductsRatingThreshold(t *testing.T) {
	criteria := &types.FilterCriteria{Rating: 4.2}
	got := QueryProducts(sampleProducts(), criteria, types.SortRelevance)
	assertOrder(t, got, []uint64{1, 2, 3})
}

func TestQueryProductsBrandFilter(t *testing.T) {
	criteria := &types.FilterCriteria{Brands: []string{"nike", "uniqlo"}}
	got := QueryProducts(sampleProducts(), criteria, types.SortRelevance)
	assertOrder(t, got, []uint64{1, 3, 4})
}

func TestQueryProductsQueryMatchesNameAndBrand(t *testing.T) {
	got := QueryProducts(sampleProducts(), &types.FilterCriteria{Query: "sneakers"}, types.SortRelevance)
	assertOrder(t, got, []uint64{3})

	got = QueryProducts(sampleProducts(), &types.FilterCriteria{Query: "NIKE"}, types.SortRelevance)
	assertOrder(t, got, []uint64{1, 3})
}

// 追加筛选维度只会缩小结果集
func TestQueryProductsMonotonic(t *testing.T) {
	products := sampleProducts()
	base := QueryProducts(products, &types.FilterCriteria{Categories: []string{"footwear"}}, types.SortRelevance)
	narrowed := QueryProducts(products, &types.FilterCriteria{
		Categories:  []string{"footwear"},
		InStockOnly: true,
		Rating:      4.3,
	}, types.SortRelevance)
	if len(narrowed) > len(base) {
		t.Fatalf("narrowed result larger than base: %d > %d", len(narrowed), len(base))
	}
	for _, p := range narrowed {
		found := false
		for _, b := range base {
			if b.ID == p.ID {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("product %d appeared after narrowing but not before", p.ID)
		}
	}
}

func TestQueryProductsEmptyResult(t *testing.T) {
	criteria := &types.FilterCriteria{Categories: []string{"electronics"}}
	got := QueryProducts(sampleProducts(), criteria, types.SortPriceLowHigh)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", ids(got))
	}
}

func TestDeriveDiscount(t *testing.T) {
	cases := []struct {
		price, original uint32
		want            uint8
	}{
		{80, 100, 20},
		{75, 100, 25},
		{100, 100, 0},
		{120, 100, 0},
		{50, 0, 0},
		{66, 199, 66}, // floor((199-66)/199*100)
	}
	for _, c := range cases {
		if got := deriveDiscount(c.price, c.original); got != c.want {
			t.Fatalf("deriveDiscount(%d, %d) = %d, want %d", c.price, c.original, got, c.want)
		}
	}
}
