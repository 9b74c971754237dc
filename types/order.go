package types

// PlaceOrderReq 下单请求
// PayMethod: 1-现金（产生返现），2-积分抵扣
type PlaceOrderReq struct {
	ProductID       uint64 `json:"product_id,string" binding:"required"`
	Quantity        uint32 `json:"quantity" binding:"required,min=1"`
	PayMethod       int8   `json:"pay_method" binding:"required,oneof=1 2"`
	CashbackPercent int    `json:"cashback_percent"` // 现金支付时的活动返现比例，0 取下限
}

// PlaceOrderResp 下单结果
type PlaceOrderResp struct {
	OrderSn         string `json:"order_sn"`
	TotalAmount     uint32 `json:"total_amount"`
	CreditsUsed     int64  `json:"credits_used"`     // 积分支付消耗
	CashbackCredits int64  `json:"cashback_credits"` // 现金支付返现
}

// OrderItem 订单列表单项
type OrderItem struct {
	OrderSn         string `json:"order_sn"`
	ProductName     string `json:"product_name"`
	Quantity        uint32 `json:"quantity"`
	TotalAmount     uint32 `json:"total_amount"`
	PayMethod       int8   `json:"pay_method"`
	CreditsUsed     int64  `json:"credits_used"`
	CashbackCredits int64  `json:"cashback_credits"`
	Status          int8   `json:"status"`
	CreatedAt       string `json:"created_at"`
}

// ListOrdersResp 订单列表响应
type ListOrdersResp struct {
	Orders     []OrderItem `json:"orders"`
	NextCursor uint64      `json:"next_cursor"`
	HasMore    bool        `json:"has_more"`
}
