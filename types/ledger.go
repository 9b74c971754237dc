package types

// LedgerDashboard 积分账户概览
type LedgerDashboard struct {
	Balance       int64 `json:"balance"`        // 当前可用积分余额
	TotalEarned   int64 `json:"total_earned"`   // 历史累计获得
	TotalUsed     int64 `json:"total_used"`     // 历史累计使用
	PendingCount  int   `json:"pending_count"`  // 待入账返现笔数
	PendingAmount int64 `json:"pending_amount"` // 待入账返现总额
}

// TransactionRecord 单条流水记录详情
type TransactionRecord struct {
	ID          uint64 `json:"id,string"`   // 流水ID，转字符串防止精度丢失
	Type        string `json:"type"`        // earned/spent/refund/referral/video
	Amount      int64  `json:"amount"`      // 带符号变动数值（spent 为负）
	Balance     int64  `json:"balance"`     // 变动后的余额快照
	Direction   string `json:"direction"`   // 界面显示: INCOME / EXPENSE
	Status      string `json:"status"`      // pending / completed / approved
	Description string `json:"description"` // 详细描述
	CreatedAt   string `json:"created_at"`  // 格式化时间: 2006-01-02 15:04:05
}

// ListTransactionsReq 流水查询请求
type ListTransactionsReq struct {
	Type   string `form:"type" binding:"omitempty,oneof=earned spent refund referral video"`
	SortBy string `form:"sort_by" binding:"omitempty,oneof=date amount"` // 默认 date
	Cursor uint64 `form:"cursor"`                                       // 分页游标 (流水ID)
	Limit  int    `form:"limit,default=10"`
}

// ListTransactionsResp 流水列表包装
type ListTransactionsResp struct {
	Records    []TransactionRecord `json:"records"`
	NextCursor uint64              `json:"next_cursor"` // 游标：用于下一页请求
	HasMore    bool                `json:"has_more"`
}
