package types

// UploadVideoReq 投稿请求，进入待审核状态
type UploadVideoReq struct {
	Title      string `json:"title" binding:"required"`
	VideoURL   string `json:"video_url" binding:"required"`
	CoverImage string `json:"cover_image"`
}

// ReviewVideoReq 运营审核结论
// Approve 为真时 Reward 必填，数额须在配置的投稿奖励区间内
type ReviewVideoReq struct {
	Approve bool  `json:"approve"`
	Reward  int64 `json:"reward"`
}

// EngageResp 点赞/分享结果
type EngageResp struct {
	Rewarded     bool  `json:"rewarded"`      // 本次互动是否发放了奖励
	RewardAmount int64 `json:"reward_amount"` // 发放数额
	Balance      int64 `json:"balance"`       // 发放后余额
}

// VideoItem 视频流单项
type VideoItem struct {
	ID         uint64 `json:"id,string"`
	CreatorID  uint64 `json:"creator_id,string"`
	Title      string `json:"title"`
	CoverImage string `json:"cover_image"`
	VideoURL   string `json:"video_url"`
	LikeCount  uint32 `json:"like_count"`
	ShareCount uint32 `json:"share_count"`
	ViewCount  uint32 `json:"view_count"`
	CreatedAt  string `json:"created_at"`
}

// VideoFeedResp 视频流响应
type VideoFeedResp struct {
	Videos     []VideoItem `json:"videos"`
	NextCursor uint64      `json:"next_cursor"`
	HasMore    bool        `json:"has_more"`
}
