package types

// RewardKind 奖励事件类型
type RewardKind string

const (
	RewardSignup        RewardKind = "signup"         // 注册完成
	RewardReferral      RewardKind = "referral"       // 受邀注册完成，奖励发给邀请人
	RewardVideoLike     RewardKind = "video_like"     // 点赞，奖励发给点赞的观看者
	RewardVideoShare    RewardKind = "video_share"    // 分享
	RewardVideoUpload   RewardKind = "video_upload"   // 投稿审核通过，数额由运营给定
	RewardPurchaseCash  RewardKind = "purchase_cash"  // 购物返现
	RewardRedeemCredits RewardKind = "redeem_credits" // 积分抵扣下单
)

// RewardEvent 离散活动事件，ApplyEvent 的唯一入参
// SourceID 为空时由引擎生成，一个业务单号只会产生一条流水
type RewardEvent struct {
	Kind     RewardKind `json:"kind"`
	UserID   uint64     `json:"user_id"`   // 奖励接收方
	SourceID string     `json:"source_id"` // 唯一业务单号（幂等关键）

	OrderAmount     int64  `json:"order_amount,omitempty"`     // 订单总额（purchase_cash / redeem_credits）
	CashbackPercent int    `json:"cashback_percent,omitempty"` // 返现比例（purchase_cash）
	UploadReward    int64  `json:"upload_reward,omitempty"`    // 运营审核给定的投稿奖励（video_upload）
	VideoID         uint64 `json:"video_id,omitempty"`
}
