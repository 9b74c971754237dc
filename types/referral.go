package types

// ReferralStatsResp 邀请概览
type ReferralStatsResp struct {
	Code          string `json:"code"`           // 我的邀请码
	ReferredCount int64  `json:"referred_count"` // 成功邀请人数
	TotalEarned   int64  `json:"total_earned"`   // 邀请累计获得积分
}
