package config

// Rewards 积分规则配置，数值来自运营侧约定
// AllowNegativeBalance 默认关闭：余额不足的抵扣直接拒绝
type Rewards struct {
	SignupBonus          int64 `json:"signup_bonus" yaml:"signup_bonus"`                     // 注册奖励
	ReferralBonus        int64 `json:"referral_bonus" yaml:"referral_bonus"`                 // 邀请奖励（发给邀请人）
	VideoLikeBonus       int64 `json:"video_like_bonus" yaml:"video_like_bonus"`             // 点赞奖励（发给点赞的观看者）
	VideoShareBonus      int64 `json:"video_share_bonus" yaml:"video_share_bonus"`           // 分享奖励
	UploadRewardMin      int64 `json:"upload_reward_min" yaml:"upload_reward_min"`           // 投稿审核奖励下限
	UploadRewardMax      int64 `json:"upload_reward_max" yaml:"upload_reward_max"`           // 投稿审核奖励上限
	CashbackPercentMin   int   `json:"cashback_percent_min" yaml:"cashback_percent_min"`     // 购物返现比例下限
	CashbackPercentMax   int   `json:"cashback_percent_max" yaml:"cashback_percent_max"`     // 购物返现比例上限
	CreditValue          int64 `json:"credit_value" yaml:"credit_value"`                     // 1 积分抵扣多少卢比
	AllowNegativeBalance bool  `json:"allow_negative_balance" yaml:"allow_negative_balance"` // 是否允许余额透支
}

func DefaultRewards() *Rewards {
	return &Rewards{
		SignupBonus:        25,
		ReferralBonus:      25,
		VideoLikeBonus:     2,
		VideoShareBonus:    5,
		UploadRewardMin:    50,
		UploadRewardMax:    100,
		CashbackPercentMin: 1,
		CashbackPercentMax: 3,
		CreditValue:        5,
	}
}

// fillDefaults 配置缺省项回填，0 值视为未配置
func (r *Rewards) fillDefaults() {
	d := DefaultRewards()
	if r.SignupBonus == 0 {
		r.SignupBonus = d.SignupBonus
	}
	if r.ReferralBonus == 0 {
		r.ReferralBonus = d.ReferralBonus
	}
	if r.VideoLikeBonus == 0 {
		r.VideoLikeBonus = d.VideoLikeBonus
	}
	if r.VideoShareBonus == 0 {
		r.VideoShareBonus = d.VideoShareBonus
	}
	if r.UploadRewardMin == 0 {
		r.UploadRewardMin = d.UploadRewardMin
	}
	if r.UploadRewardMax == 0 {
		r.UploadRewardMax = d.UploadRewardMax
	}
	if r.CashbackPercentMin == 0 {
		r.CashbackPercentMin = d.CashbackPercentMin
	}
	if r.CashbackPercentMax == 0 {
		r.CashbackPercentMax = d.CashbackPercentMax
	}
	if r.CreditValue == 0 {
		r.CreditValue = d.CreditValue
	}
}
