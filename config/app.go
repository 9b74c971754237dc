package config

type App struct {
	Env          string `json:"env" yaml:"env"`
	Debug        bool   `json:"debug" yaml:"debug"`
	ReferralSalt string `json:"referral_salt" yaml:"referral_salt"` // 邀请码 hashid 盐值
}
