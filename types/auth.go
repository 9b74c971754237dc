package types

// RegisterReq 注册请求，ReferralCode 选填
type RegisterReq struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Nickname     string `json:"nickname" binding:"required"`
	ReferralCode string `json:"referral_code"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResp 注册/登录响应
type AuthResp struct {
	UserID       uint64 `json:"user_id,string"`
	Nickname     string `json:"nickname"`
	ReferralCode string `json:"referral_code"` // 对外分享的邀请码
	SignupBonus  int64  `json:"signup_bonus,omitempty"`
	TokenPair
}
