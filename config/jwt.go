package config

// Jwt 令牌配置
type Jwt struct {
	Secret        string `json:"secret" yaml:"secret"`
	AccessExpire  int    `json:"access_expire" yaml:"access_expire"`   // access token 有效期（秒）
	RefreshExpire int    `json:"refresh_expire" yaml:"refresh_expire"` // refresh token 有效期（秒）
}
