package config

// Jwt 令牌配置信息
type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// AccessExpire 访问令牌有效期（秒）
	AccessExpire int `json:"access_expire" yaml:"access_expire"`
	// RefreshExpire 刷新令牌有效期（秒）
	RefreshExpire int `json:"refresh_expire" yaml:"refresh_expire"`
}
