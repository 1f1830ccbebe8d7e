package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// HashSalt 用于生成用户分享码
	HashSalt string `json:"hash_salt" yaml:"hash_salt"`
}
