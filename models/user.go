package models

import (
	"time"
)

type Users struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	Mobile    string    `gorm:"column:mobile;not null;uniqueIndex" json:"mobile"`   // 手机号
	Password  string    `gorm:"column:password;not null" json:"-"`                  // 密码（bcrypt）
	Nickname  string    `gorm:"column:nickname;not null;default:''" json:"nickname"`
	Avatar    string    `gorm:"column:avatar;not null;default:''" json:"avatar"`
	Signature string    `gorm:"column:signature;not null;default:''" json:"signature"` // 个性签名
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
