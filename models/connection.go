package models

import (
	"time"
)

// Connection 双向联系关系，按 user_a_id < user_b_id 规范化存储，
// 保证同一对用户只有一行，与谁发起无关。
type Connection struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserAID   uint64    `gorm:"column:user_a_id;not null;uniqueIndex:uk_conn_pair" json:"user_a_id"`
	UserBID   uint64    `gorm:"column:user_b_id;not null;uniqueIndex:uk_conn_pair" json:"user_b_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Connection) TableName() string {
	return "connection"
}

// NormalizePair 规范化无序用户对，小 ID 在前
func NormalizePair(a, b uint64) (uint64, uint64) {
	if a > b {
		return b, a
	}
	return a, b
}
