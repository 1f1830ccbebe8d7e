package models

import (
	"time"
)

const (
	// ConnectionRequestPending 待处理
	ConnectionRequestPending = 1
)

// ConnectionRequest 联系申请。接受/拒绝/取消后直接删除行，
// 表里只会存在待处理的申请。
type ConnectionRequest struct {
	ID         uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	SenderID   uint64    `gorm:"column:sender_id;not null;uniqueIndex:uk_request_pair" json:"sender_id"`
	ReceiverID uint64    `gorm:"column:receiver_id;not null;uniqueIndex:uk_request_pair" json:"receiver_id"`
	Status     int       `gorm:"column:status;not null;default:1" json:"status"` // 1:待处理
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (ConnectionRequest) TableName() string {
	return "connection_request"
}
