package dao

import (
	"Linkup/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConnectionRequestDAO struct {
	Repo[models.ConnectionRequest]
}

func NewConnectionRequestDAO(db *gorm.DB) *ConnectionRequestDAO {
	return &ConnectionRequestDAO{
		Repo: NewRepo[models.ConnectionRequest](db),
	}
}

// HasPending 判断是否存在指定方向的待处理申请
func (d *ConnectionRequestDAO) HasPending(ctx context.Context, senderID, receiverID uint64) (bool, error) {
	return d.IsExist(ctx,
		"sender_id = ? AND receiver_id = ? AND status = ?",
		senderID, receiverID, models.ConnectionRequestPending)
}

// CreateIfAbsent 创建待处理申请，同方向已存在则不重复插入
func (d *ConnectionRequestDAO) CreateIfAbsent(ctx context.Context, senderID, receiverID uint64) (bool, error) {
	now := time.Now()
	req := models.ConnectionRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.ConnectionRequestPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&req)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeletePending 删除待处理申请。RowsAffected 作为并发判定依据：
// 同一条申请被并发接受时只有一方删除成功。
func (d *ConnectionRequestDAO) DeletePending(ctx context.Context, senderID, receiverID uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("sender_id = ? AND receiver_id = ? AND status = ?",
			senderID, receiverID, models.ConnectionRequestPending).
		Delete(&models.ConnectionRequest{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListIncoming 获取收到的待处理申请列表（按申请时间倒序）
func (d *ConnectionRequestDAO) ListIncoming(ctx context.Context, receiverID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error) {
	var items []*models.FollowingQueryResult
	var total int64

	err := d.Db.WithContext(ctx).
		Model(&models.ConnectionRequest{}).
		Where("receiver_id = ? AND status = ?", receiverID, models.ConnectionRequestPending).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = d.Db.WithContext(ctx).
		Table("connection_request cr").
		Select("u.id as user_id, u.nickname, u.avatar, cr.created_at as follow_time").
		Joins("LEFT JOIN users u ON cr.sender_id = u.id").
		Where("cr.receiver_id = ? AND cr.status = ?", receiverID, models.ConnectionRequestPending).
		Order("cr.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&items).Error

	return items, total, err
}
