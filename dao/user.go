package dao

import (
	"Linkup/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByMobile 手机号查询
func (u *Users) FindByMobile(ctx context.Context, mobile string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "mobile = ?", mobile)
}

// ExistsById 判断用户是否存在
func (u *Users) ExistsById(ctx context.Context, userID uint64) (bool, error) {
	return u.Repo.IsExist(ctx, "id = ?", userID)
}

// IsMobileExist 判断手机号是否存在
func (u *Users) IsMobileExist(ctx context.Context, mobile string) bool {
	exist, _ := u.Repo.IsExist(ctx, "mobile = ?", mobile)
	return exist
}

func (u *Users) UpdateById(ctx context.Context, id uint64, data map[string]any) error {
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	return u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", id).
		Updates(data).Error
}
