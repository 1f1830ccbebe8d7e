package service

import (
	"Linkup/dao"
	"Linkup/models"
	"Linkup/pkg/encrypt"
	"Linkup/pkg/snowflake"
	"Linkup/pkg/utils"
	"Linkup/types"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, opt *UserRegisterOpt) (*models.Users, error)
	Login(ctx context.Context, mobile string, password string) (*models.Users, error)
	UpdatePassword(ctx context.Context, uid uint64, oldPassword string, password string) error
	UpdateProfile(ctx context.Context, uid uint64, req *types.UpdateUserReq) error
	Profile(ctx context.Context, userID uint64, salt string) (*types.UserProfile, error)
}

type UserService struct {
	UsersRepo *dao.Users
	StatsDAO  *dao.UserStatsDAO
}

type UserRegisterOpt struct {
	Nickname string `json:"nickname"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// Register 注册用户
func (s *UserService) Register(ctx context.Context, opt *UserRegisterOpt) (*models.Users, error) {
	if s.UsersRepo.IsMobileExist(ctx, opt.Mobile) {
		return nil, errors.New("账号已存在! ")
	}

	user := &models.Users{
		ID:        snowflake.GenUserID(),
		Mobile:    opt.Mobile,
		Nickname:  opt.Nickname,
		Password:  encrypt.HashPassword(opt.Password),
		Avatar:    "",
		Signature: "",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.UsersRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("账号已存在! ")
		}
		return nil, err
	}

	// 统计行跟用户一起建，后面的计数更新都是原子累加
	if _, err := s.StatsDAO.GetOrCreate(ctx, user.ID); err != nil {
		return nil, err
	}

	return user, nil
}

// Login 登录处理
func (s *UserService) Login(ctx context.Context, mobile string, password string) (*models.Users, error) {
	user, err := s.UsersRepo.FindByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("登录账号不存在! ")
		}

		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, errors.New("登录密码填写错误! ")
	}

	return user, nil
}

// UpdatePassword 修改用户密码
func (s *UserService) UpdatePassword(ctx context.Context, uid uint64, oldPassword string, password string) error {
	user, err := s.UsersRepo.FindById(ctx, uid)
	if err != nil {
		return errors.New("用户不存在！")
	}

	if !encrypt.VerifyPassword(user.Password, oldPassword) {
		return errors.New("密码验证不正确！")
	}

	return s.UsersRepo.UpdateById(ctx, user.ID, map[string]any{
		"password": encrypt.HashPassword(password),
	})
}

// UpdateProfile 更新用户资料
func (s *UserService) UpdateProfile(ctx context.Context, uid uint64, req *types.UpdateUserReq) error {
	updates := map[string]any{}
	if req.Nickname != nil {
		updates["nickname"] = *req.Nickname
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.Signature != nil {
		updates["signature"] = *req.Signature
	}
	if len(updates) == 0 {
		return nil
	}
	return s.UsersRepo.UpdateById(ctx, uid, updates)
}

// Profile 用户主页信息（带计数和分享码）
func (s *UserService) Profile(ctx context.Context, userID uint64, salt string) (*types.UserProfile, error) {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	profile := &types.UserProfile{
		UserID:    user.ID,
		Nickname:  user.Nickname,
		Avatar:    user.Avatar,
		Signature: user.Signature,
		ShareCode: utils.GenShareCode(salt, user.ID),
	}

	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats != nil {
		profile.FollowerCount = stats.FollowerCount
		profile.FollowingCount = stats.FollowingCount
		profile.ConnectionCount = stats.ConnectionCount
	}

	return profile, nil
}
