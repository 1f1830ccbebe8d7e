package handler

import (
	"Linkup/config"
	"Linkup/pkg/context"
	"Linkup/pkg/jwt"
	"Linkup/pkg/response"
	"Linkup/service"
	"Linkup/types"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultAccessExpire  = 2 * time.Hour
	defaultRefreshExpire = 30 * 24 * time.Hour
)

type Auth struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *Auth) tokenExpires() (access, refresh time.Duration) {
	access, refresh = defaultAccessExpire, defaultRefreshExpire
	if u.Config.Jwt.AccessExpire > 0 {
		access = time.Duration(u.Config.Jwt.AccessExpire) * time.Second
	}
	if u.Config.Jwt.RefreshExpire > 0 {
		refresh = time.Duration(u.Config.Jwt.RefreshExpire) * time.Second
	}
	return
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/register", context.Wrap(u.Register))
	g.POST("/login", context.Wrap(u.Login))
	g.POST("/refresh", context.Wrap(u.Refresh))
}

// Register 注册
func (u *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	user, err := u.UserService.Register(c.Request.Context(), &service.UserRegisterOpt{
		Mobile:   req.Mobile,
		Password: req.Password,
		Nickname: req.Nickname,
	})
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	return u.issueTokenPair(c, user.ID)
}

// Login 登录
func (u *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	user, err := u.UserService.Login(c.Request.Context(), req.Mobile, req.Password)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	return u.issueTokenPair(c, user.ID)
}

// Refresh 刷新令牌
func (u *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	secret := []byte(u.Config.Jwt.Secret)
	claims, err := jwt.ParseToken(secret, "refresh", req.RefreshToken)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "refresh_token 无效")
	}

	accessExpire, refreshExpire := u.tokenExpires()
	accessToken, err := jwt.GenerateToken(secret, claims.UserID, "access", accessExpire)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	// 刷新令牌快到期时轮换，否则沿用旧的
	refreshToken := req.RefreshToken
	if jwt.ShouldRotateRefreshToken(claims, 7*24*time.Hour) {
		refreshToken, err = jwt.GenerateToken(secret, claims.UserID, "refresh", refreshExpire)
		if err != nil {
			return response.NewError(http.StatusInternalServerError, err.Error())
		}
	}

	response.Success(c, types.TokenPairResponse{
		UserID:       claims.UserID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(accessExpire.Seconds()),
	})
	return nil
}

func (u *Auth) issueTokenPair(c *gin.Context, userID uint64) error {
	secret := []byte(u.Config.Jwt.Secret)
	accessExpire, refreshExpire := u.tokenExpires()

	accessToken, err := jwt.GenerateToken(secret, userID, "access", accessExpire)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	refreshToken, err := jwt.GenerateToken(secret, userID, "refresh", refreshExpire)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.TokenPairResponse{
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(accessExpire.Seconds()),
	})
	return nil
}
