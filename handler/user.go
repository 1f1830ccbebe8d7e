package handler

import (
	"Linkup/config"
	"Linkup/middleware"
	"Linkup/pkg/context"
	"Linkup/pkg/response"
	"Linkup/service"
	"Linkup/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	g := r.Group("/v1/users")
	g.GET("/me", authorize, context.Wrap(u.Me))
	g.PUT("/me", authorize, context.Wrap(u.UpdateProfile))
	g.PUT("/me/password", authorize, context.Wrap(u.UpdatePassword))
	g.GET("/:user_id", authorize, context.Wrap(u.Profile))
}

// Me 当前用户主页信息
func (u *User) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	profile, err := u.UserService.Profile(c.Request.Context(), userID, u.Config.App.HashSalt)
	if err != nil {
		return translateError(err)
	}

	response.Success(c, profile)
	return nil
}

// Profile 查看用户主页信息
func (u *User) Profile(c *gin.Context) error {
	targetUserID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	profile, err := u.UserService.Profile(c.Request.Context(), targetUserID, u.Config.App.HashSalt)
	if err != nil {
		return translateError(err)
	}

	response.Success(c, profile)
	return nil
}

// UpdateProfile 更新资料
func (u *User) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	if err := u.UserService.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		return translateError(err)
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}

// UpdatePassword 修改密码
func (u *User) UpdatePassword(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.UpdatePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	if err := u.UserService.UpdatePassword(c.Request.Context(), userID, req.OldPassword, req.Password); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}
