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

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	g := r.Group("/v1/follow")
	g.POST("/:user_id/follow", authorize, context.Wrap(f.FollowUser))
	g.DELETE("/:user_id/follow", authorize, context.Wrap(f.UnfollowUser))
	g.GET("/:user_id/follow", authorize, context.Wrap(f.GetFollowStatus))
	g.GET("/:user_id/followers/count", context.Wrap(f.GetFollowerCount))
	g.GET("/:user_id/following/count", context.Wrap(f.GetFollowingCount))
	g.GET("/list", authorize, context.Wrap(f.GetFollowingList))
}

// FollowUser 关注用户
func (f *Follow) FollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetUserID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	if err := f.FollowService.Follow(c.Request.Context(), userID, targetUserID); err != nil {
		return translateError(err)
	}

	response.Success(c, gin.H{"followed": true})
	return nil
}

// UnfollowUser 取消关注用户
func (f *Follow) UnfollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetUserID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	if err := f.FollowService.Unfollow(c.Request.Context(), userID, targetUserID); err != nil {
		return translateError(err)
	}

	response.Success(c, gin.H{"followed": false})
	return nil
}

// GetFollowStatus 查询是否已关注
func (f *Follow) GetFollowStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetUserID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	isFollowing, err := f.FollowService.IsFollowing(c.Request.Context(), userID, targetUserID)
	if err != nil {
		return translateError(err)
	}

	response.Success(c, gin.H{"is_following": isFollowing})
	return nil
}

// GetFollowerCount 查询粉丝数
func (f *Follow) GetFollowerCount(c *gin.Context) error {
	targetUserID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	count, err := f.FollowService.GetFollowerCount(c.Request.Context(), targetUserID)
	if err != nil {
		return translateError(err)
	}

	response.Success(c, gin.H{"follower_count": count})
	return nil
}

// GetFollowingCount 查询关注数
func (f *Follow) GetFollowingCount(c *gin.Context) error {
	targetUserID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	count, err := f.FollowService.GetFollowingCount(c.Request.Context(), targetUserID)
	if err != nil {
		return translateError(err)
	}

	response.Success(c, gin.H{"following_count": count})
	return nil
}

// GetFollowingList 查询用户已关注的用户列表
func (f *Follow) GetFollowingList(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.GetFollowingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = types.DefaultPageSize
	}

	follows, total, err := f.FollowService.GetFollowingList(
		c.Request.Context(), userID, req.PageSize, (req.Page-1)*req.PageSize)
	if err != nil {
		return translateError(err)
	}

	response.Success(c, types.GetFollowingListResponse{
		Following: follows,
		Total:     total,
		HasMore:   int64(req.Page*req.PageSize) < total,
	})
	return nil
}
