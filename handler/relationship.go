package handler

import (
	"Linkup/config"
	"Linkup/middleware"
	"Linkup/pkg/context"
	"Linkup/pkg/response"
	"Linkup/service"
	"Linkup/types"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Relationship struct {
	Config              *config.Config
	RelationshipService service.IRelationshipService
}

func (h *Relationship) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/connections")
	g.POST("/requests/:user_id", authorize, context.Wrap(h.SendRequest))
	g.POST("/requests/:user_id/accept", authorize, context.Wrap(h.AcceptRequest))
	g.POST("/requests/:user_id/decline", authorize, context.Wrap(h.DeclineRequest))
	g.GET("/requests", authorize, context.Wrap(h.ListIncomingRequests))
	g.DELETE("/:user_id", authorize, context.Wrap(h.RemoveConnection))
	g.GET("/:user_id/status", authorize, context.Wrap(h.GetStatus))
	g.GET("", authorize, context.Wrap(h.ListConnections))
}

// SendRequest 发起联系申请
func (h *Relationship) SendRequest(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetUserID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	outcome, err := h.RelationshipService.SendRequest(c.Request.Context(), userID, targetUserID)
	if err != nil {
		return translateError(err)
	}

	msg := map[string]string{
		types.SendOutcomeCreated:        "申请已发送",
		types.SendOutcomeAlreadyPending: "申请已在等待对方处理",
		types.SendOutcomeAcceptInstead:  "对方已向你发来申请，直接接受即可",
	}[outcome]

	response.Success(c, types.SendRequestResponse{
		Outcome: outcome,
		Msg:     msg,
	})
	return nil
}

// AcceptRequest 接受联系申请
func (h *Relationship) AcceptRequest(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	senderID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	if err := h.RelationshipService.AcceptRequest(c.Request.Context(), userID, senderID); err != nil {
		return translateError(err)
	}

	response.Success(c, gin.H{"connected": true})
	return nil
}

// DeclineRequest 拒绝联系申请
func (h *Relationship) DeclineRequest(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	senderID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	if err := h.RelationshipService.DeclineRequest(c.Request.Context(), userID, senderID); err != nil {
		return translateError(err)
	}

	response.Success(c, gin.H{"declined": true})
	return nil
}

// RemoveConnection 解除联系（也承担取消/拒绝申请）
func (h *Relationship) RemoveConnection(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	otherID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	var req types.RemoveConnectionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	if err := h.RelationshipService.RemoveConnection(c.Request.Context(), userID, otherID, req.KeepFollowing); err != nil {
		return translateError(err)
	}

	response.Success(c, gin.H{"removed": true})
	return nil
}

// GetStatus 查询与某个用户的关系状态
func (h *Relationship) GetStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	otherID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	status, err := h.RelationshipService.Status(c.Request.Context(), userID, otherID)
	if err != nil {
		return translateError(err)
	}

	response.Success(c, gin.H{
		"status": status,
		"label":  status.Label(),
	})
	return nil
}

// ListConnections 联系人列表
func (h *Relationship) ListConnections(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	page, pageSize := parsePage(c)
	items, total, err := h.RelationshipService.ListConnections(
		c.Request.Context(), userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return translateError(err)
	}

	response.Success(c, types.ListConnectionsResponse{
		Connections: items,
		Total:       total,
		HasMore:     int64(page*pageSize) < total,
	})
	return nil
}

// ListIncomingRequests 收到的待处理申请列表
func (h *Relationship) ListIncomingRequests(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	page, pageSize := parsePage(c)
	items, total, err := h.RelationshipService.ListIncomingRequests(
		c.Request.Context(), userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return translateError(err)
	}

	response.Success(c, types.ListRequestsResponse{
		Requests: items,
		Total:    total,
		HasMore:  int64(page*pageSize) < total,
	})
	return nil
}

func parseUserIDParam(c *gin.Context) (uint64, error) {
	param := c.Param("user_id")
	if param == "" {
		return 0, response.NewError(http.StatusBadRequest, "缺少 user_id")
	}
	var userID uint64
	if _, err := fmt.Sscanf(param, "%d", &userID); err != nil {
		return 0, response.NewError(http.StatusBadRequest, "user_id 格式错误")
	}
	return userID, nil
}

func parsePage(c *gin.Context) (int, int) {
	var req types.ListRequest
	_ = c.ShouldBindQuery(&req)
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = types.DefaultPageSize
	}
	return req.Page, req.PageSize
}
