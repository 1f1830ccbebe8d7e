package types

import "Linkup/models"

type GetFollowingListRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"` // 每页数量
}

type GetFollowingListResponse struct {
	Following []*models.FollowingQueryResult `json:"following"`
	Total     int64                          `json:"total"`
	HasMore   bool                           `json:"has_more"` // 告诉前端是否还有更多
}

type ListConnectionsResponse struct {
	Connections []*models.FollowingQueryResult `json:"connections"`
	Total       int64                          `json:"total"`
	HasMore     bool                           `json:"has_more"`
}

type ListRequestsResponse struct {
	Requests []*models.FollowingQueryResult `json:"requests"`
	Total    int64                          `json:"total"`
	HasMore  bool                           `json:"has_more"`
}
