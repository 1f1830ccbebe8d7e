package types

type UserProfile struct {
	UserID          uint64 `json:"user_id"`
	Nickname        string `json:"nickname"`
	Avatar          string `json:"avatar"`
	Signature       string `json:"signature"` // 个性签名
	ShareCode       string `json:"share_code"`
	FollowerCount   uint32 `json:"follower_count"`
	FollowingCount  uint32 `json:"following_count"`
	ConnectionCount uint32 `json:"connection_count"`
}

type UpdateUserReq struct {
	Nickname  *string `json:"nickname"`
	Avatar    *string `json:"avatar"`
	Signature *string `json:"signature"`
	// 手机号、密码通过专门的修改接口（需验证旧密码）
}

type UpdatePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	Password    string `json:"password" binding:"required"`
}
