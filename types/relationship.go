package types

// 联系轴状态。关注与联系申请是两个独立的维度，
// 数据层分开维护，这里只做视图层投影。
const (
	ConnectionNone            = "none"
	ConnectionPendingSent     = "pending_sent"
	ConnectionPendingReceived = "pending_received"
	ConnectionConnected       = "connected"
)

// 发起联系申请的结果
const (
	SendOutcomeCreated = "created"
	// SendOutcomeAlreadyPending 自己已有待处理申请，幂等空操作
	SendOutcomeAlreadyPending = "already_pending"
	// SendOutcomeAcceptInstead 对方已先发来申请，应改为接受
	SendOutcomeAcceptInstead = "accept_instead"
)

// RelationshipStatus 我视角下与某个用户的关系状态
type RelationshipStatus struct {
	Connection  string `json:"connection"`   // none / pending_sent / pending_received / connected
	IsFollowing bool   `json:"is_following"` // 我是否关注了他
	IsFollower  bool   `json:"is_follower"`  // 他是否关注了我
}

// Label 合并两个维度的视图标签。联系轴优先，其次是关注状态。
func (s *RelationshipStatus) Label() string {
	if s.Connection != ConnectionNone {
		return s.Connection
	}
	if s.IsFollowing {
		return "following"
	}
	return "none"
}

// RelationshipEvent 关系变更通知
type RelationshipEvent struct {
	Type      string `json:"type"` // request_received / request_accepted / request_declined / request_cancelled / connection_removed / follower_added / follower_removed
	ActorID   uint64 `json:"actor_id"`
	TargetID  uint64 `json:"target_id"`
	Timestamp int64  `json:"timestamp"`
}

const (
	EventRequestReceived   = "request_received"
	EventRequestAccepted   = "request_accepted"
	EventRequestDeclined   = "request_declined"
	EventRequestCancelled  = "request_cancelled"
	EventConnectionRemoved = "connection_removed"
	EventFollowerAdded     = "follower_added"
	EventFollowerRemoved   = "follower_removed"
)

type SendRequestResponse struct {
	Outcome string `json:"outcome"`
	Msg     string `json:"msg"`
}

type RemoveConnectionRequest struct {
	// KeepFollowing 解除联系后是否保留自己对对方的关注
	KeepFollowing bool `form:"keep_following" json:"keep_following"`
}

type ListRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

const DefaultPageSize = 20
