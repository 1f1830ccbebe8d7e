package service

import (
	"Linkup/models"
	"Linkup/types"
	"context"
	"time"
)

var _ IRelationshipService = (*RelationshipService)(nil)

type IRelationshipService interface {
	SendRequest(ctx context.Context, actorID, targetID uint64) (string, error)
	AcceptRequest(ctx context.Context, actorID, senderID uint64) error
	DeclineRequest(ctx context.Context, actorID, senderID uint64) error
	RemoveConnection(ctx context.Context, actorID, otherID uint64, keepFollowing bool) error
	Status(ctx context.Context, actorID, otherID uint64) (*types.RelationshipStatus, error)
	ListConnections(ctx context.Context, userID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error)
	ListIncomingRequests(ctx context.Context, userID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error)
}

// RelationshipService 联系关系状态机。
// 联系（双向，需双方同意）和关注（单向）是两条独立的关系，
// 这里负责它们之间的状态流转，并保证计数与关系行一致。
type RelationshipService struct {
	RequestDAO    RequestStore
	ConnectionDAO ConnectionStore
	FollowDAO     FollowStore
	StatsDAO      StatsStore
	UserDAO       UserStore
	Cache         RelationshipCache
}

// SendRequest 发起联系申请。
// 对方已先发来申请时不建新申请，提示改为接受（保持原行为，不做自动接受）；
// 自己已有待处理申请时是幂等空操作。两种情况都不算失败。
func (s *RelationshipService) SendRequest(ctx context.Context, actorID, targetID uint64) (string, error) {
	if actorID == targetID {
		return "", ErrInvalidTarget
	}

	exist, err := s.UserDAO.ExistsById(ctx, targetID)
	if err != nil {
		return "", err
	}
	if !exist {
		return "", ErrUserNotFound
	}

	connected, err := s.ConnectionDAO.Exists(ctx, actorID, targetID)
	if err != nil {
		return "", err
	}
	if connected {
		return "", ErrAlreadyConnected
	}

	// 对方已先发来申请
	reverse, err := s.RequestDAO.HasPending(ctx, targetID, actorID)
	if err != nil {
		return "", err
	}
	if reverse {
		return types.SendOutcomeAcceptInstead, nil
	}

	created, err := s.RequestDAO.CreateIfAbsent(ctx, actorID, targetID)
	if err != nil {
		return "", err
	}
	if !created {
		return types.SendOutcomeAlreadyPending, nil
	}

	// 申请不影响任何计数
	s.Cache.InvalidatePair(ctx, actorID, targetID)
	s.Cache.PublishEvent(ctx, &types.RelationshipEvent{
		Type:      types.EventRequestReceived,
		ActorID:   actorID,
		TargetID:  targetID,
		Timestamp: time.Now().Unix(),
	})

	return types.SendOutcomeCreated, nil
}

// AcceptRequest 接受联系申请。
// 待处理申请行的条件删除是唯一的竞争裁决点：并发重复接受时
// 只有删除成功的一方继续执行，后续每一步都以"真的写入了"为
// 前提调整计数，联系和关注边都不会重复建立、计数不会重复累加。
func (s *RelationshipService) AcceptRequest(ctx context.Context, actorID, senderID uint64) error {
	if actorID == senderID {
		return ErrInvalidTarget
	}

	deleted, err := s.RequestDAO.DeletePending(ctx, senderID, actorID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRequestNotFound
	}

	// 对向申请按理不会存在（SendRequest 已拦截），清掉防御残留
	if _, err := s.RequestDAO.DeletePending(ctx, actorID, senderID); err != nil {
		return err
	}

	created, err := s.ConnectionDAO.CreateIfAbsent(ctx, senderID, actorID)
	if err != nil {
		return err
	}
	if created {
		if err := s.StatsDAO.IncrConnectionCount(ctx, actorID, 1); err != nil {
			return err
		}
		if err := s.StatsDAO.IncrConnectionCount(ctx, senderID, 1); err != nil {
			return err
		}
	}

	// 双向关注边，已存在的不重复建、不重复计数
	if err := s.ensureFollowEdge(ctx, actorID, senderID); err != nil {
		return err
	}
	if err := s.ensureFollowEdge(ctx, senderID, actorID); err != nil {
		return err
	}

	s.Cache.InvalidatePair(ctx, actorID, senderID)
	s.Cache.PublishEvent(ctx, &types.RelationshipEvent{
		Type:      types.EventRequestAccepted,
		ActorID:   actorID,
		TargetID:  senderID,
		Timestamp: time.Now().Unix(),
	})

	return nil
}

func (s *RelationshipService) ensureFollowEdge(ctx context.Context, followerID, followeeID uint64) error {
	created, err := s.FollowDAO.CreateEdge(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if !created {
		return nil
	}
	if err := s.StatsDAO.IncrFollowingCount(ctx, followerID, 1); err != nil {
		return err
	}
	return s.StatsDAO.IncrFollowerCount(ctx, followeeID, 1)
}

// DeclineRequest 拒绝联系申请，直接删行，不影响计数。
// 重复调用报申请不存在，但不会改动任何状态，可安全重试。
func (s *RelationshipService) DeclineRequest(ctx context.Context, actorID, senderID uint64) error {
	deleted, err := s.RequestDAO.DeletePending(ctx, senderID, actorID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRequestNotFound
	}

	s.Cache.InvalidatePair(ctx, actorID, senderID)
	s.Cache.PublishEvent(ctx, &types.RelationshipEvent{
		Type:      types.EventRequestDeclined,
		ActorID:   actorID,
		TargetID:  senderID,
		Timestamp: time.Now().Unix(),
	})

	return nil
}

// RemoveConnection 解除与对方的关系。调用时重新查当前状态，
// 按优先级取第一个命中的分支：
//  1. 已建立联系 -> 解除联系
//  2. 自己有发出的待处理申请 -> 取消申请
//  3. 对方有发来的待处理申请 -> 等同拒绝
//  4. 都没有 -> 无事可做，按成功返回
//
// keepFollowing 只决定自己对对方的关注边，对方对自己的关注不动。
func (s *RelationshipService) RemoveConnection(ctx context.Context, actorID, otherID uint64, keepFollowing bool) error {
	if actorID == otherID {
		return ErrInvalidTarget
	}

	// 分支 1：解除已建立的联系
	deleted, err := s.ConnectionDAO.Delete(ctx, actorID, otherID)
	if err != nil {
		return err
	}
	if deleted {
		if err := s.StatsDAO.IncrConnectionCount(ctx, actorID, -1); err != nil {
			return err
		}
		if err := s.StatsDAO.IncrConnectionCount(ctx, otherID, -1); err != nil {
			return err
		}
		if !keepFollowing {
			if err := s.dropFollowEdge(ctx, actorID, otherID); err != nil {
				return err
			}
		}

		s.Cache.InvalidatePair(ctx, actorID, otherID)
		s.Cache.PublishEvent(ctx, &types.RelationshipEvent{
			Type:      types.EventConnectionRemoved,
			ActorID:   actorID,
			TargetID:  otherID,
			Timestamp: time.Now().Unix(),
		})
		return nil
	}

	// 分支 2：取消自己发出的申请
	cancelled, err := s.RequestDAO.DeletePending(ctx, actorID, otherID)
	if err != nil {
		return err
	}
	if cancelled {
		if !keepFollowing {
			if err := s.dropFollowEdge(ctx, actorID, otherID); err != nil {
				return err
			}
		}

		s.Cache.InvalidatePair(ctx, actorID, otherID)
		s.Cache.PublishEvent(ctx, &types.RelationshipEvent{
			Type:      types.EventRequestCancelled,
			ActorID:   actorID,
			TargetID:  otherID,
			Timestamp: time.Now().Unix(),
		})
		return nil
	}

	// 分支 3：删除对方发来的申请（等同拒绝）
	declined, err := s.RequestDAO.DeletePending(ctx, otherID, actorID)
	if err != nil {
		return err
	}
	if declined {
		s.Cache.InvalidatePair(ctx, actorID, otherID)
		s.Cache.PublishEvent(ctx, &types.RelationshipEvent{
			Type:      types.EventRequestDeclined,
			ActorID:   actorID,
			TargetID:  otherID,
			Timestamp: time.Now().Unix(),
		})
		return nil
	}

	// 分支 4：无事可做
	return nil
}

func (s *RelationshipService) dropFollowEdge(ctx context.Context, followerID, followeeID uint64) error {
	deleted, err := s.FollowDAO.DeleteEdge(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if !deleted {
		return nil
	}
	if err := s.StatsDAO.IncrFollowingCount(ctx, followerID, -1); err != nil {
		return err
	}
	return s.StatsDAO.IncrFollowerCount(ctx, followeeID, -1)
}

// Status 我视角下与对方的关系状态，优先读缓存
func (s *RelationshipService) Status(ctx context.Context, actorID, otherID uint64) (*types.RelationshipStatus, error) {
	if cached, ok := s.Cache.GetStatus(ctx, actorID, otherID); ok {
		return cached, nil
	}

	status := &types.RelationshipStatus{Connection: types.ConnectionNone}

	connected, err := s.ConnectionDAO.Exists(ctx, actorID, otherID)
	if err != nil {
		return nil, err
	}
	if connected {
		status.Connection = types.ConnectionConnected
	} else {
		sent, err := s.RequestDAO.HasPending(ctx, actorID, otherID)
		if err != nil {
			return nil, err
		}
		if sent {
			status.Connection = types.ConnectionPendingSent
		} else {
			received, err := s.RequestDAO.HasPending(ctx, otherID, actorID)
			if err != nil {
				return nil, err
			}
			if received {
				status.Connection = types.ConnectionPendingReceived
			}
		}
	}

	status.IsFollowing, err = s.FollowDAO.IsFollowing(ctx, actorID, otherID)
	if err != nil {
		return nil, err
	}
	status.IsFollower, err = s.FollowDAO.IsFollowing(ctx, otherID, actorID)
	if err != nil {
		return nil, err
	}

	s.Cache.SetStatus(ctx, actorID, otherID, status)
	return status, nil
}

func (s *RelationshipService) ListConnections(ctx context.Context, userID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error) {
	return s.ConnectionDAO.ListForUser(ctx, userID, limit, offset)
}

func (s *RelationshipService) ListIncomingRequests(ctx context.Context, userID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error) {
	return s.RequestDAO.ListIncoming(ctx, userID, limit, offset)
}
