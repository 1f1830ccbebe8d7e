package service

import (
	"Linkup/types"
	"context"
	"errors"
	"testing"
)

const (
	userA uint64 = 1
	userB uint64 = 2
	userC uint64 = 3
)

func TestSendRequest(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	outcome, err := env.relationship.SendRequest(ctx, userA, userB)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != types.SendOutcomeCreated {
		t.Fatalf("expected created, got %s", outcome)
	}

	// A 视角 pending_sent，B 视角 pending_received
	st, err := env.relationship.Status(ctx, userA, userB)
	if err != nil {
		t.Fatal(err)
	}
	if st.Connection != types.ConnectionPendingSent {
		t.Fatalf("expected pending_sent, got %s", st.Connection)
	}

	st, err = env.relationship.Status(ctx, userB, userA)
	if err != nil {
		t.Fatal(err)
	}
	if st.Connection != types.ConnectionPendingReceived {
		t.Fatalf("expected pending_received, got %s", st.Connection)
	}

	// 申请不影响任何计数
	if env.stats.connections[userA] != 0 || env.stats.followers[userB] != 0 {
		t.Fatal("pending request must not change counters")
	}
}

func TestSendRequest_InvalidTarget(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	if _, err := env.relationship.SendRequest(ctx, userA, userA); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}

	if _, err := env.relationship.SendRequest(ctx, userA, 999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// 重复申请不会新建行
func TestSendRequest_Duplicate(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	if _, err := env.relationship.SendRequest(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}

	outcome, err := env.relationship.SendRequest(ctx, userA, userB)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != types.SendOutcomeAlreadyPending {
		t.Fatalf("expected already_pending, got %s", outcome)
	}
	if len(env.requests.pending) != 1 {
		t.Fatalf("expected 1 pending request, got %d", len(env.requests.pending))
	}
}

// 对方已先发来申请时不自动接受，只提示改为接受
func TestSendRequest_ReversePending(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	if _, err := env.relationship.SendRequest(ctx, userB, userA); err != nil {
		t.Fatal(err)
	}

	outcome, err := env.relationship.SendRequest(ctx, userA, userB)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != types.SendOutcomeAcceptInstead {
		t.Fatalf("expected accept_instead, got %s", outcome)
	}
	if len(env.requests.pending) != 1 {
		t.Fatalf("expected only the original request, got %d", len(env.requests.pending))
	}
	// 没有建立联系
	if connected, _ := env.connections.Exists(ctx, userA, userB); connected {
		t.Fatal("reverse pending must not auto-accept")
	}
}

func TestSendRequest_AlreadyConnected(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	mustConnect(t, env, userA, userB)

	if _, err := env.relationship.SendRequest(ctx, userA, userB); !errors.Is(err, ErrAlreadyConnected) {
		t.Fatalf("expected ErrAlreadyConnected, got %v", err)
	}
}

// 场景：A 申请，B 接受。双方各自多一个联系人，
// 即使之前互不关注，接受后双向关注边都存在。
func TestAcceptRequest(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	if _, err := env.relationship.SendRequest(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}
	if err := env.relationship.AcceptRequest(ctx, userB, userA); err != nil {
		t.Fatal(err)
	}

	// 申请已删除
	if len(env.requests.pending) != 0 {
		t.Fatal("accepted request must be removed")
	}

	// 双方视角都是 connected
	for _, pair := range [][2]uint64{{userA, userB}, {userB, userA}} {
		st, err := env.relationship.Status(ctx, pair[0], pair[1])
		if err != nil {
			t.Fatal(err)
		}
		if st.Connection != types.ConnectionConnected {
			t.Fatalf("expected connected, got %s", st.Connection)
		}
		if !st.IsFollowing || !st.IsFollower {
			t.Fatal("accept must ensure both follow edges")
		}
	}

	// 计数：联系 1/1，双向关注 1/1
	if env.stats.connections[userA] != 1 || env.stats.connections[userB] != 1 {
		t.Fatalf("expected connection count 1/1, got %d/%d",
			env.stats.connections[userA], env.stats.connections[userB])
	}
	if env.stats.followers[userA] != 1 || env.stats.followers[userB] != 1 {
		t.Fatalf("expected follower count 1/1, got %d/%d",
			env.stats.followers[userA], env.stats.followers[userB])
	}
	if env.stats.following[userA] != 1 || env.stats.following[userB] != 1 {
		t.Fatalf("expected following count 1/1, got %d/%d",
			env.stats.following[userA], env.stats.following[userB])
	}
}

func TestAcceptRequest_NotFound(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	err := env.relationship.AcceptRequest(ctx, userB, userA)
	if !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
	// 无任何副作用
	if len(env.connections.pairs) != 0 || env.stats.connections[userA] != 0 {
		t.Fatal("failed accept must not leave side effects")
	}
}

// 场景：A 先关注了 B，之后申请联系并被接受。
// A->B 的边不会重复建，B 的粉丝数不变；B->A 是新边，A 的粉丝数 +1。
func TestAcceptRequest_PreexistingFollow(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	if err := env.follow.Follow(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}
	if env.stats.followers[userB] != 1 {
		t.Fatalf("expected follower count 1 for B, got %d", env.stats.followers[userB])
	}

	if _, err := env.relationship.SendRequest(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}
	if err := env.relationship.AcceptRequest(ctx, userB, userA); err != nil {
		t.Fatal(err)
	}

	// B 的粉丝数仍是 1（A->B 已存在），A 的粉丝数变为 1（B->A 新建）
	if env.stats.followers[userB] != 1 {
		t.Fatalf("pre-existing edge double counted: follower count %d", env.stats.followers[userB])
	}
	if env.stats.followers[userA] != 1 {
		t.Fatalf("expected follower count 1 for A, got %d", env.stats.followers[userA])
	}
}

// 重复接受同一条申请：只有一条联系、计数只加一次
func TestAcceptRequest_DuplicateAccept(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	if _, err := env.relationship.SendRequest(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}
	if err := env.relationship.AcceptRequest(ctx, userB, userA); err != nil {
		t.Fatal(err)
	}

	err := env.relationship.AcceptRequest(ctx, userB, userA)
	if !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound on duplicate accept, got %v", err)
	}

	if len(env.connections.pairs) != 1 {
		t.Fatalf("expected exactly 1 connection, got %d", len(env.connections.pairs))
	}
	if env.stats.connections[userA] != 1 || env.stats.connections[userB] != 1 {
		t.Fatalf("duplicate accept double counted: %d/%d",
			env.stats.connections[userA], env.stats.connections[userB])
	}
}

func TestDeclineRequest(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	if _, err := env.relationship.SendRequest(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}
	if err := env.relationship.DeclineRequest(ctx, userB, userA); err != nil {
		t.Fatal(err)
	}

	st, err := env.relationship.Status(ctx, userA, userB)
	if err != nil {
		t.Fatal(err)
	}
	if st.Connection != types.ConnectionNone {
		t.Fatalf("expected none after decline, got %s", st.Connection)
	}

	// 重试只报错，不改状态
	err = env.relationship.DeclineRequest(ctx, userB, userA)
	if !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound on retry, got %v", err)
	}
}

// 场景：双方互相关注并已建立联系，A 解除联系。
// keep_following=true 两条关注边都保留；false 只删 A->B，B->A 不动。
func TestRemoveConnection_KeepFollowing(t *testing.T) {
	ctx := context.Background()

	for _, keep := range []bool{true, false} {
		env := newTestEnv(userA, userB)
		mustConnect(t, env, userA, userB)

		if err := env.relationship.RemoveConnection(ctx, userA, userB, keep); err != nil {
			t.Fatal(err)
		}

		if connected, _ := env.connections.Exists(ctx, userA, userB); connected {
			t.Fatal("connection must be removed")
		}
		if env.stats.connections[userA] != 0 || env.stats.connections[userB] != 0 {
			t.Fatal("connection counts must drop to 0")
		}

		aFollowsB, _ := env.follows.IsFollowing(ctx, userA, userB)
		bFollowsA, _ := env.follows.IsFollowing(ctx, userB, userA)
		if aFollowsB != keep {
			t.Fatalf("keep=%v: expected A->B edge %v", keep, keep)
		}
		// 对方的关注不受影响
		if !bFollowsA {
			t.Fatalf("keep=%v: B->A edge must be untouched", keep)
		}

		if keep {
			if env.stats.followers[userB] != 1 || env.stats.following[userA] != 1 {
				t.Fatal("keep=true must not change follow counters")
			}
		} else {
			if env.stats.followers[userB] != 0 || env.stats.following[userA] != 0 {
				t.Fatal("keep=false must decrement A->B counters")
			}
			if env.stats.followers[userA] != 1 || env.stats.following[userB] != 1 {
				t.Fatal("keep=false must leave B->A counters alone")
			}
		}
	}
}

// 场景：A 申请后又反悔（取消），申请删除，状态回到 none 或 following
func TestRemoveConnection_CancelPending(t *testing.T) {
	ctx := context.Background()

	env := newTestEnv(userA, userB)
	if err := env.follow.Follow(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}
	if _, err := env.relationship.SendRequest(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}

	if err := env.relationship.RemoveConnection(ctx, userA, userB, true); err != nil {
		t.Fatal(err)
	}

	st, err := env.relationship.Status(ctx, userA, userB)
	if err != nil {
		t.Fatal(err)
	}
	if st.Connection != types.ConnectionNone {
		t.Fatalf("expected none after cancel, got %s", st.Connection)
	}
	if st.Label() != "following" {
		t.Fatalf("keep=true: expected following label, got %s", st.Label())
	}

	// keep=false 时关注边一并删除
	env = newTestEnv(userA, userB)
	if err := env.follow.Follow(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}
	if _, err := env.relationship.SendRequest(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}
	if err := env.relationship.RemoveConnection(ctx, userA, userB, false); err != nil {
		t.Fatal(err)
	}

	st, err = env.relationship.Status(ctx, userA, userB)
	if err != nil {
		t.Fatal(err)
	}
	if st.Label() != "none" {
		t.Fatalf("keep=false: expected none label, got %s", st.Label())
	}
	if env.stats.followers[userB] != 0 {
		t.Fatal("cancelled with keep=false must decrement follower count")
	}
}

// 对方发来的申请走 remove 等同拒绝
func TestRemoveConnection_IncomingPending(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	if _, err := env.relationship.SendRequest(ctx, userB, userA); err != nil {
		t.Fatal(err)
	}
	if err := env.relationship.RemoveConnection(ctx, userA, userB, false); err != nil {
		t.Fatal(err)
	}
	if len(env.requests.pending) != 0 {
		t.Fatal("incoming request must be removed")
	}
}

// 什么关系都没有时按成功返回
func TestRemoveConnection_Noop(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	if err := env.relationship.RemoveConnection(ctx, userA, userB, false); err != nil {
		t.Fatalf("no-op remove must succeed, got %v", err)
	}
	if len(env.cache.events) != 0 {
		t.Fatal("no-op remove must not publish events")
	}
}

// 关注与申请是独立维度：关注中仍可发申请，两个状态并存
func TestStatus_FollowAndPendingCoexist(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	if err := env.follow.Follow(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}
	if _, err := env.relationship.SendRequest(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}

	st, err := env.relationship.Status(ctx, userA, userB)
	if err != nil {
		t.Fatal(err)
	}
	if st.Connection != types.ConnectionPendingSent || !st.IsFollowing {
		t.Fatalf("expected pending_sent + following, got %+v", st)
	}
}

// 任意操作序列下计数不会变成负数
func TestCountersNeverNegative(t *testing.T) {
	env := newTestEnv(userA, userB, userC)
	ctx := context.Background()

	_ = env.follow.Unfollow(ctx, userA, userB)
	_ = env.relationship.RemoveConnection(ctx, userA, userB, false)
	_ = env.relationship.DeclineRequest(ctx, userA, userB)

	mustConnect(t, env, userA, userB)
	_ = env.relationship.RemoveConnection(ctx, userA, userB, false)
	_ = env.relationship.RemoveConnection(ctx, userA, userB, false)
	_ = env.follow.Unfollow(ctx, userA, userB)
	_ = env.follow.Unfollow(ctx, userA, userB)

	for _, id := range []uint64{userA, userB, userC} {
		if env.stats.followers[id] < 0 || env.stats.following[id] < 0 || env.stats.connections[id] < 0 {
			t.Fatalf("negative counter for user %d", id)
		}
	}
}

// mustConnect 建立 A、B 之间的联系（A 申请，B 接受）
func mustConnect(t *testing.T, env *testEnv, a, b uint64) {
	t.Helper()
	ctx := context.Background()
	if _, err := env.relationship.SendRequest(ctx, a, b); err != nil {
		t.Fatal(err)
	}
	if err := env.relationship.AcceptRequest(ctx, b, a); err != nil {
		t.Fatal(err)
	}
}
