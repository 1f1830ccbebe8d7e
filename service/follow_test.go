package service

import (
	"context"
	"errors"
	"testing"
)

func TestFollow(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	if err := env.follow.Follow(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}

	following, err := env.follow.IsFollowing(ctx, userA, userB)
	if err != nil {
		t.Fatal(err)
	}
	if !following {
		t.Fatal("expected A following B")
	}

	if env.stats.followers[userB] != 1 || env.stats.following[userA] != 1 {
		t.Fatalf("expected counters 1/1, got followers=%d following=%d",
			env.stats.followers[userB], env.stats.following[userA])
	}

	// 关注不影响联系轴
	if connected, _ := env.connections.Exists(ctx, userA, userB); connected {
		t.Fatal("follow must not create a connection")
	}
}

// 重复关注是幂等空操作，计数不变
func TestFollow_Idempotent(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	if err := env.follow.Follow(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}
	if err := env.follow.Follow(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}

	if env.stats.followers[userB] != 1 {
		t.Fatalf("duplicate follow double counted: %d", env.stats.followers[userB])
	}
}

func TestFollow_InvalidTarget(t *testing.T) {
	env := newTestEnv(userA)
	ctx := context.Background()

	if err := env.follow.Follow(ctx, userA, userA); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
	if err := env.follow.Follow(ctx, userA, 999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUnfollow(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	if err := env.follow.Follow(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}
	if err := env.follow.Unfollow(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}

	if following, _ := env.follow.IsFollowing(ctx, userA, userB); following {
		t.Fatal("expected A no longer following B")
	}
	if env.stats.followers[userB] != 0 || env.stats.following[userA] != 0 {
		t.Fatal("unfollow must decrement counters")
	}

	// 没关注过时取消关注是幂等空操作
	if err := env.follow.Unfollow(ctx, userA, userB); err != nil {
		t.Fatal(err)
	}
	if env.stats.followers[userB] != 0 {
		t.Fatal("repeated unfollow must not touch counters")
	}
}

// 已建立联系时不能直接取消关注
func TestUnfollow_ConnectedGuard(t *testing.T) {
	env := newTestEnv(userA, userB)
	ctx := context.Background()

	mustConnect(t, env, userA, userB)

	err := env.follow.Unfollow(ctx, userA, userB)
	if !errors.Is(err, ErrCannotUnfollowConnected) {
		t.Fatalf("expected ErrCannotUnfollowConnected, got %v", err)
	}

	// 状态未变
	if following, _ := env.follow.IsFollowing(ctx, userA, userB); !following {
		t.Fatal("guard failure must not change follow state")
	}
	if env.stats.followers[userB] != 1 {
		t.Fatal("guard failure must not change counters")
	}
}
