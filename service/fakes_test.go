package service

import (
	"Linkup/models"
	"Linkup/types"
	"context"
)

// 内存版存储实现，语义跟 dao 层一致：
// 写操作返回"是否真的改了行"，计数有下限 0。

type fakeUserStore struct {
	users map[uint64]bool
}

func (f *fakeUserStore) ExistsById(_ context.Context, userID uint64) (bool, error) {
	return f.users[userID], nil
}

type fakeFollowStore struct {
	edges map[[2]uint64]bool
}

func (f *fakeFollowStore) key(follower, followee uint64) [2]uint64 {
	return [2]uint64{follower, followee}
}

func (f *fakeFollowStore) IsFollowing(_ context.Context, follower, followee uint64) (bool, error) {
	return f.edges[f.key(follower, followee)], nil
}

func (f *fakeFollowStore) CreateEdge(_ context.Context, follower, followee uint64) (bool, error) {
	k := f.key(follower, followee)
	if f.edges[k] {
		return false, nil
	}
	f.edges[k] = true
	return true, nil
}

func (f *fakeFollowStore) DeleteEdge(_ context.Context, follower, followee uint64) (bool, error) {
	k := f.key(follower, followee)
	if !f.edges[k] {
		return false, nil
	}
	delete(f.edges, k)
	return true, nil
}

func (f *fakeFollowStore) GetFollowingList(_ context.Context, _ uint64, _, _ int) ([]*models.FollowingQueryResult, int64, error) {
	return nil, 0, nil
}

type fakeConnectionStore struct {
	pairs map[[2]uint64]bool
}

func (f *fakeConnectionStore) key(a, b uint64) [2]uint64 {
	na, nb := models.NormalizePair(a, b)
	return [2]uint64{na, nb}
}

func (f *fakeConnectionStore) Exists(_ context.Context, a, b uint64) (bool, error) {
	return f.pairs[f.key(a, b)], nil
}

func (f *fakeConnectionStore) CreateIfAbsent(_ context.Context, a, b uint64) (bool, error) {
	k := f.key(a, b)
	if f.pairs[k] {
		return false, nil
	}
	f.pairs[k] = true
	return true, nil
}

func (f *fakeConnectionStore) Delete(_ context.Context, a, b uint64) (bool, error) {
	k := f.key(a, b)
	if !f.pairs[k] {
		return false, nil
	}
	delete(f.pairs, k)
	return true, nil
}

func (f *fakeConnectionStore) ListForUser(_ context.Context, _ uint64, _, _ int) ([]*models.FollowingQueryResult, int64, error) {
	return nil, 0, nil
}

type fakeRequestStore struct {
	pending map[[2]uint64]bool
}

func (f *fakeRequestStore) key(sender, receiver uint64) [2]uint64 {
	return [2]uint64{sender, receiver}
}

func (f *fakeRequestStore) HasPending(_ context.Context, sender, receiver uint64) (bool, error) {
	return f.pending[f.key(sender, receiver)], nil
}

func (f *fakeRequestStore) CreateIfAbsent(_ context.Context, sender, receiver uint64) (bool, error) {
	k := f.key(sender, receiver)
	if f.pending[k] {
		return false, nil
	}
	f.pending[k] = true
	return true, nil
}

func (f *fakeRequestStore) DeletePending(_ context.Context, sender, receiver uint64) (bool, error) {
	k := f.key(sender, receiver)
	if !f.pending[k] {
		return false, nil
	}
	delete(f.pending, k)
	return true, nil
}

func (f *fakeRequestStore) ListIncoming(_ context.Context, _ uint64, _, _ int) ([]*models.FollowingQueryResult, int64, error) {
	return nil, 0, nil
}

type fakeStatsStore struct {
	followers   map[uint64]int
	following   map[uint64]int
	connections map[uint64]int
}

func incrClamped(m map[uint64]int, userID uint64, delta int) {
	v := m[userID] + delta
	if v < 0 {
		v = 0
	}
	m[userID] = v
}

func (f *fakeStatsStore) GetOrCreate(_ context.Context, userID uint64) (*models.UserStats, error) {
	return f.stats(userID), nil
}

func (f *fakeStatsStore) GetByUserID(_ context.Context, userID uint64) (*models.UserStats, error) {
	return f.stats(userID), nil
}

func (f *fakeStatsStore) stats(userID uint64) *models.UserStats {
	return &models.UserStats{
		UserID:          userID,
		FollowerCount:   uint32(f.followers[userID]),
		FollowingCount:  uint32(f.following[userID]),
		ConnectionCount: uint32(f.connections[userID]),
	}
}

func (f *fakeStatsStore) IncrFollowerCount(_ context.Context, userID uint64, delta int) error {
	incrClamped(f.followers, userID, delta)
	return nil
}

func (f *fakeStatsStore) IncrFollowingCount(_ context.Context, userID uint64, delta int) error {
	incrClamped(f.following, userID, delta)
	return nil
}

func (f *fakeStatsStore) IncrConnectionCount(_ context.Context, userID uint64, delta int) error {
	incrClamped(f.connections, userID, delta)
	return nil
}

type fakeCache struct {
	events        []*types.RelationshipEvent
	invalidations int
}

func (f *fakeCache) GetStatus(_ context.Context, _, _ uint64) (*types.RelationshipStatus, bool) {
	return nil, false
}

func (f *fakeCache) SetStatus(_ context.Context, _, _ uint64, _ *types.RelationshipStatus) {}

func (f *fakeCache) InvalidatePair(_ context.Context, _, _ uint64) {
	f.invalidations++
}

func (f *fakeCache) PublishEvent(_ context.Context, evt *types.RelationshipEvent) {
	f.events = append(f.events, evt)
}

type testEnv struct {
	users        *fakeUserStore
	follows      *fakeFollowStore
	connections  *fakeConnectionStore
	requests     *fakeRequestStore
	stats        *fakeStatsStore
	cache        *fakeCache
	relationship *RelationshipService
	follow       *FollowService
}

func newTestEnv(userIDs ...uint64) *testEnv {
	env := &testEnv{
		users:       &fakeUserStore{users: map[uint64]bool{}},
		follows:     &fakeFollowStore{edges: map[[2]uint64]bool{}},
		connections: &fakeConnectionStore{pairs: map[[2]uint64]bool{}},
		requests:    &fakeRequestStore{pending: map[[2]uint64]bool{}},
		stats: &fakeStatsStore{
			followers:   map[uint64]int{},
			following:   map[uint64]int{},
			connections: map[uint64]int{},
		},
		cache: &fakeCache{},
	}
	for _, id := range userIDs {
		env.users.users[id] = true
	}

	env.relationship = &RelationshipService{
		RequestDAO:    env.requests,
		ConnectionDAO: env.connections,
		FollowDAO:     env.follows,
		StatsDAO:      env.stats,
		UserDAO:       env.users,
		Cache:         env.cache,
	}
	env.follow = &FollowService{
		FollowDAO:     env.follows,
		ConnectionDAO: env.connections,
		StatsDAO:      env.stats,
		UserDAO:       env.users,
		Cache:         env.cache,
	}
	return env
}
