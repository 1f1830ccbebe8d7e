package types

import "testing"

// 联系轴优先于关注轴
func TestRelationshipStatus_Label(t *testing.T) {
	cases := []struct {
		status RelationshipStatus
		want   string
	}{
		{RelationshipStatus{Connection: ConnectionNone}, "none"},
		{RelationshipStatus{Connection: ConnectionNone, IsFollowing: true}, "following"},
		{RelationshipStatus{Connection: ConnectionPendingSent}, "pending_sent"},
		// 关注与申请同时存在时，视图标签是 pending_sent，关注状态保留在独立字段里
		{RelationshipStatus{Connection: ConnectionPendingSent, IsFollowing: true}, "pending_sent"},
		{RelationshipStatus{Connection: ConnectionPendingReceived}, "pending_received"},
		{RelationshipStatus{Connection: ConnectionConnected, IsFollowing: true}, "connected"},
		{RelationshipStatus{Connection: ConnectionNone, IsFollower: true}, "none"},
	}

	for _, c := range cases {
		if got := c.status.Label(); got != c.want {
			t.Fatalf("status %+v: expected %s, got %s", c.status, c.want, got)
		}
	}
}
