package service

import (
	"Linkup/dao"
	"Linkup/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(RelationshipService), "*"),
	wire.Bind(new(IRelationshipService), new(*RelationshipService)),

	wire.Bind(new(UserStore), new(*dao.Users)),
	wire.Bind(new(FollowStore), new(*dao.UserFollowDAO)),
	wire.Bind(new(ConnectionStore), new(*dao.ConnectionDAO)),
	wire.Bind(new(RequestStore), new(*dao.ConnectionRequestDAO)),
	wire.Bind(new(StatsStore), new(*dao.UserStatsDAO)),
	wire.Bind(new(RelationshipCache), new(*cache.RelationshipStorage)),
)
