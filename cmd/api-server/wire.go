//go:build wireinject
// +build wireinject

package main

import (
	"Linkup/config"
	"Linkup/dao"
	"Linkup/dao/cache"
	"Linkup/handler"
	"Linkup/pkg/client"
	"Linkup/pkg/database"
	"Linkup/pkg/server"
	"Linkup/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Relationship), "*"),
		handler.NewWebSocket,

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
	)
	return nil
}
