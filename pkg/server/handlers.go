package server

import (
	"Linkup/handler"
)

type Handlers struct {
	Auth         *handler.Auth
	User         *handler.User
	Follow       *handler.Follow
	Relationship *handler.Relationship
	WS           *handler.WebSocket
}
