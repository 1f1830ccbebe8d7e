package handler

import (
	"Linkup/config"
	"Linkup/dao/cache"
	"Linkup/pkg/jwt"
	"Linkup/pkg/log"
	"Linkup/types"
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	heartbeatInterval = 10 * time.Second
	heartbeatTimeout  = 35 * time.Second
	writeWait         = 5 * time.Second
	sendBuffer        = 16
)

type wsClient struct {
	cid      string
	userID   uint64
	conn     *websocket.Conn
	send     chan []byte
	done     chan struct{}
	lastPing atomic.Int64
	closed   atomic.Bool
}

func (c *wsClient) close(msg string) {
	if c.closed.CompareAndSwap(false, true) {
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, msg),
			time.Now().Add(writeWait))
		_ = c.conn.Close()
		close(c.done)
	}
}

// wsFrame 推送帧格式，event 区分类型，payload 承载内容
type wsFrame struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

type WebSocket struct {
	conf     *config.Config
	cache    *cache.RelationshipStorage
	upgrader websocket.Upgrader
	clients  cmap.ConcurrentMap[string, *wsClient]
}

func NewWebSocket(conf *config.Config, storage *cache.RelationshipStorage) *WebSocket {
	return &WebSocket{
		conf:  conf,
		cache: storage,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: cmap.New[*wsClient](),
	}
}

func (ws *WebSocket) RegisterRouter(r gin.IRouter) {
	r.GET("/ws", ws.Conn)
}

// Conn 建立 WebSocket 连接。浏览器的 WebSocket API 不支持自定义
// Header，令牌走 query 参数。
func (ws *WebSocket) Conn(c *gin.Context) {
	token := c.Query("token")
	claims, err := jwt.ParseToken([]byte(ws.conf.Jwt.Secret), "access", token)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := ws.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.L.Error("websocket upgrade", zap.Error(err))
		return
	}

	client := &wsClient{
		cid:    uuid.NewString(),
		userID: claims.UserID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
	client.lastPing.Store(time.Now().Unix())
	ws.clients.Set(client.cid, client)

	log.L.Info("websocket connected",
		zap.String("cid", client.cid), zap.Uint64("user_id", client.userID))

	go ws.writeLoop(client)
	go ws.readLoop(client)
}

func (ws *WebSocket) readLoop(client *wsClient) {
	defer ws.drop(client, "read loop exit")

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			return
		}

		switch gjson.GetBytes(data, "event").String() {
		case "ping":
			client.lastPing.Store(time.Now().Unix())
			ws.push(client, &wsFrame{Event: "pong"})
		default:
			// 只做服务端推送，其余上行帧忽略
		}
	}
}

func (ws *WebSocket) writeLoop(client *wsClient) {
	for {
		select {
		case <-client.done:
			return
		case data := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}
}

func (ws *WebSocket) drop(client *wsClient, reason string) {
	ws.clients.Remove(client.cid)
	client.close(reason)
	log.L.Info("websocket closed",
		zap.String("cid", client.cid),
		zap.Uint64("user_id", client.userID),
		zap.String("reason", reason))
}

func (ws *WebSocket) push(client *wsClient, frame *wsFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		return
	}
	select {
	case <-client.done:
	case client.send <- data:
	default:
		// 发送队列堆满说明客户端已经收不动了，直接断开
		ws.drop(client, "send buffer full")
	}
}

// pushToUser 把帧推给某个用户的所有在线连接
func (ws *WebSocket) pushToUser(userID uint64, frame *wsFrame) {
	for item := range ws.clients.IterBuffered() {
		if item.Val.userID == userID {
			ws.push(item.Val, frame)
		}
	}
}

// Loop 订阅关系变更通知并推送给在线的双方，同时周期性
// 清理心跳超时的连接。随 ctx 退出。
func (ws *WebSocket) Loop(ctx context.Context) error {
	sub := ws.cache.Subscribe(ctx)
	defer func() { _ = sub.Close() }()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-sub.Channel():
			if !ok {
				return nil
			}

			var evt types.RelationshipEvent
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				log.L.Warn("bad relationship event", zap.Error(err))
				continue
			}

			frame := &wsFrame{Event: evt.Type, Payload: evt}
			ws.pushToUser(evt.TargetID, frame)
			ws.pushToUser(evt.ActorID, frame)
		case <-ticker.C:
			ws.sweepStale()
		}
	}
}

func (ws *WebSocket) sweepStale() {
	deadline := time.Now().Add(-heartbeatTimeout).Unix()
	for item := range ws.clients.IterBuffered() {
		if item.Val.lastPing.Load() < deadline {
			ws.drop(item.Val, "心跳检测超时")
		}
	}
}

// OnlineCount 当前在线连接数
func (ws *WebSocket) OnlineCount() int {
	return ws.clients.Count()
}
