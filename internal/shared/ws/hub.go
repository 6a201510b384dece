// ============================================================================
// WEBSOCKET HUB — менеджер всех WebSocket соединений
// ============================================================================
//
// Hub управляет живыми соединениями чат-виджета:
// 1. Регистрация новых клиентов (пользователь открыл страницу поездки)
// 2. Отключение клиентов (страница закрыта — сессия чата уничтожается)
// 3. Отправка сообщений конкретному пользователю (по accountID)
// 4. Поддержание соединения активным (ping/pong)
//
// Клиент ДОЛЖЕН аутентифицироваться в течение 5 секунд после подключения:
// первым фреймом отправляется {"token": "<jwt>"}. Без валидного токена
// соединение закрывается.
//
// ============================================================================

package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"ridemate/internal/shared/logger"

	"github.com/gorilla/websocket"
)

const (
	// authTimeout — максимальное время ожидания аутентификации
	authTimeout = 5 * time.Second

	// pingInterval — как часто сервер отправляет ping клиенту
	pingInterval = 30 * time.Second

	// pongWait — максимальное время ожидания pong от клиента
	pongWait = 60 * time.Second

	// maxMessageSize — максимальный размер сообщения (8 KB)
	maxMessageSize = 8192

	// writeWait — таймаут на отправку сообщения
	writeWait = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict origins before exposing the service outside the campus network
		return true
	},
}

// AuthFunc — функция для валидации JWT токена.
// Принимает строку токена, возвращает accountID.
type AuthFunc func(token string) (accountID string, err error)

// MessageHandler вызывается, когда клиент отправляет сообщение серверу.
type MessageHandler func(client *Client, messageType string, data json.RawMessage) error

// DisconnectHandler вызывается после удаления клиента из хаба.
// Чат использует его, чтобы сбросить ephemeral-сессии разговоров.
type DisconnectHandler func(client *Client)

// Client представляет одно WebSocket соединение.
type Client struct {
	ID        string // Уникальный ID соединения
	AccountID string // ID аккаунта (из JWT)
	conn      *websocket.Conn
	send      chan []byte
	hub       *Hub
	log       *logger.Logger
}

// Send сериализует значение и ставит его в очередь на отправку клиенту.
func (c *Client) Send(data interface{}) error {
	msg, err := json.Marshal(data)
	if err != nil {
		return err
	}
	select {
	case c.send <- msg:
		return nil
	default:
		return fmt.Errorf("client %s send buffer full", c.ID)
	}
}

// Hub управляет всеми активными WebSocket соединениями.
// Весь доступ к clients защищен мьютексом.
type Hub struct {
	clients           map[string]*Client
	mu                sync.RWMutex
	register          chan *Client
	unregister        chan *Client
	authFunc          AuthFunc
	messageHandler    MessageHandler
	disconnectHandler DisconnectHandler
	log               *logger.Logger
}

// NewHub создает новый WebSocket Hub.
// После создания установите MessageHandler/DisconnectHandler и запустите
// hub.Run(ctx) в горутине.
func NewHub(authFunc AuthFunc, log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client, 10),
		unregister: make(chan *Client, 10),
		authFunc:   authFunc,
		log:        log,
	}
}

// SetMessageHandler устанавливает обработчик входящих сообщений от клиентов.
func (h *Hub) SetMessageHandler(handler MessageHandler) {
	h.messageHandler = handler
}

// SetDisconnectHandler устанавливает обработчик отключения клиента.
func (h *Hub) SetDisconnectHandler(handler DisconnectHandler) {
	h.disconnectHandler = handler
}

// Run запускает главный цикл хаба
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.log.Info(logger.Entry{Action: "hub_stopped", Message: "websocket hub stopped"})
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.log.Info(logger.Entry{
				Action:    "client_registered",
				Message:   client.ID,
				AccountID: client.AccountID,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			_, known := h.clients[client.ID]
			if known {
				delete(h.clients, client.ID)
				close(client.send)
			}
			h.mu.Unlock()
			if known {
				if h.disconnectHandler != nil {
					h.disconnectHandler(client)
				}
				h.log.Info(logger.Entry{
					Action:  "client_unregistered",
					Message: client.ID,
				})
			}
		}
	}
}

// SendToAccount отправляет сообщение всем соединениям аккаунта
func (h *Hub) SendToAccount(accountID string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		if client.AccountID == accountID {
			select {
			case client.send <- message:
			default:
				h.log.Error(logger.Entry{
					Action:    "send_to_account_failed",
					Message:   "send buffer full",
					AccountID: accountID,
				})
			}
		}
	}
}

// SendToAccountJSON отправляет JSON конкретному аккаунту
func (h *Hub) SendToAccountJSON(accountID string, data interface{}) error {
	msg, err := json.Marshal(data)
	if err != nil {
		return err
	}
	h.SendToAccount(accountID, msg)
	return nil
}

// IsAccountConnected проверяет, подключен ли аккаунт
func (h *Hub) IsAccountConnected(accountID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		if client.AccountID == accountID {
			return true
		}
	}
	return false
}

// ServeWS обрабатывает HTTP запрос на WebSocket соединение
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error(logger.Entry{
			Action:  "ws_upgrade_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		return
	}

	clientID := fmt.Sprintf("ws_%d", time.Now().UnixNano())

	client := &Client{
		ID:   clientID,
		conn: conn,
		send: make(chan []byte, 256),
		hub:  h,
		log:  h.log,
	}

	// Дедлайн для аутентификации
	authDeadline := time.Now().Add(authTimeout)
	_ = conn.SetReadDeadline(authDeadline)

	// Первое сообщение — JWT токен
	var authMsg struct {
		Token string `json:"token"`
	}

	if err := conn.ReadJSON(&authMsg); err != nil {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseProtocolError, "auth timeout"))
		_ = conn.Close()
		h.log.Error(logger.Entry{
			Action:  "ws_auth_failed",
			Message: "no auth message received",
		})
		return
	}

	accountID, err := h.authFunc(authMsg.Token)
	if err != nil {
		_ = conn.WriteJSON(map[string]string{"error": "invalid token"})
		_ = conn.Close()
		h.log.Error(logger.Entry{
			Action:  "ws_auth_invalid_token",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		return
	}

	client.AccountID = accountID

	// Снимаем дедлайн, ставим нормальный pong wait
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	h.register <- client

	// Подтверждение аутентификации
	_ = conn.WriteJSON(map[string]string{"status": "authenticated", "account_id": accountID})

	go client.writePump()
	go client.readPump()
}

// readPump читает сообщения от клиента
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Error(logger.Entry{
					Action:  "ws_read_error",
					Message: c.ID,
					Error:   &logger.ErrObj{Msg: err.Error()},
				})
			}
			break
		}

		var msg struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data,omitempty"`
		}

		if err := json.Unmarshal(message, &msg); err != nil {
			c.log.Error(logger.Entry{
				Action:  "ws_parse_message_error",
				Message: err.Error(),
				Error:   &logger.ErrObj{Msg: err.Error()},
				Additional: map[string]any{
					"client_id": c.ID,
					"raw":       string(message),
				},
			})
			continue
		}

		if c.hub.messageHandler != nil {
			if err := c.hub.messageHandler(c, msg.Type, msg.Data); err != nil {
				c.log.Error(logger.Entry{
					Action:  "ws_handle_message_error",
					Message: err.Error(),
					Error:   &logger.ErrObj{Msg: err.Error()},
					Additional: map[string]any{
						"client_id": c.ID,
						"msg_type":  msg.Type,
					},
				})
			}
		}
	}
}

// writePump отправляет сообщения клиенту
func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub закрыл канал
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
