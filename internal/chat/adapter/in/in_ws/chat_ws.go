package in_ws

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	chatout "ridemate/internal/chat/application/ports/out"
	chatusecase "ridemate/internal/chat/application/usecase"
	chatdomain "ridemate/internal/chat/domain"
	ridein "ridemate/internal/ride/application/ports/in"
	"ridemate/internal/shared/config"
	"ridemate/internal/shared/logger"
	"ridemate/internal/shared/ws"
)

// ChatWSHandler связывает WebSocket hub с сессиями чата.
// На каждое соединение — своя Session; разрыв соединения уничтожает ее
// вместе с отложенными автоответами.
type ChatWSHandler struct {
	getRideUC ridein.GetRideUseCase
	scheduler chatout.Scheduler
	minDelay  time.Duration
	maxDelay  time.Duration
	log       *logger.Logger

	mu       sync.Mutex
	sessions map[string]*chatusecase.Session // ключ — ID соединения
}

// NewChatWSHandler создает новый обработчик чата
func NewChatWSHandler(
	getRideUC ridein.GetRideUseCase,
	scheduler chatout.Scheduler,
	cfg config.ChatConfig,
	log *logger.Logger,
) *ChatWSHandler {
	return &ChatWSHandler{
		getRideUC: getRideUC,
		scheduler: scheduler,
		minDelay:  time.Duration(cfg.ReplyMinDelayMS) * time.Millisecond,
		maxDelay:  time.Duration(cfg.ReplyMaxDelayMS) * time.Millisecond,
		log:       log,
		sessions:  make(map[string]*chatusecase.Session),
	}
}

// Bind подключает обработчик к хабу
func (h *ChatWSHandler) Bind(hub *ws.Hub) {
	hub.SetMessageHandler(h.HandleMessage)
	hub.SetDisconnectHandler(h.HandleDisconnect)
}

type openPayload struct {
	RideID string `json:"ride_id"`
}

type messagePayload struct {
	RideID string `json:"ride_id"`
	Text   string `json:"text"`
}

// HandleMessage обрабатывает типизированные сообщения клиента
func (h *ChatWSHandler) HandleMessage(client *ws.Client, messageType string, data json.RawMessage) error {
	switch messageType {
	case "chat_open":
		var p openPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("parse chat_open: %w", err)
		}
		return h.handleOpen(client, p.RideID)

	case "chat_message":
		var p messagePayload
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("parse chat_message: %w", err)
		}
		return h.handleSend(client, p.RideID, p.Text)

	default:
		return fmt.Errorf("unknown message type %q", messageType)
	}
}

// HandleDisconnect уничтожает сессию закрывшегося просмотра
func (h *ChatWSHandler) HandleDisconnect(client *ws.Client) {
	h.mu.Lock()
	session, ok := h.sessions[client.ID]
	delete(h.sessions, client.ID)
	h.mu.Unlock()

	if ok {
		session.Close()
		h.log.Info(logger.Entry{
			Action:    "chat_session_discarded",
			Message:   client.ID,
			AccountID: client.AccountID,
		})
	}
}

func (h *ChatWSHandler) sessionFor(client *ws.Client) *chatusecase.Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	session, ok := h.sessions[client.ID]
	if !ok {
		onReply := func(rideID string, msg chatdomain.Message) {
			_ = client.Send(map[string]any{
				"type": "chat_message",
				"data": map[string]any{"ride_id": rideID, "message": msg},
			})
		}
		session = chatusecase.NewSession(h.scheduler, h.minDelay, h.maxDelay, onReply, h.log)
		h.sessions[client.ID] = session
	}
	return session
}

func (h *ChatWSHandler) handleOpen(client *ws.Client, rideID string) error {
	ride, err := h.getRideUC.Execute(context.Background(), rideID)
	if err != nil {
		return client.Send(map[string]any{
			"type": "chat_error",
			"data": map[string]string{"ride_id": rideID, "error": err.Error()},
		})
	}

	conv := h.sessionFor(client).Open(ride)

	return client.Send(map[string]any{
		"type": "chat_history",
		"data": conv,
	})
}

func (h *ChatWSHandler) handleSend(client *ws.Client, rideID, text string) error {
	msg, sent := h.sessionFor(client).Send(rideID, text)
	if !sent {
		// пустой текст или неоткрытый разговор — молча игнорируем
		return nil
	}

	return client.Send(map[string]any{
		"type": "chat_message",
		"data": map[string]any{"ride_id": rideID, "message": msg},
	})
}
