package usecase

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"ridemate/internal/chat/application/ports/out"
	"ridemate/internal/chat/domain"
	ridedomain "ridemate/internal/ride/domain"
	"ridemate/internal/shared/logger"
)

// Фиксированный автоответ, имитирующий реакцию водителя
const autoReplyText = "Thanks for your message! I'll get back to you shortly."

// ReplyFunc доставляет автоответ обратно смотрящему (например, в WebSocket)
type ReplyFunc func(rideID string, msg domain.Message)

// Session — сессия чата одного просмотра: набор разговоров по поездкам,
// живущий пока открыто соединение. Закрытие соединения отменяет все
// отложенные автоответы и сбрасывает разговоры.
type Session struct {
	scheduler out.Scheduler
	minDelay  time.Duration
	maxDelay  time.Duration
	onReply   ReplyFunc
	log       *logger.Logger

	mu            sync.Mutex
	conversations map[string]*domain.Conversation
	cancels       []out.CancelFunc
	closed        bool
}

// NewSession создает пустую сессию чата
func NewSession(scheduler out.Scheduler, minDelay, maxDelay time.Duration, onReply ReplyFunc, log *logger.Logger) *Session {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &Session{
		scheduler:     scheduler,
		minDelay:      minDelay,
		maxDelay:      maxDelay,
		onReply:       onReply,
		log:           log,
		conversations: make(map[string]*domain.Conversation),
	}
}

// Open возвращает разговор по поездке, создавая его при первом
// обращении с единственным приветствием от водителя. Повторный вызов
// возвращает существующее состояние без изменений.
func (s *Session) Open(ride *ridedomain.Ride) domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[ride.ID]
	if !ok {
		conv = domain.NewConversation(ride.ID, ride.Driver.Name)
		s.conversations[ride.ID] = conv
	}
	return snapshot(conv)
}

// Send добавляет сообщение пользователя и планирует ровно один автоответ
// со случайной задержкой в [minDelay, maxDelay]. Пустой или пробельный
// текст — тихий no-op, не ошибка.
//
// Каждый Send заводит собственный таймер: ответы могут приходить не
// строго один-к-одному с точки зрения порядка, но ответ никогда не
// опережает вызвавшее его сообщение.
func (s *Session) Send(rideID, text string) (domain.Message, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.Message{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[rideID]
	if !ok || s.closed {
		return domain.Message{}, false
	}

	msg := conv.Append(domain.SenderSelf, trimmed)

	cancel := s.scheduler.AfterFunc(s.replyDelay(), func() {
		s.deliverReply(rideID)
	})
	s.cancels = append(s.cancels, cancel)

	return msg, true
}

// Close отменяет отложенные автоответы и уничтожает разговоры.
// Повторное закрытие безопасно.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	cancels := s.cancels
	s.cancels = nil
	s.conversations = make(map[string]*domain.Conversation)
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

func (s *Session) replyDelay() time.Duration {
	spread := s.maxDelay - s.minDelay
	if spread <= 0 {
		return s.minDelay
	}
	return s.minDelay + time.Duration(rand.Int63n(int64(spread)+1))
}

func (s *Session) deliverReply(rideID string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	conv, ok := s.conversations[rideID]
	if !ok {
		s.mu.Unlock()
		return
	}
	reply := conv.Append(domain.SenderCounterpart, autoReplyText)
	onReply := s.onReply
	s.mu.Unlock()

	if onReply != nil {
		onReply(rideID, reply)
	}
}

func snapshot(conv *domain.Conversation) domain.Conversation {
	cp := *conv
	cp.Messages = append(cp.Messages[:0:0], conv.Messages...)
	return cp
}
