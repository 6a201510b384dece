package domain

import (
	"fmt"
	"time"

	"ridemate/internal/shared/utils"
)

// Sender — автор сообщения относительно смотрящего
type Sender string

const (
	SenderSelf        Sender = "self"
	SenderCounterpart Sender = "counterpart"
)

// Message — одно сообщение чата
type Message struct {
	ID     string    `json:"id"`
	Sender Sender    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// Conversation — эфемерный тред сообщений, привязанный к просмотру
// поездки. Живет только пока открыта страница; не персистентен.
type Conversation struct {
	RideID   string    `json:"ride_id"`
	Messages []Message `json:"messages"` // в порядке отправки
}

// NewConversation создает тред с единственным приветствием от водителя
func NewConversation(rideID, driverName string) *Conversation {
	greeting := Message{
		ID:     utils.NewUUID(),
		Sender: SenderCounterpart,
		Text:   fmt.Sprintf("Hi, this is %s! Feel free to ask me anything about the ride.", driverName),
		SentAt: time.Now().UTC(),
	}
	return &Conversation{
		RideID:   rideID,
		Messages: []Message{greeting},
	}
}

// Append добавляет сообщение в конец треда и возвращает его
func (c *Conversation) Append(sender Sender, text string) Message {
	msg := Message{
		ID:     utils.NewUUID(),
		Sender: sender,
		Text:   text,
		SentAt: time.Now().UTC(),
	}
	c.Messages = append(c.Messages, msg)
	return msg
}
