package clock

import (
	"time"

	"ridemate/internal/chat/application/ports/out"
)

// Scheduler — реализация на time.AfterFunc
type Scheduler struct{}

// NewScheduler создает системный планировщик
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AfterFunc планирует fn через d; возвращаемая функция отменяет таймер
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) out.CancelFunc {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
