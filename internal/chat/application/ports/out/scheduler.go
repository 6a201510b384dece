package out

import "time"

// CancelFunc отменяет запланированную задачу; идемпотентна
type CancelFunc func()

// Scheduler — явная абстракция отложенных задач вместо ad hoc таймеров:
// production-реализация на time.AfterFunc, тесты подставляют
// детерминированную с ручным запуском.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) CancelFunc
}
