package out

import "context"

// Describer — внешний сервис генерации текста.
// Fails soft: любая ошибка или отсутствие конфигурации дает
// строку-заглушку, исключение наружу не поднимается.
type Describer interface {
	Describe(ctx context.Context, origin, destination string) string
}
