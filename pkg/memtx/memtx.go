package memtx

import (
	"context"
	"sync"
)

// Manager сериализует операции над in-memory хранилищем глобальным мьютексом.
// Заменяет SQL-транзакции, когда сервис работает без базы данных:
// паттерн check-then-act при бронировании выполняется целиком под блокировкой,
// что закрывает гонку двойного бронирования одного слота.
type Manager struct {
	mu sync.Mutex
}

// NewManager создает менеджер сериализации для in-memory режима
func NewManager() *Manager {
	return &Manager{}
}

// Do выполняет fn под блокировкой
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.DoSerializable(ctx, fn)
}

// DoSerializable выполняет fn под блокировкой
// Проверяет отмену контекста перед входом в критическую секцию
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx)
}

// DoReadOnly выполняет fn под блокировкой
// Хранилище в памяти не различает режимы чтения и записи
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.DoSerializable(ctx, fn)
}
