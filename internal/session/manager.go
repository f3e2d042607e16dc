package session

import (
	"context"
	"fmt"

	"github.com/iudanet/simplechat/internal/models"
	"github.com/iudanet/simplechat/internal/storage"
)

// Manager хранит ссылку на текущего авторизованного пользователя.
// Состояния два: Anonymous (nil) и Authenticated (ссылка на username).
// Ссылка персистится и переживает перезапуск процесса; кеша в памяти нет,
// Current перечитывает слот на каждый вызов.
type Manager struct {
	store storage.Store
}

// NewManager создает менеджер сессии поверх хранилища
func NewManager(store storage.Store) *Manager {
	return &Manager{store: store}
}

// Login устанавливает сессию на пользователя и персистит ее
func (m *Manager) Login(ctx context.Context, user *models.User) error {
	if err := m.store.SetSession(ctx, &models.SessionRef{Username: user.Username}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Logout очищает сессию. Идемпотентен: logout без активной сессии не ошибка
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.SetSession(ctx, nil); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Current возвращает ссылку на текущего пользователя или nil (Anonymous).
// Отсутствующие или поврежденные данные сессии эквивалентны nil
func (m *Manager) Current(ctx context.Context) (*models.SessionRef, error) {
	ref, err := m.store.GetSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return ref, nil
}
