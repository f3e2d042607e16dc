package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/simplechat/internal/crypto"
	"github.com/iudanet/simplechat/internal/models"
	"github.com/iudanet/simplechat/internal/storage"
	"github.com/iudanet/simplechat/internal/validation"
)

// Ошибки каталога пользователей
var (
	// ErrInvalidInput означает пустой или некорректный username/password
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateUsername означает, что username уже занят (без учета регистра)
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrUserNotFound означает, что пользователь не зарегистрирован
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword означает несовпадение хеша пароля
	ErrWrongPassword = errors.New("wrong password")
)

// Service реализует операции над каталогом пользователей.
// Коллекция перечитывается из хранилища на каждый вызов: кеша нет,
// внешние изменения store видны сразу.
type Service struct {
	store storage.Store
}

// NewService создает сервис каталога поверх хранилища
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Register регистрирует нового пользователя.
// Username обрезается по пробелам и сохраняется с исходным регистром;
// уникальность проверяется без учета регистра. При любой ошибке каталог
// остается неизменным.
func (s *Service) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	// Проверяем уникальность без учета регистра
	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			return nil, ErrDuplicateUsername
		}
	}

	user := models.User{
		Username:     username,
		PasswordHash: crypto.HashPassword(password),
		CreatedAt:    time.Now().UTC(),
	}

	users = append(users, user)
	if err := s.store.SaveUsers(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to save users: %w", err)
	}

	return &user, nil
}

// Authenticate проверяет пару username/password.
// Возвращает сохраненную запись при успехе; неуспешная попытка
// не меняет никакого состояния.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	for i := range users {
		if !strings.EqualFold(users[i].Username, username) {
			continue
		}

		if !crypto.VerifyPassword(password, users[i].PasswordHash) {
			return nil, ErrWrongPassword
		}

		user := users[i]
		return &user, nil
	}

	return nil, ErrUserNotFound
}

// List возвращает всех зарегистрированных пользователей в порядке вставки
func (s *Service) List(ctx context.Context) ([]models.User, error) {
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

// Exists проверяет, зарегистрирован ли username (без учета регистра)
func (s *Service) Exists(ctx context.Context, username string) (bool, error) {
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load users: %w", err)
	}

	for i := range users {
		if strings.EqualFold(users[i].Username, strings.TrimSpace(username)) {
			return true, nil
		}
	}

	return false, nil
}
