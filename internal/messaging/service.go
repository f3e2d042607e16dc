package messaging

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/iudanet/simplechat/internal/models"
	"github.com/iudanet/simplechat/internal/storage"
)

// Ошибки отправки сообщений
var (
	// ErrSelfMessage означает попытку отправить сообщение самому себе
	ErrSelfMessage = errors.New("cannot send a message to yourself")
	// ErrEmptyText означает пустой текст после обрезки пробелов
	ErrEmptyText = errors.New("message text is empty")
	// ErrUnknownRecipient означает, что получатель не зарегистрирован
	ErrUnknownRecipient = errors.New("unknown recipient")
)

// Service реализует операции над журналом сообщений.
// Как и каталог, журнал перечитывается из хранилища на каждый вызов.
type Service struct {
	store storage.Store
}

// NewService создает сервис сообщений поверх хранилища
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Send добавляет сообщение от from к to.
// Текст сохраняется как есть (санитизация — задача слоя отображения),
// но пустой после обрезки текст отклоняется. При любой ошибке журнал
// остается неизменным.
func (s *Service) Send(ctx context.Context, from, to, text string) (*models.Message, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)

	if strings.EqualFold(from, to) {
		return nil, ErrSelfMessage
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	// Получатель должен существовать в каталоге на момент отправки
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	found := false
	for i := range users {
		if strings.EqualFold(users[i].Username, to) {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrUnknownRecipient
	}

	msg := models.Message{
		From: from,
		To:   to,
		Text: text,
		Ts:   time.Now().UTC(),
	}

	messages, err := s.store.LoadMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	messages = append(messages, msg)
	if err := s.store.SaveMessages(ctx, messages); err != nil {
		return nil, fmt.Errorf("failed to save messages: %w", err)
	}

	return &msg, nil
}

// Conversation возвращает все сообщения между userA и userB в обоих
// направлениях, отсортированные по времени отправки по возрастанию.
// Сортировка стабильная: при равных ts сохраняется порядок вставки.
// Результат симметричен относительно порядка аргументов.
func (s *Service) Conversation(ctx context.Context, userA, userB string) ([]models.Message, error) {
	userA = strings.TrimSpace(userA)
	userB = strings.TrimSpace(userB)

	messages, err := s.store.LoadMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	var conv []models.Message
	for _, m := range messages {
		direct := strings.EqualFold(m.From, userA) && strings.EqualFold(m.To, userB)
		reverse := strings.EqualFold(m.From, userB) && strings.EqualFold(m.To, userA)
		if direct || reverse {
			conv = append(conv, m)
		}
	}

	sort.SliceStable(conv, func(i, j int) bool {
		return conv[i].Ts.Before(conv[j].Ts)
	})

	return conv, nil
}
