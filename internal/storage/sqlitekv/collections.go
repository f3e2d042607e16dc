package sqlitekv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/simplechat/internal/models"
	"github.com/iudanet/simplechat/internal/storage"
)

// LoadUsers returns the user directory. An absent or malformed blob degrades
// to an empty directory.
func (s *Storage) LoadUsers(ctx context.Context) ([]models.User, error) {
	data, err := s.getBlob(ctx, storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		// Поврежденный blob деградирует до пустой коллекции
		return nil, nil
	}

	return users, nil
}

// SaveUsers persists the full user directory.
func (s *Storage) SaveUsers(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}

	return s.putBlob(ctx, storage.KeyUsers, data)
}

// LoadMessages returns the message log in store order. An absent or malformed
// blob degrades to an empty log.
func (s *Storage) LoadMessages(ctx context.Context) ([]models.Message, error) {
	data, err := s.getBlob(ctx, storage.KeyMessages)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var messages []models.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, nil
	}

	return messages, nil
}

// SaveMessages persists the full message log.
func (s *Storage) SaveMessages(ctx context.Context, messages []models.Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}

	return s.putBlob(ctx, storage.KeyMessages, data)
}

// GetSession returns the persisted session reference. Absent or malformed
// session data means "no session", never an error.
func (s *Storage) GetSession(ctx context.Context) (*models.SessionRef, error) {
	data, err := s.getBlob(ctx, storage.KeySession)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	ref := &models.SessionRef{}
	if err := json.Unmarshal(data, ref); err != nil {
		return nil, nil
	}
	if ref.Username == "" {
		return nil, nil
	}

	return ref, nil
}

// SetSession persists the session reference; nil clears the slot.
func (s *Storage) SetSession(ctx context.Context, ref *models.SessionRef) error {
	if ref == nil {
		return s.deleteBlob(ctx, storage.KeySession)
	}

	data, err := json.Marshal(ref)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return s.putBlob(ctx, storage.KeySession, data)
}
