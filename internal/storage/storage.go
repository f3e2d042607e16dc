package storage

import (
	"context"

	"github.com/iudanet/simplechat/internal/models"
)

// Persistence keys shared by every backend. Values are JSON blobs; the key
// names are fixed for compatibility with pre-existing store files.
const (
	KeyUsers    = "simplechat_users"    // JSON array of User records
	KeyMessages = "simplechat_messages" // JSON array of Message records
	KeySession  = "simplechat_currentUser"
)

// Store defines the persistence surface for the user directory, the message
// log and the current-session slot.
//
// Every Save replaces the whole collection blob: no merge, no partial writes.
// Absent or malformed stored data is never surfaced as an error — Load
// degrades to an empty collection and GetSession to nil ("fail-soft").
// Only genuine backend I/O failures are returned as errors.
type Store interface {
	// LoadUsers returns the user directory in insertion order.
	LoadUsers(ctx context.Context) ([]models.User, error)

	// SaveUsers persists the full user directory, replacing any previous value.
	SaveUsers(ctx context.Context, users []models.User) error

	// LoadMessages returns the message log in store order.
	LoadMessages(ctx context.Context) ([]models.Message, error)

	// SaveMessages persists the full message log, replacing any previous value.
	SaveMessages(ctx context.Context, messages []models.Message) error

	// GetSession returns the persisted session reference, or nil if absent.
	GetSession(ctx context.Context) (*models.SessionRef, error)

	// SetSession persists the session reference; nil clears the slot.
	SetSession(ctx context.Context, ref *models.SessionRef) error

	// Close releases the underlying store.
	Close() error
}
