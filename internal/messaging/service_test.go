package messaging

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/simplechat/internal/models"
	"github.com/iudanet/simplechat/internal/storage/boltdb"
)

func createTestService(t *testing.T) (*Service, *boltdb.Storage) {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return NewService(store), store
}

// регистрируем участников напрямую через хранилище
func seedUsers(t *testing.T, store *boltdb.Storage, names ...string) {
	t.Helper()

	users := make([]models.User, 0, len(names))
	for _, name := range names {
		users = append(users, models.User{Username: name, CreatedAt: time.Now().UTC()})
	}
	require.NoError(t, store.SaveUsers(context.Background(), users))
}

func TestService_Send(t *testing.T) {
	ctx := context.Background()
	svc, store := createTestService(t)
	seedUsers(t, store, "alice", "bob")

	msg, err := svc.Send(ctx, "alice", "bob", "hello bob")
	require.NoError(t, err)
	require.NotNil(t, msg)

	assert.Equal(t, "alice", msg.From)
	assert.Equal(t, "bob", msg.To)
	assert.Equal(t, "hello bob", msg.Text)
	assert.False(t, msg.Ts.IsZero())

	messages, err := store.LoadMessages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
}

func TestService_Send_SelfMessage(t *testing.T) {
	ctx := context.Background()
	svc, store := createTestService(t)
	seedUsers(t, store, "alice")

	_, err := svc.Send(ctx, "alice", "alice", "hi")
	assert.ErrorIs(t, err, ErrSelfMessage)

	// Вариант регистра тоже считается самим собой
	_, err = svc.Send(ctx, "alice", "ALICE", "hi")
	assert.ErrorIs(t, err, ErrSelfMessage)

	// Журнал не изменился
	messages, err := store.LoadMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestService_Send_EmptyText(t *testing.T) {
	ctx := context.Background()
	svc, store := createTestService(t)
	seedUsers(t, store, "alice", "bob")

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := svc.Send(ctx, "alice", "bob", text)
		assert.ErrorIs(t, err, ErrEmptyText)
	}

	messages, err := store.LoadMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestService_Send_UnknownRecipient(t *testing.T) {
	ctx := context.Background()
	svc, store := createTestService(t)
	seedUsers(t, store, "alice")

	_, err := svc.Send(ctx, "alice", "ghost", "hi")
	assert.ErrorIs(t, err, ErrUnknownRecipient)

	messages, err := store.LoadMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestService_Send_KeepsTextRaw(t *testing.T) {
	ctx := context.Background()
	svc, store := createTestService(t)
	seedUsers(t, store, "alice", "bob")

	// Текст сохраняется как есть, включая обрамляющие пробелы и разметку
	raw := "  <b>hello</b>  "
	msg, err := svc.Send(ctx, "alice", "bob", raw)
	require.NoError(t, err)
	assert.Equal(t, raw, msg.Text)
}

func TestService_Conversation_OrderAndSymmetry(t *testing.T) {
	ctx := context.Background()
	svc, store := createTestService(t)

	// Сообщения в журнале нарочно не по порядку времени
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	log := []models.Message{
		{From: "alice", To: "bob", Text: "third", Ts: base.Add(2 * time.Minute)},
		{From: "bob", To: "alice", Text: "first", Ts: base},
		{From: "alice", To: "carol", Text: "other pair", Ts: base.Add(time.Minute)},
		{From: "alice", To: "bob", Text: "second", Ts: base.Add(time.Minute)},
	}
	require.NoError(t, store.SaveMessages(ctx, log))

	conv, err := svc.Conversation(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Len(t, conv, 3)

	// Сортировка по ts по возрастанию; чужая пара отфильтрована
	assert.Equal(t, "first", conv[0].Text)
	assert.Equal(t, "second", conv[1].Text)
	assert.Equal(t, "third", conv[2].Text)

	// Симметрия: порядок аргументов не влияет на результат
	reversed, err := svc.Conversation(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, conv, reversed)
}

func TestService_Conversation_StableTieBreak(t *testing.T) {
	ctx := context.Background()
	svc, store := createTestService(t)

	// Одинаковый ts: стабильная сортировка сохраняет порядок журнала
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	log := []models.Message{
		{From: "alice", To: "bob", Text: "one", Ts: ts},
		{From: "bob", To: "alice", Text: "two", Ts: ts},
		{From: "alice", To: "bob", Text: "three", Ts: ts},
	}
	require.NoError(t, store.SaveMessages(ctx, log))

	conv, err := svc.Conversation(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Len(t, conv, 3)
	assert.Equal(t, "one", conv[0].Text)
	assert.Equal(t, "two", conv[1].Text)
	assert.Equal(t, "three", conv[2].Text)
}

func TestService_Conversation_Empty(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestService(t)

	conv, err := svc.Conversation(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Empty(t, conv)
}

func TestService_SendThenConversation(t *testing.T) {
	ctx := context.Background()
	svc, store := createTestService(t)
	seedUsers(t, store, "alice", "bob", "carol")

	_, err := svc.Send(ctx, "alice", "bob", "hey")
	require.NoError(t, err)
	_, err = svc.Send(ctx, "bob", "alice", "hey yourself")
	require.NoError(t, err)
	_, err = svc.Send(ctx, "alice", "carol", "unrelated")
	require.NoError(t, err)

	conv, err := svc.Conversation(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Len(t, conv, 2)
	assert.Equal(t, "hey", conv[0].Text)
	assert.Equal(t, "hey yourself", conv[1].Text)

	// Время отправки не убывает
	assert.False(t, conv[1].Ts.Before(conv[0].Ts))
}
