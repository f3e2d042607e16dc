package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

// bucketStore держит все три ключа хранилища в одном bucket
var bucketStore = []byte("simplechat")

// Storage is the BoltDB-backed store implementation.
type Storage struct {
	db *bbolt.DB
}

// New opens (or creates) a BoltDB store at dbPath.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем bucket
	if err := storage.initBucket(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return storage, nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBucket создает bucket хранилища, если он не существует
func (s *Storage) initBucket() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketStore); err != nil {
			return fmt.Errorf("failed to create store bucket: %w", err)
		}
		return nil
	})
}

// getBlob возвращает сохраненный blob по ключу или nil, если его нет
func (s *Storage) getBlob(key string) ([]byte, error) {
	var value []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketStore)
		if bucket == nil {
			return fmt.Errorf("store bucket not found")
		}

		// Данные из Get валидны только внутри транзакции — копируем
		if data := bucket.Get([]byte(key)); data != nil {
			value = make([]byte, len(data))
			copy(value, data)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// putBlob записывает blob по ключу, полностью заменяя предыдущее значение
func (s *Storage) putBlob(key string, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketStore)
		if bucket == nil {
			return fmt.Errorf("store bucket not found")
		}

		if err := bucket.Put([]byte(key), value); err != nil {
			return fmt.Errorf("failed to put %s: %w", key, err)
		}

		return nil
	})
}

// deleteBlob удаляет значение по ключу; отсутствие ключа не ошибка
func (s *Storage) deleteBlob(key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketStore)
		if bucket == nil {
			return fmt.Errorf("store bucket not found")
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}

		return nil
	})
}
