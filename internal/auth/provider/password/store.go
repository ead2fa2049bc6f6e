package password

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/lib/pq"

	"campus-portal/internal/db"
)

// PostgresStore keeps credentials in the credentials table.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, email, hash string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (email, password_hash)
		VALUES ($1, $2)
	`, email, hash)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrAlreadyRegistered
	}
	return err
}

func (s *PostgresStore) Hash(ctx context.Context, email string) (string, error) {
	var hash string
	err := s.db.QueryRowContext(ctx, `
		SELECT password_hash
		FROM credentials
		WHERE email = $1
	`, email).Scan(&hash)

	if err == sql.ErrNoRows {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	return hash, nil
}

// MemoryStore backs the local demo mode and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	hashes map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{hashes: make(map[string]string)}
}

func (s *MemoryStore) Save(_ context.Context, email, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hashes[email]; ok {
		return ErrAlreadyRegistered
	}
	s.hashes[email] = hash
	return nil
}

func (s *MemoryStore) Hash(_ context.Context, email string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hash, ok := s.hashes[email]
	if !ok {
		return "", ErrInvalidCredentials
	}
	return hash, nil
}
