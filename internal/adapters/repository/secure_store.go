// internal/adapters/repository/secure_store.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/helpway/helpway-core/internal/domain"
	"github.com/helpway/helpway-core/internal/ports"
	"github.com/helpway/helpway-core/pkg/vault"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// SecureStore keeps small encrypted values keyed by name.
type SecureStore struct {
	db     *sql.DB
	driver string
	sealer *vault.Sealer
}

// Open connects to the vault database and checks it is reachable.
func Open(driver, dsn string) (*sql.DB, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func NewSecureStore(db *sql.DB, driver string, sealer *vault.Sealer) (*SecureStore, error) {
	s := &SecureStore{db: db, driver: driver, sealer: sealer}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate secure store: %w", err)
	}
	return s, nil
}

var _ ports.SecureStorePort = (*SecureStore)(nil)

func (s *SecureStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS secure_store (
		key VARCHAR(255) PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at BIGINT NOT NULL
	)`)
	return err
}

// rebind rewrites ? placeholders for drivers that number them.
func (s *SecureStore) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *SecureStore) Get(ctx context.Context, key string) ([]byte, error) {
	var sealed string
	err := s.db.QueryRowContext(ctx, s.rebind("SELECT value FROM secure_store WHERE key = ?"), key).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorage, key, err)
	}
	value, err := s.sealer.Open(sealed, key)
	if err != nil {
		return nil, fmt.Errorf("%w: decrypt %s: %v", domain.ErrStorage, key, err)
	}
	return value, nil
}

func (s *SecureStore) Put(ctx context.Context, key string, value []byte) error {
	sealed, err := s.sealer.Seal(value, key)
	if err != nil {
		return fmt.Errorf("%w: encrypt %s: %v", domain.ErrStorage, key, err)
	}
	query := `INSERT INTO secure_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, s.rebind(query), key, sealed, time.Now().Unix()); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, key, err)
	}
	return nil
}

// Delete is a no-op for missing keys.
func (s *SecureStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.rebind("DELETE FROM secure_store WHERE key = ?"), key); err != nil {
		return fmt.Errorf("%w: delete %s: %v", domain.ErrStorage, key, err)
	}
	return nil
}

func (s *SecureStore) Close() error {
	return s.db.Close()
}
