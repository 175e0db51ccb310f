// internal/adapters/repository/secure_store_test.go
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/helpway/helpway-core/internal/domain"
	"github.com/helpway/helpway-core/pkg/vault"
)

type SecureStoreTestSuite struct {
	suite.Suite
	store *SecureStore
	ctx   context.Context
}

func (s *SecureStoreTestSuite) SetupTest() {
	db, err := Open(DriverSQLite, ":memory:")
	require.NoError(s.T(), err)
	db.SetMaxOpenConns(1)
	sealer, err := vault.NewSealer("test-key")
	require.NoError(s.T(), err)
	s.store, err = NewSecureStore(db, DriverSQLite, sealer)
	require.NoError(s.T(), err)
	s.ctx = context.Background()
}

func (s *SecureStoreTestSuite) TearDownTest() {
	if s.store != nil {
		s.store.Close()
	}
}

func (s *SecureStoreTestSuite) TestGetMissingKey() {
	value, err := s.store.Get(s.ctx, "session")
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), value)
}

func (s *SecureStoreTestSuite) TestPutGetOverwrite() {
	require.NoError(s.T(), s.store.Put(s.ctx, "session", []byte("first")))
	require.NoError(s.T(), s.store.Put(s.ctx, "session", []byte("second")))

	value, err := s.store.Get(s.ctx, "session")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "second", string(value))
}

func (s *SecureStoreTestSuite) TestValuesAreEncryptedAtRest() {
	require.NoError(s.T(), s.store.Put(s.ctx, "session", []byte("senha-secreta")))

	var raw string
	err := s.store.db.QueryRow("SELECT value FROM secure_store WHERE key = ?", "session").Scan(&raw)
	require.NoError(s.T(), err)
	assert.NotContains(s.T(), raw, "senha-secreta")
}

func (s *SecureStoreTestSuite) TestDelete() {
	require.NoError(s.T(), s.store.Put(s.ctx, "session", []byte("v")))
	require.NoError(s.T(), s.store.Delete(s.ctx, "session"))
	require.NoError(s.T(), s.store.Delete(s.ctx, "session"), "deleting a missing key is not an error")

	value, err := s.store.Get(s.ctx, "session")
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), value)
}

func (s *SecureStoreTestSuite) TestTamperedValueIsStorageError() {
	_, err := s.store.db.Exec("INSERT INTO secure_store (key, value, updated_at) VALUES (?, ?, ?)", "session", "bm90LXNlYWxlZA==", 0)
	require.NoError(s.T(), err)

	_, err = s.store.Get(s.ctx, "session")
	assert.ErrorIs(s.T(), err, domain.ErrStorage)
}

func (s *SecureStoreTestSuite) TestClosedDatabaseIsStorageError() {
	s.store.Close()
	err := s.store.Put(s.ctx, "session", []byte("v"))
	assert.ErrorIs(s.T(), err, domain.ErrStorage)
	s.store = nil
}

func TestSecureStoreSuite(t *testing.T) {
	suite.Run(t, new(SecureStoreTestSuite))
}

func TestRebind(t *testing.T) {
	pg := &SecureStore{driver: DriverPostgres}
	assert.Equal(t, "SELECT a FROM t WHERE x = $1 AND y = $2", pg.rebind("SELECT a FROM t WHERE x = ? AND y = ?"))

	lite := &SecureStore{driver: DriverSQLite}
	assert.Equal(t, "x = ?", lite.rebind("x = ?"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("mysql", "dsn")
	assert.Error(t, err)
}
