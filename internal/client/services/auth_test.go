package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dkarlsson/priceportal/internal/client/client"
	"github.com/dkarlsson/priceportal/internal/client/models"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:authsvc?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM metadata`)
	require.NoError(t, err)
	return db
}

func insertToken(t *testing.T, db *sql.DB, v []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO metadata(key,value) VALUES('jwt-token',?)`, v)
	require.NoError(t, err)
}

func getToken(t *testing.T, db *sql.DB) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key='jwt-token'`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	require.NoError(t, err)
	return v
}

// ---- fake client ----

type fakeClient struct {
	LoginRet string
	LoginErr error
	CloseErr error

	LastLoginEmail    string
	LastLoginPassword string
	CurrentToken      string
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	return f.LoginRet, nil
}

func (f *fakeClient) Pricelist(ctx context.Context) ([]models.PriceItem, error) { return nil, nil }

func (f *fakeClient) Terms(ctx context.Context, language string) (*models.Terms, error) {
	return nil, nil
}

func (f *fakeClient) Texts(ctx context.Context, language string) ([]models.Text, error) {
	return nil, nil
}

func (f *fakeClient) Ping(ctx context.Context) error { return nil }

func (f *fakeClient) SetToken(token string) { f.CurrentToken = token }

func (f *fakeClient) Close() error { return f.CloseErr }

// ---- tests ----

func TestLogin_PersistsToken(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{LoginRet: "abc.def.ghi"}
	s := NewAuthService(fc, db)

	err := s.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)

	require.Equal(t, []byte("abc.def.ghi"), getToken(t, db))
	require.Equal(t, "abc.def.ghi", fc.CurrentToken)
	require.Equal(t, "user@example.com", fc.LastLoginEmail)
	require.Equal(t, "secret", fc.LastLoginPassword)
}

func TestLogin_ReplacesPreviousToken(t *testing.T) {
	db := setupDB(t)
	insertToken(t, db, []byte("stale"))
	fc := &fakeClient{LoginRet: "fresh"}
	s := NewAuthService(fc, db)

	err := s.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)

	require.Equal(t, []byte("fresh"), getToken(t, db))
}

func TestLogin_FailureLeavesStoreUntouched(t *testing.T) {
	db := setupDB(t)
	insertToken(t, db, []byte("existing"))
	fc := &fakeClient{LoginErr: client.ErrUnauthorized}
	s := NewAuthService(fc, db)

	err := s.Login(context.Background(), "user@example.com", "wrong")
	require.ErrorIs(t, err, client.ErrUnauthorized)

	require.Equal(t, []byte("existing"), getToken(t, db))
	require.Empty(t, fc.CurrentToken)
}

func TestRestore(t *testing.T) {
	db := setupDB(t)
	insertToken(t, db, []byte("stored"))
	fc := &fakeClient{}
	s := NewAuthService(fc, db)

	found, err := s.Restore(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "stored", fc.CurrentToken)
}

func TestRestore_NoStoredToken(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{}
	s := NewAuthService(fc, db)

	found, err := s.Restore(context.Background())
	require.NoError(t, err)
	require.False(t, found)
	require.Empty(t, fc.CurrentToken)
}

func TestLogout(t *testing.T) {
	db := setupDB(t)
	insertToken(t, db, []byte("stored"))
	fc := &fakeClient{CurrentToken: "stored"}
	s := NewAuthService(fc, db)

	require.NoError(t, s.Logout(context.Background()))

	require.Nil(t, getToken(t, db))
	require.Empty(t, fc.CurrentToken)
	require.False(t, s.IsLoggedIn(context.Background()))
}

func TestIsLoggedIn(t *testing.T) {
	db := setupDB(t)
	s := NewAuthService(&fakeClient{}, db)

	require.False(t, s.IsLoggedIn(context.Background()))

	insertToken(t, db, []byte("stored"))
	require.True(t, s.IsLoggedIn(context.Background()))
}

func TestClose(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{CloseErr: errors.New("close failed")}
	s := NewAuthService(fc, db)

	require.Error(t, s.Close(context.Background()))
}
