// internal/infrastructure/store/store_test.go
package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	_, ok, err := s.Read("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Write(KeyCart, []byte(`[{"id":"1"}]`)))

	value, ok, err := s.Read(KeyCart)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"1"}]`, string(value))

	require.NoError(t, s.Remove(KeyCart))
	_, ok, err = s.Read(KeyCart)
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is not an error.
	assert.NoError(t, s.Remove(KeyCart))
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	s, err := NewFileStore(path, testLogger())
	require.NoError(t, err)
	require.NoError(t, s.Write(KeyUser, []byte(`{"name":"A","phone":"1"}`)))

	// Simulated reload: a fresh store over the same file sees the value.
	reopened, err := NewFileStore(path, testLogger())
	require.NoError(t, err)

	value, ok, err := reopened.Read(KeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"A","phone":"1"}`, string(value))
}

func TestFileStoreMalformedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := NewFileStore(path, testLogger())
	require.NoError(t, err)

	_, ok, err := s.Read(KeyUser)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	s, err := NewFileStore(path, testLogger())
	require.NoError(t, err)

	assert.Error(t, s.Write(KeyUser, []byte("not json")))
}

func TestFileStoreRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	s, err := NewFileStore(path, testLogger())
	require.NoError(t, err)
	require.NoError(t, s.Write(KeyUser, []byte(`{}`)))
	require.NoError(t, s.Remove(KeyUser))

	reopened, err := NewFileStore(path, testLogger())
	require.NoError(t, err)
	_, ok, err := reopened.Read(KeyUser)
	require.NoError(t, err)
	assert.False(t, ok)
}
