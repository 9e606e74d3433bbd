// internal/domain/session/service_test.go
package session

import (
	"testing"

	"github.com/S-Khan786/Medicine-Mart-App/internal/infrastructure/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestLoginLogout(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st, testLogger())

	assert.False(t, svc.IsAuthenticated())

	require.NoError(t, svc.Login(User{Name: "Asha", Phone: "9876543210"}))
	assert.True(t, svc.IsAuthenticated())

	u, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, "Asha", u.Name)

	svc.Logout()
	assert.False(t, svc.IsAuthenticated())
	_, ok, err := st.Read(store.KeyUser)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginOverwritesExistingUser(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), testLogger())

	require.NoError(t, svc.Login(User{Name: "First", Phone: "1111111111"}))
	require.NoError(t, svc.Login(User{Name: "Second", Phone: "2222222222"}))

	u, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, "Second", u.Name)
	assert.Equal(t, "2222222222", u.Phone)
}

func TestLoginAcceptsAnyUserValue(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st, testLogger())

	// The session does not gate on field shape; a short name and a
	// non-10-digit phone still authenticate and survive a reload.
	require.NoError(t, svc.Login(User{Name: "A", Phone: "1"}))
	assert.True(t, svc.IsAuthenticated())

	reloaded := NewService(st, testLogger())
	assert.True(t, reloaded.IsAuthenticated())

	u, ok := reloaded.Current()
	require.True(t, ok)
	assert.Equal(t, "A", u.Name)
	assert.Equal(t, "1", u.Phone)
}

func TestHydrationAfterReload(t *testing.T) {
	st := store.NewMemoryStore()

	first := NewService(st, testLogger())
	require.NoError(t, first.Login(User{Name: "A", Phone: "1234567890"}))

	// Simulated reload: a new service over the same store.
	reloaded := NewService(st, testLogger())
	assert.True(t, reloaded.IsAuthenticated())

	u, ok := reloaded.Current()
	require.True(t, ok)
	assert.Equal(t, "A", u.Name)
}

func TestHydrationMalformedUserFallsBackToAnonymous(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Write(store.KeyUser, []byte(`"not an object"`)))

	svc := NewService(st, testLogger())
	assert.False(t, svc.IsAuthenticated())
}
