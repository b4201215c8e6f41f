package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumenquest/internal/models"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestStore() (*MemoryStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 1, 13, 10, 0, 0, 0, time.UTC)}
	store := NewMemoryStore()
	store.now = clock.Now
	return store, clock
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore()
	identity := models.Identity{ID: "2", Email: "admin@lumenquest.com", FirstName: "Admin", LastName: "User", Role: models.UserRoleAdmin}

	require.NoError(t, store.Save(ctx, models.Session{ID: "s1", Identity: identity, ExpiresAt: clock.now.Add(time.Hour)}))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, identity, got.Identity)
	assert.Equal(t, clock.now.Add(time.Hour), got.ExpiresAt)
}

func TestMemoryStoreExpires(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore()
	require.NoError(t, store.Save(ctx, models.Session{ID: "s1", ExpiresAt: clock.now.Add(time.Minute)}))
	require.NoError(t, store.Save(ctx, models.Session{ID: "s2", ExpiresAt: clock.now.Add(time.Hour)}))

	clock.now = clock.now.Add(2 * time.Minute)

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = store.Get(ctx, "s2")
	assert.NoError(t, err)
}

func TestMemoryStoreRejectsExpiredSave(t *testing.T) {
	store, clock := newTestStore()
	err := store.Save(context.Background(), models.Session{ID: "s1", ExpiresAt: clock.now})
	assert.Error(t, err)
	assert.Zero(t, store.Len())
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore()
	require.NoError(t, store.Save(ctx, models.Session{ID: "s1", ExpiresAt: clock.now.Add(time.Hour)}))

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "s1"), ErrSessionNotFound)
}

func TestMemoryStoreSweep(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore()
	require.NoError(t, store.Save(ctx, models.Session{ID: "old", ExpiresAt: clock.now.Add(time.Minute)}))
	require.NoError(t, store.Save(ctx, models.Session{ID: "new", ExpiresAt: clock.now.Add(time.Hour)}))

	clock.now = clock.now.Add(10 * time.Minute)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "lumen-user:abc", Key("abc"))
}
