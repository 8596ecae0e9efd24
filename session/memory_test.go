package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelog/models"
)

func TestMemoryStoreSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		store := NewMemoryStore(time.Hour)
		s := New(models.User{ID: "u1", Email: "kim@example.com"}, "tok")

		require.NoError(t, store.Put(ctx, s))

		got, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "u1", got.User.ID)
		assert.Equal(t, "tok", got.AccessToken)
	})

	t.Run("unknown id is a miss, not an error", func(t *testing.T) {
		store := NewMemoryStore(time.Hour)
		got, err := store.Get(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("expired sessions are dropped on read", func(t *testing.T) {
		store := NewMemoryStore(-time.Minute)
		s := New(models.User{ID: "u1"}, "tok")
		require.NoError(t, store.Put(ctx, s))

		got, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store := NewMemoryStore(time.Hour)
		s := New(models.User{ID: "u1"}, "tok")
		require.NoError(t, store.Put(ctx, s))
		require.NoError(t, store.Delete(ctx, s.ID))
		require.NoError(t, store.Delete(ctx, s.ID))

		got, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestMemoryStoreTeamsCache(t *testing.T) {
	t.Run("empty cache reports a miss", func(t *testing.T) {
		store := NewMemoryStore(time.Hour)
		_, ok := store.CachedTeams()
		assert.False(t, ok)
	})

	t.Run("cached list is copied both ways", func(t *testing.T) {
		store := NewMemoryStore(time.Hour)
		teams := []models.Team{{ID: "t1", Name: "Team One"}}
		store.PutTeams(teams)

		teams[0].Name = "mutated"

		got, ok := store.CachedTeams()
		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, "Team One", got[0].Name)

		got[0].Name = "mutated again"
		fresh, _ := store.CachedTeams()
		assert.Equal(t, "Team One", fresh[0].Name)
	})
}
