package database_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"studio-service/catalog"
	"studio-service/database"
	"studio-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing session is nil without error", func(t *testing.T) {
		store := database.NewMemorySessionStore(time.Minute)
		session, err := store.Get(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("round trip", func(t *testing.T) {
		store := database.NewMemorySessionStore(time.Minute)
		session := models.NewSession("tab-1", catalog.SeedCartItems(), time.Now())
		session.LikedPosts["3"] = true

		require.NoError(t, store.Save(ctx, session))

		got, err := store.Get(ctx, "tab-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, session.Cart.Items, got.Cart.Items)
		assert.True(t, got.LikedPosts["3"])
		assert.Equal(t, models.PhaseIdle, got.Booking.Phase)
	})

	t.Run("callers never share a pointer with the store", func(t *testing.T) {
		store := database.NewMemorySessionStore(time.Minute)
		session := models.NewSession("tab-1", catalog.SeedCartItems(), time.Now())
		require.NoError(t, store.Save(ctx, session))

		first, err := store.Get(ctx, "tab-1")
		require.NoError(t, err)
		first.Cart.Items[0].Quantity = 99

		second, err := store.Get(ctx, "tab-1")
		require.NoError(t, err)
		assert.Equal(t, 1, second.Cart.Items[0].Quantity)
	})

	t.Run("entries expire after the ttl", func(t *testing.T) {
		store := database.NewMemorySessionStore(20 * time.Millisecond)
		session := models.NewSession("tab-1", nil, time.Now())
		require.NoError(t, store.Save(ctx, session))

		time.Sleep(40 * time.Millisecond)

		got, err := store.Get(ctx, "tab-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete", func(t *testing.T) {
		store := database.NewMemorySessionStore(time.Minute)
		session := models.NewSession("tab-1", nil, time.Now())
		require.NoError(t, store.Save(ctx, session))

		require.NoError(t, store.Delete(ctx, "tab-1"))
		got, err := store.Get(ctx, "tab-1")
		require.NoError(t, err)
		assert.Nil(t, got)

		// deleting a missing session is fine
		require.NoError(t, store.Delete(ctx, "tab-1"))
	})
}

func TestMemorySessionStoreUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("a missing session reaches fn as nil", func(t *testing.T) {
		store := database.NewMemorySessionStore(time.Minute)
		err := store.Update(ctx, "tab-1", func(session *models.Session) (*models.Session, error) {
			require.Nil(t, session)
			return models.NewSession("tab-1", catalog.SeedCartItems(), time.Now()), nil
		})
		require.NoError(t, err)

		got, err := store.Get(ctx, "tab-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Len(t, got.Cart.Items, 2)
	})

	t.Run("an error aborts without saving", func(t *testing.T) {
		store := database.NewMemorySessionStore(time.Minute)
		require.NoError(t, store.Save(ctx, models.NewSession("tab-1", catalog.SeedCartItems(), time.Now())))

		boom := errors.New("boom")
		err := store.Update(ctx, "tab-1", func(session *models.Session) (*models.Session, error) {
			session.Cart.Items = nil
			return session, boom
		})
		require.ErrorIs(t, err, boom)

		got, err := store.Get(ctx, "tab-1")
		require.NoError(t, err)
		assert.Len(t, got.Cart.Items, 2)
	})

	t.Run("a nil session skips the save", func(t *testing.T) {
		store := database.NewMemorySessionStore(time.Minute)
		err := store.Update(ctx, "tab-1", func(session *models.Session) (*models.Session, error) {
			return nil, nil
		})
		require.NoError(t, err)

		got, err := store.Get(ctx, "tab-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("concurrent updates never lose writes", func(t *testing.T) {
		store := database.NewMemorySessionStore(time.Minute)
		require.NoError(t, store.Save(ctx, models.NewSession("tab-1", nil, time.Now())))

		const workers, iterations = 4, 50
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < iterations; i++ {
					err := store.Update(ctx, "tab-1", func(session *models.Session) (*models.Session, error) {
						session.Cart.Items = append(session.Cart.Items, models.CartItem{ID: "x", Quantity: 1})
						return session, nil
					})
					assert.NoError(t, err)
				}
			}()
		}
		wg.Wait()

		got, err := store.Get(ctx, "tab-1")
		require.NoError(t, err)
		assert.Len(t, got.Cart.Items, workers*iterations)
	})
}
