package database

import (
	"context"
	"testing"
	"time"

	"studio-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepReapsAbandonedSessions(t *testing.T) {
	store := NewMemorySessionStore(10 * time.Millisecond)
	defer store.Stop()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Save(ctx, models.NewSession(id, nil, time.Now())))
	}

	// entries are reaped without any Get polling them
	assert.Eventually(t, func() bool {
		store.mu.RLock()
		defer store.mu.RUnlock()
		return len(store.entries) == 0
	}, time.Second, 5*time.Millisecond)
}
