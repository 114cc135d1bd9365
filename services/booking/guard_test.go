package booking

import (
	"context"
	"testing"
	"time"

	"timeback/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisGuard(t *testing.T, ttl time.Duration) (*RedisGuard, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisGuard(client, ttl), mr
}

func TestGuardLifecycle(t *testing.T) {
	redisGuard, _ := newMiniredisGuard(t, time.Minute)
	guards := []struct {
		name  string
		guard InFlightGuard
	}{
		{name: "memory", guard: NewMemoryGuard()},
		{name: "redis", guard: redisGuard},
	}
	for _, tt := range guards {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			g := tt.guard

			token, ok, err := g.Acquire(ctx, "a")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.NotEmpty(t, token)

			_, ok, err = g.Acquire(ctx, "a")
			require.NoError(t, err)
			assert.False(t, ok)

			_, ok, err = g.Acquire(ctx, "b")
			require.NoError(t, err)
			assert.True(t, ok)

			require.NoError(t, g.Release(ctx, "a", "someone-else"))
			_, ok, err = g.Acquire(ctx, "a")
			require.NoError(t, err)
			assert.False(t, ok, "a foreign token must not release the key")

			require.NoError(t, g.Release(ctx, "a", token))
			_, ok, err = g.Acquire(ctx, "a")
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestRedisGuardKeyExpires(t *testing.T) {
	ctx := context.Background()
	g, mr := newMiniredisGuard(t, 30*time.Second)

	_, ok, err := g.Acquire(ctx, "sess-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, mr.Exists(utils.InFlightPrefix+"sess-1"))
	assert.Equal(t, 30*time.Second, mr.TTL(utils.InFlightPrefix+"sess-1"))

	mr.FastForward(31 * time.Second)

	_, ok, err = g.Acquire(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisGuardStaleReleaseKeepsNewHolder(t *testing.T) {
	ctx := context.Background()
	g, mr := newMiniredisGuard(t, 10*time.Second)

	stale, ok, err := g.Acquire(ctx, "sess-1")
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(11 * time.Second)
	current, ok, err := g.Acquire(ctx, "sess-1")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, g.Release(ctx, "sess-1", stale))
	got, err := mr.Get(utils.InFlightPrefix + "sess-1")
	require.NoError(t, err)
	assert.Equal(t, current, got)

	require.NoError(t, g.Release(ctx, "sess-1", current))
	assert.False(t, mr.Exists(utils.InFlightPrefix+"sess-1"))
}

func TestRedisGuardUnavailable(t *testing.T) {
	g, mr := newMiniredisGuard(t, time.Minute)
	mr.Close()

	_, ok, err := g.Acquire(context.Background(), "sess-1")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestSubmitWithRedisGuardRejectsConcurrentSubmit(t *testing.T) {
	g, mr := newMiniredisGuard(t, time.Minute)
	d := &recordingDispatcher{block: make(chan struct{}), entered: make(chan struct{})}
	s := newTestSubmitter(d)
	s.Guard = g

	done := make(chan error, 1)
	go func() { done <- s.Submit(context.Background(), NewFormSession("sess-1", sampleForm())) }()

	select {
	case <-d.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first dispatch never started")
	}

	second := NewFormSession("sess-1", sampleForm())
	assert.ErrorIs(t, s.Submit(context.Background(), second), ErrSubmissionInFlight)
	assert.Equal(t, StateEditing, second.State)

	close(d.block)
	require.NoError(t, <-done)
	assert.False(t, mr.Exists(utils.InFlightPrefix+"sess-1"))
	assert.Len(t, d.Calls(), 2)
}
