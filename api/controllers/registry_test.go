package controllers

import (
	"testing"
	"time"

	"github.com/bhumika0029/polling-app/logging"
	"github.com/bhumika0029/polling-app/polls"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeed(t *testing.T) *polls.Feed {
	t.Helper()
	feed, err := polls.NewFeed(nil, polls.GlobalScope(), polls.FeedOptions{})
	require.NoError(t, err)
	return feed
}

func TestFeedRegistry(t *testing.T) {
	logging.Log = logrus.New()

	t.Run("Happy path - owner gets its feed back", func(t *testing.T) {
		r := NewFeedRegistry(time.Hour)
		feed := newTestFeed(t)

		id, err := r.Add("s1", feed)
		require.NoError(t, err)
		assert.Len(t, id, feedIDLength)

		got, ok := r.Get("s1", id)
		assert.True(t, ok)
		assert.Same(t, feed, got)

		_, ok = r.Get("s2", id)
		assert.False(t, ok, "Another owner should not see the feed")
		assert.False(t, r.Remove("s2", id))
		assert.True(t, r.Remove("s1", id))
		assert.Equal(t, 0, r.Len())
	})

	t.Run("Happy path - remove by owner", func(t *testing.T) {
		r := NewFeedRegistry(0)
		for _, owner := range []string{"s1", "s1", "s2"} {
			_, err := r.Add(owner, newTestFeed(t))
			require.NoError(t, err)
		}

		assert.Equal(t, 2, r.RemoveOwnedBy("s1"))
		assert.Equal(t, 1, r.Len())
	})

	t.Run("Happy path - idle feeds are swept", func(t *testing.T) {
		r := NewFeedRegistry(time.Minute)
		clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		r.now = func() time.Time { return clock }

		idle, err := r.Add("s1", newTestFeed(t))
		require.NoError(t, err)
		busy, err := r.Add("s1", newTestFeed(t))
		require.NoError(t, err)

		clock = clock.Add(50 * time.Second)
		_, ok := r.Get("s1", busy)
		require.True(t, ok)

		clock = clock.Add(30 * time.Second)
		_, err = r.Add("s2", newTestFeed(t))
		require.NoError(t, err)

		_, ok = r.Get("s1", idle)
		assert.False(t, ok, "Idle feed should be closed")
		_, ok = r.Get("s1", busy)
		assert.True(t, ok, "Recently used feed should survive")
		assert.Equal(t, 2, r.Len())
	})

	t.Run("Happy path - lookups sweep without new feeds", func(t *testing.T) {
		r := NewFeedRegistry(time.Minute)
		clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		r.now = func() time.Time { return clock }

		idle, err := r.Add("s1", newTestFeed(t))
		require.NoError(t, err)
		busy, err := r.Add("s2", newTestFeed(t))
		require.NoError(t, err)

		clock = clock.Add(2 * time.Minute)
		_, ok := r.Get("s2", busy)
		assert.False(t, ok, "Feed idle past the timeout should be closed on lookup")
		assert.Equal(t, 0, r.Len())
		_, ok = r.Get("s1", idle)
		assert.False(t, ok)
	})

	t.Run("Happy path - a lookup keeps its own feed alive", func(t *testing.T) {
		r := NewFeedRegistry(time.Minute)
		clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		r.now = func() time.Time { return clock }

		idle, err := r.Add("s1", newTestFeed(t))
		require.NoError(t, err)
		clock = clock.Add(40 * time.Second)
		busy, err := r.Add("s2", newTestFeed(t))
		require.NoError(t, err)

		clock = clock.Add(30 * time.Second)
		_, ok := r.Get("s2", busy)
		assert.True(t, ok)
		assert.Equal(t, 1, r.Len(), "Only the idle feed should be swept")
		_, ok = r.Get("s1", idle)
		assert.False(t, ok)
	})
}
