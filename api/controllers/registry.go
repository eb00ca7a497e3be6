package controllers

import (
	"sync"
	"time"

	"github.com/bhumika0029/polling-app/logging"
	"github.com/bhumika0029/polling-app/polls"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const feedIDLength = 16

type openFeed struct {
	feed     *polls.Feed
	owner    string
	lastSeen time.Time
}

// FeedRegistry keeps the feeds currently open in this process. Each feed is
// owned by the session that opened it ("" for anonymous viewers).
type FeedRegistry struct {
	mu          sync.Mutex
	feeds       map[string]*openFeed
	idleTimeout time.Duration
	now         func() time.Time
}

func NewFeedRegistry(idleTimeout time.Duration) *FeedRegistry {
	return &FeedRegistry{
		feeds:       make(map[string]*openFeed),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Add stores feed under a fresh id, closing feeds that sat idle too long.
func (r *FeedRegistry) Add(owner string, feed *polls.Feed) (string, error) {
	id, err := gonanoid.New(feedIDLength)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)
	r.feeds[id] = &openFeed{feed: feed, owner: owner, lastSeen: now}
	return id, nil
}

// Get returns the feed with id if owner opened it. Idle feeds are closed
// first, so an expired handle is never served.
func (r *FeedRegistry) Get(owner, id string) (*polls.Feed, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)

	f, ok := r.feeds[id]
	if !ok || f.owner != owner {
		return nil, false
	}
	f.lastSeen = now
	return f.feed, true
}

func (r *FeedRegistry) Remove(owner, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.feeds[id]
	if !ok || f.owner != owner {
		return false
	}
	delete(r.feeds, id)
	f.feed.Close()
	return true
}

// RemoveOwnedBy closes every feed opened by owner and returns how many.
func (r *FeedRegistry) RemoveOwnedBy(owner string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, f := range r.feeds {
		if f.owner == owner {
			delete(r.feeds, id)
			f.feed.Close()
			n++
		}
	}
	return n
}

func (r *FeedRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.feeds)
}

func (r *FeedRegistry) sweepLocked(now time.Time) {
	if r.idleTimeout <= 0 {
		return
	}
	for id, f := range r.feeds {
		if now.Sub(f.lastSeen) > r.idleTimeout {
			delete(r.feeds, id)
			f.feed.Close()
			logging.Log.Infof("FEED: closed idle feed %s", id)
		}
	}
}
