package polls

import (
	"context"
	"fmt"
	"sync"

	"github.com/bhumika0029/polling-app/logging"
)

const (
	DefaultPageSize   = 30
	DefaultMaxChoices = 6
)

// PollSource fetches one page of polls for a scope. token may be empty for
// anonymous viewers.
type PollSource interface {
	FetchPolls(ctx context.Context, token string, scope Scope, page, size int) (*Page, error)
}

type FeedOptions struct {
	PageSize   int
	MaxChoices int
}

// State is a consistent copy of a feed taken under its lock.
type State struct {
	Scope      Scope
	Items      []PollRecord
	Selections []ID
	PageCursor int
	HasMore    bool
	Loading    bool
	Loaded     bool
}

// Feed accumulates pages of polls and the viewer's tentative selections.
// Items and selections are only changed through Feed methods and the Voter.
type Feed struct {
	mu     sync.Mutex
	source PollSource
	scope  Scope
	opts   FeedOptions

	items      []PollRecord
	positions  map[ID]int
	selections *SelectionTable
	pageCursor int
	hasMore    bool
	loaded     bool

	// generation is bumped by every page 0 load; completions started under
	// an older generation are dropped.
	generation uint64
	inFlight   int
	closed     bool
}

func NewFeed(source PollSource, scope Scope, opts FeedOptions) (*Feed, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.MaxChoices <= 0 {
		opts.MaxChoices = DefaultMaxChoices
	}

	return &Feed{
		source:     source,
		scope:      scope,
		opts:       opts,
		positions:  make(map[ID]int),
		selections: NewSelectionTable(),
	}, nil
}

func (f *Feed) Scope() Scope {
	return f.scope
}

// Load fetches page and merges it into the feed. Page 0 replaces the feed,
// later pages append. Fetch failures are logged and leave the feed as it
// was; the return value reports whether the page was applied.
func (f *Feed) Load(ctx context.Context, session Session, page int) bool {
	if page < 0 {
		logging.Log.Warnf("FEED: %s refusing to load negative page %d", f.scope, page)
		return false
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return false
	}
	gen := f.beginLocked(page)
	f.mu.Unlock()

	return f.fetchAndApply(ctx, session, page, gen)
}

// LoadMore loads the page after the cursor. It does nothing while another
// load is running or once the last page has been seen.
func (f *Feed) LoadMore(ctx context.Context, session Session) bool {
	f.mu.Lock()
	if f.closed || f.inFlight > 0 || !f.hasMore {
		f.mu.Unlock()
		return false
	}
	page := f.pageCursor + 1
	gen := f.beginLocked(page)
	f.mu.Unlock()

	return f.fetchAndApply(ctx, session, page, gen)
}

// Refresh drops every record and selection and starts again from page 0.
func (f *Feed) Refresh(ctx context.Context, session Session) bool {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return false
	}
	f.clearLocked()
	gen := f.beginLocked(0)
	f.mu.Unlock()

	return f.fetchAndApply(ctx, session, 0, gen)
}

// Close discards the feed. Loads and votes completing afterwards are ignored.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	f.clearLocked()
	f.inFlight = 0
}

func (f *Feed) beginLocked(page int) uint64 {
	if page == 0 {
		f.generation++
		f.inFlight = 0
	}
	f.inFlight++
	return f.generation
}

func (f *Feed) clearLocked() {
	f.items = nil
	f.positions = make(map[ID]int)
	f.selections.reset()
	f.pageCursor = 0
	f.hasMore = false
}

func (f *Feed) fetchAndApply(ctx context.Context, session Session, page int, gen uint64) bool {
	res, err := f.source.FetchPolls(ctx, session.AccessToken, f.scope, page, f.opts.PageSize)
	if err == nil {
		err = f.validatePage(res)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		logging.Log.Debugf("FEED: %s page %d completed after close, ignoring", f.scope, page)
		return false
	}
	if gen != f.generation {
		logging.Log.Infof("FEED: %s page %d superseded by a newer load, ignoring", f.scope, page)
		return false
	}
	f.inFlight--

	if err != nil {
		logging.Log.Warnf("FEED: %s failed to load page %d: %v", f.scope, page, err)
		return false
	}

	f.applyLocked(page, res)
	logging.Log.Infof("FEED: %s applied page %d (%d polls, %d total, more=%t)", f.scope, res.Page, len(res.Content), len(f.items), f.hasMore)
	return true
}

func (f *Feed) validatePage(res *Page) error {
	if res == nil {
		return fmt.Errorf("%w: empty page response", ErrInvalidRecord)
	}
	for i := range res.Content {
		if err := res.Content[i].Validate(f.opts.MaxChoices); err != nil {
			return err
		}
	}
	return nil
}

func (f *Feed) applyLocked(page int, res *Page) {
	if page == 0 {
		f.items = make([]PollRecord, 0, len(res.Content))
		f.positions = make(map[ID]int, len(res.Content))
		f.selections.reset()
	}

	for _, rec := range res.Content {
		if i, ok := f.positions[rec.ID]; ok {
			// A vote cannot be withdrawn, so an unvoted copy of a voted
			// poll was read before the vote landed.
			if f.items[i].HasVoted() && !rec.HasVoted() {
				continue
			}
			f.items[i] = rec
			continue
		}
		f.positions[rec.ID] = len(f.items)
		f.items = append(f.items, rec)
		f.selections.add(rec.ID)
	}

	f.pageCursor = res.Page
	f.hasMore = !res.Last
	f.loaded = true
}

// Select records choiceID as the tentative choice for the poll at index.
// The choice is not checked against the poll; the server validates votes.
func (f *Feed) Select(index int, choiceID ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrFeedClosed
	}
	if index < 0 || index >= len(f.items) {
		return fmt.Errorf("%w: %d (feed has %d polls)", ErrIndexOutOfRange, index, len(f.items))
	}
	f.selections.set(f.items[index].ID, choiceID)
	return nil
}

// Selection returns the tentative choice at index, empty when none.
func (f *Feed) Selection(index int) (ID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if index < 0 || index >= len(f.items) {
		return "", fmt.Errorf("%w: %d (feed has %d polls)", ErrIndexOutOfRange, index, len(f.items))
	}
	return f.selections.get(f.items[index].ID), nil
}

// pendingVote returns the poll and tentative choice a vote at index would use.
func (f *Feed) pendingVote(index int) (ID, ID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return "", "", ErrFeedClosed
	}
	if index < 0 || index >= len(f.items) {
		return "", "", fmt.Errorf("%w: %d (feed has %d polls)", ErrIndexOutOfRange, index, len(f.items))
	}
	pollID := f.items[index].ID
	choiceID := f.selections.get(pollID)
	if choiceID == "" {
		return pollID, "", ErrNoSelection
	}
	return pollID, choiceID, nil
}

// replace swaps in the authoritative record for its poll. It reports false
// when the poll is no longer in the feed.
func (f *Feed) replace(rec PollRecord) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return false
	}
	i, ok := f.positions[rec.ID]
	if !ok {
		return false
	}
	f.items[i] = rec
	return true
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func (f *Feed) Item(index int) (PollRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if index < 0 || index >= len(f.items) {
		return PollRecord{}, fmt.Errorf("%w: %d (feed has %d polls)", ErrIndexOutOfRange, index, len(f.items))
	}
	return f.items[index], nil
}

func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

func (f *Feed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight > 0
}

// Snapshot copies the feed state. Selections are positional, "" meaning no
// selection, and always have the same length as Items.
func (f *Feed) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]PollRecord, len(f.items))
	copy(items, f.items)
	selections := make([]ID, len(f.items))
	for i, rec := range f.items {
		selections[i] = f.selections.get(rec.ID)
	}

	return State{
		Scope:      f.scope,
		Items:      items,
		Selections: selections,
		PageCursor: f.pageCursor,
		HasMore:    f.hasMore,
		Loading:    f.inFlight > 0,
		Loaded:     f.loaded,
	}
}
