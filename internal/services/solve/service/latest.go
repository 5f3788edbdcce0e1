package service

import (
	"sync"

	"mathgate/internal/services/solve/domain"
)

// latestTable is the per-session last-writer-wins slot. Sequence numbers are
// handed out at request entry; a response may only become "latest" if no
// higher sequence has been published, so a slow stale response can never
// overwrite a newer one
type latestTable struct {
	mu   sync.Mutex
	next map[string]int64
	top  map[string]topEntry
}

type topEntry struct {
	seq int64
	res domain.SolveResult
}

func newLatestTable() *latestTable {
	return &latestTable{
		next: map[string]int64{},
		top:  map[string]topEntry{},
	}
}

// Next hands out the next sequence number for a session
func (t *latestTable) Next(session string) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next[session]++
	return t.next[session]
}

// Publish offers a completed result; reports whether it became latest
func (t *latestTable) Publish(session string, res domain.SolveResult) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cur, ok := t.top[session]; ok && cur.seq >= res.Seq {
		return false
	}
	t.top[session] = topEntry{seq: res.Seq, res: res}
	return true
}

// Get returns the latest published result for a session
func (t *latestTable) Get(session string) (domain.SolveResult, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.top[session]
	return e.res, ok
}
