package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
)

// fakeCartRepo is an in-memory CartRepo with switchable failures.
type fakeCartRepo struct {
	mu        sync.Mutex
	lines     []domain.CartLine
	failAdd   error
	failList  error
	failClear error
}

func (f *fakeCartRepo) Add(_ context.Context, line domain.CartLine) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAdd != nil {
		return f.failAdd
	}
	f.lines = append(f.lines, line)
	return nil
}

func (f *fakeCartRepo) RemoveByName(_ context.Context, name string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.lines[:0]
	removed := 0
	for _, l := range f.lines {
		if l.Name == name {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	f.lines = kept
	return removed, nil
}

func (f *fakeCartRepo) List(_ context.Context) ([]domain.CartLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList != nil {
		return nil, f.failList
	}
	out := make([]domain.CartLine, len(f.lines))
	copy(out, f.lines)
	return out, nil
}

func (f *fakeCartRepo) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failClear != nil {
		return f.failClear
	}
	f.lines = nil
	return nil
}

func (f *fakeCartRepo) snapshot() []domain.CartLine {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.CartLine, len(f.lines))
	copy(out, f.lines)
	return out
}

// countingSeq issues "#0001", "#0002", ... and tracks how many numbers
// were consumed.
type countingSeq struct {
	n atomic.Int64
}

func (s *countingSeq) Next(_ context.Context) (string, error) {
	return domain.FormatOrderNumber(s.n.Add(1)), nil
}

func (s *countingSeq) consumed() int64 { return s.n.Load() }

// recordingNotifier captures everything it is asked to deliver.
type recordingNotifier struct {
	mu       sync.Mutex
	orders   []domain.Order
	joins    []domain.JoinRequest
	contacts []domain.ContactMessage
}

func (n *recordingNotifier) NotifyOrder(_ context.Context, o domain.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orders = append(n.orders, o)
}

func (n *recordingNotifier) NotifyJoin(_ context.Context, j domain.JoinRequest) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.joins = append(n.joins, j)
}

func (n *recordingNotifier) NotifyContact(_ context.Context, m domain.ContactMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.contacts = append(n.contacts, m)
}

// fakeLeadRepo records saved leads.
type fakeLeadRepo struct {
	mu       sync.Mutex
	joins    []domain.JoinRequest
	contacts []domain.ContactMessage
	fail     error
}

func (f *fakeLeadRepo) SaveJoinRequest(_ context.Context, j domain.JoinRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.joins = append(f.joins, j)
	return nil
}

func (f *fakeLeadRepo) SaveContactMessage(_ context.Context, m domain.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.contacts = append(f.contacts, m)
	return nil
}
