package requests

import (
	"context"
	"sync"
)

// Manager holds the owner's fetched request list and keeps it and the
// aggregate counters in sync across approve/reject calls. Updates are
// optimistic: on API failure the local state is left unchanged.
type Manager struct {
	svc *Service

	mu       sync.Mutex
	requests []RentalRequest
	stats    Stats
}

func NewManager(svc *Service) *Manager {
	return &Manager{svc: svc}
}

// Refresh re-fetches the list and recomputes counters.
func (m *Manager) Refresh(ctx context.Context) error {
	reqs, err := m.svc.List(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = reqs
	m.stats = ComputeStats(reqs)
	return nil
}

// Requests returns a copy of the current list.
func (m *Manager) Requests() []RentalRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]RentalRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// View applies a filter and sort over the current list.
func (m *Manager) View(f Filter, key SortKey, order SortOrder) []RentalRequest {
	return Sort(Apply(m.Requests(), f), key, order)
}

func (m *Manager) Approve(ctx context.Context, id string) error {
	return m.transition(ctx, id, StatusApproved)
}

func (m *Manager) Reject(ctx context.Context, id string) error {
	return m.transition(ctx, id, StatusRejected)
}

func (m *Manager) transition(ctx context.Context, id string, target Status) error {
	m.mu.Lock()
	idx := -1
	for i := range m.requests {
		if m.requests[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.mu.Unlock()
		return ErrRequestNotFound
	}
	if !m.requests[idx].Actionable() {
		m.mu.Unlock()
		return ErrNotPending
	}
	m.mu.Unlock()

	if err := m.svc.UpdateStatus(ctx, id, target); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Re-check: the list may have been refreshed while the call was out.
	for i := range m.requests {
		if m.requests[i].ID != id || !m.requests[i].Actionable() {
			continue
		}
		m.requests[i].Status = target
		m.stats.Pending--
		if target == StatusApproved {
			m.stats.Approved++
		} else {
			m.stats.Rejected++
		}
	}
	return nil
}
