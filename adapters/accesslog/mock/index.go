package mock

import (
	"context"
	"sync"

	"github.com/rendau/rester/adapters/accesslog"
)

type St struct {
	q   []accesslog.Record
	err error
	mu  sync.Mutex
}

func New() *St {
	return &St{
		q: make([]accesslog.Record, 0),
	}
}

// SetErr makes every following Log call fail with err.
func (m *St) SetErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.err = err
}

func (m *St) Log(ctx context.Context, rec accesslog.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	m.q = append(m.q, rec.Copy())

	return nil
}

func (m *St) PullAll() []accesslog.Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := m.q

	m.q = make([]accesslog.Record, 0)

	return q
}

func (m *St) Clean() {
	_ = m.PullAll()
	m.SetErr(nil)
}
