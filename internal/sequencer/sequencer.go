// Package sequencer hands out the order sequence numbers stamped on every
// placed order and holds the stock arithmetic applied on placement.
package sequencer

//go:generate mockgen -source=sequencer.go -destination=../mock/sequencer_mock.go -package=mock

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrSequencerUnavailable is returned when the backing counter cannot be
// incremented.
var ErrSequencerUnavailable = errors.New("order sequencer unavailable")

// Sequencer yields strictly increasing order sequence numbers.
// Implementations are safe for concurrent use.
type Sequencer interface {
	Next(ctx context.Context) (int64, error)
}

// Memory is a process-local Sequencer. The counter starts at zero and is
// lost on restart.
type Memory struct {
	counter atomic.Int64
}

func NewMemory() *Memory {
	return &Memory{}
}

// Next returns the next value. Concurrent callers never observe the same
// value.
func (m *Memory) Next(_ context.Context) (int64, error) {
	return m.counter.Add(1), nil
}

// DecrementStock returns the stock left after one order: q-1 while stock
// remains, q otherwise.
func DecrementStock(q int) int {
	if q > 0 {
		return q - 1
	}
	return q
}
