package pipeline

import (
	perrors "github.com/anwit-paul/encryption-conversion/internal/errors"
)

// State identifies what the pipeline is currently doing.
type State int

const (
	// Idle means no operation is running; encode or decode may begin.
	Idle State = iota

	// Encoding means an encode operation is in flight.
	Encoding

	// Decoding means a decode operation is in flight.
	Decoding
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Encoding:
		return "encoding"
	case Decoding:
		return "decoding"
	default:
		return "unknown"
	}
}

// begin transitions Idle → next, rejecting re-entry while an operation is
// already running. The pipeline contract is strictly sequential; the mutex
// only makes misuse fail loudly instead of corrupting state.
func (p *Pipeline) begin(next State) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Idle {
		return perrors.ErrOperationInProgress
	}
	p.state = next
	return nil
}

// end returns the pipeline to Idle.
func (p *Pipeline) end() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = Idle
}

// State reports the current state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}
