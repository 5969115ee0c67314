package protocol

import "sync/atomic"

// Receiver turns a byte stream into completed lines for the dispatcher.
// OnByte runs in the receiving context and does O(1) work; all parsing
// happens later in the main loop.
type Receiver struct {
	line    LineBuffer
	queue   *LineQueue
	dropped atomic.Uint32
}

// NewReceiver creates a receiver whose handoff queue holds depth lines
func NewReceiver(depth int) *Receiver {
	return &Receiver{queue: NewLineQueue(depth)}
}

// OnByte is called for every incoming byte
func (r *Receiver) OnByte(b byte) {
	line, done := r.line.Feed(b)
	if !done {
		return
	}
	if !r.queue.Push(line) {
		r.dropped.Add(1)
	}
}

// Write feeds every byte of p, so a Receiver can sit behind an io.Writer
func (r *Receiver) Write(p []byte) (int, error) {
	for _, b := range p {
		r.OnByte(b)
	}
	return len(p), nil
}

// Next returns the next completed line, if any
func (r *Receiver) Next() (Line, bool) {
	return r.queue.Pop()
}

// Pending returns the number of completed lines waiting for dispatch
func (r *Receiver) Pending() int {
	return r.queue.Len()
}

// Dropped returns how many completed lines were lost because the queue was full
func (r *Receiver) Dropped() uint32 {
	return r.dropped.Load()
}
