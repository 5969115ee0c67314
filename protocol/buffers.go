package protocol

import "sync/atomic"

// Line is one completed command line. It is a value type so that handing it
// from the receiver to the dispatcher copies it instead of sharing storage.
type Line struct {
	buf [MaxLineLen]byte
	n   uint8
}

// NewLine builds a Line from s, truncating at MaxLineLen
func NewLine(s string) Line {
	var l Line
	l.n = uint8(copy(l.buf[:], s))
	return l
}

// Bytes returns the line contents without terminator
func (l *Line) Bytes() []byte {
	return l.buf[:l.n]
}

// String returns the line contents as a string
func (l Line) String() string {
	return string(l.buf[:l.n])
}

// Len returns the number of bytes in the line
func (l *Line) Len() int {
	return int(l.n)
}

// At returns the byte at position i, or 0 past the end of the line
// (matching a NUL-terminated read of the original buffer).
func (l *Line) At(i int) byte {
	if i < 0 || i >= int(l.n) {
		return 0
	}
	return l.buf[i]
}

// LineBuffer assembles incoming bytes into lines. It is owned by the
// receiving side only.
type LineBuffer struct {
	buf [MaxLineLen]byte
	pos uint8
}

// Feed appends one byte. It returns the completed line and true when b is a
// terminator or the buffer was already full; in the latter case b itself is
// consumed as the terminator.
func (lb *LineBuffer) Feed(b byte) (Line, bool) {
	if b != LineTerminator && lb.pos < MaxLineLen {
		lb.buf[lb.pos] = b
		lb.pos++
		return Line{}, false
	}

	line := Line{buf: lb.buf, n: lb.pos}
	lb.pos = 0
	return line, true
}

// Pending returns the number of bytes buffered for the current line
func (lb *LineBuffer) Pending() int {
	return int(lb.pos)
}

// Reset discards any partially received line
func (lb *LineBuffer) Reset() {
	lb.pos = 0
}

// LineQueue is a lock-free single-producer/single-consumer ring of lines.
// Push must only be called from the receiving context and Pop only from the
// main loop.
type LineQueue struct {
	slots []Line
	head  atomic.Uint32 // Next slot to read (consumer owned)
	tail  atomic.Uint32 // Next slot to write (producer owned)
}

// NewLineQueue creates a queue holding up to capacity lines
func NewLineQueue(capacity int) *LineQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &LineQueue{slots: make([]Line, capacity)}
}

// Push adds a line. It returns false and drops the line when the queue is full.
func (q *LineQueue) Push(l Line) bool {
	tail := q.tail.Load()
	if tail-q.head.Load() >= uint32(len(q.slots)) {
		return false
	}
	q.slots[tail%uint32(len(q.slots))] = l
	q.tail.Store(tail + 1)
	return true
}

// Pop removes the oldest line
func (q *LineQueue) Pop() (Line, bool) {
	head := q.head.Load()
	if head == q.tail.Load() {
		return Line{}, false
	}
	l := q.slots[head%uint32(len(q.slots))]
	q.head.Store(head + 1)
	return l, true
}

// Len returns the number of queued lines
func (q *LineQueue) Len() int {
	return int(q.tail.Load() - q.head.Load())
}

// Cap returns the queue capacity
func (q *LineQueue) Cap() int {
	return len(q.slots)
}
