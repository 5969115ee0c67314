package protocol

import "io"

// Writer provides the blocking output primitives used by the dispatcher.
// It must only be used from the main loop, never from the receive path or
// the pulse interrupt.
type Writer struct {
	w       io.ByteWriter
	scratch [12]byte
	err     error
	written uint32
}

// NewWriter wraps a byte-oriented serial output
func NewWriter(w io.ByteWriter) *Writer {
	return &Writer{w: w}
}

// PutChar sends a single byte
func (w *Writer) PutChar(c byte) {
	if w.err != nil {
		return
	}
	if err := w.w.WriteByte(c); err != nil {
		w.err = err
		return
	}
	w.written++
}

// PutString sends every byte of s
func (w *Writer) PutString(s string) {
	for i := 0; i < len(s); i++ {
		w.PutChar(s[i])
	}
}

// PutInt sends a signed decimal number
func (w *Writer) PutInt(n int32) {
	w.putBytes(appendInt(w.scratch[:0], n))
}

// PutUint sends an unsigned decimal number
func (w *Writer) PutUint(n uint32) {
	w.putBytes(appendUint(w.scratch[:0], n))
}

func (w *Writer) putBytes(b []byte) {
	for _, c := range b {
		w.PutChar(c)
	}
}

// Err returns the first write error seen since the last ResetErr
func (w *Writer) Err() error {
	return w.err
}

// ResetErr clears a latched write error so output can resume
func (w *Writer) ResetErr() {
	w.err = nil
}

// Written returns the number of bytes sent successfully
func (w *Writer) Written() uint32 {
	return w.written
}
