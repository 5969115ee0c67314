package protocol

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReceiverDeliversLines(t *testing.T) {
	r := NewReceiver(4)

	_, err := io.WriteString(r, "h\rf+\r")
	require.NoError(t, err)
	require.Equal(t, 2, r.Pending())

	line, ok := r.Next()
	require.True(t, ok)
	require.Equal(t, "h", line.String())

	line, ok = r.Next()
	require.True(t, ok)
	require.Equal(t, "f+", line.String())

	_, ok = r.Next()
	require.False(t, ok)
}

func TestReceiverDropsWhenSlotBusy(t *testing.T) {
	r := NewReceiver(1)

	_, _ = io.WriteString(r, "RA+2000\r")
	// Arrives while the guide line has not been consumed yet
	_, _ = io.WriteString(r, "h\r")

	require.Equal(t, uint32(1), r.Dropped())
	line, ok := r.Next()
	require.True(t, ok)
	require.Equal(t, "RA+2000", line.String())

	_, _ = io.WriteString(r, "s\r")
	line, ok = r.Next()
	require.True(t, ok)
	require.Equal(t, "s", line.String())
}

func TestReceiverPartialLineNotDelivered(t *testing.T) {
	r := NewReceiver(1)
	_, _ = io.WriteString(r, "50")
	_, ok := r.Next()
	require.False(t, ok)

	r.OnByte('0')
	r.OnByte(LineTerminator)
	line, ok := r.Next()
	require.True(t, ok)
	require.Equal(t, "500", line.String())
}
