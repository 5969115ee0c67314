package protocol

import (
	"strings"
	"testing"
)

func feedString(lb *LineBuffer, s string) []Line {
	var lines []Line
	for i := 0; i < len(s); i++ {
		if line, ok := lb.Feed(s[i]); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestLineBufferTerminator(t *testing.T) {
	var lb LineBuffer

	lines := feedString(&lb, "req\r")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].String() != "req" {
		t.Errorf("Expected line 'req', got '%s'", lines[0].String())
	}
	if lb.Pending() != 0 {
		t.Errorf("Expected empty buffer after terminator, got %d pending", lb.Pending())
	}
}

func TestLineBufferEmptyLine(t *testing.T) {
	var lb LineBuffer

	lines := feedString(&lb, "\r")
	if len(lines) != 1 || lines[0].Len() != 0 {
		t.Fatalf("Expected one empty line, got %v", lines)
	}
}

func TestLineBufferTruncation(t *testing.T) {
	var lb LineBuffer

	// The 11th byte finds the buffer full and is consumed as the terminator
	lines := feedString(&lb, "0123456789XYZ\r")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0].String() != "0123456789" {
		t.Errorf("Expected first line '0123456789', got '%s'", lines[0].String())
	}
	if lines[1].String() != "YZ" {
		t.Errorf("Expected second line 'YZ', got '%s'", lines[1].String())
	}
}

func TestLineBufferHandoffIsCopy(t *testing.T) {
	var lb LineBuffer

	first := feedString(&lb, "500\r")[0]
	feedString(&lb, "999")

	if first.String() != "500" {
		t.Errorf("Completed line changed while next line filled: '%s'", first.String())
	}
}

func TestLineAt(t *testing.T) {
	line := NewLine("RA+")
	if line.At(2) != '+' {
		t.Errorf("Expected '+', got %q", line.At(2))
	}
	if line.At(3) != 0 || line.At(-1) != 0 {
		t.Error("Expected 0 outside the line")
	}

	long := NewLine(strings.Repeat("a", 20))
	if long.Len() != MaxLineLen {
		t.Errorf("Expected NewLine to truncate to %d, got %d", MaxLineLen, long.Len())
	}
}

func TestLineQueue(t *testing.T) {
	q := NewLineQueue(2)

	if _, ok := q.Pop(); ok {
		t.Error("New queue should be empty")
	}

	if !q.Push(NewLine("a")) || !q.Push(NewLine("b")) {
		t.Fatal("Expected two pushes to succeed")
	}
	if q.Push(NewLine("c")) {
		t.Error("Push into a full queue should fail")
	}
	if q.Len() != 2 {
		t.Errorf("Expected 2 queued lines, got %d", q.Len())
	}

	l, ok := q.Pop()
	if !ok || l.String() != "a" {
		t.Errorf("Expected 'a', got '%s'", l.String())
	}

	// Wrap around the ring
	if !q.Push(NewLine("d")) {
		t.Fatal("Push after pop should succeed")
	}
	for _, want := range []string{"b", "d"} {
		l, ok = q.Pop()
		if !ok || l.String() != want {
			t.Errorf("Expected '%s', got '%s'", want, l.String())
		}
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
}

func TestLineQueueMinimumCapacity(t *testing.T) {
	q := NewLineQueue(0)
	if q.Cap() != 1 {
		t.Errorf("Expected capacity 1, got %d", q.Cap())
	}
}
