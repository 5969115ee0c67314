// Package protocol implements the line-oriented serial command protocol
// spoken by the platform controller.
package protocol

// Version is the firmware version reported by the human-readable status.
const Version = "0.9"

// Protocol constants
const (
	LineTerminator = '\r' // Ends a command line
	MaxLineLen     = 10   // Lines are forcibly terminated at this length

	FieldSeparator = '#'       // Separates numbers in machine responses
	Ack            = "\nOK#\n" // Sent after every dispatched command

	// Guide commands are <axis><+|-><duration>
	GuideAxis        = "RA"
	GuideSignPos     = 2
	GuideDurationPos = 3
)
