package protocol

// Opcode identifies the operation requested by a command line
type Opcode uint8

const (
	OpDefault      Opcode = iota // Unrecognized input: resume tracking
	OpSetRate                    // <digits>
	OpHold                       // h
	OpFastForward                // f+
	OpFastReverse                // f-
	OpStatus                     // s
	OpRequest                    // req
	OpGuideForward               // RA+<ms>
	OpGuideReverse               // RA-<ms>
)

var opcodeNames = [...]string{
	OpDefault:      "default",
	OpSetRate:      "set_rate",
	OpHold:         "hold",
	OpFastForward:  "fast_forward",
	OpFastReverse:  "fast_reverse",
	OpStatus:       "status",
	OpRequest:      "request",
	OpGuideForward: "guide_forward",
	OpGuideReverse: "guide_reverse",
}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return "unknown"
}

// Command is a decoded command line
type Command struct {
	Op       Opcode
	Rate     uint32 // OpSetRate only, µs per step edge
	Duration uint32 // Guide ops only, milliseconds
}

// vocabulary holds the fixed command words. They are matched verbatim.
var vocabulary = map[string]Opcode{
	"h":   OpHold,
	"f+":  OpFastForward,
	"f-":  OpFastReverse,
	"s":   OpStatus,
	"req": OpRequest,
}

// Parse decodes a completed line. It never fails: anything it does not
// recognize becomes OpDefault.
func Parse(line Line) Command {
	b := line.Bytes()

	if rate, ok := parseStrictUint(b); ok && rate != 0 {
		return Command{Op: OpSetRate, Rate: rate}
	}

	if op, ok := vocabulary[string(b)]; ok {
		return Command{Op: op}
	}

	var op Opcode
	switch line.At(GuideSignPos) {
	case '+':
		op = OpGuideForward
	case '-':
		op = OpGuideReverse
	default:
		return Command{Op: OpDefault}
	}

	// Only one axis has a motor
	if string(b[:GuideSignPos]) != GuideAxis {
		return Command{Op: OpDefault}
	}

	return Command{Op: op, Duration: parseLeadingUint(b[GuideDurationPos:])}
}
