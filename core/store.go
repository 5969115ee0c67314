package core

// Persistent store layout, in 16-bit words
const (
	wordBootCount = 0
	wordRate      = 1
)

// Store keeps the last commanded rate and the boot counter in non-volatile
// memory. There is no wear-leveling. HAL errors are logged and otherwise
// ignored; a failed read yields 0.
type Store struct {
	eeprom    EEPROM
	bootCount uint16
}

// NewStore creates a store on top of an EEPROM
func NewStore(eeprom EEPROM) *Store {
	return &Store{eeprom: eeprom}
}

// ReadRate returns the persisted rate
func (s *Store) ReadRate() uint16 {
	return s.read(wordRate)
}

// WriteRate persists a rate
func (s *Store) WriteRate(us uint16) {
	s.write(wordRate, us)
}

// IncrementBootCount adds one to the persisted boot counter and returns the
// new value.
//
// The read-modify-write is not atomic. It must run exactly once per power-on,
// from Boot, before the pulse timer or the serial reader are started.
func (s *Store) IncrementBootCount() uint16 {
	s.bootCount = s.read(wordBootCount) + 1
	s.write(wordBootCount, s.bootCount)
	return s.bootCount
}

// BootCount returns the boot counter as of this power-on
func (s *Store) BootCount() uint16 {
	return s.bootCount
}

func (s *Store) read(index uint16) uint16 {
	v, err := s.eeprom.ReadWord(index)
	if err != nil {
		DebugPrintln("[STORE] read word " + utoa(uint32(index)) + " failed: " + err.Error())
		return 0
	}
	return v
}

func (s *Store) write(index, value uint16) {
	if err := s.eeprom.WriteWord(index, value); err != nil {
		DebugPrintln("[STORE] write word " + utoa(uint32(index)) + " failed: " + err.Error())
	}
}
