package core

// EEPROM is word-addressed non-volatile storage. Index n covers bytes
// 2n and 2n+1.
type EEPROM interface {
	ReadWord(index uint16) (uint16, error)
	WriteWord(index uint16, value uint16) error
}
