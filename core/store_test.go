package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreRateRoundTrip(t *testing.T) {
	eeprom := newFakeEEPROM()
	s := NewStore(eeprom)

	for _, rate := range []uint16{26, 500, 1000, MaxRate} {
		s.WriteRate(rate)
		require.Equal(t, rate, s.ReadRate())
	}
	require.Equal(t, uint16(MaxRate), eeprom.words[wordRate])
}

func TestStoreBootCounter(t *testing.T) {
	eeprom := newFakeEEPROM()
	eeprom.words[wordRate] = 1234

	// Each NewStore + IncrementBootCount is one simulated power cycle
	for want := uint16(1); want <= 5; want++ {
		s := NewStore(eeprom)
		require.Equal(t, want, s.IncrementBootCount())
		require.Equal(t, want, s.BootCount())
		require.Equal(t, uint16(1234), s.ReadRate())
	}
}

func TestStoreBootCounterWraps(t *testing.T) {
	eeprom := newFakeEEPROM()
	eeprom.words[wordBootCount] = 0xFFFF

	s := NewStore(eeprom)
	require.Equal(t, uint16(0), s.IncrementBootCount())
}

func TestStoreSwallowsErrors(t *testing.T) {
	eeprom := newFakeEEPROM()
	eeprom.failAll = true
	s := NewStore(eeprom)

	require.Equal(t, uint16(0), s.ReadRate())
	s.WriteRate(500)
	require.Equal(t, uint16(1), s.IncrementBootCount())
}
