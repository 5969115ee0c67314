// Package eeprom emulates the platform's EEPROM with a file on disk.
//
// The file holds the raw image followed by a big-endian CRC-16/MODBUS of the
// image, so a truncated or hand-edited file is detected at open.
package eeprom

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sigurn/crc16"
)

// DefaultSize matches the 1 KiB EEPROM of the reference microcontroller
const DefaultSize = 1024

const crcSize = 2

// ErrCorrupt is returned when the image checksum does not match
var ErrCorrupt = errors.New("eeprom image corrupt")

var crcTable = crc16.MakeTable(crc16.CRC16_MODBUS)

// File is a file-backed EEPROM image. Erased cells read 0xFF.
type File struct {
	mu    sync.Mutex
	path  string
	image []byte
}

// Open loads the image at path. A missing file yields an erased image. On
// ErrCorrupt the returned File is erased and still usable.
func Open(path string, size int) (*File, error) {
	if size <= 0 || size%2 != 0 {
		return nil, fmt.Errorf("invalid eeprom size %d", size)
	}

	f := &File{path: path, image: erased(size)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read eeprom image %s: %w", path, err)
	}

	if len(data) != size+crcSize {
		return f, fmt.Errorf("%s: size %d, want %d: %w", path, len(data), size+crcSize, ErrCorrupt)
	}
	image := data[:size]
	if binary.BigEndian.Uint16(data[size:]) != crc16.Checksum(image, crcTable) {
		return f, fmt.Errorf("%s: checksum mismatch: %w", path, ErrCorrupt)
	}

	copy(f.image, image)
	return f, nil
}

func erased(size int) []byte {
	image := make([]byte, size)
	for i := range image {
		image[i] = 0xFF
	}
	return image
}

// ReadWord reads the little-endian word at index
func (f *File) ReadWord(index uint16) (uint16, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	off := int(index) * 2
	if off+2 > len(f.image) {
		return 0, fmt.Errorf("word %d out of range", index)
	}
	return binary.LittleEndian.Uint16(f.image[off:]), nil
}

// WriteWord writes the little-endian word at index and persists the image
func (f *File) WriteWord(index uint16, value uint16) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	off := int(index) * 2
	if off+2 > len(f.image) {
		return fmt.Errorf("word %d out of range", index)
	}
	binary.LittleEndian.PutUint16(f.image[off:], value)
	return f.flush()
}

// Erase resets every cell to 0xFF and persists the image
func (f *File) Erase() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	copy(f.image, erased(len(f.image)))
	return f.flush()
}

// flush writes image and checksum through a temporary file so a crash never
// leaves a half-written image. Caller holds mu.
func (f *File) flush() error {
	data := make([]byte, len(f.image)+crcSize)
	copy(data, f.image)
	binary.BigEndian.PutUint16(data[len(f.image):], crc16.Checksum(f.image, crcTable))

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("create eeprom temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write eeprom image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close eeprom image: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace eeprom image: %w", err)
	}
	return nil
}
