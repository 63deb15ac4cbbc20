package region

import "encoding/binary"

// Magic is the number every automaton image starts with.
const Magic int32 = 2038637673

// HeaderSize is the size of the fixed header block in bytes.
const HeaderSize = 256

// Data record encodings stored in the header's data_type field.
const (
	// DataVariable records carry a 4-byte little-endian length prefix.
	DataVariable int32 = 0

	// DataFixed records all have Header.FixedDataSize bytes.
	DataFixed int32 = 1
)

// Header field offsets within the 256-byte header block.
const (
	offMagic         = 0
	offVersion       = 4
	offChecksum      = 8
	offSize          = 12
	offStart         = 16
	offDataSize      = 20
	offDataType      = 24
	offFixedDataSize = 28
	offHasPHash      = 32
	offSerial        = 36
)

// Header holds the decoded metadata block of an automaton image.
type Header struct {
	Magic         int32
	Version       int32
	Checksum      int32 // Informational, never verified
	Size          int32 // Slot count N of the symbol, state and hash tables
	Start         int32 // Start state id
	DataSize      int32 // Byte length D of the data segment
	DataType      int32 // DataVariable or DataFixed
	FixedDataSize int32 // Record length when DataType == DataFixed

	// HasPerfectHash is true when the image carries the hash table region.
	HasPerfectHash bool

	Serial int32
}

// DecodeHeader decodes the header fields from the first HeaderSize bytes of b.
// The caller must ensure len(b) >= HeaderSize.
func DecodeHeader(b []byte) Header {
	le := binary.LittleEndian
	at := func(off int) int32 {
		return int32(le.Uint32(b[off:]))
	}
	return Header{
		Magic:          at(offMagic),
		Version:        at(offVersion),
		Checksum:       at(offChecksum),
		Size:           at(offSize),
		Start:          at(offStart),
		DataSize:       at(offDataSize),
		DataType:       at(offDataType),
		FixedDataSize:  at(offFixedDataSize),
		HasPerfectHash: at(offHasPHash) == 1,
		Serial:         at(offSerial),
	}
}

// Encode writes the header into a fresh HeaderSize block.
// Unused trailing bytes are zero.
func (h Header) Encode() []byte {
	b := make([]byte, HeaderSize)
	le := binary.LittleEndian
	put := func(off int, v int32) {
		le.PutUint32(b[off:], uint32(v))
	}
	put(offMagic, h.Magic)
	put(offVersion, h.Version)
	put(offChecksum, h.Checksum)
	put(offSize, h.Size)
	put(offStart, h.Start)
	put(offDataSize, h.DataSize)
	put(offDataType, h.DataType)
	put(offFixedDataSize, h.FixedDataSize)
	if h.HasPerfectHash {
		put(offHasPHash, 1)
	}
	put(offSerial, h.Serial)
	return b
}

// imageLen returns the total number of bytes the regions described by h
// occupy, computed in 64 bits so that hostile headers cannot overflow.
func (h Header) imageLen() int64 {
	n := int64(h.Size)
	total := HeaderSize + 5*n + int64(h.DataSize)
	if h.HasPerfectHash {
		total += 4 * n
	}
	return total
}

// validate checks the header against the actual image length.
func (h Header) validate(path string, rawPHash int32, fileLen int64) error {
	if h.Magic != Magic {
		return corrupt(path, "bad magic %d, want %d", h.Magic, Magic)
	}
	if h.Size < 0 {
		return corrupt(path, "negative size %d", h.Size)
	}
	if h.DataSize < 0 {
		return corrupt(path, "negative data size %d", h.DataSize)
	}
	if h.Start < 0 || (h.Size > 0 && h.Start >= h.Size) {
		return corrupt(path, "start state %d outside [0, %d)", h.Start, h.Size)
	}
	if h.DataType != DataVariable && h.DataType != DataFixed {
		return corrupt(path, "unknown data type %d", h.DataType)
	}
	if h.DataType == DataFixed && h.FixedDataSize < 0 {
		return corrupt(path, "negative fixed data size %d", h.FixedDataSize)
	}
	if rawPHash != 0 && rawPHash != 1 {
		return corrupt(path, "perfect hash flag %d is not 0 or 1", rawPHash)
	}
	if need := h.imageLen(); need > fileLen {
		return corrupt(path, "regions need %d bytes, file has %d", need, fileLen)
	}
	return nil
}
