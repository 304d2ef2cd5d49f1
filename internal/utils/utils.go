package utils

import (
	"encoding/binary"
	"unsafe"

	"github.com/zeebo/sha256/internal/consts"
)

// BytesToWords loads a 64 byte chunk as 16 big endian words.
func BytesToWords(bytes *[64]uint8, words *[16]uint32) {
	if consts.IsBigEndian && aligned(unsafe.Pointer(&bytes[0])) {
		*words = *(*[16]uint32)(unsafe.Pointer(&bytes[0]))
		return
	}

	words[0] = binary.BigEndian.Uint32(bytes[0*4:])
	words[1] = binary.BigEndian.Uint32(bytes[1*4:])
	words[2] = binary.BigEndian.Uint32(bytes[2*4:])
	words[3] = binary.BigEndian.Uint32(bytes[3*4:])
	words[4] = binary.BigEndian.Uint32(bytes[4*4:])
	words[5] = binary.BigEndian.Uint32(bytes[5*4:])
	words[6] = binary.BigEndian.Uint32(bytes[6*4:])
	words[7] = binary.BigEndian.Uint32(bytes[7*4:])
	words[8] = binary.BigEndian.Uint32(bytes[8*4:])
	words[9] = binary.BigEndian.Uint32(bytes[9*4:])
	words[10] = binary.BigEndian.Uint32(bytes[10*4:])
	words[11] = binary.BigEndian.Uint32(bytes[11*4:])
	words[12] = binary.BigEndian.Uint32(bytes[12*4:])
	words[13] = binary.BigEndian.Uint32(bytes[13*4:])
	words[14] = binary.BigEndian.Uint32(bytes[14*4:])
	words[15] = binary.BigEndian.Uint32(bytes[15*4:])
}

// WordsToBytes stores the 8 state words big endian.
func WordsToBytes(words *[8]uint32, bytes *[32]uint8) {
	if consts.IsBigEndian && aligned(unsafe.Pointer(&bytes[0])) {
		*bytes = *(*[32]uint8)(unsafe.Pointer(&words[0]))
		return
	}

	binary.BigEndian.PutUint32(bytes[0*4:], words[0])
	binary.BigEndian.PutUint32(bytes[1*4:], words[1])
	binary.BigEndian.PutUint32(bytes[2*4:], words[2])
	binary.BigEndian.PutUint32(bytes[3*4:], words[3])
	binary.BigEndian.PutUint32(bytes[4*4:], words[4])
	binary.BigEndian.PutUint32(bytes[5*4:], words[5])
	binary.BigEndian.PutUint32(bytes[6*4:], words[6])
	binary.BigEndian.PutUint32(bytes[7*4:], words[7])
}

// aligned reports whether p may be accessed as a uint32. The byte side of
// a conversion can point anywhere into a caller's slice.
func aligned(p unsafe.Pointer) bool {
	return uintptr(p)%unsafe.Alignof(uint32(0)) == 0
}
