package utils

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func TestBytesToWords(t *testing.T) {
	var bytes [64]uint8
	for i := range bytes {
		bytes[i] = byte(i)
	}

	var words [16]uint32
	BytesToWords(&bytes, &words)

	assert.Equal(t, words[0], uint32(0x00010203))
	assert.Equal(t, words[15], uint32(0x3c3d3e3f))
	for i := range words {
		assert.Equal(t, words[i], binary.BigEndian.Uint32(bytes[4*i:]))
	}
}

func TestWordsToBytes(t *testing.T) {
	for n := 0; n < 1000; n++ {
		var words [8]uint32
		for i := range &words {
			words[i] = pcg.Uint32()
		}

		var bytes [32]uint8
		WordsToBytes(&words, &bytes)

		for i := range words {
			assert.Equal(t, binary.BigEndian.Uint32(bytes[4*i:]), words[i])
		}
	}
}

func TestUnaligned(t *testing.T) {
	buf := make([]byte, 64+3)
	for i := range buf {
		buf[i] = byte(pcg.Uint32())
	}

	for off := 0; off < 4; off++ {
		in := (*[64]uint8)(buf[off:])

		var words [16]uint32
		BytesToWords(in, &words)
		for i := range words {
			assert.Equal(t, words[i], binary.BigEndian.Uint32(in[4*i:]))
		}

		var out [32]uint8
		WordsToBytes((*[8]uint32)(words[:8]), &out)
		assert.Equal(t, out, *(*[32]uint8)(in[:32]))
	}
}

func TestAligned(t *testing.T) {
	var words [2]uint32
	p := unsafe.Pointer(&words[0])

	assert.Equal(t, aligned(p), true)
	assert.Equal(t, aligned(unsafe.Add(p, 1)), false)
	assert.Equal(t, aligned(unsafe.Add(p, 4)), true)
}
