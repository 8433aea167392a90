package bytealg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeASCII(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(rand.Uint32() & 0x7f)
	}
	return data
}

func TestValidString(t *testing.T) {
	tests := []struct {
		in  string
		exp bool
	}{
		{"", true},
		{"a", true},
		{"abc", true},
		{"cbaebabacd", true},
		{"Ж", false},
		{"брэд-ЛГТМ", false},
		{"aa\xe2", false},
		{"hellowo\xff", false},
		{"hellowor", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.exp, ValidString(tt.in), "ValidString(%q)", tt.in)
		assert.Equal(t, tt.exp, ValidString([]byte(tt.in)), "ValidString([]byte(%q))", tt.in)

		pt := "0123456789ab" + tt.in
		assert.Equal(t, tt.exp, ValidString(pt), "ValidString(%q)", pt)
	}
}

func TestIndexMask(t *testing.T) {
	for i := 1; i < 200; i++ {
		data := makeASCII(i)
		assert.Equal(t, -1, IndexMask(data, 0x80), "len=%d", i)

		idx := rand.Intn(i)
		data[idx] |= 0x80
		assert.Equal(t, idx, IndexMask(data, 0x80), "len=%d", i)
		assert.Equal(t, idx, IndexMask(string(data), 0x80), "len=%d", i)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("", ""))
	assert.True(t, Equal("issip", "issip"))
	assert.False(t, Equal("issip", "issi"))
	assert.False(t, Equal("issip", "issiq"))
	assert.True(t, Equal([]byte("ll"), []byte("ll")))
	assert.True(t, Equal([]byte{}, nil))
}
