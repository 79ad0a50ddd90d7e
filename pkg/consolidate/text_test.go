package consolidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsText(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", []byte{}, true},
		{"ascii", []byte("Hello, this is a text file\nwith multiple lines\n"), true},
		{"utf8", []byte("héllo wörld ✓\n"), true},
		{"nul byte", []byte("abc\x00def"), false},
		{"png header", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}, false},
		{"invalid utf8", []byte{'a', 0xff, 0xfe, 'b'}, false},
		{"truncated rune", []byte("ok \xe2\x9c"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsText(tt.data))
		})
	}
}
