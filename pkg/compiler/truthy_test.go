package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBooleanValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		def      bool
		expected bool
	}{
		{name: "nil uses the default", value: nil, def: true, expected: true},
		{name: "nil uses the default when false", value: nil, def: false, expected: false},
		{name: "native true", value: true, def: false, expected: true},
		{name: "native false ignores the default", value: false, def: true, expected: false},
		{name: "true token", value: "true", def: false, expected: true},
		{name: "t token", value: "t", def: false, expected: true},
		{name: "1 token", value: "1", def: false, expected: true},
		{name: "y token", value: "y", def: false, expected: true},
		{name: "yes token", value: "yes", def: false, expected: true},
		{name: "on token", value: "on", def: false, expected: true},
		{name: "tokens are case-insensitive", value: "TRUE", def: false, expected: true},
		{name: "tokens are trimmed", value: "  yes  ", def: false, expected: true},
		// Text never falls back: "false" and "0" are false even with a
		// true default, and so is any unrecognized word.
		{name: "false text is false, not default", value: "false", def: true, expected: false},
		{name: "0 text is false, not default", value: "0", def: true, expected: false},
		{name: "unrecognized text is false", value: "enabled", def: true, expected: false},
		{name: "empty text is false", value: "", def: true, expected: false},
		{name: "nonzero int", value: 7, def: false, expected: true},
		{name: "zero int", value: 0, def: true, expected: false},
		{name: "nonzero int64", value: int64(-1), def: false, expected: true},
		{name: "zero int64", value: int64(0), def: true, expected: false},
		{name: "nonzero float", value: 0.5, def: false, expected: true},
		{name: "zero float", value: 0.0, def: true, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, booleanValue(tt.value, tt.def))
		})
	}
}
