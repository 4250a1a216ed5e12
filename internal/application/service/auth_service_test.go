package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"plain", "9876543210", "9876543210", true},
		{"with country code", "+919876543210", "9876543210", true},
		{"with zero prefix", "09876543210", "9876543210", true},
		{"with formatting", "98765 43210", "9876543210", true},
		{"starts below 6", "5876543210", "", false},
		{"too short", "98765", "", false},
		{"letters only", "abcdefghij", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
