package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAdminSeedNeeded(t *testing.T) {
	tests := []struct {
		name      string
		lookupErr error
		want      bool
	}{
		{"admin already exists", nil, false},
		{"admin missing", gorm.ErrRecordNotFound, true},
		{"wrapped not found", fmt.Errorf("seed: %w", gorm.ErrRecordNotFound), true},
		{"connection failure", errors.New("connection refused"), false},
		{"invalid transaction", gorm.ErrInvalidTransaction, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, adminSeedNeeded(tt.lookupErr))
		})
	}
}
