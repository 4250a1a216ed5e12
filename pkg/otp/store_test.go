package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode()
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestStore_VerifyConsumesCode(t *testing.T) {
	s := NewStore(5*time.Minute, time.Minute)
	defer s.Close()

	s.Put("9876543210", "123456")

	assert.True(t, s.Verify("9876543210", "123456"))

	// Single use: a second attempt with the same code fails
	assert.False(t, s.Verify("9876543210", "123456"))
}

func TestStore_WrongCode(t *testing.T) {
	s := NewStore(5*time.Minute, time.Minute)
	defer s.Close()

	s.Put("9876543210", "123456")

	assert.False(t, s.Verify("9876543210", "654321"))

	// A wrong guess does not consume the stored code
	assert.True(t, s.Verify("9876543210", "123456"))
}

func TestStore_UnknownPhone(t *testing.T) {
	s := NewStore(5*time.Minute, time.Minute)
	defer s.Close()

	assert.False(t, s.Verify("9000000000", "123456"))
}

func TestStore_Expiry(t *testing.T) {
	s := NewStore(10*time.Millisecond, time.Minute)
	defer s.Close()

	s.Put("9876543210", "123456")
	time.Sleep(25 * time.Millisecond)

	assert.False(t, s.Verify("9876543210", "123456"))
}

func TestStore_PutReplacesCode(t *testing.T) {
	s := NewStore(5*time.Minute, time.Minute)
	defer s.Close()

	s.Put("9876543210", "111111")
	s.Put("9876543210", "222222")

	assert.False(t, s.Verify("9876543210", "111111"))
	assert.True(t, s.Verify("9876543210", "222222"))
}
