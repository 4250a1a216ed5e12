package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "general-service", Slugify("General Service"))
	assert.Equal(t, "wheel-alignment-balancing", Slugify("Wheel Alignment & Balancing"))
	assert.Equal(t, "full-body-wash-detailing", Slugify("  Full Body Wash & Detailing  "))
	assert.Equal(t, "2w-express-service", Slugify("2W Express Service"))
	assert.Equal(t, "", Slugify("&&&"))
}
