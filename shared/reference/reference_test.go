package reference_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lux/shared/reference"
)

func TestGenerate_Format(t *testing.T) {
	ref := reference.Generate()

	assert.True(t, strings.HasPrefix(ref, "LUX-"))

	parts := strings.Split(ref, "-")
	assert.Len(t, parts, 3)
	assert.Len(t, parts[2], 4)
	assert.Equal(t, strings.ToUpper(ref), ref)
}

func TestGenerate_Uniqueness(t *testing.T) {
	const n = 10000

	seen := make(map[string]struct{}, n)

	for i := 0; i < n; i++ {
		ref := reference.Generate()

		_, dup := seen[ref]
		assert.False(t, dup, "duplicate reference %s", ref)

		seen[ref] = struct{}{}
	}
}
