package bookings

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfirmationNumberFormat(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateConfirmationNumber()
		require.NoError(t, err)
		require.Len(t, code, 8)

		runes := []rune(code)
		assert.True(t, unicode.IsUpper(runes[0]), "position 0 of %q", code)
		assert.True(t, unicode.IsUpper(runes[1]), "position 1 of %q", code)
		assert.True(t, unicode.IsDigit(runes[2]), "position 2 of %q", code)
		assert.True(t, unicode.IsDigit(runes[3]), "position 3 of %q", code)
		assert.True(t, unicode.IsDigit(runes[4]), "position 4 of %q", code)
		assert.True(t, unicode.IsUpper(runes[5]), "position 5 of %q", code)
		assert.True(t, unicode.IsUpper(runes[6]), "position 6 of %q", code)
		assert.True(t, unicode.IsDigit(runes[7]), "position 7 of %q", code)
	}
}

func TestGenerateConfirmationNumberVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateConfirmationNumber()
		require.NoError(t, err)
		seen[code] = true
	}
	// With ~4.6e8 combinations, 50 draws colliding down to a handful
	// would indicate a broken generator.
	assert.Greater(t, len(seen), 45)
}
