package bookings

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
)

// GenerateConfirmationNumber produces the 8-character display code:
// 2 letters, 3 digits, 2 letters, 1 digit. The code is advisory and
// not checked for uniqueness against existing bookings.
func GenerateConfirmationNumber() (string, error) {
	parts := []struct {
		charset string
		count   int
	}{
		{letters, 2},
		{digits, 3},
		{letters, 2},
		{digits, 1},
	}

	out := make([]byte, 0, 8)
	for _, part := range parts {
		for i := 0; i < part.count; i++ {
			idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(part.charset))))
			if err != nil {
				return "", fmt.Errorf("failed to generate confirmation number: %w", err)
			}
			out = append(out, part.charset[idx.Int64()])
		}
	}

	return string(out), nil
}
