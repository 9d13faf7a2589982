// Package keygen produces the random recipient keys messages are addressed to.
package keygen

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"
)

const (
	// Alphabet leaves out 0, O, I and l.
	Alphabet  = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	KeyLength = 95
)

var (
	alphabetRunes = []rune(Alphabet)
	keyPattern    = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]+$`)

	ErrInvalidKey = fmt.Errorf("invalid key")
)

// GenerateKey returns a fresh key of KeyLength characters, each drawn
// uniformly with replacement from Alphabet. Not suitable for secrets.
func GenerateKey() string {
	return lo.RandomString(KeyLength, alphabetRunes)
}

func ValidateKey(key string) error {
	if err := validation.Validate(key,
		validation.Required,
		validation.RuneLength(KeyLength, KeyLength),
		validation.Match(keyPattern).Error("must only contain characters from the key alphabet"),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return nil
}
