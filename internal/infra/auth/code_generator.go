package auth

import (
	"crypto/rand"
	"math/big"
	"strings"

	"foodsafe/internal/domain/service"

	"github.com/pkg/errors"
)

type randomCodeGenerator struct{}

// NewCodeGenerator returns a generator of uniformly random numeric codes.
func NewCodeGenerator() service.CodeGenerator {
	return randomCodeGenerator{}
}

// Generate returns length random decimal digits.
func (randomCodeGenerator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", errors.Errorf("invalid code length %d", length)
	}

	var b strings.Builder
	b.Grow(length)
	ten := big.NewInt(10)
	for range length {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random digit")
		}
		b.WriteByte(byte('0' + n.Int64()))
	}

	return b.String(), nil
}
