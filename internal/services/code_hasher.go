package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// OTPCodeLength is the number of digits in a login code.
const OTPCodeLength = 6

var ErrEmptyCode = errors.New("code cannot be empty")

// CodeHasher generates numeric login codes and stores them as bcrypt hashes
type CodeHasher struct {
	cost int
}

// NewCodeHasher creates a hasher with the given bcrypt cost, falling back to the library default
// when cost is out of range.
func NewCodeHasher(cost int) CodeHasherInterface {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &CodeHasher{cost: cost}
}

// GenerateCode returns a uniformly random zero-padded decimal code
func (h *CodeHasher) GenerateCode() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < OTPCodeLength; i++ {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	return fmt.Sprintf("%0*d", OTPCodeLength, n.Int64()), nil
}

func (h *CodeHasher) HashCode(code string) (string, error) {
	if code == "" {
		return "", ErrEmptyCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash code: %w", err)
	}

	return string(hash), nil
}

// CompareCode performs a constant-time comparison of code against hash
func (h *CodeHasher) CompareCode(hash, code string) bool {
	if hash == "" || code == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
