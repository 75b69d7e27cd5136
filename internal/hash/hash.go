package hash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/MohammedIhsaan28/Acquisition/internal/errors"
)

// Hasher performs one-way password hashing with a fixed work factor. The cost
// is configured once at construction and never derived from request input.
type Hasher struct {
	cost int
}

// New creates a Hasher, clamping the cost into bcrypt's supported range.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// Hash produces a salted bcrypt hash of the plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrHashing, err)
	}
	return string(hashed), nil
}

// Compare reports whether plaintext matches the stored hash. A mismatch is
// (false, nil); a malformed or corrupt stored hash is an ErrHashing so callers
// can tell a wrong password apart from bad stored data.
func (h *Hasher) Compare(plaintext, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", apperrors.ErrHashing, err)
}
