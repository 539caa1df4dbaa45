package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/baharkarakas/qa-backend/internal/metrics"
)

// Hasher hashes passwords with bcrypt at a fixed cost. Every hash carries its
// own salt, so hashing the same plaintext twice yields different strings.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	start := time.Now()
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	metrics.PasswordHashSeconds.Observe(time.Since(start).Seconds())
	return string(b), err
}

// Verify returns nil when plain matches hash.
func (h *Hasher) Verify(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
