package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher salts and peppers passwords with bcrypt. The pepper is a
// process-wide secret keying an HMAC of the password; bcrypt sees only the
// fixed-length HMAC, so neither a long pepper nor a long password runs into
// bcrypt's 72-byte input limit.
type Hasher struct {
	pepper string
	cost   int
}

func NewHasher(pepper string, rounds int) (*Hasher, error) {
	if rounds < bcrypt.MinCost || rounds > bcrypt.MaxCost {
		return nil, fmt.Errorf("salt rounds %d out of range [%d, %d]", rounds, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Hasher{pepper: pepper, cost: rounds}, nil
}

func (h *Hasher) Hash(password string) (string, error) {
	hashbytes, err := bcrypt.GenerateFromPassword(h.peppered(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashbytes), nil
}

func (h *Hasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), h.peppered(password)) == nil
}

// peppered is base64(HMAC-SHA256(pepper, password)), always 44 bytes.
func (h *Hasher) peppered(password string) []byte {
	mac := hmac.New(sha256.New, []byte(h.pepper))
	mac.Write([]byte(password))
	sum := mac.Sum(nil)

	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum)
	return out
}
