package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the SHA-256 digest of the password as lowercase hex.
// Unsalted single-pass digest, kept compatible with the digests already
// stored in the admins table. Not suitable for new credential systems.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
