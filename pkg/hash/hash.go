package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the HMAC-SHA256 of password under key, URL-safe base64
// without padding. The result is deterministic: there is no per-user salt.
func HashPassword(key []byte, password string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(password))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// CheckPassword reports whether password matches stored. Hashes in bcrypt
// format are checked with bcrypt, everything else as an HMAC digest.
func CheckPassword(key []byte, stored, password string) bool {
	if IsBcrypt(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return hmac.Equal([]byte(stored), []byte(HashPassword(key, password)))
}

func IsBcrypt(stored string) bool {
	for _, p := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(stored, p) {
			return true
		}
	}
	return false
}
