package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-saas-backend/internal/utils"
	"golang.org/x/crypto/pbkdf2"
)

const pbkdf2MaxRounds = 10_000_000

// verifyPBKDF2 checks a passlib-style $pbkdf2-sha256$<rounds>$<salt>$<hash>
// digest. Salt and hash use passlib's adapted base64 ("." instead of "+",
// no padding).
func verifyPBKDF2(password, digest string) bool {
	parts := strings.Split(digest, "$")
	if len(parts) != 5 || parts[1] != "pbkdf2-sha256" {
		return false
	}

	rounds, err := strconv.Atoi(parts[2])
	if err != nil || rounds < 1 || rounds > pbkdf2MaxRounds {
		return false
	}

	salt, err := decodeAB64(parts[3])
	if err != nil {
		return false
	}
	key, err := decodeAB64(parts[4])
	if err != nil || len(key) == 0 {
		return false
	}

	candidate := pbkdf2.Key([]byte(password), salt, rounds, len(key), sha256.New)
	return subtle.ConstantTimeCompare(candidate, key) == 1
}

func decodeAB64(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.ReplaceAll(s, ".", "+"))
}

// verifyHMAC checks a bare hex HMAC-SHA256 digest keyed with the server's
// legacy key. Without a key nothing verifies.
func verifyHMAC(password, digest, key string) bool {
	if key == "" {
		return false
	}

	candidate := utils.HashString(password, key)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(strings.ToLower(digest))) == 1
}

func isHexSHA256(digest string) bool {
	if len(digest) != hex.EncodedLen(sha256.Size) {
		return false
	}
	_, err := hex.DecodeString(digest)
	return err == nil
}
