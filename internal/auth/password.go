package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	hashMemory  = 64 * 1024 // 64 MB
	hashTime    = 3
	hashThreads = 4
	hashKeyLen  = 32
	hashSaltLen = 16
)

// HashPassword derives an argon2id hash from `password` using a
// per-call random salt; two hashes of the same input will differ
func HashPassword(password string) (string, error) {
	salt := make([]byte, hashSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, hashTime, hashMemory, hashThreads, hashKeyLen)
	encoded := fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		hashMemory, hashTime, hashThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

type hashParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

// decodeHash splits an encoded argon2id string back into its parameters,
// salt, and hash
func decodeHash(encoded string) (hashParams, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return hashParams{}, nil, nil, fmt.Errorf("%w: expected 6 segments, got %d", ErrorHashEncoding, len(parts))
	}

	var params hashParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return hashParams{}, nil, nil, fmt.Errorf("%w: failed to parse parameters: %s", ErrorHashEncoding, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return hashParams{}, nil, nil, fmt.Errorf("%w: failed to decode salt: %s", ErrorHashEncoding, err)
	}

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return hashParams{}, nil, nil, fmt.Errorf("%w: failed to decode hash: %s", ErrorHashEncoding, err)
	}

	return params, salt, hash, nil
}

// ValidatePassword recomputes the hash of `password` using the salt and
// parameters embedded in `encoded` and compares in constant time
func ValidatePassword(password, encoded string) bool {
	params, salt, expectedHash, err := decodeHash(encoded)
	if err != nil {
		return false
	}

	hash := argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, uint32(len(expectedHash)))

	return subtle.ConstantTimeCompare(hash, expectedHash) == 1
}
