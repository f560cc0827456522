package utils

import (
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
)

// GenerateEtag generates a random etag which is generated on every write action
func GenerateEtag() (string, error) {
	bytes := make([]byte, 20)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	sha1Hash := sha1.Sum(bytes)

	return hex.EncodeToString(sha1Hash[:]), nil
}
