// SPDX-License-Identifier: GPL-3.0-only

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"numclass-server/commons"

	"github.com/alexedwards/argon2id"
)

const (
	APIKeyPrefix      = "ak_"
	APIKeyIDLength    = len(APIKeyPrefix) + 32
	apiKeySecretBytes = 32
)

var ErrSecretMismatch = errors.New("secret verification failed")

func NewCrypto() *Crypto {
	return &Crypto{
		ArgonTime:    uint32(commons.GetEnvInt("ARGON2_TIME", 1)),
		ArgonMemory:  uint32(commons.GetEnvInt("ARGON2_MEMORY", 65536)),
		ArgonThreads: uint8(commons.GetEnvInt("ARGON2_THREADS", 2)),
		ArgonKeyLen:  uint32(commons.GetEnvInt("ARGON2_KEYLEN", 32)),
		ArgonSaltLen: uint32(commons.GetEnvInt("ARGON2_SALTLEN", 16)),
	}
}

func (c *Crypto) HashSecret(secret string) (string, error) {
	commons.Logger.Debug("Hashing secret")
	params := &argon2id.Params{
		Memory:      c.ArgonMemory,
		Iterations:  c.ArgonTime,
		Parallelism: c.ArgonThreads,
		SaltLength:  c.ArgonSaltLen,
		KeyLength:   c.ArgonKeyLen,
	}
	hash, err := argon2id.CreateHash(secret, params)
	if err != nil {
		return "", err
	}
	return hash, nil
}

func (c *Crypto) VerifySecret(secret, encodedHash string) error {
	commons.Logger.Debug("Verifying secret")
	match, err := argon2id.ComparePasswordAndHash(secret, encodedHash)
	if err != nil {
		return err
	}
	if !match {
		return ErrSecretMismatch
	}
	return nil
}

// NewAPIKey returns a key of the form ak_<32 hex id><64 hex secret>.
func NewAPIKey() (APIKey, error) {
	keyID, err := GenerateRandomString(APIKeyPrefix, 16, "hex")
	if err != nil {
		return APIKey{}, fmt.Errorf("generate key id: %w", err)
	}
	secret, err := GenerateRandomString("", apiKeySecretBytes, "hex")
	if err != nil {
		return APIKey{}, fmt.Errorf("generate key secret: %w", err)
	}
	return APIKey{KeyID: keyID, Value: keyID + secret}, nil
}

// SplitAPIKey extracts the key id from a presented key.
func SplitAPIKey(value string) (string, bool) {
	if len(value) <= APIKeyIDLength || value[:len(APIKeyPrefix)] != APIKeyPrefix {
		return "", false
	}
	return value[:APIKeyIDLength], true
}

func GenerateRandomString(prefix string, length int, encoding string) (string, error) {
	supportedEncodings := []string{"hex", "base64"}

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	switch encoding {
	case "hex":
		return prefix + hex.EncodeToString(b), nil
	case "base64":
		return prefix + base64.StdEncoding.EncodeToString(b), nil
	default:
		return "", fmt.Errorf("unsupported encoding: %s, Supported encodings are: %s", encoding, supportedEncodings)
	}
}
