// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"numclass-server/crypto"
	"numclass-server/db"
	"numclass-server/models"
)

// IssueAPIKey stores the argon2id hash of a new key and returns the plain
// key, which is not recoverable afterwards.
func IssueAPIKey(name string, description *string, expiresAt *time.Time) (string, error) {
	if db.Conn == nil {
		return "", errors.New("database not initialized")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("api key name is required")
	}

	var count int64
	if err := db.Conn.Model(&models.APIKey{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return "", fmt.Errorf("failed to check api key name: %w", err)
	}
	if count > 0 {
		return "", fmt.Errorf("api key %q already exists", name)
	}

	key, err := crypto.NewAPIKey()
	if err != nil {
		return "", err
	}
	hashed, err := crypto.NewCrypto().HashSecret(key.Value)
	if err != nil {
		return "", fmt.Errorf("failed to hash api key: %w", err)
	}

	record := models.APIKey{
		KeyID:       key.KeyID,
		HashedKey:   hashed,
		Name:        name,
		Description: description,
		ExpiresAt:   expiresAt,
	}
	if err := db.Conn.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to create api key: %w", err)
	}
	return key.Value, nil
}
