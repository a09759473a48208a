// Package keyring keeps the S3 secret access key in the OS keyring
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/shreeramghimire/salmonometer/internal/constants"
)

var (
	// ErrNotFound is returned when no secret is stored
	ErrNotFound = errors.New("secret not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetS3Secret retrieves the S3 secret access key
func GetS3Secret() (string, error) {
	secret, err := keyring.Get(constants.AppName, constants.KeyringS3SecretUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

// SetS3Secret stores the S3 secret access key
func SetS3Secret(secret string) error {
	if secret == "" {
		return errors.New("secret cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.KeyringS3SecretUser, secret); err != nil {
		return fmt.Errorf("failed to store secret in keyring: %w", err)
	}
	return nil
}

// DeleteS3Secret removes the S3 secret access key
func DeleteS3Secret() error {
	if err := keyring.Delete(constants.AppName, constants.KeyringS3SecretUser); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete secret from keyring: %w", err)
	}
	return nil
}

// IsAvailable is a best-effort check that the OS keyring can be read
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
