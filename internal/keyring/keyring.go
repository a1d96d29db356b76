package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/dials/corenote/internal/constants"
)

var (
	// ErrNotFound is returned when no token is stored for the service
	ErrNotFound = errors.New("token not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
	// ErrUnknownService is returned for a service name other than hackmd or github
	ErrUnknownService = errors.New("unknown service")
)

// ParseService validates a service name given on the command line.
func ParseService(name string) (constants.KeyringService, error) {
	switch s := constants.KeyringService(name); s {
	case constants.KeyringHackMD, constants.KeyringGitHub:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrUnknownService, name, constants.KeyringHackMD, constants.KeyringGitHub)
	}
}

func user(service constants.KeyringService) string {
	return string(service) + "-token"
}

// GetToken retrieves the API token of a service from the OS keyring.
func GetToken(service constants.KeyringService) (string, error) {
	token, err := keyring.Get(constants.AppName, user(service))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// SetToken stores the API token of a service in the OS keyring.
func SetToken(service constants.KeyringService, token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if err := keyring.Set(constants.AppName, user(service), token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	return nil
}

// DeleteToken removes the API token of a service from the OS keyring.
func DeleteToken(service constants.KeyringService) error {
	err := keyring.Delete(constants.AppName, user(service))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete token from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
