package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dials/corenote/internal/constants"
	"github.com/dials/corenote/internal/keyring"
	"github.com/dials/corenote/internal/prompt"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store an API token in the OS keyring."`
	Get    KeyringGetCmd    `cmd:"" help:"Show a stored API token (masked)."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove an API token from the OS keyring."`
	Status KeyringStatusCmd `cmd:"" help:"Check the OS keyring and the stored tokens."`
}

// KeyringSetCmd stores a token in the OS keyring
type KeyringSetCmd struct {
	Service    string `arg:"" enum:"hackmd,github" help:"Service the token belongs to (hackmd or github)."`
	Token      string `arg:"" optional:"" help:"API token. Asked for without echo when omitted."`
	Accessible bool   `help:"Plain line prompts for screen readers." env:"ACCESSIBLE"`
}

func (cmd *KeyringSetCmd) Run(ctx *Context) error {
	service, err := keyring.ParseService(cmd.Service)
	if err != nil {
		return err
	}

	token := strings.TrimSpace(cmd.Token)
	if token == "" {
		token, err = prompt.NewInteractive(cmd.Accessible).Secret(fmt.Sprintf("%s token", service))
		if err != nil {
			return err
		}
	}

	if err := keyring.SetToken(service, token); err != nil {
		return err
	}

	ctx.printf("✓ %s token stored in OS keyring\n", service)
	return nil
}

// KeyringGetCmd retrieves a token from the OS keyring
type KeyringGetCmd struct {
	Service string `arg:"" enum:"hackmd,github" help:"Service the token belongs to (hackmd or github)."`
}

func (cmd *KeyringGetCmd) Run(ctx *Context) error {
	service, err := keyring.ParseService(cmd.Service)
	if err != nil {
		return err
	}

	token, err := keyring.GetToken(service)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no %s token found in keyring. Use '%s keyring set %s' to store one", service, constants.AppName, service)
		}
		return fmt.Errorf("failed to retrieve %s token from keyring: %w", service, err)
	}

	ctx.printf("%s\n", maskToken(token))
	return nil
}

// KeyringDeleteCmd removes a token from the OS keyring
type KeyringDeleteCmd struct {
	Service string `arg:"" enum:"hackmd,github" help:"Service the token belongs to (hackmd or github)."`
}

func (cmd *KeyringDeleteCmd) Run(ctx *Context) error {
	service, err := keyring.ParseService(cmd.Service)
	if err != nil {
		return err
	}

	if err := keyring.DeleteToken(service); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no %s token found in keyring", service)
		}
		return err
	}

	ctx.printf("✓ %s token deleted from OS keyring\n", service)
	return nil
}

// KeyringStatusCmd checks the availability of the OS keyring
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *Context) error {
	if !keyring.IsAvailable() {
		ctx.printf("❌ OS keyring is not available on this system\n")
		return keyring.ErrKeyringUnavailable
	}
	ctx.printf("✓ OS keyring is available\n")

	for _, service := range []constants.KeyringService{constants.KeyringHackMD, constants.KeyringGitHub} {
		_, err := keyring.GetToken(service)
		switch {
		case err == nil:
			ctx.printf("✓ %s token is stored\n", service)
		case errors.Is(err, keyring.ErrNotFound):
			ctx.printf("ℹ No %s token stored\n", service)
		default:
			ctx.printf("❌ %s token: %v\n", service, err)
		}
	}
	return nil
}

// maskToken keeps the first four characters of a token.
func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return token[:4] + strings.Repeat("*", 8)
}
