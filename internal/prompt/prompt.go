package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	apperrors "github.com/dials/corenote/internal/errors"
	"github.com/dials/corenote/internal/logger"
	"github.com/dials/corenote/internal/utils"
)

// Interactive asks questions on the terminal with huh forms.
type Interactive struct {
	Accessible bool // plain line prompts, no redraws
}

func NewInteractive(accessible bool) *Interactive {
	return &Interactive{Accessible: accessible}
}

// Confirm asks a yes/no question. Aborting the form counts as "no".
func (p *Interactive) Confirm(title string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeBase()).WithAccessible(p.Accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			logger.Debug("Confirm aborted", "title", title)
			return false, nil
		}
		return false, fmt.Errorf("confirm %q: %w", title, err)
	}
	return confirmed, nil
}

// Input asks for a meeting date override. An empty answer keeps placeholder.
func (p *Interactive) Input(title, placeholder string) (string, error) {
	var answer string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(placeholder).
				Description("Leave blank to accept").
				Value(&answer).
				Validate(ValidateDateOverride),
		),
	).WithTheme(huh.ThemeBase()).WithAccessible(p.Accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", apperrors.ErrUserDeclined
		}
		return "", fmt.Errorf("input %q: %w", title, err)
	}
	return strings.TrimSpace(answer), nil
}

// Secret reads a token without echoing it.
func (p *Interactive) Secret(title string) (string, error) {
	var answer string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				EchoMode(huh.EchoModePassword).
				Value(&answer).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("token cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeBase()).WithAccessible(p.Accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", apperrors.ErrUserDeclined
		}
		return "", fmt.Errorf("input %q: %w", title, err)
	}
	return strings.TrimSpace(answer), nil
}

// ValidateDateOverride accepts a blank answer or a YYYY-MM-DD date.
func ValidateDateOverride(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := utils.ParseDate(s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD: %w", err)
	}
	return nil
}

// Auto answers every question without asking: confirmations are accepted and
// inputs keep their placeholder. Used for --yes.
type Auto struct{}

func (Auto) Confirm(title string) (bool, error) {
	logger.Info("Auto-confirmed", "title", title)
	return true, nil
}

func (Auto) Input(title, placeholder string) (string, error) {
	logger.Info("Auto-accepted", "title", title, "value", placeholder)
	return "", nil
}
