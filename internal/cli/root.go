package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dials/corenote/internal/orchestrator"
	"github.com/dials/corenote/internal/prompt"
)

// Context is shared by every command.
type Context struct {
	ConfigPath string
	Out        io.Writer
	Now        func() time.Time

	// Prompter overrides the prompter chosen from the command flags.
	Prompter orchestrator.Prompter
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c *Context) prompter(yes, accessible bool) orchestrator.Prompter {
	switch {
	case c.Prompter != nil:
		return c.Prompter
	case yes:
		return prompt.Auto{}
	default:
		return prompt.NewInteractive(accessible)
	}
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}
