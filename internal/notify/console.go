package notify

import (
	"fmt"
	"io"

	"github.com/DamirBesirovic/tradeflow/internal/model"
)

// Console prints transient notifications to a terminal, standing in for the
// web client's toasts.
type Console struct {
	out io.Writer
}

var _ model.Notifier = (*Console)(nil)

// NewConsole creates a Console notifier writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Success prints an affirmative message.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.out, "ok: %s\n", msg)
}

// Error prints a failure message.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.out, "greska: %s\n", msg)
}
