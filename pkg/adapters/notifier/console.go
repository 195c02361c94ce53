// Package notifier shows user-facing alerts.
package notifier

import (
	"fmt"
	"io"
	"strings"

	"github.com/user/menuvideo/pkg/ports"
)

// Console prints alerts as boxed messages. It stands in for the host's popup
// when running headless.
type Console struct {
	out io.Writer
}

// NewConsole creates an alert printer writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Alert prints title and message.
func (c *Console) Alert(title, message string) {
	width := len(title)
	if len(message) > width {
		width = len(message)
	}
	rule := strings.Repeat("-", width+4)
	fmt.Fprintf(c.out, "%s\n| %-*s |\n| %-*s |\n%s\n", rule, width, title, width, message, rule)
}

var _ ports.Notifier = (*Console)(nil)
