// Package cli holds the interactive terminal sessions: the timed exam runner
// and the one-question-at-a-time practice runner.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// console is the terminal plumbing shared by the interactive CLIs.
type console struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	red          *color.Color
	yellow       *color.Color
}

func newConsole() console {
	return console{
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
		yellow:       color.New(color.FgYellow),
	}
}

// lines forwards trimmed stdin lines on a channel, closing it on EOF. The
// reading goroutine blocks on stdin, so it only winds down when the process
// does.
func (c *console) lines() <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		for {
			line, err := c.stdinReader.ReadString('\n')
			trimmed := strings.TrimSpace(line)
			if err != nil {
				if trimmed != "" {
					ch <- trimmed
				}
				return
			}
			ch <- trimmed
		}
	}()
	return ch
}

func (c *console) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(c.stdoutWriter, format, args...); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}
