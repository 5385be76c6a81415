package cli

import (
	"strconv"
	"strings"
)

type commandKind int

const (
	cmdUnknown commandKind = iota
	cmdAnswer
	cmdNext
	cmdPrev
	cmdGoto
	cmdMark
	cmdSubmit
	cmdHelp
	cmdQuit
)

// command is one parsed line of exam input. arg carries the zero-based
// question option for cmdAnswer and the zero-based position for cmdGoto.
type command struct {
	kind commandKind
	arg  int
}

// parseCommand interprets a line of exam input. A bare number selects that
// option for the current question; everything else is a navigation or session
// keyword. Unrecognized input parses to cmdUnknown.
func parseCommand(line string) command {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return command{kind: cmdUnknown}
	}

	if option, err := strconv.Atoi(fields[0]); err == nil {
		if option < 1 || len(fields) > 1 {
			return command{kind: cmdUnknown}
		}
		return command{kind: cmdAnswer, arg: option - 1}
	}

	switch fields[0] {
	case "n", "next":
		return command{kind: cmdNext}
	case "p", "prev", "previous":
		return command{kind: cmdPrev}
	case "g", "goto":
		if len(fields) != 2 {
			return command{kind: cmdUnknown}
		}
		position, err := strconv.Atoi(fields[1])
		if err != nil || position < 1 {
			return command{kind: cmdUnknown}
		}
		return command{kind: cmdGoto, arg: position - 1}
	case "m", "mark":
		return command{kind: cmdMark}
	case "s", "submit":
		return command{kind: cmdSubmit}
	case "h", "help", "?":
		return command{kind: cmdHelp}
	case "q", "quit", "exit":
		return command{kind: cmdQuit}
	}
	return command{kind: cmdUnknown}
}
