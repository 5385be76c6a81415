package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		line string
		want command
	}{
		{
			name: "answer option",
			line: "3",
			want: command{kind: cmdAnswer, arg: 2},
		},
		{
			name: "answer with surrounding spaces",
			line: "  1 \n",
			want: command{kind: cmdAnswer, arg: 0},
		},
		{
			name: "zero is not an option",
			line: "0",
			want: command{kind: cmdUnknown},
		},
		{
			name: "next short",
			line: "n",
			want: command{kind: cmdNext},
		},
		{
			name: "previous long",
			line: "previous",
			want: command{kind: cmdPrev},
		},
		{
			name: "goto with position",
			line: "g 12",
			want: command{kind: cmdGoto, arg: 11},
		},
		{
			name: "goto without position",
			line: "goto",
			want: command{kind: cmdUnknown},
		},
		{
			name: "goto with bad position",
			line: "g zero",
			want: command{kind: cmdUnknown},
		},
		{
			name: "mark",
			line: "m",
			want: command{kind: cmdMark},
		},
		{
			name: "submit",
			line: "submit",
			want: command{kind: cmdSubmit},
		},
		{
			name: "help question mark",
			line: "?",
			want: command{kind: cmdHelp},
		},
		{
			name: "quit uppercase",
			line: "QUIT",
			want: command{kind: cmdQuit},
		},
		{
			name: "empty line",
			line: "",
			want: command{kind: cmdUnknown},
		},
		{
			name: "gibberish",
			line: "banana split",
			want: command{kind: cmdUnknown},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCommand(tt.line))
		})
	}
}
