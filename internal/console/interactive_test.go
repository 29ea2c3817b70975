package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"simple", "list", []string{"list"}},
		{"multiple", "complete 1", []string{"complete", "1"}},
		{"double quotes", `add "Buy milk" "2 liters"`, []string{"add", "Buy milk", "2 liters"}},
		{"single quotes", "add 'Buy milk'", []string{"add", "Buy milk"}},
		{"empty quotes keep token", `add ""`, []string{"add", ""}},
		{"mixed whitespace", "  list \t ", []string{"list"}},
		{"empty line", "", nil},
		{"quote inside token", `update 1 --title="Buy milk"`, []string{"update", "1", "--title=Buy milk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := splitArgs(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, args)
		})
	}
}

func TestSplitArgs_UnbalancedQuote(t *testing.T) {
	_, err := splitArgs(`add "Buy milk`)
	assert.Error(t, err)
}

func TestRunInteractive_TasksPersistAcrossCommands(t *testing.T) {
	in := strings.NewReader("add \"Buy milk\"\ncomplete 1\nlist\nexit\n")
	var out, errOut bytes.Buffer

	RunInteractive(NewStore(), in, &out, &errOut)

	assert.Empty(t, errOut.String())
	assert.Contains(t, out.String(), "Task added: ID 1 - Buy milk")
	assert.Contains(t, out.String(), "Task 1 marked as complete.")
	assert.Contains(t, out.String(), "1. [X] Buy milk")
}

func TestRunInteractive_ErrorsDoNotEndSession(t *testing.T) {
	in := strings.NewReader("complete 42\nadd ok\nexit\n")
	var out, errOut bytes.Buffer

	RunInteractive(NewStore(), in, &out, &errOut)

	assert.Contains(t, errOut.String(), "task not found")
	assert.Contains(t, out.String(), "Task added: ID 1 - ok")
}

func TestRunInteractive_EndsOnEOF(t *testing.T) {
	var out, errOut bytes.Buffer
	RunInteractive(NewStore(), strings.NewReader("list\n"), &out, &errOut)
	assert.Contains(t, out.String(), "No tasks found")
}
