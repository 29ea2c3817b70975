package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RunInteractive reads commands line by line and dispatches them against a
// single store, so tasks persist for the session. Returns when the input
// ends or on exit/quit.
func RunInteractive(store *Store, in io.Reader, out, errOut io.Writer) {
	fmt.Fprintln(out, "Todo console. Type a command ('add', 'list', 'complete', 'update', 'delete'), or 'exit' to leave.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "todo> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		args, err := splitArgs(scanner.Text())
		if err != nil {
			fmt.Fprintf(errOut, "Error: %s\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "exit", "quit":
			return
		}

		// A fresh command tree per line keeps flag state from leaking
		// between commands.
		root := NewRootCommand(store)
		root.SetOut(out)
		root.SetErr(errOut)
		root.SetArgs(args)
		if err := root.Execute(); err != nil {
			fmt.Fprintf(errOut, "Error: %s\n", err)
		}
	}
}

// splitArgs tokenizes a command line, honoring single and double quotes so
// titles with spaces work.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inToken bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			if inToken {
				args = append(args, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unbalanced quote in input")
	}
	if inToken {
		args = append(args, current.String())
	}
	return args, nil
}
