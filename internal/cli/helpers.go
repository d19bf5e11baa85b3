package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/notes/pkg/types"
)

// noteView is the JSON shape of a note in command output.
type noteView struct {
	Position int    `json:"position"`
	ID       string `json:"id"`
	Text     string `json:"text"`
}

func viewOf(position int, n types.Note) noteView {
	return noteView{Position: position, ID: n.ID, Text: n.Text}
}

// parsePosition converts a command argument to a note position.
func parsePosition(arg string) (int, error) {
	p, err := strconv.Atoi(arg)
	if err != nil {
		return 0, userError(fmt.Errorf("invalid position %q (expected a number from \"notes list\")", arg))
	}
	return p, nil
}

// noteText returns the note text from args, or reads the draft from stdin
// when no args are given. One trailing newline is dropped from stdin input.
// An empty draft is allowed.
func noteText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", sysError(fmt.Errorf("read draft: %w", err))
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal JSON: %w", err))
	}
	fmt.Fprintln(w, string(out))
	return nil
}

// listRow renders a note as one list line: its first line of text, marked
// when more lines follow.
func listRow(text string) string {
	first, rest, more := strings.Cut(text, "\n")
	if more && strings.TrimSpace(rest) != "" {
		return first + " ..."
	}
	return first
}
