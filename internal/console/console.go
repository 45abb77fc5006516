package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const selectionPrompt = "Enter the indices of images to delete (e.g., 1,2,4-6) or 'exit': "

// PrintMatches writes a 1-based numbered list of names.
func PrintMatches(w io.Writer, names []string) error {
	if _, err := fmt.Fprintln(w, "Similar images found:"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, name := range names {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, name); err != nil {
			return fmt.Errorf("writing entry %d: %w", i+1, err)
		}
	}
	return nil
}

// AskSelection prints the selection prompt and reads one line of input.
// A final line without a newline is accepted; no input at all is io.EOF.
func AskSelection(r io.Reader, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, selectionPrompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading selection: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
