package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintMatches(&buf, []string{"a.png", "b.jpg"}); err != nil {
		t.Fatalf("PrintMatches failed: %v", err)
	}
	expected := "Similar images found:\n1. a.png\n2. b.jpg\n"
	if buf.String() != expected {
		t.Errorf("PrintMatches wrote %q; want %q", buf.String(), expected)
	}
}

func TestAskSelection(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"unix newline", "1,3-5\n", "1,3-5"},
		{"windows newline", "exit\r\n", "exit"},
		{"no newline", "2", "2"},
		{"only first line", "1\n2\n", "1"},
		{"empty line", "\n", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			line, err := AskSelection(strings.NewReader(tc.input), &out)
			if err != nil {
				t.Fatalf("AskSelection failed: %v", err)
			}
			if line != tc.expected {
				t.Errorf("AskSelection = %q; want %q", line, tc.expected)
			}
			if out.String() != selectionPrompt {
				t.Errorf("prompt = %q; want %q", out.String(), selectionPrompt)
			}
		})
	}
}

func TestAskSelectionEOF(t *testing.T) {
	_, err := AskSelection(strings.NewReader(""), io.Discard)
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}
