package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const exitCommand = "exit"

var (
	ErrEmptyToken    = errors.New("empty token")
	ErrInvalidNumber = errors.New("invalid number")
	ErrReversedRange = errors.New("reversed range")
)

// Selection is the parsed form of a "1,3-5" style answer.
type Selection struct {
	// Exit is set when the user asked to leave without deleting anything.
	Exit bool
	// Indices are 1-based, within [1, count], unique, in the order written.
	Indices []int
}

// Parse turns input into indices into a list of count items. Out of range indices
// are dropped. Any malformed token rejects the whole input.
func Parse(input string, count int) (Selection, error) {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, exitCommand) {
		return Selection{Exit: true}, nil
	}

	var sel Selection
	seen := make(map[int]bool)
	add := func(idx int) {
		if idx < 1 || idx > count || seen[idx] {
			return
		}
		seen[idx] = true
		sel.Indices = append(sel.Indices, idx)
	}

	for _, token := range strings.Split(input, ",") {
		start, end, err := parseToken(strings.TrimSpace(token))
		if err != nil {
			return Selection{}, err
		}
		// Only the part of a range inside [1, count] can select anything.
		if start < 1 {
			start = 1
		}
		if end > count {
			end = count
		}
		for idx := start; idx <= end; idx++ {
			add(idx)
		}
	}
	return sel, nil
}

func parseToken(token string) (start, end int, err error) {
	if token == "" {
		return 0, 0, ErrEmptyToken
	}
	first, second, isRange := strings.Cut(token, "-")
	if start, err = parseNumber(first, token); err != nil {
		return 0, 0, err
	}
	if !isRange {
		return start, start, nil
	}
	if end, err = parseNumber(second, token); err != nil {
		return 0, 0, err
	}
	if start > end {
		return 0, 0, fmt.Errorf("%w %q", ErrReversedRange, token)
	}
	return start, end, nil
}

func parseNumber(s, token string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w %q", ErrInvalidNumber, token)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w %q", ErrInvalidNumber, token)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidNumber, token, err)
	}
	return n, nil
}

// Pick maps 1-based indices to items. Indices outside the list are skipped.
func Pick(items []string, indices []int) []string {
	picked := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 1 && idx <= len(items) {
			picked = append(picked, items[idx-1])
		}
	}
	return picked
}
