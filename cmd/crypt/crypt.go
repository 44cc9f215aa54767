package crypt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/constraint-foundry/winnow/pkg/winnow"
)

// puzzlePattern matches and extracts the three terms of a puzzle given
// as "LHS0 + LHS1 = RHS", e.g. "SEND + MORE = MONEY".
var puzzlePattern = regexp.MustCompile(`^\s*([a-zA-Z]+)\s*\+\s*([a-zA-Z]+)\s*=\s*([a-zA-Z]+)\s*$`)

// Puzzle is a parsed digit-substitution puzzle: every letter stands
// for one decimal digit, distinct letters stand for distinct digits,
// leading letters are non-zero, and LHS[0] + LHS[1] = RHS must hold.
type Puzzle struct {
	LHS [2]string
	RHS string
}

// ParsePuzzle parses a "LHS0 + LHS1 = RHS" puzzle description.
func ParsePuzzle(text string) (*Puzzle, error) {
	m := puzzlePattern.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("cannot parse puzzle (%s): expected the form \"SEND + MORE = MONEY\"", strings.TrimSpace(text))
	}
	return &Puzzle{
		LHS: [2]string{strings.ToUpper(m[1]), strings.ToUpper(m[2])},
		RHS: strings.ToUpper(m[3]),
	}, nil
}

func (p *Puzzle) String() string {
	return fmt.Sprintf("%s + %s = %s", p.LHS[0], p.LHS[1], p.RHS)
}

// Letters returns the puzzle's distinct letters in first-appearance
// order, which becomes their declaration order in the encoded problem.
func (p *Puzzle) Letters() []string {
	var letters []string
	seen := map[rune]struct{}{}
	for _, term := range []string{p.LHS[0], p.LHS[1], p.RHS} {
		for _, r := range term {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			letters = append(letters, string(r))
		}
	}
	return letters
}

// FormatSolution renders a solved assignment back into digit form,
// e.g. "9567 + 1085 = 10652".
func FormatSolution(p *Puzzle, assignment winnow.Assignment) string {
	return strings.Map(func(r rune) rune {
		if value, ok := assignment[winnow.Variable(string(r))]; ok {
			return rune('0' + value)
		}
		return r
	}, p.String())
}
