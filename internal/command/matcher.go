// Package command turns typed console input into events.
package command

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// fillers are dropped from input before matching so that "HAL, open the pod
// bay doors please" and "open the pod bay doors" are the same request.
var fillers = map[string]bool{"hal": true, "please": true}

type phrase[E any] struct {
	text  string
	event E
}

// Matcher maps free-form input to the event of the closest registered phrase.
// Matching tries, in order: exact, prefix (at least three characters), then the
// smallest Levenshtein distance within a quarter of the phrase length.
// Ties go to the phrase registered first.
type Matcher[E any] struct {
	phrases []phrase[E]
}

func NewMatcher[E any]() *Matcher[E] {
	return &Matcher[E]{}
}

// Register adds a phrase. Several phrases may map to the same event.
func (m *Matcher[E]) Register(text string, event E) *Matcher[E] {
	if norm := Normalize(text); norm != "" {
		m.phrases = append(m.phrases, phrase[E]{text: norm, event: event})
	}
	return m
}

// Phrases returns the normalized registered phrases in registration order.
func (m *Matcher[E]) Phrases() []string {
	out := make([]string, 0, len(m.phrases))
	for _, p := range m.phrases {
		out = append(out, p.text)
	}
	return out
}

// Match returns the event for input and whether anything matched.
func (m *Matcher[E]) Match(input string) (E, bool) {
	var zero E
	q := Normalize(input)
	if q == "" {
		return zero, false
	}
	for _, p := range m.phrases {
		if p.text == q {
			return p.event, true
		}
	}
	if len(q) >= 3 {
		for _, p := range m.phrases {
			if strings.HasPrefix(p.text, q) {
				return p.event, true
			}
		}
	}
	best, bestDist := -1, 0
	for i, p := range m.phrases {
		limit := max(1, len(p.text)/4)
		d := levenshtein.ComputeDistance(q, p.text)
		if d > limit {
			continue
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return zero, false
	}
	return m.phrases[best].event, true
}

// Normalize lowercases s, strips punctuation, removes filler words and
// collapses whitespace.
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, s)
	words := strings.Fields(s)
	out := words[:0]
	for _, w := range words {
		if !fillers[w] {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}
