package model

import (
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// maxSuggestionDistance bounds the edit distance between an undeclared name and a suggested replacement.
const maxSuggestionDistance = 2

type scope map[string]*Variable

func (s scope) bindReference(name string) (*Variable, bool) {
	def, ok := s[name]
	return def, ok
}

func (s scope) define(name string, v *Variable) bool {
	if _, exists := s[name]; exists {
		return false
	}
	s[name] = v
	return true
}

func (s scope) types() map[string]Type {
	types := make(map[string]Type, len(s))
	for name, v := range s {
		types[name] = v.VariableType
	}
	return types
}

// closest returns the defined name nearest to the given one, if any is close enough to be a likely misspelling.
func (s scope) closest(name string) (string, bool) {
	names := make(stringSet, len(s))
	for n := range s {
		names.add(n)
	}

	target := []rune(name)
	best, bestDistance := "", maxSuggestionDistance+1
	for _, candidate := range names.sortedValues() {
		distance := levenshtein.DistanceForStrings(target, []rune(candidate), levenshtein.DefaultOptions)
		if distance < bestDistance && distance < len(target) {
			best, bestDistance = candidate, distance
		}
	}
	return best, best != ""
}

// scopes is the stack of variable scopes. Each procedure gets a fresh scope, and lookups never reach past the
// innermost one.
type scopes struct {
	stack []scope
}

func (s *scopes) push() scope {
	next := scope{}
	s.stack = append(s.stack, next)
	return next
}

func (s *scopes) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *scopes) current() scope {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

func (s *scopes) bindReference(name string) (*Variable, bool) {
	return s.current().bindReference(name)
}
