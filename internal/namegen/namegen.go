// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package namegen draws unique random names from a list produced by the
// listjson converter. A name is never drawn twice until the used set is
// cleared.
package namegen

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
)

var (
	// ErrEmptyList is returned when a generator is built from no names.
	ErrEmptyList = errors.New("name list is empty")

	// ErrExhausted is returned once every name in the list has been drawn.
	ErrExhausted = errors.New("all names have been used")
)

// UsedSet records which names have already been handed out.
type UsedSet interface {
	Has(name string) (bool, error)
	Add(name string) error
	Reset() error
}

// Load reads a JSON array of strings from path. Raw converter output that
// contains an unescaped quote is not valid JSON and fails here.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading name list: %w", err)
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("parsing name list %s: %w", path, err)
	}
	return names, nil
}

// Generator hands out names that have not been used yet.
type Generator struct {
	names []string
	used  UsedSet
	rng   *rand.Rand
}

// New builds a generator over names. Duplicate names count once. A nil
// used set means an in-memory one; a nil rng means a randomly seeded one.
func New(names []string, used UsedSet, rng *rand.Rand) (*Generator, error) {
	uniq := dedupe(names)
	if len(uniq) == 0 {
		return nil, ErrEmptyList
	}
	if used == nil {
		used = NewMemorySet()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{names: uniq, used: used, rng: rng}, nil
}

// Generate returns a random name that has not been drawn before and marks
// it used. It returns ErrExhausted when no unused name remains.
func (g *Generator) Generate() (string, error) {
	free := make([]string, 0, len(g.names))
	for _, n := range g.names {
		ok, err := g.used.Has(n)
		if err != nil {
			return "", fmt.Errorf("checking used names: %w", err)
		}
		if !ok {
			free = append(free, n)
		}
	}
	if len(free) == 0 {
		return "", ErrExhausted
	}

	name := free[g.rng.IntN(len(free))]
	if err := g.used.Add(name); err != nil {
		return "", fmt.Errorf("marking %q used: %w", name, err)
	}
	return name, nil
}

// Clear forgets every drawn name.
func (g *Generator) Clear() error {
	return g.used.Reset()
}

// Len returns the number of distinct names in the list.
func (g *Generator) Len() int {
	return len(g.names)
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
