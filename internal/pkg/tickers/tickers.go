// Package tickers holds the static symbol ↔ company name table.
// A Table is built once at startup and shared by reference; it has no mutators.
package tickers

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultTable []byte

var (
	ErrEmptyTable      = errors.New("ticker table is empty")
	ErrDuplicateSymbol = errors.New("duplicate ticker symbol")
	ErrInvalidEntry    = errors.New("invalid ticker entry")
)

// Entry 종목 코드와 종목명
type Entry struct {
	Symbol string `yaml:"symbol" json:"symbol"`
	Name   string `yaml:"name" json:"name"`
}

type file struct {
	Tickers []Entry `yaml:"tickers"`
}

// Table is an immutable symbol ↔ name mapping
type Table struct {
	entries  []Entry           // sorted by symbol
	bySymbol map[string]string // symbol → name
	byName   map[string]string // lower(name) → symbol
}

// Default returns the built-in table
func Default() (*Table, error) {
	return Parse(defaultTable)
}

// Load reads a YAML ticker file; an empty path yields the built-in table
func Load(path string) (*Table, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ticker file: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse builds a table from YAML
func Parse(data []byte) (*Table, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse ticker file: %w", err)
	}
	return New(f.Tickers)
}

// New builds a table from entries; the slice is copied
func New(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{
		entries:  make([]Entry, 0, len(entries)),
		bySymbol: make(map[string]string, len(entries)),
		byName:   make(map[string]string, len(entries)),
	}

	for i, e := range entries {
		e.Symbol = strings.TrimSpace(e.Symbol)
		e.Name = strings.TrimSpace(e.Name)
		if e.Symbol == "" || e.Name == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrInvalidEntry, i)
		}
		if _, dup := t.bySymbol[e.Symbol]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, e.Symbol)
		}

		t.bySymbol[e.Symbol] = e.Name
		// first symbol wins for a repeated name
		key := strings.ToLower(e.Name)
		if _, seen := t.byName[key]; !seen {
			t.byName[key] = e.Symbol
		}
		t.entries = append(t.entries, e)
	}

	sort.Slice(t.entries, func(i, j int) bool {
		return t.entries[i].Symbol < t.entries[j].Symbol
	})

	return t, nil
}

// Lookup returns the company name for symbol
func (t *Table) Lookup(symbol string) (string, bool) {
	name, ok := t.bySymbol[strings.TrimSpace(symbol)]
	return name, ok
}

// Expand maps a ticker symbol (any case, surrounding spaces ignored) to its company name
// Unknown queries come back unchanged with ok=false.
func (t *Table) Expand(query string) (string, bool) {
	if name, ok := t.Lookup(strings.ToUpper(strings.TrimSpace(query))); ok {
		return name, true
	}
	return query, false
}

// SymbolFor returns the symbol for a company name, ignoring case
func (t *Table) SymbolFor(name string) (string, bool) {
	symbol, ok := t.byName[strings.ToLower(strings.TrimSpace(name))]
	return symbol, ok
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of all entries sorted by symbol
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
