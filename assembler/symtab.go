package assembler

import (
	"fmt"
	"strings"
)

type symbol struct {
	Name        string
	Value       uint16
	DefinedLine int
}

// SymbolTable maps label and EQU names to their resolved 16-bit values.
// Lookups are case-insensitive; the originally-written case is preserved for
// diagnostics.
type SymbolTable struct {
	entries map[string]*symbol
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{entries: make(map[string]*symbol)}
}

// Define binds name to value. Redefining an existing name is a
// ErrDuplicateSymbol error; the 6800 grammar has no way to mutate a symbol
// once assigned.
func (t *SymbolTable) Define(name string, value uint16, line int) error {
	key := strings.ToLower(name)
	if existing, ok := t.entries[key]; ok {
		return &AssembleError{
			Kind:    ErrDuplicateSymbol,
			Line:    line,
			Message: fmt.Sprintf("symbol %q already defined at line %d", name, existing.DefinedLine),
		}
	}
	t.entries[key] = &symbol{Name: name, Value: value, DefinedLine: line}
	return nil
}

// Lookup returns the value bound to name, if any.
func (t *SymbolTable) Lookup(name string) (uint16, bool) {
	e, ok := t.entries[strings.ToLower(name)]
	if !ok {
		return 0, false
	}
	return e.Value, true
}

// Names returns every defined symbol name, in no particular order.
func (t *SymbolTable) Names() []string {
	names := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		names = append(names, e.Name)
	}
	return names
}
