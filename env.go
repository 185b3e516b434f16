package knight

import "sort"

// Env is the variable environment: one flat, process-wide namespace per
// interpreter. The language has no scoping construct — a binding made inside
// a called block is visible everywhere afterwards — so there is no parent
// chain, just a single table alive for the interpreter's lifetime.
type Env struct {
	table map[string]Value
}

// NewEnv returns an empty environment.
func NewEnv() *Env { return &Env{table: make(map[string]Value)} }

// Define binds name to v, replacing any previous binding. Assignment never
// fails: the language defines names on first write.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Get retrieves the binding for name.
func (e *Env) Get(name string) (Value, bool) {
	v, ok := e.table[name]
	return v, ok
}

// Names returns the bound names in sorted order (REPL introspection).
func (e *Env) Names() []string {
	out := make([]string, 0, len(e.table))
	for name := range e.table {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
