package icons

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// table is an immutable snapshot of the registry. It is never modified after
// it has been published.
type table struct {
	byName  map[string]Glyph
	byKey   map[Key]Glyph
	aliases map[string]string
	prefer  map[string]Family
}

func newTable() *table {
	return &table{
		byName:  make(map[string]Glyph),
		byKey:   make(map[Key]Glyph),
		aliases: make(map[string]string),
		prefer:  make(map[string]Family),
	}
}

func (t *table) clone() *table {
	next := &table{
		byName:  make(map[string]Glyph, len(t.byName)),
		byKey:   make(map[Key]Glyph, len(t.byKey)),
		aliases: make(map[string]string, len(t.aliases)),
		prefer:  make(map[string]Family, len(t.prefer)),
	}
	for k, v := range t.byName {
		next.byName[k] = v
	}
	for k, v := range t.byKey {
		next.byKey[k] = v
	}
	for k, v := range t.aliases {
		next.aliases[k] = v
	}
	for k, v := range t.prefer {
		next.prefer[k] = v
	}
	return next
}

// put stores g under name, replacing any previous glyph with the same name.
func (t *table) put(name string, g Glyph) {
	t.byName[name] = g
	t.byKey[Key{Family: g.Family, Name: name}] = g
	for _, alias := range g.Aliases {
		if alias != name {
			t.aliases[alias] = name
		}
	}
}

// lookup resolves a short name without following aliases.
func (t *table) lookup(name string) (Glyph, bool) {
	if family, ok := t.prefer[name]; ok {
		if g, ok := t.byKey[Key{Family: family, Name: name}]; ok {
			return g, true
		}
	}
	g, ok := t.byName[name]
	return g, ok
}

func (t *table) resolve(name string) (Glyph, bool) {
	// Registered names win over aliases. The hop limit guards against a
	// cycle introduced through glyph alias lists.
	for hops := 0; hops <= len(t.aliases); hops++ {
		if key, ok := ParseKey(name); ok {
			g, ok := t.byKey[key]
			return g, ok
		}
		if g, ok := t.lookup(name); ok {
			return g, true
		}
		target, ok := t.aliases[name]
		if !ok {
			return Glyph{}, false
		}
		name = target
	}
	return Glyph{}, false
}

// reaches reports whether following aliases from start arrives at name.
func (t *table) reaches(start, name string) bool {
	for hops := 0; hops <= len(t.aliases); hops++ {
		if start == name {
			return true
		}
		next, ok := t.aliases[start]
		if !ok {
			return false
		}
		start = next
	}
	return false
}

// Registry maps icon names to glyph definitions.
type Registry struct {
	mu     sync.Mutex
	state  atomic.Pointer[table]
	sealed atomic.Bool
}

// NewRegistry creates a new, empty icon registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.state.Store(newTable())
	return r
}

func (r *Registry) current() *table {
	return r.state.Load()
}

// update applies fn to a copy of the current table and publishes the copy.
func (r *Registry) update(fn func(t *table) error) error {
	if r.sealed.Load() {
		return ErrRegistrationClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.current().clone()
	if err := fn(next); err != nil {
		return err
	}
	r.state.Store(next)
	return nil
}

func checkEntry(name string, g Glyph) error {
	if name == "" {
		return ErrEmptyName
	}
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return g.Validate()
}

// Register inserts or replaces the glyph for name. Replacing an existing
// name is not an error.
func (r *Registry) Register(name string, g Glyph) error {
	if err := checkEntry(name, g); err != nil {
		return fmt.Errorf("register %q: %w", name, err)
	}
	return r.update(func(t *table) error {
		t.put(name, g)
		return nil
	})
}

// MustRegister registers a glyph and panics if registration fails.
func (r *Registry) MustRegister(name string, g Glyph) {
	if err := r.Register(name, g); err != nil {
		panic(fmt.Sprintf("failed to register icon: %v", err))
	}
}

// RegisterAll registers entries in order, so later entries win over earlier
// ones with the same name. Every entry is checked before any is published.
func (r *Registry) RegisterAll(entries []Entry) error {
	if err := checkEntries(entries); err != nil {
		return err
	}
	return r.update(func(t *table) error {
		for _, e := range entries {
			t.put(e.Name, e.Glyph)
		}
		return nil
	})
}

// MustRegisterAll registers entries and panics if any entry is invalid.
func (r *Registry) MustRegisterAll(entries []Entry) {
	if err := r.RegisterAll(entries); err != nil {
		panic(fmt.Sprintf("failed to register icons: %v", err))
	}
}

func checkEntries(entries []Entry) error {
	for i, e := range entries {
		if err := checkEntry(e.Name, e.Glyph); err != nil {
			return fmt.Errorf("entry %d (%q): %w", i, e.Name, err)
		}
	}
	return nil
}

// Alias makes alias resolve to whatever target resolves to. target may be a
// short name, another alias, or a "family/name" reference.
func (r *Registry) Alias(alias, target string) error {
	if alias == "" || target == "" {
		return ErrEmptyName
	}
	if _, qualified := ParseKey(target); !ValidName(alias) || (!qualified && !ValidName(target)) {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidName, alias, target)
	}
	if alias == target {
		return fmt.Errorf("%w: %q points at itself", ErrInvalidAlias, alias)
	}
	return r.update(func(t *table) error {
		if t.reaches(target, alias) {
			return fmt.Errorf("%w: %q -> %q forms a cycle", ErrInvalidAlias, alias, target)
		}
		t.aliases[alias] = target
		return nil
	})
}

// Prefer pins the short name to the glyph registered in family, regardless of
// registration order. The preference takes effect once that glyph exists.
func (r *Registry) Prefer(name string, family Family) error {
	if name == "" {
		return ErrEmptyName
	}
	if !family.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	return r.update(func(t *table) error {
		t.prefer[name] = family
		return nil
	})
}

// Replace builds a new table from entries and publishes it in one step.
// Aliases and preferences carry over. Replace is allowed after Seal.
func (r *Registry) Replace(entries []Entry) error {
	if err := checkEntries(entries); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.current()
	next := newTable()
	for k, v := range prev.aliases {
		next.aliases[k] = v
	}
	for k, v := range prev.prefer {
		next.prefer[k] = v
	}
	for _, e := range entries {
		next.put(e.Name, e.Glyph)
	}
	r.state.Store(next)
	return nil
}

// Seal closes incremental registration. Register, RegisterAll, Alias and
// Prefer return ErrRegistrationClosed afterwards.
func (r *Registry) Seal() {
	r.sealed.Store(true)
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// Resolve returns the glyph registered for name. name may be a short name,
// an alias, or a "family/name" reference.
func (r *Registry) Resolve(name string) (Glyph, bool) {
	if name == "" {
		return Glyph{}, false
	}
	return r.current().resolve(name)
}

// ResolveIn returns the glyph registered for name in family.
func (r *Registry) ResolveIn(family Family, name string) (Glyph, bool) {
	g, ok := r.current().byKey[Key{Family: family, Name: name}]
	return g, ok
}

// Len returns the number of distinct short names.
func (r *Registry) Len() int {
	return len(r.current().byName)
}

// Names returns all registered short names in sorted order.
func (r *Registry) Names() []string {
	t := r.current()
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aliases returns a copy of the alias table.
func (r *Registry) Aliases() map[string]string {
	t := r.current()
	result := make(map[string]string, len(t.aliases))
	for k, v := range t.aliases {
		result[k] = v
	}
	return result
}

// Entries returns the glyph each short name resolves to, sorted by name.
func (r *Registry) Entries() []Entry {
	t := r.current()
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		g, _ := t.lookup(name)
		entries = append(entries, Entry{Name: name, Glyph: g})
	}
	return entries
}

// Keys returns every family qualified key, sorted.
func (r *Registry) Keys() []Key {
	t := r.current()
	keys := make([]Key, 0, len(t.byKey))
	for k := range t.byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}
		return keys[i].Family < keys[j].Family
	})
	return keys
}
