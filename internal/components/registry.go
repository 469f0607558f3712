package components

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	g "maragu.dev/gomponents"
)

var (
	// ErrEmptyTag is returned when a component is registered without a tag.
	ErrEmptyTag = errors.New("component tag must not be empty")

	// ErrUnknownTag is returned when rendering a tag nobody registered.
	ErrUnknownTag = errors.New("component not registered")
)

// Props carries the string parameters a component was invoked with.
type Props map[string]string

// Factory builds a node for one invocation of a component.
type Factory func(props Props) (g.Node, error)

// Registry is the component namespace: it maps a fixed tag to the factory
// that renders it.
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates a new, empty component registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under tag. Tags are unique.
func (r *Registry) Register(tag string, factory Factory) error {
	if tag == "" {
		return ErrEmptyTag
	}
	if factory == nil {
		return fmt.Errorf("cannot register nil factory for component %q", tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[tag]; exists {
		return fmt.Errorf("component already registered: %s", tag)
	}
	r.factories[tag] = factory
	return nil
}

// MustRegister registers a factory and panics if registration fails.
func (r *Registry) MustRegister(tag string, factory Factory) {
	if err := r.Register(tag, factory); err != nil {
		panic(fmt.Sprintf("failed to register component: %v", err))
	}
}

// Get returns the factory registered for tag.
func (r *Registry) Get(tag string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[tag]
	return factory, exists
}

// Build looks up tag and invokes its factory.
func (r *Registry) Build(tag string, props Props) (g.Node, error) {
	factory, ok := r.Get(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}
	return factory(props)
}

// Render builds the component and writes it to w.
func (r *Registry) Render(w io.Writer, tag string, props Props) error {
	node, err := r.Build(tag, props)
	if err != nil {
		return err
	}
	return node.Render(w)
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
