package resource

import "fmt"

type (
	// Filter decides whether a discovered path participates in an
	// includeAll. Custom filters are registered by name and referenced from
	// the script's filter attribute.
	Filter interface {
		Include(path string) bool
	}

	// FilterFunc adapts a function to the Filter interface.
	FilterFunc func(path string) bool

	// Comparator orders discovered paths for includeAll. Compare follows
	// the usual contract: negative when a sorts before b.
	Comparator interface {
		Compare(a, b string) int
	}

	// ComparatorFunc adapts a function to the Comparator interface.
	ComparatorFunc func(a, b string) int

	// SetupError marks a failure to resolve a named extension: the name is
	// unregistered, its factory returned nothing, or the produced value
	// lacks the required capability. It is deliberately distinct from
	// resource errors so extension problems never read as missing files.
	SetupError struct {
		Name   string
		Reason string
	}

	// Registry resolves includeAll's filter and resourceComparator
	// references. Hosts register factories under the names scripts use;
	// the compiler only ever resolves, never registers.
	Registry struct {
		factories map[string]func() any
	}
)

// Include calls f.
func (f FilterFunc) Include(path string) bool { return f(path) }

// Compare calls f.
func (f ComparatorFunc) Compare(a, b string) int { return f(a, b) }

func (e *SetupError) Error() string {
	return fmt.Sprintf("failed to set up %q: %s", e.Name, e.Reason)
}

// IsSetupError reports whether err is an extension-resolution failure.
func IsSetupError(err error) bool {
	_, ok := err.(*SetupError)

	return ok
}

// NewRegistry creates an empty extension registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]func() any)}
}

// Register binds a factory to a name. Later registrations for the same name
// win.
func (r *Registry) Register(name string, factory func() any) {
	r.factories[name] = factory
}

// Filter resolves a named filter. Any failure, including a factory whose
// product is not a Filter, is a SetupError.
func (r *Registry) Filter(name string) (Filter, error) {
	v, err := r.resolve(name)
	if err != nil {
		return nil, err
	}

	f, ok := v.(Filter)
	if !ok {
		return nil, &SetupError{Name: name, Reason: "not a resource filter"}
	}

	return f, nil
}

// Comparator resolves a named comparator. Any failure, including a factory
// whose product is not a Comparator, is a SetupError.
func (r *Registry) Comparator(name string) (Comparator, error) {
	v, err := r.resolve(name)
	if err != nil {
		return nil, err
	}

	c, ok := v.(Comparator)
	if !ok {
		return nil, &SetupError{Name: name, Reason: "not a resource comparator"}
	}

	return c, nil
}

func (r *Registry) resolve(name string) (any, error) {
	if r == nil {
		return nil, &SetupError{Name: name, Reason: "no extension registry configured"}
	}

	factory, ok := r.factories[name]
	if !ok {
		return nil, &SetupError{Name: name, Reason: "not registered"}
	}

	v := factory()
	if v == nil {
		return nil, &SetupError{Name: name, Reason: "factory returned nil"}
	}

	return v, nil
}
