package changelog

import "strings"

type (
	// Contexts is the set of runtime contexts a compile (and later, a run)
	// is bound to, e.g. {"prod", "eu"}. Matching is case-insensitive.
	Contexts struct {
		values map[string]bool
	}

	// ContextExpression is a change set's context applicability filter,
	// e.g. "prod and !legacy" or "dev, staging". The empty expression
	// matches every runtime context set.
	ContextExpression struct {
		expr string
	}
)

// NewContexts creates a runtime context set from the provided values.
// Comma-separated values are split, so NewContexts("a,b") and
// NewContexts("a", "b") are equivalent.
func NewContexts(values ...string) *Contexts {
	c := &Contexts{values: make(map[string]bool)}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
				c.values[part] = true
			}
		}
	}

	return c
}

// Empty reports whether no runtime contexts are bound.
func (c *Contexts) Empty() bool {
	return c == nil || len(c.values) == 0
}

// Has reports whether the named context is in the runtime set.
func (c *Contexts) Has(name string) bool {
	if c == nil {
		return false
	}

	return c.values[strings.ToLower(name)]
}

// Values returns the runtime contexts in unspecified order.
func (c *Contexts) Values() []string {
	if c == nil {
		return nil
	}

	vals := make([]string, 0, len(c.values))
	for v := range c.values {
		vals = append(vals, v)
	}

	return vals
}

// NewContextExpression creates a context applicability filter from its
// textual form.
func NewContextExpression(expr string) *ContextExpression {
	return &ContextExpression{expr: strings.TrimSpace(expr)}
}

// String returns the original textual form of the expression.
func (c *ContextExpression) String() string {
	if c == nil {
		return ""
	}

	return c.expr
}

// Empty reports whether the expression is absent or blank.
func (c *ContextExpression) Empty() bool {
	return c == nil || c.expr == ""
}

// Matches evaluates the expression against the runtime context set. An empty
// expression matches everything; so does an empty runtime set, since running
// with no contexts selects every change set.
func (c *ContextExpression) Matches(runtime *Contexts) bool {
	if c.Empty() || runtime.Empty() {
		return true
	}

	return matchExpr(c.expr, runtime.Has)
}

// MarshalYAML renders the expression as its textual form.
func (c *ContextExpression) MarshalYAML() (any, error) {
	return c.String(), nil
}
