package changelog

import "strings"

// Labels is a change set's label applicability filter. It uses the same
// expression grammar as ContextExpression ("v1.2 and !experimental",
// "nightly, weekly") evaluated against the runtime label set.
type Labels struct {
	expr string
}

// NewLabels creates a label filter from its textual form.
func NewLabels(expr string) *Labels {
	return &Labels{expr: strings.TrimSpace(expr)}
}

// String returns the original textual form of the filter.
func (l *Labels) String() string {
	if l == nil {
		return ""
	}

	return l.expr
}

// Empty reports whether the filter is absent or blank.
func (l *Labels) Empty() bool {
	return l == nil || l.expr == ""
}

// Matches evaluates the filter against the runtime labels. An empty filter
// matches everything, as does an empty runtime label set.
func (l *Labels) Matches(runtime []string) bool {
	if l.Empty() || len(runtime) == 0 {
		return true
	}

	set := make(map[string]bool, len(runtime))
	for _, r := range runtime {
		for _, part := range strings.Split(r, ",") {
			if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
				set[part] = true
			}
		}
	}

	return matchExpr(l.expr, func(name string) bool {
		return set[strings.ToLower(name)]
	})
}

// MarshalYAML renders the filter as its textual form.
func (l *Labels) MarshalYAML() (any, error) {
	return l.String(), nil
}
