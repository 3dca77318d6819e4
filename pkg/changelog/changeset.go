package changelog

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/changeling/pkg/change"
)

type (
	// ObjectQuotingStrategy controls how the execution engine quotes object
	// names for a change set. It is resolved explicitly by the change-set
	// builder rather than through the dynamic property binder.
	ObjectQuotingStrategy string

	// ValidationFailOption is a change set's onValidationFail policy.
	ValidationFailOption string

	// RunOrder forces a change set to run first or last within a run.
	RunOrder string

	// ChangeSet is one atomic, identified unit of migration steps together
	// with its applicability filters and run policy.
	ChangeSet struct {
		ID       string `yaml:"id"`
		Author   string `yaml:"author"`
		FilePath string `yaml:"filePath"`

		// Applicability filters.
		Contexts *ContextExpression `yaml:"contexts,omitempty"`
		Labels   *Labels            `yaml:"labels,omitempty"`
		DBMS     []string           `yaml:"dbms,omitempty"`

		// Run policy. RunInTransaction is the only flag that defaults to
		// true; the pointer-typed fields are nil unless the script supplied
		// them.
		RunAlways        bool                  `yaml:"runAlways"`
		RunOnChange      bool                  `yaml:"runOnChange"`
		RunInTransaction bool                  `yaml:"runInTransaction"`
		FailOnError      *bool                 `yaml:"failOnError,omitempty"`
		OnValidationFail *ValidationFailOption `yaml:"onValidationFail,omitempty"`
		Ignore           bool                  `yaml:"ignore"`
		RunOrder         *RunOrder             `yaml:"runOrder,omitempty"`
		Created          *string               `yaml:"created,omitempty"`
		RunWith          *string               `yaml:"runWith,omitempty"`
		RunWithSpoolFile *string               `yaml:"runWithSpoolFile,omitempty"`
		QuotingStrategy  ObjectQuotingStrategy `yaml:"objectQuotingStrategy"`

		Comment        string   `yaml:"comment,omitempty"`
		ValidCheckSums []string `yaml:"validCheckSums,omitempty"`

		Preconditions *PreconditionContainer `yaml:"preconditions,omitempty"`

		// Changes are the ordered migration steps; Rollback holds the
		// optional compensating steps.
		Changes  []change.Change `yaml:"changes"`
		Rollback []change.Change `yaml:"rollback,omitempty"`

		changeLog *ChangeLog
	}
)

// Object quoting strategies understood by the execution engine.
const (
	QuoteLegacy            ObjectQuotingStrategy = "LEGACY"
	QuoteAllObjects        ObjectQuotingStrategy = "QUOTE_ALL_OBJECTS"
	QuoteOnlyReservedWords ObjectQuotingStrategy = "QUOTE_ONLY_RESERVED_WORDS"
)

// Validation failure policies.
const (
	ValidationFailHalt    ValidationFailOption = "HALT"
	ValidationFailMarkRan ValidationFailOption = "MARK_RAN"
)

// Run order overrides.
const (
	RunOrderFirst RunOrder = "first"
	RunOrderLast  RunOrder = "last"
)

// ParseObjectQuotingStrategy resolves a quoting strategy by its exact name.
func ParseObjectQuotingStrategy(name string) (ObjectQuotingStrategy, error) {
	switch s := ObjectQuotingStrategy(name); s {
	case QuoteLegacy, QuoteAllObjects, QuoteOnlyReservedWords:
		return s, nil
	default:
		return "", errors.Errorf("unknown object quoting strategy: %q", name)
	}
}

// ParseValidationFailOption resolves an onValidationFail policy by its exact
// name.
func ParseValidationFailOption(name string) (ValidationFailOption, error) {
	switch o := ValidationFailOption(name); o {
	case ValidationFailHalt, ValidationFailMarkRan:
		return o, nil
	default:
		return "", errors.Errorf("unknown onValidationFail value: %q", name)
	}
}

// ParseRunOrder resolves a runOrder value by its exact name.
func ParseRunOrder(name string) (RunOrder, error) {
	switch r := RunOrder(name); r {
	case RunOrderFirst, RunOrderLast:
		return r, nil
	default:
		return "", errors.Errorf("unknown runOrder value: %q", name)
	}
}

// NewChangeSet creates a change set with the run-policy defaults: every flag
// off except runInTransaction, legacy quoting.
func NewChangeSet(id, author, filePath string) *ChangeSet {
	return &ChangeSet{
		ID:               id,
		Author:           author,
		FilePath:         filePath,
		RunInTransaction: true,
		QuotingStrategy:  QuoteLegacy,
	}
}

// SetChangeLog binds the owning document, making its parameter table visible
// to nested expansion. Called once, when the builder attaches the change set.
func (c *ChangeSet) SetChangeLog(log *ChangeLog) {
	c.changeLog = log
}

// ChangeLog returns the owning document, or nil before attachment.
func (c *ChangeSet) ChangeLog() *ChangeLog {
	return c.changeLog
}

// AddChange appends one migration step.
func (c *ChangeSet) AddChange(ch change.Change) {
	c.Changes = append(c.Changes, ch)
}

// AddRollbackChange appends one compensating step.
func (c *ChangeSet) AddRollbackChange(ch change.Change) {
	c.Rollback = append(c.Rollback, ch)
}

// Identity returns the "id::author::filePath" identity string used for
// duplicate detection and diagnostics.
func (c *ChangeSet) Identity() string {
	return c.ID + "::" + c.Author + "::" + c.FilePath
}

// MarshalYAML renders the change set with every change keyed by its directive
// name, so a dumped document reads like the script that produced it.
func (c *ChangeSet) MarshalYAML() (any, error) {
	return struct {
		ID               string                     `yaml:"id"`
		Author           string                     `yaml:"author"`
		FilePath         string                     `yaml:"filePath"`
		Contexts         *ContextExpression         `yaml:"contexts,omitempty"`
		Labels           *Labels                    `yaml:"labels,omitempty"`
		DBMS             []string                   `yaml:"dbms,omitempty"`
		RunAlways        bool                       `yaml:"runAlways"`
		RunOnChange      bool                       `yaml:"runOnChange"`
		RunInTransaction bool                       `yaml:"runInTransaction"`
		FailOnError      *bool                      `yaml:"failOnError,omitempty"`
		OnValidationFail *ValidationFailOption      `yaml:"onValidationFail,omitempty"`
		Ignore           bool                       `yaml:"ignore"`
		RunOrder         *RunOrder                  `yaml:"runOrder,omitempty"`
		Created          *string                    `yaml:"created,omitempty"`
		RunWith          *string                    `yaml:"runWith,omitempty"`
		RunWithSpoolFile *string                    `yaml:"runWithSpoolFile,omitempty"`
		QuotingStrategy  ObjectQuotingStrategy      `yaml:"objectQuotingStrategy"`
		Comment          string                     `yaml:"comment,omitempty"`
		ValidCheckSums   []string                   `yaml:"validCheckSums,omitempty"`
		Preconditions    *PreconditionContainer     `yaml:"preconditions,omitempty"`
		Changes          []map[string]change.Change `yaml:"changes"`
		Rollback         []map[string]change.Change `yaml:"rollback,omitempty"`
	}{
		ID:               c.ID,
		Author:           c.Author,
		FilePath:         c.FilePath,
		Contexts:         c.Contexts,
		Labels:           c.Labels,
		DBMS:             c.DBMS,
		RunAlways:        c.RunAlways,
		RunOnChange:      c.RunOnChange,
		RunInTransaction: c.RunInTransaction,
		FailOnError:      c.FailOnError,
		OnValidationFail: c.OnValidationFail,
		Ignore:           c.Ignore,
		RunOrder:         c.RunOrder,
		Created:          c.Created,
		RunWith:          c.RunWith,
		RunWithSpoolFile: c.RunWithSpoolFile,
		QuotingStrategy:  c.QuotingStrategy,
		Comment:          c.Comment,
		ValidCheckSums:   c.ValidCheckSums,
		Preconditions:    c.Preconditions,
		Changes:          namedChanges(c.Changes),
		Rollback:         namedChanges(c.Rollback),
	}, nil
}

func namedChanges(changes []change.Change) []map[string]change.Change {
	if changes == nil {
		return nil
	}

	named := make([]map[string]change.Change, 0, len(changes))
	for _, ch := range changes {
		named = append(named, map[string]change.Change{ch.Name(): ch})
	}

	return named
}
