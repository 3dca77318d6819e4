package changelog

import "github.com/pkg/errors"

type (
	// PreconditionErrorHandling is an onFail/onError policy for a
	// precondition container.
	PreconditionErrorHandling string

	// Precondition is one node in a document's or change set's precondition
	// tree. The compiler builds the tree; evaluation belongs to the
	// execution engine.
	Precondition interface {
		// Name returns the directive name the node was built from, e.g.
		// "dbms" or "and".
		Name() string
	}

	// PreconditionContainer is the root of a precondition tree. Nested
	// conditions combine with AND semantics.
	PreconditionContainer struct {
		OnFail         PreconditionErrorHandling `yaml:"onFail,omitempty"`
		OnError        PreconditionErrorHandling `yaml:"onError,omitempty"`
		OnFailMessage  string                    `yaml:"onFailMessage,omitempty"`
		OnErrorMessage string                    `yaml:"onErrorMessage,omitempty"`
		Nested         []Precondition            `yaml:"conditions,omitempty"`
	}

	// AndPrecondition is true when every nested condition is true.
	AndPrecondition struct {
		Nested []Precondition `yaml:"and"`
	}

	// OrPrecondition is true when any nested condition is true.
	OrPrecondition struct {
		Nested []Precondition `yaml:"or"`
	}

	// NotPrecondition inverts its nested conditions.
	NotPrecondition struct {
		Nested []Precondition `yaml:"not"`
	}

	// DBMSPrecondition requires a specific target database type.
	DBMSPrecondition struct {
		Type string `yaml:"type"`
	}

	// RunningAsPrecondition requires the connection user to match.
	RunningAsPrecondition struct {
		Username string `yaml:"username"`
	}

	// TableExistsPrecondition requires a table to exist.
	TableExistsPrecondition struct {
		SchemaName string `yaml:"schemaName,omitempty"`
		TableName  string `yaml:"tableName"`
	}

	// ColumnExistsPrecondition requires a column to exist.
	ColumnExistsPrecondition struct {
		SchemaName string `yaml:"schemaName,omitempty"`
		TableName  string `yaml:"tableName"`
		ColumnName string `yaml:"columnName"`
	}

	// SQLCheckPrecondition requires a scalar query to return an expected
	// result. The query text is the directive's positional argument.
	SQLCheckPrecondition struct {
		ExpectedResult string `yaml:"expectedResult"`
		SQL            string `yaml:"sql"`
	}

	// ChangeLogPropertyDefinedPrecondition requires a parameter to be
	// defined, optionally with a specific value.
	ChangeLogPropertyDefinedPrecondition struct {
		Property string `yaml:"property"`
		Value    string `yaml:"value,omitempty"`
	}
)

// Precondition failure/error policies.
const (
	PreconditionHalt     PreconditionErrorHandling = "HALT"
	PreconditionContinue PreconditionErrorHandling = "CONTINUE"
	PreconditionMarkRan  PreconditionErrorHandling = "MARK_RAN"
	PreconditionWarn     PreconditionErrorHandling = "WARN"
)

// ParsePreconditionErrorHandling resolves an onFail/onError policy by its
// exact name.
func ParsePreconditionErrorHandling(name string) (PreconditionErrorHandling, error) {
	switch h := PreconditionErrorHandling(name); h {
	case PreconditionHalt, PreconditionContinue, PreconditionMarkRan, PreconditionWarn:
		return h, nil
	default:
		return "", errors.Errorf("unknown precondition error handling: %q", name)
	}
}

// AddNested appends a condition to the container.
func (p *PreconditionContainer) AddNested(c Precondition) {
	p.Nested = append(p.Nested, c)
}

func (p *PreconditionContainer) Name() string { return "preConditions" }

func (p *AndPrecondition) Name() string { return "and" }

func (p *OrPrecondition) Name() string { return "or" }

func (p *NotPrecondition) Name() string { return "not" }

func (p *DBMSPrecondition) Name() string { return "dbms" }

func (p *RunningAsPrecondition) Name() string { return "runningAs" }

func (p *TableExistsPrecondition) Name() string { return "tableExists" }

func (p *ColumnExistsPrecondition) Name() string { return "columnExists" }

func (p *SQLCheckPrecondition) Name() string { return "sqlCheck" }

func (p *ChangeLogPropertyDefinedPrecondition) Name() string {
	return "changeLogPropertyDefined"
}
