package change

import "math/big"

type (
	// Column is implemented by every column record variant. Config returns
	// the shared core so callers can treat the variants uniformly.
	Column interface {
		Config() *ColumnConfig
	}

	// ColumnConfig is the column record used by createTable, insert,
	// update, and delete.
	ColumnConfig struct {
		Name string `yaml:"name"`
		Type string `yaml:"type,omitempty"`

		Value                string                       `yaml:"value,omitempty"`
		ValueNumeric         string                       `yaml:"valueNumeric,omitempty"`
		ValueBoolean         *bool                        `yaml:"valueBoolean,omitempty"`
		ValueDate            string                       `yaml:"valueDate,omitempty"`
		ValueComputed        DatabaseFunction             `yaml:"valueComputed,omitempty"`
		ValueSequenceNext    SequenceNextValueFunction    `yaml:"valueSequenceNext,omitempty"`
		ValueSequenceCurrent SequenceCurrentValueFunction `yaml:"valueSequenceCurrent,omitempty"`

		DefaultValue         string           `yaml:"defaultValue,omitempty"`
		DefaultValueNumeric  string           `yaml:"defaultValueNumeric,omitempty"`
		DefaultValueBoolean  *bool            `yaml:"defaultValueBoolean,omitempty"`
		DefaultValueDate     string           `yaml:"defaultValueDate,omitempty"`
		DefaultValueComputed DatabaseFunction `yaml:"defaultValueComputed,omitempty"`

		AutoIncrement bool     `yaml:"autoIncrement,omitempty"`
		StartWith     *big.Int `yaml:"startWith,omitempty"`
		IncrementBy   *big.Int `yaml:"incrementBy,omitempty"`

		Remarks string `yaml:"remarks,omitempty"`

		Constraints *ConstraintsConfig `yaml:"constraints,omitempty"`
	}

	// AddColumnConfig is the column record used by addColumn; it adds
	// placement attributes to the core record.
	AddColumnConfig struct {
		ColumnConfig `yaml:",inline"`

		BeforeColumn string `yaml:"beforeColumn,omitempty"`
		AfterColumn  string `yaml:"afterColumn,omitempty"`
		Position     int    `yaml:"position,omitempty"`
	}

	// LoadDataColumnConfig is the column record used by loadData. Its Type
	// is an enumerated load-data type rather than a free-form SQL type; the
	// outer field deliberately shadows the embedded one.
	LoadDataColumnConfig struct {
		ColumnConfig `yaml:",inline"`

		Type   LoadDataType `yaml:"type,omitempty"`
		Index  int          `yaml:"index,omitempty"`
		Header string       `yaml:"header,omitempty"`
	}

	// ConstraintsConfig is the nested constraints record of a column
	// definition. Pointer-typed flags distinguish "not supplied" from
	// explicit false.
	ConstraintsConfig struct {
		Nullable              *bool  `yaml:"nullable,omitempty"`
		NotNullConstraintName string `yaml:"notNullConstraintName,omitempty"`

		PrimaryKey           *bool  `yaml:"primaryKey,omitempty"`
		PrimaryKeyName       string `yaml:"primaryKeyName,omitempty"`
		PrimaryKeyTablespace string `yaml:"primaryKeyTablespace,omitempty"`

		Unique               *bool  `yaml:"unique,omitempty"`
		UniqueConstraintName string `yaml:"uniqueConstraintName,omitempty"`

		References            string `yaml:"references,omitempty"`
		ReferencedTableName   string `yaml:"referencedTableName,omitempty"`
		ReferencedColumnNames string `yaml:"referencedColumnNames,omitempty"`
		ForeignKeyName        string `yaml:"foreignKeyName,omitempty"`
		DeleteCascade         *bool  `yaml:"deleteCascade,omitempty"`

		Deferrable        *bool `yaml:"deferrable,omitempty"`
		InitiallyDeferred *bool `yaml:"initiallyDeferred,omitempty"`

		CheckConstraint string `yaml:"checkConstraint,omitempty"`
	}

	// WhereParam is one positional where-clause parameter of an update or
	// delete change.
	WhereParam struct {
		Value         string           `yaml:"value,omitempty"`
		ValueNumeric  string           `yaml:"valueNumeric,omitempty"`
		ValueBoolean  *bool            `yaml:"valueBoolean,omitempty"`
		ValueDate     string           `yaml:"valueDate,omitempty"`
		ValueComputed DatabaseFunction `yaml:"valueComputed,omitempty"`
	}
)

// Config returns the record itself.
func (c *ColumnConfig) Config() *ColumnConfig { return c }

// Config returns the embedded core record.
func (c *AddColumnConfig) Config() *ColumnConfig { return &c.ColumnConfig }

// Config returns the embedded core record.
func (c *LoadDataColumnConfig) Config() *ColumnConfig { return &c.ColumnConfig }
