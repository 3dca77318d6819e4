package change

import "github.com/pkg/errors"

type (
	// DatabaseFunction is a raw database function expression used as a
	// column value, e.g. "now()". It is never quoted by the execution
	// engine.
	DatabaseFunction string

	// SequenceNextValueFunction is a database-portable "next value of
	// sequence" reference.
	SequenceNextValueFunction string

	// SequenceCurrentValueFunction is a database-portable "current value of
	// sequence" reference.
	SequenceCurrentValueFunction string

	// Enum is implemented by attribute types with a fixed set of named
	// constants. The property binder assigns them through SetValue, which
	// performs a case-sensitive constant lookup.
	Enum interface {
		SetValue(name string) error
	}

	// LoadDataType describes how a loadData column's file values are
	// interpreted.
	LoadDataType string
)

// LoadDataType constants.
const (
	LoadDataTypeBoolean  LoadDataType = "BOOLEAN"
	LoadDataTypeNumeric  LoadDataType = "NUMERIC"
	LoadDataTypeDate     LoadDataType = "DATE"
	LoadDataTypeString   LoadDataType = "STRING"
	LoadDataTypeComputed LoadDataType = "COMPUTED"
	LoadDataTypeSequence LoadDataType = "SEQUENCE"
	LoadDataTypeUUID     LoadDataType = "UUID"
	LoadDataTypeSkip     LoadDataType = "SKIP"
	LoadDataTypeUnknown  LoadDataType = "UNKNOWN"
)

// SetValue assigns the enum from its constant name. The lookup is
// case-sensitive: "NUMERIC" resolves, "numeric" does not.
func (t *LoadDataType) SetValue(name string) error {
	switch v := LoadDataType(name); v {
	case LoadDataTypeBoolean, LoadDataTypeNumeric, LoadDataTypeDate, LoadDataTypeString,
		LoadDataTypeComputed, LoadDataTypeSequence, LoadDataTypeUUID, LoadDataTypeSkip,
		LoadDataTypeUnknown:
		*t = v
		return nil
	default:
		return errors.Errorf("no LoadDataType constant named %q", name)
	}
}
