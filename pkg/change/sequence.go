package change

import "math/big"

type (
	// CreateSequence creates a database sequence. The numeric attributes
	// are arbitrary-precision: sequence bounds routinely exceed int64.
	CreateSequence struct {
		CatalogName  string `yaml:"catalogName,omitempty"`
		SchemaName   string `yaml:"schemaName,omitempty"`
		SequenceName string `yaml:"sequenceName"`

		StartValue  *big.Int `yaml:"startValue,omitempty"`
		IncrementBy *big.Int `yaml:"incrementBy,omitempty"`
		MinValue    *big.Int `yaml:"minValue,omitempty"`
		MaxValue    *big.Int `yaml:"maxValue,omitempty"`
		CacheSize   *big.Int `yaml:"cacheSize,omitempty"`

		Cycle    bool   `yaml:"cycle,omitempty"`
		Ordered  bool   `yaml:"ordered,omitempty"`
		DataType string `yaml:"dataType,omitempty"`
	}

	// DropSequence drops an existing sequence.
	DropSequence struct {
		CatalogName  string `yaml:"catalogName,omitempty"`
		SchemaName   string `yaml:"schemaName,omitempty"`
		SequenceName string `yaml:"sequenceName"`
	}

	// AlterSequence changes the parameters of an existing sequence.
	AlterSequence struct {
		CatalogName  string `yaml:"catalogName,omitempty"`
		SchemaName   string `yaml:"schemaName,omitempty"`
		SequenceName string `yaml:"sequenceName"`

		IncrementBy *big.Int `yaml:"incrementBy,omitempty"`
		MinValue    *big.Int `yaml:"minValue,omitempty"`
		MaxValue    *big.Int `yaml:"maxValue,omitempty"`
		CacheSize   *big.Int `yaml:"cacheSize,omitempty"`
		Cycle       bool     `yaml:"cycle,omitempty"`
	}
)

func (c *CreateSequence) Name() string { return "createSequence" }

func (c *DropSequence) Name() string { return "dropSequence" }

func (c *AlterSequence) Name() string { return "alterSequence" }
