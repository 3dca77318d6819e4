package change

type (
	// CreateTable creates a new table with an ordered list of column
	// definitions.
	CreateTable struct {
		CatalogName string `yaml:"catalogName,omitempty"`
		SchemaName  string `yaml:"schemaName,omitempty"`
		TableName   string `yaml:"tableName"`
		Tablespace  string `yaml:"tablespace,omitempty"`
		Remarks     string `yaml:"remarks,omitempty"`
		IfNotExists bool   `yaml:"ifNotExists,omitempty"`

		Columns []*ColumnConfig `yaml:"columns"`
	}

	// DropTable drops an existing table.
	DropTable struct {
		CatalogName        string `yaml:"catalogName,omitempty"`
		SchemaName         string `yaml:"schemaName,omitempty"`
		TableName          string `yaml:"tableName"`
		CascadeConstraints bool   `yaml:"cascadeConstraints,omitempty"`
	}

	// RenameTable renames an existing table.
	RenameTable struct {
		CatalogName  string `yaml:"catalogName,omitempty"`
		SchemaName   string `yaml:"schemaName,omitempty"`
		OldTableName string `yaml:"oldTableName"`
		NewTableName string `yaml:"newTableName"`
	}

	// AddColumn adds one or more columns to an existing table.
	AddColumn struct {
		CatalogName string `yaml:"catalogName,omitempty"`
		SchemaName  string `yaml:"schemaName,omitempty"`
		TableName   string `yaml:"tableName"`

		Columns []*AddColumnConfig `yaml:"columns"`
	}

	// DropColumn drops a column from an existing table.
	DropColumn struct {
		CatalogName string `yaml:"catalogName,omitempty"`
		SchemaName  string `yaml:"schemaName,omitempty"`
		TableName   string `yaml:"tableName"`
		ColumnName  string `yaml:"columnName"`
	}

	// RenameColumn renames a column of an existing table.
	RenameColumn struct {
		CatalogName    string `yaml:"catalogName,omitempty"`
		SchemaName     string `yaml:"schemaName,omitempty"`
		TableName      string `yaml:"tableName"`
		OldColumnName  string `yaml:"oldColumnName"`
		NewColumnName  string `yaml:"newColumnName"`
		ColumnDataType string `yaml:"columnDataType,omitempty"`
		Remarks        string `yaml:"remarks,omitempty"`
	}
)

func (c *CreateTable) Name() string { return "createTable" }

// NewColumn returns a plain column record.
func (c *CreateTable) NewColumn() Column { return &ColumnConfig{} }

// AddColumn appends a bound column definition.
func (c *CreateTable) AddColumn(col Column) {
	c.Columns = append(c.Columns, col.Config())
}

func (c *DropTable) Name() string { return "dropTable" }

func (c *RenameTable) Name() string { return "renameTable" }

func (c *AddColumn) Name() string { return "addColumn" }

// NewColumn returns an add-column record, which carries placement
// attributes on top of the core column record.
func (c *AddColumn) NewColumn() Column { return &AddColumnConfig{} }

// AddColumn appends a bound column definition.
func (c *AddColumn) AddColumn(col Column) {
	if ac, ok := col.(*AddColumnConfig); ok {
		c.Columns = append(c.Columns, ac)
	}
}

func (c *DropColumn) Name() string { return "dropColumn" }

func (c *RenameColumn) Name() string { return "renameColumn" }
