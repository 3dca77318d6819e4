package change

type (
	// CreateIndex creates an index over one or more columns.
	CreateIndex struct {
		CatalogName string `yaml:"catalogName,omitempty"`
		SchemaName  string `yaml:"schemaName,omitempty"`
		TableName   string `yaml:"tableName"`
		IndexName   string `yaml:"indexName"`
		Tablespace  string `yaml:"tablespace,omitempty"`
		Unique      bool   `yaml:"unique,omitempty"`

		Columns []*ColumnConfig `yaml:"columns"`
	}

	// DropIndex drops an existing index.
	DropIndex struct {
		CatalogName string `yaml:"catalogName,omitempty"`
		SchemaName  string `yaml:"schemaName,omitempty"`
		TableName   string `yaml:"tableName,omitempty"`
		IndexName   string `yaml:"indexName"`
	}
)

func (c *CreateIndex) Name() string { return "createIndex" }

// NewColumn returns a plain column record; only the name matters for an
// index column, but descending order etc. ride on the type attribute.
func (c *CreateIndex) NewColumn() Column { return &ColumnConfig{} }

// AddColumn appends a bound column reference.
func (c *CreateIndex) AddColumn(col Column) {
	c.Columns = append(c.Columns, col.Config())
}

func (c *DropIndex) Name() string { return "dropIndex" }
