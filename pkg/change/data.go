package change

type (
	// Insert inserts one row; each nested column supplies a value.
	Insert struct {
		CatalogName string `yaml:"catalogName,omitempty"`
		SchemaName  string `yaml:"schemaName,omitempty"`
		TableName   string `yaml:"tableName"`
		DBMS        string `yaml:"dbms,omitempty"`

		Columns []*ColumnConfig `yaml:"columns"`
	}

	// Update updates rows matching an optional where clause.
	Update struct {
		CatalogName string `yaml:"catalogName,omitempty"`
		SchemaName  string `yaml:"schemaName,omitempty"`
		TableName   string `yaml:"tableName"`

		Columns     []*ColumnConfig `yaml:"columns"`
		Where       string          `yaml:"where,omitempty"`
		WhereParams []*WhereParam   `yaml:"whereParams,omitempty"`
	}

	// Delete deletes rows matching an optional where clause.
	Delete struct {
		CatalogName string `yaml:"catalogName,omitempty"`
		SchemaName  string `yaml:"schemaName,omitempty"`
		TableName   string `yaml:"tableName"`

		Where       string        `yaml:"where,omitempty"`
		WhereParams []*WhereParam `yaml:"whereParams,omitempty"`
	}

	// LoadData bulk-loads rows from a delimited file.
	LoadData struct {
		CatalogName string `yaml:"catalogName,omitempty"`
		SchemaName  string `yaml:"schemaName,omitempty"`
		TableName   string `yaml:"tableName"`

		File                    string `yaml:"file"`
		RelativeToChangelogFile bool   `yaml:"relativeToChangelogFile,omitempty"`
		Encoding                string `yaml:"encoding,omitempty"`
		Separator               string `yaml:"separator,omitempty"`
		QuotChar                string `yaml:"quotchar,omitempty"`
		CommentLineStartsWith   string `yaml:"commentLineStartsWith,omitempty"`
		UsePreparedStatements   bool   `yaml:"usePreparedStatements,omitempty"`

		Columns []*LoadDataColumnConfig `yaml:"columns"`
	}
)

func (c *Insert) Name() string { return "insert" }

// NewColumn returns a plain column record.
func (c *Insert) NewColumn() Column { return &ColumnConfig{} }

// AddColumn appends a bound value column.
func (c *Insert) AddColumn(col Column) {
	c.Columns = append(c.Columns, col.Config())
}

func (c *Update) Name() string { return "update" }

// NewColumn returns a plain column record.
func (c *Update) NewColumn() Column { return &ColumnConfig{} }

// AddColumn appends a bound value column.
func (c *Update) AddColumn(col Column) {
	c.Columns = append(c.Columns, col.Config())
}

// SetWhere sets the update's where clause.
func (c *Update) SetWhere(clause string) { c.Where = clause }

// AddWhereParam appends one positional where parameter.
func (c *Update) AddWhereParam(p *WhereParam) {
	c.WhereParams = append(c.WhereParams, p)
}

func (c *Delete) Name() string { return "delete" }

// SetWhere sets the delete's where clause.
func (c *Delete) SetWhere(clause string) { c.Where = clause }

// AddWhereParam appends one positional where parameter.
func (c *Delete) AddWhereParam(p *WhereParam) {
	c.WhereParams = append(c.WhereParams, p)
}

func (c *LoadData) Name() string { return "loadData" }

// NewColumn returns a load-data column record.
func (c *LoadData) NewColumn() Column { return &LoadDataColumnConfig{} }

// AddColumn appends a bound load-data column.
func (c *LoadData) AddColumn(col Column) {
	if lc, ok := col.(*LoadDataColumnConfig); ok {
		c.Columns = append(c.Columns, lc)
	}
}
