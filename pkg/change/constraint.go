package change

type (
	// AddForeignKeyConstraint adds a foreign key between two tables.
	//
	// OnDelete and OnUpdate are strings, not enums: each accepts either a
	// referential action name (CASCADE, SET NULL, ...) or raw SQL, and the
	// binder must always land on the string form.
	AddForeignKeyConstraint struct {
		ConstraintName string `yaml:"constraintName"`

		BaseTableCatalogName string `yaml:"baseTableCatalogName,omitempty"`
		BaseTableSchemaName  string `yaml:"baseTableSchemaName,omitempty"`
		BaseTableName        string `yaml:"baseTableName"`
		BaseColumnNames      string `yaml:"baseColumnNames"`

		ReferencedTableCatalogName string `yaml:"referencedTableCatalogName,omitempty"`
		ReferencedTableSchemaName  string `yaml:"referencedTableSchemaName,omitempty"`
		ReferencedTableName        string `yaml:"referencedTableName"`
		ReferencedColumnNames      string `yaml:"referencedColumnNames"`

		OnDelete string `yaml:"onDelete,omitempty"`
		OnUpdate string `yaml:"onUpdate,omitempty"`

		Deferrable        bool `yaml:"deferrable,omitempty"`
		InitiallyDeferred bool `yaml:"initiallyDeferred,omitempty"`
		Validate          bool `yaml:"validate,omitempty"`
	}

	// DropForeignKeyConstraint drops a foreign key constraint.
	DropForeignKeyConstraint struct {
		BaseTableCatalogName string `yaml:"baseTableCatalogName,omitempty"`
		BaseTableSchemaName  string `yaml:"baseTableSchemaName,omitempty"`
		BaseTableName        string `yaml:"baseTableName"`
		ConstraintName       string `yaml:"constraintName"`
	}

	// AddPrimaryKey adds a primary key constraint to an existing table.
	AddPrimaryKey struct {
		CatalogName    string `yaml:"catalogName,omitempty"`
		SchemaName     string `yaml:"schemaName,omitempty"`
		TableName      string `yaml:"tableName"`
		ColumnNames    string `yaml:"columnNames"`
		ConstraintName string `yaml:"constraintName,omitempty"`
		Tablespace     string `yaml:"tablespace,omitempty"`
		Clustered      bool   `yaml:"clustered,omitempty"`
	}

	// AddUniqueConstraint adds a unique constraint to an existing table.
	AddUniqueConstraint struct {
		CatalogName    string `yaml:"catalogName,omitempty"`
		SchemaName     string `yaml:"schemaName,omitempty"`
		TableName      string `yaml:"tableName"`
		ColumnNames    string `yaml:"columnNames"`
		ConstraintName string `yaml:"constraintName,omitempty"`
		Tablespace     string `yaml:"tablespace,omitempty"`

		Deferrable        bool `yaml:"deferrable,omitempty"`
		InitiallyDeferred bool `yaml:"initiallyDeferred,omitempty"`
		Disabled          bool `yaml:"disabled,omitempty"`
	}

	// AddNotNullConstraint marks an existing column NOT NULL.
	AddNotNullConstraint struct {
		CatalogName      string `yaml:"catalogName,omitempty"`
		SchemaName       string `yaml:"schemaName,omitempty"`
		TableName        string `yaml:"tableName"`
		ColumnName       string `yaml:"columnName"`
		ColumnDataType   string `yaml:"columnDataType,omitempty"`
		DefaultNullValue string `yaml:"defaultNullValue,omitempty"`
		ConstraintName   string `yaml:"constraintName,omitempty"`
	}

	// DropNotNullConstraint removes a NOT NULL constraint from a column.
	DropNotNullConstraint struct {
		CatalogName    string `yaml:"catalogName,omitempty"`
		SchemaName     string `yaml:"schemaName,omitempty"`
		TableName      string `yaml:"tableName"`
		ColumnName     string `yaml:"columnName"`
		ColumnDataType string `yaml:"columnDataType,omitempty"`
	}
)

func (c *AddForeignKeyConstraint) Name() string { return "addForeignKeyConstraint" }

func (c *DropForeignKeyConstraint) Name() string { return "dropForeignKeyConstraint" }

func (c *AddPrimaryKey) Name() string { return "addPrimaryKey" }

func (c *AddUniqueConstraint) Name() string { return "addUniqueConstraint" }

func (c *AddNotNullConstraint) Name() string { return "addNotNullConstraint" }

func (c *DropNotNullConstraint) Name() string { return "dropNotNullConstraint" }
