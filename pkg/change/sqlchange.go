package change

type (
	// RawSQL runs a literal SQL string. The statement text is the sql
	// directive's positional argument; the named attributes tune how the
	// execution engine splits and dispatches it.
	RawSQL struct {
		SQL             string `yaml:"sql"`
		DBMS            string `yaml:"dbms,omitempty"`
		EndDelimiter    string `yaml:"endDelimiter,omitempty"`
		SplitStatements bool   `yaml:"splitStatements,omitempty"`
		StripComments   bool   `yaml:"stripComments,omitempty"`
		Comment         string `yaml:"comment,omitempty"`
	}

	// SQLFile runs the contents of a SQL file. This is also the record the
	// SQL-batch inclusion synthesizes for every discovered file.
	SQLFile struct {
		Path                    string `yaml:"path"`
		RelativeToChangelogFile bool   `yaml:"relativeToChangelogFile,omitempty"`
		DBMS                    string `yaml:"dbms,omitempty"`
		Encoding                string `yaml:"encoding,omitempty"`
		EndDelimiter            string `yaml:"endDelimiter,omitempty"`
		SplitStatements         bool   `yaml:"splitStatements,omitempty"`
		StripComments           bool   `yaml:"stripComments,omitempty"`
	}
)

// SetSQL sets the statement text from the directive's positional argument.
func (c *RawSQL) SetSQL(sql string) { c.SQL = sql }

func (c *RawSQL) Name() string { return "sql" }

func (c *SQLFile) Name() string { return "sqlFile" }
