package change

import "sort"

type (
	// Change is one structural directive: a single migration step owned by a
	// change set. Concrete types expose their attributes as exported fields
	// for the compiler's property binder.
	Change interface {
		// Name returns the directive name that constructs the change, e.g.
		// "createTable".
		Name() string
	}

	// ColumnSupport is implemented by changes that accept nested column
	// directives. NewColumn returns the concrete column record the change
	// expects (plain, add-column, or load-data), which the compiler binds
	// before handing it back through AddColumn.
	ColumnSupport interface {
		NewColumn() Column
		AddColumn(Column)
	}

	// WhereSupport is implemented by changes that accept a where clause.
	WhereSupport interface {
		SetWhere(clause string)
	}

	// WhereParamsSupport is implemented by changes that accept positional
	// where parameters.
	WhereParamsSupport interface {
		AddWhereParam(p *WhereParam)
	}
)

// registry maps directive names to change factories. Names are the exact
// camelCase directive names accepted inside a changeSet block.
var registry = map[string]func() Change{
	"addColumn":                func() Change { return &AddColumn{} },
	"addForeignKeyConstraint":  func() Change { return &AddForeignKeyConstraint{} },
	"addNotNullConstraint":     func() Change { return &AddNotNullConstraint{} },
	"addPrimaryKey":            func() Change { return &AddPrimaryKey{} },
	"addUniqueConstraint":      func() Change { return &AddUniqueConstraint{} },
	"alterSequence":            func() Change { return &AlterSequence{} },
	"createIndex":              func() Change { return &CreateIndex{} },
	"createSequence":           func() Change { return &CreateSequence{} },
	"createTable":              func() Change { return &CreateTable{} },
	"delete":                   func() Change { return &Delete{} },
	"dropColumn":               func() Change { return &DropColumn{} },
	"dropForeignKeyConstraint": func() Change { return &DropForeignKeyConstraint{} },
	"dropIndex":                func() Change { return &DropIndex{} },
	"dropNotNullConstraint":    func() Change { return &DropNotNullConstraint{} },
	"dropSequence":             func() Change { return &DropSequence{} },
	"dropTable":                func() Change { return &DropTable{} },
	"empty":                    func() Change { return &Empty{} },
	"insert":                   func() Change { return &Insert{} },
	"loadData":                 func() Change { return &LoadData{} },
	"output":                   func() Change { return &Output{} },
	"renameColumn":             func() Change { return &RenameColumn{} },
	"renameTable":              func() Change { return &RenameTable{} },
	"sql":                      func() Change { return &RawSQL{} },
	"sqlFile":                  func() Change { return &SQLFile{} },
	"stop":                     func() Change { return &Stop{} },
	"tagDatabase":              func() Change { return &TagDatabase{} },
	"update":                   func() Change { return &Update{} },
}

// New constructs an empty change record for the named directive. Returns
// false when the name is not a known change directive.
func New(name string) (Change, bool) {
	factory, ok := registry[name]
	if !ok {
		return nil, false
	}

	return factory(), true
}

// Names returns the known change directive names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
