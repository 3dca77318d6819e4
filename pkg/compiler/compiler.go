package compiler

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/pseudomuto/changeling/pkg/changelog"
	"github.com/pseudomuto/changeling/pkg/parser"
	"github.com/pseudomuto/changeling/pkg/resource"
)

// Extension is the file extension of closure-style changelog scripts.
const Extension = ".changelog"

// maxIncludeDepth caps inclusion nesting. A well-formed project never gets
// anywhere near this; hitting it means runaway nesting that cycle detection
// could not catch (distinct physical paths all the way down).
const maxIncludeDepth = 64

type (
	// Compiler compiles changelog scripts into changelog documents. A
	// Compiler is stateless across Parse calls and safe for reuse; each
	// call builds one document.
	Compiler struct {
		accessor resource.Accessor
		registry *resource.Registry
		database string
		contexts *changelog.Contexts
		labels   []string
		params   map[string]any
	}

	// Option configures a Compiler.
	Option func(*Compiler)

	// compile is the state of one Parse call: the shared parameter table
	// and the stack of physical paths currently being compiled, used for
	// cycle detection.
	compile struct {
		c      *Compiler
		params *changelog.Parameters
		stack  []string
	}
)

// WithRegistry supplies the extension registry used to resolve includeAll's
// custom filters and comparators by name.
func WithRegistry(r *resource.Registry) Option {
	return func(c *Compiler) { c.registry = r }
}

// WithDatabase binds the compile to a target database type, e.g.
// "postgresql". Parameters with non-matching dbms filters become invisible.
func WithDatabase(database string) Option {
	return func(c *Compiler) { c.database = database }
}

// WithContexts binds the compile to runtime contexts used for parameter
// filtering.
func WithContexts(contexts ...string) Option {
	return func(c *Compiler) { c.contexts = changelog.NewContexts(contexts...) }
}

// WithLabels binds the compile to runtime labels used for parameter
// filtering.
func WithLabels(labels ...string) Option {
	return func(c *Compiler) { c.labels = labels }
}

// WithParameters seeds host-supplied parameters into every compiled
// document's parameter table.
func WithParameters(params map[string]any) Option {
	return func(c *Compiler) { c.params = params }
}

// New creates a Compiler reading scripts through the given accessor.
func New(accessor resource.Accessor, opts ...Option) *Compiler {
	c := &Compiler{accessor: accessor}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Supports reports whether the compiler handles the given file. This is the
// discovery half of the host plugin contract.
func (c *Compiler) Supports(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), Extension)
}

// Parse compiles the script at path (relative to the accessor root) and
// returns the fully-populated document. A failure anywhere, including inside
// a nested include, aborts the whole compile: a document is returned fully
// populated or not at all.
func (c *Compiler) Parse(path string) (*changelog.ChangeLog, error) {
	st := &compile{c: c}

	st.params = changelog.NewParameters(c.database, c.contexts, c.labels)
	for name, value := range c.params {
		st.params.SetValue(name, value)
	}

	return st.parseFile(path)
}

// parseFile compiles one physical script into its own document fragment.
// Nested fragments share the compile's parameter table.
func (st *compile) parseFile(path string) (*changelog.ChangeLog, error) {
	for _, active := range st.stack {
		if active == path {
			return nil, errors.Errorf("circular include detected: %s is already being compiled (stack: %s)",
				path, strings.Join(st.stack, " -> "))
		}
	}

	if len(st.stack) >= maxIncludeDepth {
		return nil, errors.Errorf("include nesting exceeds %d levels at: %s", maxIncludeDepth, path)
	}

	st.stack = append(st.stack, path)
	defer func() { st.stack = st.stack[:len(st.stack)-1] }()

	f, err := st.c.accessor.Open("", path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	src, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read: %s", path)
	}

	script, err := parser.ParseString(string(src))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse: %s", path)
	}

	doc := changelog.New(path)
	doc.Parameters = st.params

	if err := st.buildChangeLog(doc, script); err != nil {
		return nil, err
	}

	return doc, nil
}

// buildChangeLog applies the script's single databaseChangeLog directive to
// the document.
func (st *compile) buildChangeLog(doc *changelog.ChangeLog, script *parser.Script) error {
	if len(script.Directives) != 1 || script.Directives[0].Name != "databaseChangeLog" {
		return errors.Errorf("%s: a changelog script must contain exactly one databaseChangeLog element", doc.PhysicalFilePath)
	}

	root := script.Directives[0]

	attrs := directiveAttributes(root)
	if err := validateAttributes("databaseChangeLog", doc.PhysicalFilePath, attrs, changeLogAttrs); err != nil {
		return err
	}

	doc.LogicalFilePath = attrs.text(doc, "logicalFilePath")

	if root.Block == nil {
		return nil
	}

	for _, d := range root.Block.Directives {
		if err := st.buildChangeLogElement(doc, d); err != nil {
			return err
		}
	}

	return nil
}

func (st *compile) buildChangeLogElement(doc *changelog.ChangeLog, d *parser.Directive) error {
	switch d.Name {
	case "property":
		return st.buildProperty(doc, d)
	case "changeSet":
		return st.buildChangeSet(doc, d)
	case "preConditions":
		container, err := st.buildPreconditions(doc, d)
		if err != nil {
			return err
		}
		doc.Preconditions = container

		return nil
	case "include":
		return st.include(doc, d)
	case "includeAll":
		return st.includeAll(doc, d)
	case "includeAllSql":
		return st.includeAllSQL(doc, d)
	default:
		return errors.Errorf("%q is not a valid changelog element (%s)", d.Name, doc.PhysicalFilePath)
	}
}
