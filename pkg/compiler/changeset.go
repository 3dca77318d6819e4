package compiler

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/pseudomuto/changeling/pkg/change"
	"github.com/pseudomuto/changeling/pkg/changelog"
	"github.com/pseudomuto/changeling/pkg/parser"
)

// buildChangeSet compiles one changeSet directive and appends the finished
// change set to the document.
func (st *compile) buildChangeSet(doc *changelog.ChangeLog, d *parser.Directive) error {
	return st.assembleChangeSet(doc, directiveAttributes(d), func(cs *changelog.ChangeSet) error {
		if d.Block == nil {
			return nil
		}

		for _, sub := range d.Block.Directives {
			if err := st.buildChangeSetElement(doc, cs, sub); err != nil {
				return err
			}
		}

		return nil
	})
}

// assembleChangeSet is the change-set construction state machine: whitelist
// validation, filter and quoting resolution, record construction with the
// run-policy defaults, optional scalar application, nested-block execution,
// and finally attachment to the document. populate runs with the change set
// already bound to the document's parameter table but not yet appended.
func (st *compile) assembleChangeSet(doc *changelog.ChangeLog, attrs *attributes, populate func(*changelog.ChangeSet) error) error {
	id := attrs.text(doc, "id")

	owner := "change set: " + id
	if err := validateAttributes("changeSet", owner, attrs, changeSetAttrs); err != nil {
		return err
	}

	if id == "" {
		return errors.Errorf("changeSet requires an id (%s)", doc.PhysicalFilePath)
	}

	author := attrs.text(doc, "author")

	// The newer contextFilter name wins when both are supplied.
	contextExpr := attrs.text(doc, "contextFilter")
	if contextExpr == "" {
		contextExpr = attrs.text(doc, "context")
	}

	quoting := changelog.QuoteLegacy
	if attrs.has("objectQuotingStrategy") {
		// Quoting is the one enumerated attribute the property binder is
		// never allowed to resolve; it goes through the explicit parse.
		var err error
		if quoting, err = changelog.ParseObjectQuotingStrategy(attrs.text(doc, "objectQuotingStrategy")); err != nil {
			return errors.Wrapf(err, "invalid changeSet (%s)", owner)
		}
	}

	filePath := attrs.text(doc, "logicalFilePath")
	if filePath == "" {
		filePath = attrs.text(doc, "filePath")
	}
	if filePath == "" {
		filePath = doc.FilePath()
	}

	cs := changelog.NewChangeSet(id, author, filePath)
	cs.RunAlways = attrs.boolean(doc, "runAlways", false)
	cs.RunOnChange = attrs.boolean(doc, "runOnChange", false)
	cs.RunInTransaction = attrs.boolean(doc, "runInTransaction", true)
	cs.QuotingStrategy = quoting

	if contextExpr != "" {
		cs.Contexts = changelog.NewContextExpression(contextExpr)
	}

	if labels := attrs.text(doc, "labels"); labels != "" {
		cs.Labels = changelog.NewLabels(labels)
	}

	if dbms := attrs.text(doc, "dbms"); dbms != "" {
		for _, part := range strings.Split(dbms, ",") {
			cs.DBMS = append(cs.DBMS, strings.TrimSpace(part))
		}
	}

	if attrs.has("runWith") {
		runWith := attrs.text(doc, "runWith")
		cs.RunWith = &runWith
	}

	if attrs.has("runWithSpoolFile") {
		spool := attrs.text(doc, "runWithSpoolFile")
		cs.RunWithSpoolFile = &spool
	}

	// Bind the parameter table before the nested block runs so nested
	// expansion sees changelog-scoped properties.
	cs.SetChangeLog(doc)

	// The remaining optional scalars apply only when explicitly supplied;
	// omission must not introduce a value.
	if attrs.has("failOnError") {
		failOnError := attrs.boolean(doc, "failOnError", false)
		cs.FailOnError = &failOnError
	}

	if attrs.has("onValidationFail") {
		onFail, err := changelog.ParseValidationFailOption(attrs.text(doc, "onValidationFail"))
		if err != nil {
			return errors.Wrapf(err, "invalid changeSet (%s)", owner)
		}
		cs.OnValidationFail = &onFail
	}

	if attrs.has("created") {
		created := attrs.text(doc, "created")
		cs.Created = &created
	}

	if attrs.has("runOrder") {
		runOrder, err := changelog.ParseRunOrder(attrs.text(doc, "runOrder"))
		if err != nil {
			return errors.Wrapf(err, "invalid changeSet (%s)", owner)
		}
		cs.RunOrder = &runOrder
	}

	if attrs.has("ignore") {
		cs.Ignore = attrs.boolean(doc, "ignore", false)
	}

	if err := populate(cs); err != nil {
		return err
	}

	return doc.AddChangeSet(cs)
}

// buildChangeSetElement dispatches one directive inside a changeSet block.
func (st *compile) buildChangeSetElement(doc *changelog.ChangeLog, cs *changelog.ChangeSet, d *parser.Directive) error {
	switch d.Name {
	case "comment":
		cs.Comment = positionalText(doc, d)

		return nil

	case "validCheckSum":
		if sum := positionalText(doc, d); sum != "" {
			cs.ValidCheckSums = append(cs.ValidCheckSums, sum)
		}

		return nil

	case "preConditions":
		container, err := st.buildPreconditions(doc, d)
		if err != nil {
			return errors.Wrapf(err, "invalid changeSet (change set: %s)", cs.ID)
		}
		cs.Preconditions = container

		return nil

	case "rollback":
		return st.buildRollback(doc, cs, d)
	}

	ch, err := st.buildChange(doc, cs, d)
	if err != nil {
		return err
	}
	cs.AddChange(ch)

	return nil
}

// buildChange constructs and populates one structural directive.
func (st *compile) buildChange(doc *changelog.ChangeLog, cs *changelog.ChangeSet, d *parser.Directive) (change.Change, error) {
	ch, ok := change.New(d.Name)
	if !ok {
		return nil, errors.Errorf("%q is not a valid changeSet element (change set: %s)", d.Name, cs.ID)
	}

	if text := positionalText(doc, d); text != "" {
		if err := applyPositional(ch, text); err != nil {
			return nil, errors.Wrapf(err, "invalid %s change (change set: %s)", d.Name, cs.ID)
		}
	}

	for _, arg := range d.Named() {
		if err := bindProperty(ch, arg.Name, expandValue(doc, arg.Value.Interface())); err != nil {
			return nil, errors.Wrapf(err, "invalid %s change (change set: %s)", d.Name, cs.ID)
		}
	}

	if d.Block != nil {
		for _, sub := range d.Block.Directives {
			if err := st.buildChangeElement(doc, cs, ch, sub); err != nil {
				return nil, err
			}
		}
	}

	return ch, nil
}

// buildChangeElement dispatches one directive nested inside a change block:
// column definitions, the where clause, and positional where parameters.
func (st *compile) buildChangeElement(doc *changelog.ChangeLog, cs *changelog.ChangeSet, ch change.Change, d *parser.Directive) error {
	switch d.Name {
	case "column":
		return st.buildColumn(doc, cs, ch, d)

	case "where":
		ws, ok := ch.(change.WhereSupport)
		if !ok {
			return errors.Errorf("a where clause is not supported by %s (change set: %s)", ch.Name(), cs.ID)
		}
		ws.SetWhere(positionalText(doc, d))

		return nil

	case "whereParams":
		return st.buildWhereParams(doc, cs, ch, d)

	default:
		return errors.Errorf("%q is not a valid %s element (change set: %s)", d.Name, ch.Name(), cs.ID)
	}
}

// buildRollback populates a change set's rollback sequence from any of the
// three forms: raw SQL positional arguments, a nested block of change
// directives, or a reference to a previously compiled change set.
func (st *compile) buildRollback(doc *changelog.ChangeLog, cs *changelog.ChangeSet, d *parser.Directive) error {
	attrs := directiveAttributes(d)
	if err := validateAttributes("rollback", "change set: "+cs.ID, attrs, rollbackAttrs); err != nil {
		return err
	}

	for _, v := range d.Positional() {
		sql := stringOf(expandValue(doc, v))
		if strings.TrimSpace(sql) != "" {
			cs.AddRollbackChange(&change.RawSQL{SQL: sql})
		}
	}

	if d.Block != nil {
		for _, sub := range d.Block.Directives {
			ch, err := st.buildChange(doc, cs, sub)
			if err != nil {
				return err
			}
			cs.AddRollbackChange(ch)
		}
	}

	if attrs.has("changeSetId") {
		id := attrs.text(doc, "changeSetId")
		author := attrs.text(doc, "changeSetAuthor")
		path := attrs.text(doc, "changeSetPath")

		ref := doc.FindChangeSet(id, author, path)
		if ref == nil {
			return errors.Errorf("unable to find change set with id %q and author %q for rollback (change set: %s)",
				id, author, cs.ID)
		}

		for _, ch := range ref.Changes {
			cs.AddRollbackChange(ch)
		}
	}

	return nil
}

// applyPositional routes a directive's positional text to the change types
// that accept one.
func applyPositional(ch change.Change, text string) error {
	switch t := ch.(type) {
	case *change.RawSQL:
		t.SetSQL(text)
	case *change.Stop:
		t.SetMessage(text)
	case *change.Output:
		t.Message = text
	default:
		return errors.Errorf("%s does not accept a positional value", ch.Name())
	}

	return nil
}

// positionalText joins a directive's positional arguments into one expanded
// string. Directives like comment and where carry exactly one; sql may carry
// several which concatenate in order.
func positionalText(doc *changelog.ChangeLog, d *parser.Directive) string {
	var parts []string
	for _, v := range d.Positional() {
		parts = append(parts, stringOf(expandValue(doc, v)))
	}

	return strings.Join(parts, "\n")
}
