package compiler

import (
	"github.com/pkg/errors"

	"github.com/pseudomuto/changeling/pkg/change"
	"github.com/pseudomuto/changeling/pkg/changelog"
	"github.com/pseudomuto/changeling/pkg/parser"
)

// buildColumn builds one column record for a change. The concrete record
// type comes from the change itself, so the legal attribute set is implied
// by the accessors that record exposes. A change without column support
// converts into a descriptive compile error rather than a binder failure.
func (st *compile) buildColumn(doc *changelog.ChangeLog, cs *changelog.ChangeSet, ch change.Change, d *parser.Directive) error {
	support, ok := ch.(change.ColumnSupport)
	if !ok {
		return errors.Errorf("columns are not supported by %s (change set: %s)", ch.Name(), cs.ID)
	}

	col := support.NewColumn()
	for _, arg := range d.Named() {
		if err := bindProperty(col, arg.Name, expandValue(doc, arg.Value.Interface())); err != nil {
			return errors.Wrapf(err, "invalid column for %s (change set: %s)", ch.Name(), cs.ID)
		}
	}

	if d.Block != nil {
		for _, sub := range d.Block.Directives {
			if sub.Name != "constraints" {
				return errors.Errorf("%q is not a valid column element (change set: %s)", sub.Name, cs.ID)
			}

			if err := st.buildConstraints(doc, cs, col, sub); err != nil {
				return err
			}
		}
	}

	support.AddColumn(col)

	return nil
}

// buildConstraints builds the nested constraints record and attaches it to
// the column.
func (st *compile) buildConstraints(doc *changelog.ChangeLog, cs *changelog.ChangeSet, col change.Column, d *parser.Directive) error {
	constraints := &change.ConstraintsConfig{}
	for _, arg := range d.Named() {
		if err := bindProperty(constraints, arg.Name, expandValue(doc, arg.Value.Interface())); err != nil {
			return errors.Wrapf(err, "invalid constraints (change set: %s)", cs.ID)
		}
	}

	col.Config().Constraints = constraints

	return nil
}

// buildWhereParams appends one positional where parameter per nested param
// directive.
func (st *compile) buildWhereParams(doc *changelog.ChangeLog, cs *changelog.ChangeSet, ch change.Change, d *parser.Directive) error {
	support, ok := ch.(change.WhereParamsSupport)
	if !ok {
		return errors.Errorf("where parameters are not supported by %s (change set: %s)", ch.Name(), cs.ID)
	}

	if d.Block == nil {
		return nil
	}

	for _, sub := range d.Block.Directives {
		if sub.Name != "param" {
			return errors.Errorf("%q is not a valid whereParams element (change set: %s)", sub.Name, cs.ID)
		}

		param := &change.WhereParam{}
		for _, arg := range sub.Named() {
			if err := bindProperty(param, arg.Name, expandValue(doc, arg.Value.Interface())); err != nil {
				return errors.Wrapf(err, "invalid where parameter (change set: %s)", cs.ID)
			}
		}

		support.AddWhereParam(param)
	}

	return nil
}
