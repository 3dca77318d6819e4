package compiler

import (
	"github.com/pkg/errors"

	"github.com/pseudomuto/changeling/pkg/changelog"
	"github.com/pseudomuto/changeling/pkg/parser"
)

// conditionFactories maps leaf precondition names to empty records. The
// property binder populates them, so the legal attributes of each condition
// are the fields its record declares.
var conditionFactories = map[string]func() changelog.Precondition{
	"dbms":                     func() changelog.Precondition { return &changelog.DBMSPrecondition{} },
	"runningAs":                func() changelog.Precondition { return &changelog.RunningAsPrecondition{} },
	"tableExists":              func() changelog.Precondition { return &changelog.TableExistsPrecondition{} },
	"columnExists":             func() changelog.Precondition { return &changelog.ColumnExistsPrecondition{} },
	"sqlCheck":                 func() changelog.Precondition { return &changelog.SQLCheckPrecondition{} },
	"changeLogPropertyDefined": func() changelog.Precondition { return &changelog.ChangeLogPropertyDefinedPrecondition{} },
}

// buildPreconditions compiles a preConditions directive into a container.
func (st *compile) buildPreconditions(doc *changelog.ChangeLog, d *parser.Directive) (*changelog.PreconditionContainer, error) {
	attrs := directiveAttributes(d)
	if err := validateAttributes("preConditions", doc.PhysicalFilePath, attrs, preconditionsAttrs); err != nil {
		return nil, err
	}

	container := &changelog.PreconditionContainer{
		OnFailMessage:  attrs.text(doc, "onFailMessage"),
		OnErrorMessage: attrs.text(doc, "onErrorMessage"),
	}

	if attrs.has("onFail") {
		onFail, err := changelog.ParsePreconditionErrorHandling(attrs.text(doc, "onFail"))
		if err != nil {
			return nil, err
		}
		container.OnFail = onFail
	}

	if attrs.has("onError") {
		onError, err := changelog.ParsePreconditionErrorHandling(attrs.text(doc, "onError"))
		if err != nil {
			return nil, err
		}
		container.OnError = onError
	}

	if d.Block != nil {
		for _, sub := range d.Block.Directives {
			cond, err := st.buildCondition(doc, sub)
			if err != nil {
				return nil, err
			}
			container.AddNested(cond)
		}
	}

	return container, nil
}

// buildCondition compiles one condition node, recursing into the and/or/not
// combinators.
func (st *compile) buildCondition(doc *changelog.ChangeLog, d *parser.Directive) (changelog.Precondition, error) {
	switch d.Name {
	case "and", "or", "not":
		var nested []changelog.Precondition
		if d.Block != nil {
			for _, sub := range d.Block.Directives {
				cond, err := st.buildCondition(doc, sub)
				if err != nil {
					return nil, err
				}
				nested = append(nested, cond)
			}
		}

		switch d.Name {
		case "and":
			return &changelog.AndPrecondition{Nested: nested}, nil
		case "or":
			return &changelog.OrPrecondition{Nested: nested}, nil
		default:
			return &changelog.NotPrecondition{Nested: nested}, nil
		}
	}

	factory, ok := conditionFactories[d.Name]
	if !ok {
		return nil, errors.Errorf("%q is not a valid precondition (%s)", d.Name, doc.PhysicalFilePath)
	}

	cond := factory()
	for _, arg := range d.Named() {
		if err := bindProperty(cond, arg.Name, expandValue(doc, arg.Value.Interface())); err != nil {
			return nil, errors.Wrapf(err, "invalid %s precondition", d.Name)
		}
	}

	// sqlCheck carries its query as positional text.
	if check, ok := cond.(*changelog.SQLCheckPrecondition); ok {
		check.SQL = positionalText(doc, d)
	}

	return cond, nil
}
