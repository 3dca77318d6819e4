package compiler

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"

	"github.com/pseudomuto/changeling/pkg/changelog"
	"github.com/pseudomuto/changeling/pkg/parser"
	"github.com/pseudomuto/changeling/pkg/resource"
)

// buildProperty writes one or more entries into the document's parameter
// table. The inline form supplies name and value directly; the file form
// loads key=value pairs from a properties file, applying the same filters to
// every loaded entry.
func (st *compile) buildProperty(doc *changelog.ChangeLog, d *parser.Directive) error {
	attrs := directiveAttributes(d)
	if err := validateAttributes("property", doc.PhysicalFilePath, attrs, propertyAttrs); err != nil {
		return err
	}

	param := func(value any) *changelog.Parameter {
		p := &changelog.Parameter{
			Value:  value,
			Global: attrs.boolean(doc, "global", true),
		}

		// contextFilter is the current name for context; the newer name
		// wins when both are supplied.
		if ctx := attrs.text(doc, "contextFilter"); ctx != "" {
			p.Contexts = changelog.NewContextExpression(ctx)
		} else if ctx := attrs.text(doc, "context"); ctx != "" {
			p.Contexts = changelog.NewContextExpression(ctx)
		}

		if labels := attrs.text(doc, "labels"); labels != "" {
			p.Labels = changelog.NewLabels(labels)
		}

		if dbms := attrs.text(doc, "dbms"); dbms != "" {
			p.DBMS = strings.Split(dbms, ",")
		}

		return p
	}

	if file := attrs.text(doc, "file"); file != "" {
		return st.loadPropertyFile(doc, file, attrs.boolean(doc, "relativeToChangelogFile", false), param)
	}

	name := attrs.text(doc, "name")
	if name == "" {
		return errors.Errorf("property requires a name or a file (%s)", doc.PhysicalFilePath)
	}

	doc.Parameters.Set(name, param(expandValue(doc, attrs.raw("value"))))

	return nil
}

// loadPropertyFile reads key=value pairs (one per line, # and ! comments)
// and writes each as a parameter carrying the property directive's filters.
func (st *compile) loadPropertyFile(doc *changelog.ChangeLog, file string, relative bool, param func(any) *changelog.Parameter) error {
	basePath := ""
	if relative {
		basePath = parentDir(doc.PhysicalFilePath)
	}

	f, err := st.c.accessor.Open(basePath, file)
	if err != nil {
		if resource.IsNotFound(err) {
			return errors.Wrapf(err, "property file does not exist: %s", file)
		}

		return err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		doc.Parameters.Set(strings.TrimSpace(key), param(strings.TrimSpace(value)))
	}

	return errors.Wrapf(scanner.Err(), "failed to read property file: %s", file)
}
