package compiler

import (
	gopath "path"

	"github.com/pseudomuto/changeling/pkg/change"
	"github.com/pseudomuto/changeling/pkg/changelog"
	"github.com/pseudomuto/changeling/pkg/parser"
)

// includeAllSql's attribute surface partitions three ways: the file-discovery
// keys (shared with includeAll), a change-set subset forwarded to every
// synthesized change set, and a step subset bound onto each sqlFile change.
var (
	sqlBatchChangeSetAttrs = []string{
		"author",
		"dbms",
		"runAlways",
		"runOnChange",
		"context",
		"contextFilter",
		"labels",
		"failOnError",
		"onValidationFail",
		"objectQuotingStrategy",
		"created",
		"ignore",
		"runWith",
		"runWithSpoolFile",
	}

	sqlBatchStepAttrs = []string{
		"dbms",
		"encoding",
		"endDelimiter",
		"relativeToChangeLogFile",
		"splitStatements",
		"stripComments",
	}

	sqlBatchIDAttrs = []string{
		"idPrefix",
		"idSuffix",
		"idKeepsExtension",
	}
)

func sqlBatchAttrs() []string {
	allowed := make([]string, 0, len(includeAllAttrs)+len(sqlBatchChangeSetAttrs)+len(sqlBatchStepAttrs)+len(sqlBatchIDAttrs))
	allowed = append(allowed, includeAllAttrs...)
	allowed = append(allowed, sqlBatchChangeSetAttrs...)
	allowed = append(allowed, sqlBatchStepAttrs...)
	allowed = append(allowed, sqlBatchIDAttrs...)

	return allowed
}

// includeAllSQL discovers SQL files the same way includeAll does, then
// synthesizes one change set per file, each containing a single sqlFile
// change. The change-set identifier derives from the filename. Zero
// discovered files is a no-op; discovery's own empty-tolerance policy
// governs whether that is reachable.
func (st *compile) includeAllSQL(doc *changelog.ChangeLog, d *parser.Directive) error {
	attrs := directiveAttributes(d)
	if err := validateAttributes("includeAllSql", doc.PhysicalFilePath, attrs, sqlBatchAttrs()); err != nil {
		return err
	}

	paths, err := st.discoverFiles(doc, attrs)
	if err != nil {
		return err
	}

	keepExt := attrs.boolean(doc, "idKeepsExtension", false)
	idPrefix := attrs.text(doc, "idPrefix")
	idSuffix := attrs.text(doc, "idSuffix")

	for _, path := range paths {
		csAttrs := newAttributes()
		csAttrs.set("id", idPrefix+batchChangeSetID(path, keepExt)+idSuffix)

		// logicalFilePath rides along so the synthesized change sets get
		// the same path override single-file include applies.
		for _, name := range append([]string{"logicalFilePath"}, sqlBatchChangeSetAttrs...) {
			if attrs.has(name) {
				csAttrs.set(name, attrs.raw(name))
			}
		}

		step := &change.SQLFile{Path: path}
		for _, name := range sqlBatchStepAttrs {
			if !attrs.has(name) {
				continue
			}

			if err := bindProperty(step, name, expandValue(doc, attrs.raw(name))); err != nil {
				return err
			}
		}

		err := st.assembleChangeSet(doc, csAttrs, func(cs *changelog.ChangeSet) error {
			cs.AddChange(step)
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// batchChangeSetID derives a change-set identifier from a discovered file
// path: the directory is always dropped, the extension unless asked to keep.
func batchChangeSetID(path string, keepExt bool) string {
	id := gopath.Base(path)
	if !keepExt {
		id = id[:len(id)-len(gopath.Ext(id))]
	}

	return id
}
