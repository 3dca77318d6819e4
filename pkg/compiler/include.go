package compiler

import (
	"math"
	gopath "path"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/pseudomuto/changeling/pkg/changelog"
	"github.com/pseudomuto/changeling/pkg/parser"
	"github.com/pseudomuto/changeling/pkg/resource"
)

// includeParams carries the applicability propagation of one include: merged
// change sets inherit these filters when they don't declare their own.
type includeParams struct {
	contexts        *changelog.ContextExpression
	labels          *changelog.Labels
	ignore          bool
	logicalFilePath string
}

func includeParamsFrom(doc *changelog.ChangeLog, attrs *attributes) includeParams {
	p := includeParams{
		ignore:          attrs.boolean(doc, "ignore", false),
		logicalFilePath: attrs.text(doc, "logicalFilePath"),
	}

	// The newer contextFilter name wins when both are supplied.
	contextExpr := attrs.text(doc, "contextFilter")
	if contextExpr == "" {
		contextExpr = attrs.text(doc, "context")
	}
	if contextExpr != "" {
		p.contexts = changelog.NewContextExpression(contextExpr)
	}

	if labels := attrs.text(doc, "labels"); labels != "" {
		p.labels = changelog.NewLabels(labels)
	}

	return p
}

// include resolves a single-file include directive: parse the referenced
// script and merge its fragment into the current document.
func (st *compile) include(doc *changelog.ChangeLog, d *parser.Directive) error {
	attrs := directiveAttributes(d)
	if err := validateAttributes("include", doc.PhysicalFilePath, attrs, includeAttrs); err != nil {
		return err
	}

	file := attrs.text(doc, "file")
	if file == "" {
		return errors.Errorf("include requires a file (%s)", doc.PhysicalFilePath)
	}

	if strings.Contains(file, "$") {
		return errors.Errorf("could not resolve all parameters in include file %q (%s)", file, doc.PhysicalFilePath)
	}

	basePath := ""
	if attrs.boolean(doc, "relativeToChangelogFile", false) {
		basePath = parentDir(doc.PhysicalFilePath)
	}

	return st.includeFile(doc, resource.Resolve(basePath, file),
		attrs.boolean(doc, "errorIfMissing", true), includeParamsFrom(doc, attrs))
}

// includeFile re-enters script compilation for one resolved path and merges
// the resulting fragment into doc.
func (st *compile) includeFile(doc *changelog.ChangeLog, path string, errorIfMissing bool, p includeParams) error {
	// The missing-file tolerance covers the named resource only, so probe
	// it before compiling; a file missing deeper inside the fragment stays
	// fatal regardless of the flag.
	f, err := st.c.accessor.Open("", path)
	if err != nil {
		if resource.IsNotFound(err) {
			if errorIfMissing {
				return errors.Wrapf(err, "failed to include: %s", path)
			}

			return nil
		}

		return err
	}
	_ = f.Close()

	fragment, err := st.parseFile(path)
	if err != nil {
		return err
	}

	for _, cs := range fragment.ChangeSets {
		if cs.Contexts.Empty() && p.contexts != nil {
			cs.Contexts = p.contexts
		}

		if cs.Labels.Empty() && p.labels != nil {
			cs.Labels = p.labels
		}

		if p.ignore {
			cs.Ignore = true
		}

		if p.logicalFilePath != "" {
			cs.FilePath = p.logicalFilePath
		}

		if err := doc.AddChangeSet(cs); err != nil {
			return err
		}
	}

	// An included file's container joins the root tree as one nested node,
	// keeping its own onFail/onError policies and messages.
	if fragment.Preconditions != nil {
		if doc.Preconditions == nil {
			doc.Preconditions = &changelog.PreconditionContainer{}
		}
		doc.Preconditions.AddNested(fragment.Preconditions)
	}

	return nil
}

// includeAll resolves a directory-scan include: discover matching files
// within the depth window, order them, and include each in turn.
func (st *compile) includeAll(doc *changelog.ChangeLog, d *parser.Directive) error {
	attrs := directiveAttributes(d)
	if err := validateAttributes("includeAll", doc.PhysicalFilePath, attrs, includeAllAttrs); err != nil {
		return err
	}

	paths, err := st.discoverFiles(doc, attrs)
	if err != nil {
		return err
	}

	params := includeParamsFrom(doc, attrs)
	for _, path := range paths {
		if err := st.includeFile(doc, path, true, params); err != nil {
			return err
		}
	}

	return nil
}

// discoverFiles performs includeAll's file discovery: path resolution and
// expansion checks, the recursive listing, the depth window, the ends-with
// and custom filters, and the final ordering. The returned slice is empty
// only when errorIfMissingOrEmpty is off.
func (st *compile) discoverFiles(doc *changelog.ChangeLog, attrs *attributes) ([]string, error) {
	dir := attrs.text(doc, "path")
	if dir == "" {
		return nil, errors.Errorf("includeAll requires a path (%s)", doc.PhysicalFilePath)
	}

	// A surviving '$' means an unresolved property, not a literal path
	// character; failing here beats scanning a directory that was never
	// meant to exist.
	if strings.Contains(dir, "$") {
		return nil, errors.Errorf("could not resolve all parameters in includeAll path %q (%s)", dir, doc.PhysicalFilePath)
	}

	tolerant := !attrs.boolean(doc, "errorIfMissingOrEmpty", true)

	basePath := ""
	if attrs.boolean(doc, "relativeToChangelogFile", false) {
		basePath = parentDir(doc.PhysicalFilePath)
	}

	minDepth, err := attrs.integer(doc, "minDepth", 1)
	if err != nil {
		return nil, err
	}

	maxDepth, err := attrs.integer(doc, "maxDepth", math.MaxInt)
	if err != nil {
		return nil, err
	}

	endsWith := strings.ToLower(attrs.text(doc, "endsWithFilter"))

	var filter resource.Filter
	if name := attrs.text(doc, "filter"); name != "" {
		if filter, err = st.c.registry.Filter(name); err != nil {
			return nil, err
		}
	}

	scanRoot := resource.Resolve(basePath, dir)

	paths, err := st.c.accessor.List(basePath, dir, true)
	if err != nil {
		if resource.IsNotFound(err) && tolerant {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "failed to list: %s", scanRoot)
	}

	var selected []string
	for _, p := range paths {
		depth := pathDepth(scanRoot, p)
		if depth < minDepth || depth > maxDepth {
			continue
		}

		if endsWith != "" && !strings.HasSuffix(strings.ToLower(p), endsWith) {
			continue
		}

		if filter != nil && !filter.Include(p) {
			continue
		}

		selected = append(selected, p)
	}

	if name := attrs.text(doc, "resourceComparator"); name != "" {
		comparator, err := st.c.registry.Comparator(name)
		if err != nil {
			return nil, err
		}

		sort.SliceStable(selected, func(i, j int) bool {
			return comparator.Compare(selected[i], selected[j]) < 0
		})
	} else {
		// Default order is full resolved path, ascending: subdirectory
		// contents intermix with sibling files at their lexical position.
		sort.Strings(selected)
	}

	if len(selected) == 0 && !tolerant {
		return nil, errors.Errorf("no changelog files found in: %s (%s)", scanRoot, doc.PhysicalFilePath)
	}

	return selected, nil
}

// pathDepth computes a file's 1-based depth below the scan root: a direct
// child is at depth 1.
func pathDepth(scanRoot, path string) int {
	rel := path
	if scanRoot != "." {
		rel = strings.TrimPrefix(path, scanRoot+"/")
	}

	return strings.Count(rel, "/") + 1
}

// parentDir returns the slash-separated directory of a resolved path, ""
// at the accessor root.
func parentDir(path string) string {
	dir := gopath.Dir(path)
	if dir == "." {
		return ""
	}

	return dir
}
