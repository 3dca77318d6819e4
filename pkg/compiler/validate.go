package compiler

import "github.com/pkg/errors"

// Per-element attribute whitelists. These are the authoritative surfaces:
// supplying anything outside an element's list fails compilation before any
// object for that element is built.
var (
	changeLogAttrs = []string{"logicalFilePath"}

	propertyAttrs = []string{
		"name", "value", "file", "relativeToChangelogFile",
		"context", "contextFilter", "labels", "dbms", "global",
	}

	changeSetAttrs = []string{
		"id", "author", "dbms", "runAlways", "runOnChange", "context",
		"contextFilter", "labels", "runInTransaction", "failOnError",
		"onValidationFail", "objectQuotingStrategy", "logicalFilePath",
		"filePath", "created", "runOrder", "ignore", "runWith",
		"runWithSpoolFile",
	}

	includeAttrs = []string{
		"file", "relativeToChangelogFile", "errorIfMissing", "context",
		"contextFilter", "labels", "ignore", "logicalFilePath",
	}

	includeAllAttrs = []string{
		"path", "relativeToChangelogFile", "errorIfMissingOrEmpty",
		"resourceComparator", "filter", "context", "contextFilter",
		"labels", "ignore", "logicalFilePath", "minDepth", "maxDepth",
		"endsWithFilter",
	}

	rollbackAttrs = []string{"changeSetId", "changeSetAuthor", "changeSetPath"}

	preconditionsAttrs = []string{
		"onFail", "onError", "onFailMessage", "onErrorMessage",
	}
)

// removedAttrs maps "element.attribute" for attributes that were removed
// outright. Their presence is a distinct error regardless of anything else
// the element supplies; the message always names the replacement.
var removedAttrs = map[string]string{
	"changeSet.alwaysRun": `the "alwaysRun" attribute is no longer supported: use "runAlways" instead`,
}

// validateAttributes checks the supplied attribute names against the
// element's whitelist. Removed attributes are checked first, across the
// whole supplied set; then the first name outside the whitelist fails,
// naming the owning element and change-set context for diagnosability.
func validateAttributes(element, owner string, attrs *attributes, allowed []string) error {
	for _, name := range attrs.names {
		if msg, ok := removedAttrs[element+"."+name]; ok {
			return errors.Errorf("%s (%s)", msg, owner)
		}
	}

	allowedSet := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = true
	}

	for _, name := range attrs.names {
		if !allowedSet[name] {
			return errors.Errorf("unsupported attribute %q on %s (%s)", name, element, owner)
		}
	}

	return nil
}
