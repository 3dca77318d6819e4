package changelog

import (
	"github.com/pkg/errors"
)

// ChangeLog is the root migration document: the compiled form of one
// changelog script plus everything it includes.
type ChangeLog struct {
	// LogicalFilePath overrides the physical path as the identity recorded
	// against each change set. Empty when no logicalFilePath was supplied.
	LogicalFilePath string `yaml:"logicalFilePath,omitempty"`

	// PhysicalFilePath is the location the script was read from, relative to
	// the resource accessor's root. Relative includes resolve against its
	// directory.
	PhysicalFilePath string `yaml:"physicalFilePath"`

	// Parameters is the named parameter table used for ${name} expansion.
	// It may be nil, in which case expansion is a no-op.
	Parameters *Parameters `yaml:"-"`

	// Preconditions is the document-level precondition tree.
	Preconditions *PreconditionContainer `yaml:"preconditions,omitempty"`

	// ChangeSets is the ordered change-set sequence.
	ChangeSets []*ChangeSet `yaml:"changeSets"`
}

// New creates an empty document for the given physical path.
func New(physicalFilePath string) *ChangeLog {
	return &ChangeLog{PhysicalFilePath: physicalFilePath}
}

// FilePath returns the logical path when one is set, otherwise the physical
// path. Change sets built without an explicit path inherit this value.
func (c *ChangeLog) FilePath() string {
	if c.LogicalFilePath != "" {
		return c.LogicalFilePath
	}

	return c.PhysicalFilePath
}

// ExpandExpressions substitutes ${name} placeholders in text using the
// document's parameter table. A document without a table returns the text
// unchanged.
func (c *ChangeLog) ExpandExpressions(text string) string {
	if c.Parameters == nil {
		return text
	}

	return c.Parameters.Expand(text)
}

// AddChangeSet appends a change set to the document's sequence, binding the
// document to it. Appending a second change set with the same id, author,
// and file path is an error.
func (c *ChangeLog) AddChangeSet(cs *ChangeSet) error {
	for _, existing := range c.ChangeSets {
		if existing.ID == cs.ID && existing.Author == cs.Author && existing.FilePath == cs.FilePath {
			return errors.Errorf("duplicate change set: %s", cs.Identity())
		}
	}

	cs.SetChangeLog(c)
	c.ChangeSets = append(c.ChangeSets, cs)

	return nil
}

// FindChangeSet returns the change set with the given id, author, and file
// path, or nil. An empty filePath matches any path; rollback-by-reference
// uses that form.
func (c *ChangeLog) FindChangeSet(id, author, filePath string) *ChangeSet {
	for _, cs := range c.ChangeSets {
		if cs.ID != id || cs.Author != author {
			continue
		}

		if filePath == "" || cs.FilePath == filePath {
			return cs
		}
	}

	return nil
}
