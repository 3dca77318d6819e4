package changelog_test

import (
	"testing"

	"github.com/pseudomuto/changeling/pkg/changelog"
	"github.com/stretchr/testify/require"
)

func TestChangeLogFilePath(t *testing.T) {
	doc := changelog.New("db/changelog.changelog")
	require.Equal(t, "db/changelog.changelog", doc.FilePath())

	doc.LogicalFilePath = "db/main"
	require.Equal(t, "db/main", doc.FilePath())
	require.Equal(t, "db/changelog.changelog", doc.PhysicalFilePath)
}

func TestChangeLogExpandExpressions(t *testing.T) {
	t.Run("no parameter table is a no-op", func(t *testing.T) {
		doc := changelog.New("changelog.changelog")
		require.Equal(t, "${name}", doc.ExpandExpressions("${name}"))
	})

	t.Run("expands through the bound table", func(t *testing.T) {
		doc := changelog.New("changelog.changelog")
		doc.Parameters = changelog.NewParameters("", nil, nil)
		doc.Parameters.SetValue("name", "users")

		require.Equal(t, "users", doc.ExpandExpressions("${name}"))
	})
}

func TestChangeLogAddChangeSet(t *testing.T) {
	doc := changelog.New("changelog.changelog")

	cs := changelog.NewChangeSet("1", "amy", "changelog.changelog")
	require.NoError(t, doc.AddChangeSet(cs))
	require.Same(t, doc, cs.ChangeLog())

	t.Run("rejects duplicates", func(t *testing.T) {
		err := doc.AddChangeSet(changelog.NewChangeSet("1", "amy", "changelog.changelog"))
		require.EqualError(t, err, "duplicate change set: 1::amy::changelog.changelog")
	})

	t.Run("same id under a different path is fine", func(t *testing.T) {
		require.NoError(t, doc.AddChangeSet(changelog.NewChangeSet("1", "amy", "other.changelog")))
	})
}

func TestChangeLogFindChangeSet(t *testing.T) {
	doc := changelog.New("changelog.changelog")
	require.NoError(t, doc.AddChangeSet(changelog.NewChangeSet("1", "amy", "a.changelog")))
	require.NoError(t, doc.AddChangeSet(changelog.NewChangeSet("1", "amy", "b.changelog")))

	t.Run("empty path matches any", func(t *testing.T) {
		cs := doc.FindChangeSet("1", "amy", "")
		require.NotNil(t, cs)
		require.Equal(t, "a.changelog", cs.FilePath)
	})

	t.Run("explicit path narrows the match", func(t *testing.T) {
		cs := doc.FindChangeSet("1", "amy", "b.changelog")
		require.NotNil(t, cs)
		require.Equal(t, "b.changelog", cs.FilePath)
	})

	t.Run("misses return nil", func(t *testing.T) {
		require.Nil(t, doc.FindChangeSet("1", "bob", ""))
		require.Nil(t, doc.FindChangeSet("2", "amy", ""))
	})
}

func TestNewChangeSetDefaults(t *testing.T) {
	cs := changelog.NewChangeSet("1", "amy", "changelog.changelog")

	require.True(t, cs.RunInTransaction)
	require.False(t, cs.RunAlways)
	require.False(t, cs.RunOnChange)
	require.Equal(t, changelog.QuoteLegacy, cs.QuotingStrategy)
	require.Equal(t, "1::amy::changelog.changelog", cs.Identity())
}

func TestParseEnums(t *testing.T) {
	t.Run("object quoting strategies", func(t *testing.T) {
		s, err := changelog.ParseObjectQuotingStrategy("QUOTE_ONLY_RESERVED_WORDS")
		require.NoError(t, err)
		require.Equal(t, changelog.QuoteOnlyReservedWords, s)

		_, err = changelog.ParseObjectQuotingStrategy("legacy")
		require.ErrorContains(t, err, `unknown object quoting strategy: "legacy"`)
	})

	t.Run("validation fail options", func(t *testing.T) {
		o, err := changelog.ParseValidationFailOption("MARK_RAN")
		require.NoError(t, err)
		require.Equal(t, changelog.ValidationFailMarkRan, o)

		_, err = changelog.ParseValidationFailOption("IGNORE")
		require.Error(t, err)
	})

	t.Run("run orders", func(t *testing.T) {
		r, err := changelog.ParseRunOrder("first")
		require.NoError(t, err)
		require.Equal(t, changelog.RunOrderFirst, r)

		_, err = changelog.ParseRunOrder("FIRST")
		require.Error(t, err)
	})

	t.Run("precondition error handling", func(t *testing.T) {
		h, err := changelog.ParsePreconditionErrorHandling("CONTINUE")
		require.NoError(t, err)
		require.Equal(t, changelog.PreconditionContinue, h)

		_, err = changelog.ParsePreconditionErrorHandling("continue")
		require.Error(t, err)
	})
}
