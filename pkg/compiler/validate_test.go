package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAttributes(t *testing.T) {
	t.Run("accepts subsets of the whitelist", func(t *testing.T) {
		attrs := newAttributes()
		attrs.set("id", "1")
		attrs.set("author", "amy")

		require.NoError(t, validateAttributes("changeSet", "change set: 1", attrs, changeSetAttrs))
	})

	t.Run("accepts empty attribute sets", func(t *testing.T) {
		require.NoError(t, validateAttributes("changeSet", "change set", newAttributes(), changeSetAttrs))
	})

	t.Run("names the offending key and the owner", func(t *testing.T) {
		attrs := newAttributes()
		attrs.set("id", "1")
		attrs.set("splines", "reticulated")

		err := validateAttributes("changeSet", "change set: 1", attrs, changeSetAttrs)
		require.ErrorContains(t, err, `unsupported attribute "splines" on changeSet (change set: 1)`)
	})

	t.Run("removed attributes get their own message", func(t *testing.T) {
		attrs := newAttributes()
		attrs.set("id", "1")
		attrs.set("alwaysRun", true)

		err := validateAttributes("changeSet", "change set: 1", attrs, changeSetAttrs)
		require.ErrorContains(t, err, "no longer supported")
		require.ErrorContains(t, err, "runAlways")
	})

	t.Run("removed attributes win over other unknown keys", func(t *testing.T) {
		attrs := newAttributes()
		attrs.set("splines", "reticulated")
		attrs.set("alwaysRun", true)

		err := validateAttributes("changeSet", "change set: 1", attrs, changeSetAttrs)
		require.ErrorContains(t, err, "runAlways")
	})

	t.Run("removed attributes are element-scoped", func(t *testing.T) {
		attrs := newAttributes()
		attrs.set("file", "part.changelog")
		attrs.set("alwaysRun", true)

		err := validateAttributes("include", "changelog.changelog", attrs, includeAttrs)
		require.ErrorContains(t, err, `unsupported attribute "alwaysRun"`)
	})
}
