package changelog_test

import (
	"testing"

	"github.com/pseudomuto/changeling/pkg/changelog"
	"github.com/stretchr/testify/require"
)

func TestContextExpression(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		runtime  []string
		expected bool
	}{
		{name: "empty expression matches", expr: "", runtime: []string{"prod"}, expected: true},
		{name: "empty runtime matches", expr: "prod", runtime: nil, expected: true},
		{name: "single context matches", expr: "prod", runtime: []string{"prod"}, expected: true},
		{name: "single context misses", expr: "prod", runtime: []string{"test"}, expected: false},
		{name: "matching is case-insensitive", expr: "PROD", runtime: []string{"prod"}, expected: true},
		{name: "comma is or", expr: "test, prod", runtime: []string{"prod"}, expected: true},
		{name: "or keyword", expr: "test or prod", runtime: []string{"prod"}, expected: true},
		{name: "and requires both", expr: "prod and eu", runtime: []string{"prod"}, expected: false},
		{name: "and with both present", expr: "prod and eu", runtime: []string{"prod", "eu"}, expected: true},
		{name: "negation", expr: "!test", runtime: []string{"prod"}, expected: true},
		{name: "negation misses", expr: "!prod", runtime: []string{"prod"}, expected: false},
		{name: "parentheses group", expr: "(test or prod) and eu", runtime: []string{"prod", "eu"}, expected: true},
		{name: "parentheses group misses", expr: "(test or prod) and eu", runtime: []string{"prod"}, expected: false},
		{name: "malformed expressions never match", expr: "prod prod", runtime: []string{"prod"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := changelog.NewContextExpression(tt.expr)
			require.Equal(t, tt.expected, expr.Matches(changelog.NewContexts(tt.runtime...)))
		})
	}

	t.Run("nil expression matches everything", func(t *testing.T) {
		var expr *changelog.ContextExpression
		require.True(t, expr.Empty())
		require.True(t, expr.Matches(changelog.NewContexts("prod")))
	})
}

func TestContexts(t *testing.T) {
	t.Run("splits comma-separated values", func(t *testing.T) {
		ctx := changelog.NewContexts("prod, eu")
		require.ElementsMatch(t, []string{"prod", "eu"}, ctx.Values())
		require.True(t, ctx.Has("prod"))
		require.True(t, ctx.Has("EU"))
		require.False(t, ctx.Has("test"))
	})

	t.Run("empty sets", func(t *testing.T) {
		require.True(t, changelog.NewContexts().Empty())
		require.True(t, (*changelog.Contexts)(nil).Empty())
		require.False(t, changelog.NewContexts("prod").Empty())
	})
}

func TestLabels(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		runtime  []string
		expected bool
	}{
		{name: "empty filter matches", expr: "", runtime: []string{"nightly"}, expected: true},
		{name: "empty runtime matches", expr: "nightly", runtime: nil, expected: true},
		{name: "single label matches", expr: "nightly", runtime: []string{"nightly"}, expected: true},
		{name: "single label misses", expr: "release", runtime: []string{"nightly"}, expected: false},
		{name: "comma is or", expr: "release, nightly", runtime: []string{"nightly"}, expected: true},
		{name: "and requires both", expr: "v1.2 and !experimental", runtime: []string{"v1.2"}, expected: true},
		{name: "negation misses", expr: "v1.2 and !experimental", runtime: []string{"v1.2", "experimental"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, changelog.NewLabels(tt.expr).Matches(tt.runtime))
		})
	}
}
