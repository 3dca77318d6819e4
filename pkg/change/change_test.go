package change_test

import (
	"sort"
	"testing"

	"github.com/pseudomuto/changeling/pkg/change"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("constructs changes by directive name", func(t *testing.T) {
		for _, name := range change.Names() {
			ch, ok := change.New(name)
			require.True(t, ok, name)
			require.Equal(t, name, ch.Name())
		}
	})

	t.Run("returns fresh records on every call", func(t *testing.T) {
		a, _ := change.New("createTable")
		b, _ := change.New("createTable")
		require.NotSame(t, a, b)
	})

	t.Run("unknown names do not resolve", func(t *testing.T) {
		_, ok := change.New("explodeTable")
		require.False(t, ok)
	})
}

func TestNames(t *testing.T) {
	names := change.Names()

	require.True(t, sort.StringsAreSorted(names))
	require.Contains(t, names, "createTable")
	require.Contains(t, names, "sql")
	require.Contains(t, names, "sqlFile")
}

func TestColumnSupport(t *testing.T) {
	t.Run("createTable collects plain columns", func(t *testing.T) {
		ct := &change.CreateTable{}
		col := ct.NewColumn()
		require.IsType(t, &change.ColumnConfig{}, col)

		col.Config().Name = "id"
		ct.AddColumn(col)
		require.Len(t, ct.Columns, 1)
		require.Equal(t, "id", ct.Columns[0].Name)
	})

	t.Run("addColumn collects placement-aware columns", func(t *testing.T) {
		ac := &change.AddColumn{}
		col := ac.NewColumn()

		acc, ok := col.(*change.AddColumnConfig)
		require.True(t, ok)
		acc.Name = "email"
		acc.AfterColumn = "id"

		ac.AddColumn(col)
		require.Len(t, ac.Columns, 1)
		require.Equal(t, "email", ac.Columns[0].Name)
	})

	t.Run("loadData collects typed columns", func(t *testing.T) {
		ld := &change.LoadData{}
		col := ld.NewColumn()

		lc, ok := col.(*change.LoadDataColumnConfig)
		require.True(t, ok)
		lc.Type = change.LoadDataTypeNumeric

		ld.AddColumn(col)
		require.Len(t, ld.Columns, 1)
	})

	t.Run("changes without column support do not implement the interface", func(t *testing.T) {
		var ch change.Change = &change.DropTable{}
		_, ok := ch.(change.ColumnSupport)
		require.False(t, ok)
	})
}

func TestWhereSupport(t *testing.T) {
	up := &change.Update{}
	up.SetWhere("id = :value")
	up.AddWhereParam(&change.WhereParam{ValueNumeric: "42"})

	require.Equal(t, "id = :value", up.Where)
	require.Len(t, up.WhereParams, 1)

	del := &change.Delete{}
	del.SetWhere("active = false")
	require.Equal(t, "active = false", del.Where)
}

func TestLoadDataTypeSetValue(t *testing.T) {
	var lt change.LoadDataType

	require.NoError(t, lt.SetValue("COMPUTED"))
	require.Equal(t, change.LoadDataTypeComputed, lt)

	err := lt.SetValue("computed")
	require.ErrorContains(t, err, `no LoadDataType constant named "computed"`)
	require.Equal(t, change.LoadDataTypeComputed, lt)
}
