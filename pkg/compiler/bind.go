package compiler

import (
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/pseudomuto/changeling/pkg/change"
)

var (
	// fieldTables caches the resolved accessor table per concrete record
	// type. The cache is read-through and concurrent-safe so documents may
	// compile on separate goroutines in an embedding host.
	fieldTables sync.Map // reflect.Type -> map[string][]int

	bigIntType = reflect.TypeOf((*big.Int)(nil))
	enumType   = reflect.TypeOf((*change.Enum)(nil)).Elem()
)

// bindProperty resolves the accessor for the named attribute on target by
// naming convention, coerces the raw value to the accessor's declared type,
// and assigns it. Target must be a pointer to a record struct. Unknown
// attributes and unassignable field types both fail with an "unsupported
// attribute" error wrapping the underlying cause.
//
// Recognized field types, in resolution order: bool and *bool (through truth
// coercion), the integer kinds, *big.Int, enumerated types (case-sensitive
// constant lookup through change.Enum), and the string kinds, which cover
// plain strings and the domain function-value types via their single-string
// form. Where a record historically accepted an attribute both as an action
// enum and as raw text (the foreign-key onDelete/onUpdate pair), the record
// declares the string form, so binding always lands on string.
func bindProperty(target any, name string, value any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return errors.Errorf("cannot bind %q: target %T is not a record", name, target)
	}

	elem := rv.Elem()

	table := fieldTable(elem.Type())
	index, ok := table[strings.ToLower(name)]
	if !ok {
		return errors.Errorf("unsupported attribute %q for %s", name, elem.Type().Name())
	}

	if err := assign(elem.FieldByIndex(index), value); err != nil {
		return errors.Wrapf(err, "unsupported attribute %q for %s", name, elem.Type().Name())
	}

	return nil
}

// fieldTable returns the attribute-name to field-index table for a record
// type, building and caching it on first use. Embedded structs contribute
// their fields with outer fields shadowing inner ones, mirroring Go's own
// promotion rules, so LoadDataColumnConfig.Type wins over the embedded
// core's Type.
func fieldTable(t reflect.Type) map[string][]int {
	if cached, ok := fieldTables.Load(t); ok {
		return cached.(map[string][]int)
	}

	table := make(map[string][]int)
	collectFields(t, nil, table)

	fieldTables.Store(t, table)

	return table
}

func collectFields(t reflect.Type, prefix []int, table map[string][]int) {
	type embedded struct {
		t     reflect.Type
		index []int
	}

	var queue []embedded

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		index := append(append([]int{}, prefix...), i)

		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			queue = append(queue, embedded{t: f.Type, index: index})
			continue
		}

		key := strings.ToLower(f.Name)
		if _, ok := table[key]; !ok {
			table[key] = index
		}
	}

	// Embedded fields bind only where no outer field claimed the name.
	for _, e := range queue {
		collectFields(e.t, e.index, table)
	}
}

// assign coerces value to the field's declared type and sets it.
func assign(field reflect.Value, value any) error {
	ft := field.Type()

	switch {
	case ft == bigIntType:
		n, err := bigIntValue(value)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(n))

		return nil

	case reflect.PointerTo(ft).Implements(enumType):
		return field.Addr().Interface().(change.Enum).SetValue(stringOf(value))

	case ft.Kind() == reflect.Pointer && ft.Elem().Kind() == reflect.Bool:
		b := booleanValue(value, false)
		field.Set(reflect.ValueOf(&b))

		return nil
	}

	switch ft.Kind() {
	case reflect.Bool:
		field.SetBool(booleanValue(value, false))
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := intValue(value)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.String:
		field.SetString(stringOf(value))
	default:
		return errors.Errorf("cannot assign %v to a %s field", value, ft)
	}

	return nil
}

func intValue(v any) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case float64:
		return int64(t), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, errors.Errorf("invalid integer value: %q", t)
		}

		return n, nil
	default:
		return 0, errors.Errorf("invalid integer value: %v", v)
	}
}

func bigIntValue(v any) (*big.Int, error) {
	switch t := v.(type) {
	case int64:
		return big.NewInt(t), nil
	case int:
		return big.NewInt(int64(t)), nil
	case string:
		n, ok := new(big.Int).SetString(strings.TrimSpace(t), 10)
		if !ok {
			return nil, errors.Errorf("invalid numeric value: %q", t)
		}

		return n, nil
	case float64:
		return big.NewInt(int64(t)), nil
	default:
		return nil, errors.Errorf("invalid numeric value: %v", v)
	}
}
