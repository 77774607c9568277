package tabular

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// DType is the inferred type of a column.
type DType string

const (
	Int64   DType = "int64"
	Float64 DType = "float64"
	Bool    DType = "bool"
	Object  DType = "object"
)

// Numeric reports whether describe and numeric aggregations apply.
func (d DType) Numeric() bool {
	return d == Int64 || d == Float64
}

// Column is a named, typed sequence of cells. A nil cell is missing.
// Cells hold int64, float64, bool, string or (for JSON input) nested
// maps and slices.
type Column struct {
	Name   string
	DType  DType
	Values []interface{}
}

// Frame is an ordered set of equally long columns.
type Frame struct {
	columns []*Column
	index   map[string]int
	rows    int
}

// Empty returns a frame with no columns and no rows.
func Empty() *Frame {
	return &Frame{index: map[string]int{}}
}

// New builds a frame from column names and row-major cells and infers
// every column type.
func New(names []string, rows [][]interface{}) (*Frame, error) {
	f := Empty()
	for i, name := range names {
		if _, dup := f.index[name]; dup {
			return nil, valueError("frame", "duplicate column %q", name)
		}
		values := make([]interface{}, len(rows))
		for r, row := range rows {
			if len(row) != len(names) {
				return nil, valueError("frame", "row %d has %d cells, expected %d", r, len(row), len(names))
			}
			values[r] = row[i]
		}
		f.add(inferValues(name, values))
	}
	f.rows = len(rows)
	return f, nil
}

func (f *Frame) add(c *Column) {
	f.index[c.Name] = len(f.columns)
	f.columns = append(f.columns, c)
	f.rows = len(c.Values)
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.rows }

// IsEmpty reports whether the frame has no rows or no columns.
func (f *Frame) IsEmpty() bool { return f.rows == 0 || len(f.columns) == 0 }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column.
func (f *Frame) Column(name string) (*Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.columns[i], true
}

// Columns returns the columns in order.
func (f *Frame) Columns() []*Column { return f.columns }

// Row returns the cells of row r in column order.
func (f *Frame) Row(r int) []interface{} {
	row := make([]interface{}, len(f.columns))
	for i, c := range f.columns {
		row[i] = c.Values[r]
	}
	return row
}

// Records returns one map per row, keyed by column name.
func (f *Frame) Records() []map[string]interface{} {
	records := make([]map[string]interface{}, f.rows)
	for r := 0; r < f.rows; r++ {
		rec := make(map[string]interface{}, len(f.columns))
		for _, c := range f.columns {
			rec[c.Name] = c.Values[r]
		}
		records[r] = rec
	}
	return records
}

// take returns a new frame holding the given rows in order.
func (f *Frame) take(rows []int) *Frame {
	out := Empty()
	for _, c := range f.columns {
		values := make([]interface{}, len(rows))
		for i, r := range rows {
			values[i] = c.Values[r]
		}
		out.add(&Column{Name: c.Name, DType: c.DType, Values: values})
	}
	out.rows = len(rows)
	return out
}

// inferStrings types raw CSV cells. Empty cells are missing. A column
// whose cells do not share one parsed type keeps the raw strings.
func inferStrings(name string, raw []string) *Column {
	values := make([]interface{}, len(raw))
	parsed := make([]interface{}, len(raw))
	for i, s := range raw {
		if s == "" {
			continue
		}
		values[i] = s
		parsed[i] = parseCell(s)
	}

	col := inferValues(name, parsed)
	if col.DType == Object {
		col.Values = values
	}
	return col
}

func parseCell(s string) interface{} {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(v) {
			return nil
		}
		return v
	}
	switch s {
	case "True", "true", "TRUE":
		return true
	case "False", "false", "FALSE":
		return false
	}
	return s
}

// inferValues picks a dtype for already typed cells. Integers with
// missing cells widen to float64. Booleans with missing cells become
// object.
func inferValues(name string, values []interface{}) *Column {
	var ints, floats, bools, others, nulls int
	for i, v := range values {
		v = normalize(v)
		values[i] = v
		switch v.(type) {
		case nil:
			nulls++
		case int64:
			ints++
		case float64:
			floats++
		case bool:
			bools++
		default:
			others++
		}
	}

	present := len(values) - nulls
	switch {
	case present == 0:
		return &Column{Name: name, DType: Object, Values: values}
	case ints == present && nulls == 0:
		return &Column{Name: name, DType: Int64, Values: values}
	case ints+floats == present:
		for i, v := range values {
			if x, ok := v.(int64); ok {
				values[i] = float64(x)
			}
		}
		return &Column{Name: name, DType: Float64, Values: values}
	case bools == present && nulls == 0:
		return &Column{Name: name, DType: Bool, Values: values}
	}
	return &Column{Name: name, DType: Object, Values: values}
}

// normalize maps Go and JSON scalar types onto the cell types above.
func normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case float32:
		return float64(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	}
	return v
}

// isMissing reports whether a cell counts as null.
func isMissing(v interface{}) bool {
	if v == nil {
		return true
	}
	f, ok := v.(float64)
	return ok && math.IsNaN(f)
}

// toFloat converts numeric cells.
func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// flatten turns nested objects into dotted keys, e.g. {"a": {"b": 1}}
// becomes {"a.b": 1}. Keys are returned sorted.
func flatten(prefix string, obj map[string]interface{}, out map[string]interface{}) {
	for k, v := range obj {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok && len(nested) > 0 {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromJSON converts decoded JSON to a frame. A list must hold objects
// (one row each); a single object becomes one row with nested objects
// flattened into dotted column names. Columns are ordered by name.
func FromJSON(data interface{}) (*Frame, error) {
	switch v := data.(type) {
	case []interface{}:
		if len(v) == 0 {
			return Empty(), nil
		}
		if _, ok := v[0].(map[string]interface{}); !ok {
			return nil, valueError("from_json", "List must contain dictionaries")
		}
		return fromRecords(v)
	case []map[string]interface{}:
		records := make([]interface{}, len(v))
		for i := range v {
			records[i] = v[i]
		}
		return FromJSON(records)
	case map[string]interface{}:
		flat := map[string]interface{}{}
		flatten("", v, flat)
		return fromRecords([]interface{}{flat})
	default:
		return nil, valueError("from_json", "Unsupported data type: %T", data)
	}
}

func fromRecords(records []interface{}) (*Frame, error) {
	keys := map[string]interface{}{}
	for i, rec := range records {
		obj, ok := rec.(map[string]interface{})
		if !ok {
			return nil, valueError("from_json", "List must contain dictionaries (element %d)", i)
		}
		for k := range obj {
			keys[k] = nil
		}
	}

	names := sortedKeys(keys)
	rows := make([][]interface{}, len(records))
	for i, rec := range records {
		obj := rec.(map[string]interface{})
		row := make([]interface{}, len(names))
		for j, name := range names {
			row[j] = obj[name]
		}
		rows[i] = row
	}
	return New(names, rows)
}

// formatCell renders a cell for CSV and text output.
func formatCell(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "True"
		}
		return "False"
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		if math.IsNaN(x) {
			return ""
		}
		return formatFloat(x)
	}
	return fmt.Sprint(v)
}
