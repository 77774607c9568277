package tabular

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/gzip"

	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
)

func formatFloat(f float64) string {
	return common.FormatFloat(f)
}

// Save writes the frame as CSV (header plus rows) or as a JSON array of
// records. A ".gz" path is gzip-compressed.
func Save(f *Frame, path, format string) error {
	var encode func(io.Writer, *Frame) error
	switch strings.ToLower(format) {
	case "csv":
		encode = writeCSV
	case "json":
		encode = writeJSON
	default:
		return valueError("save", "Unsupported format: %s. Use 'csv' or 'json'", format)
	}

	file, err := os.Create(path)
	if err != nil {
		return valueError("save", "Error writing file %s: %v", path, err)
	}
	defer file.Close()

	var w io.Writer = file
	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(file)
		defer gz.Close()
		w = gz
	}

	if err := encode(w, f); err != nil {
		return valueError("save", "Error writing file %s: %v", path, err)
	}
	return nil
}

func writeCSV(w io.Writer, f *Frame) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(f.Names()); err != nil {
		return err
	}
	for r := 0; r < f.Len(); r++ {
		row := f.Row(r)
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatCell(v)
		}
		if err := writer.Write(cells); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// orderedRecord marshals one row with keys in column order.
type orderedRecord struct {
	names  []string
	values []interface{}
}

func (o orderedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range o.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := sonic.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := sonic.Marshal(jsonCell(o.values[i]))
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func jsonCell(v interface{}) interface{} {
	if isMissing(v) {
		return nil
	}
	return v
}

// OrderedRecords returns rows that encode with keys in column order.
func (f *Frame) OrderedRecords() []interface{} {
	names := f.Names()
	records := make([]interface{}, f.Len())
	for r := range records {
		records[r] = orderedRecord{names: names, values: f.Row(r)}
	}
	return records
}

func writeJSON(w io.Writer, f *Frame) error {
	data, err := sonic.ConfigStd.MarshalIndent(f.OrderedRecords(), "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
