package tabular

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
	"github.com/GriffinCanCode/mathops/internal/shared/types"
)

// Provider exposes the tabular utilities as "data.*" tools. File paths are
// resolved inside Root; ".." cannot escape it.
type Provider struct {
	Root string
}

// NewProvider creates a data provider rooted at dir
func NewProvider(dir string) *Provider {
	return &Provider{Root: dir}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	pathParam := types.Parameter{Name: "path", Type: "string", Description: "CSV or JSON file relative to the data directory", Required: true}

	return types.Service{
		ID:           "data",
		Name:         "Data Service",
		Description:  "Tabular data utilities over CSV and JSON files (summary, filter, aggregate, merge, convert)",
		Category:     types.CategoryData,
		Capabilities: []string{"summary", "filter", "aggregate", "merge", "convert"},
		Tools: []types.Tool{
			{
				ID:          "data.summary",
				Name:        "Summary",
				Description: "Row and column counts, dtypes, numeric description and null counts",
				Parameters:  []types.Parameter{pathParam},
				Returns:     "object",
			},
			{
				ID:          "data.filter",
				Name:        "Filter",
				Description: "Keep rows matching a condition (== != > < >= <= in contains)",
				Parameters: []types.Parameter{
					pathParam,
					{Name: "column", Type: "string", Description: "Column to test", Required: true},
					{Name: "condition", Type: "string", Description: "Comparison operator", Required: true},
					{Name: "value", Type: "any", Description: "Value to compare against (a list for 'in')", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "data.aggregate",
				Name:        "Aggregate",
				Description: "Group rows and apply mean/sum/count/min/max/median/std",
				Parameters: []types.Parameter{
					pathParam,
					{Name: "group_by", Type: "array", Description: "Group column name or list of names", Required: true},
					{Name: "aggregations", Type: "object", Description: "Column name to list of functions", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "data.merge",
				Name:        "Merge",
				Description: "Join two files on key columns",
				Parameters: []types.Parameter{
					{Name: "left", Type: "string", Description: "First file", Required: true},
					{Name: "right", Type: "string", Description: "Second file", Required: true},
					{Name: "on", Type: "array", Description: "Key column name or list of names", Required: true},
					{Name: "how", Type: "string", Description: "inner, outer, left or right (default inner)", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "data.convert",
				Name:        "Convert",
				Description: "Load a file and save it as CSV or JSON records",
				Parameters: []types.Parameter{
					{Name: "input", Type: "string", Description: "Source file", Required: true},
					{Name: "output", Type: "string", Description: "Destination file (.gz compresses)", Required: true},
					{Name: "format", Type: "string", Description: "csv or json", Required: true},
				},
				Returns: "object",
			},
		},
	}
}

// Execute routes to the tabular operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	switch toolID {
	case "data.summary":
		return p.summary(params)
	case "data.filter":
		return p.filter(params)
	case "data.aggregate":
		return p.aggregate(params)
	case "data.merge":
		return p.merge(params)
	case "data.convert":
		return p.convert(params)
	default:
		return common.Failure(fmt.Errorf("unknown tool: %s", toolID))
	}
}

// resolve confines a user path to the provider root.
func (p *Provider) resolve(path string) string {
	return filepath.Join(p.Root, filepath.Clean("/"+path))
}

func (p *Provider) load(params map[string]interface{}, key string) (*Frame, error) {
	path, ok := common.GetString(params, key)
	if !ok || path == "" {
		return nil, common.TypeError("params", "%s parameter required", key)
	}
	frame, err := Load(p.resolve(path))
	if errors.Is(err, fs.ErrNotExist) {
		// Report the caller's path, not the resolved one.
		return nil, &NotFoundError{Path: path}
	}
	return frame, err
}

func (p *Provider) summary(params map[string]interface{}) (*types.Result, error) {
	frame, err := p.load(params, "path")
	if err != nil {
		return common.Failure(err)
	}
	return common.Success(map[string]interface{}{"summary": Summarize(frame)})
}

func (p *Provider) filter(params map[string]interface{}) (*types.Result, error) {
	frame, err := p.load(params, "path")
	if err != nil {
		return common.Failure(err)
	}
	column, _ := common.GetString(params, "column")
	condition, _ := common.GetString(params, "condition")

	filtered, err := Filter(frame, column, condition, params["value"])
	if err != nil {
		return common.Failure(err)
	}
	return common.Success(map[string]interface{}{
		"count":   filtered.Len(),
		"columns": filtered.Names(),
		"rows":    filtered.OrderedRecords(),
	})
}

func (p *Provider) aggregate(params map[string]interface{}) (*types.Result, error) {
	frame, err := p.load(params, "path")
	if err != nil {
		return common.Failure(err)
	}
	groupBy, err := stringList(params["group_by"])
	if err != nil {
		return common.Failure(common.TypeError("params", "group_by must be a string or a list of strings"))
	}
	aggregations, err := aggregationSpec(params["aggregations"])
	if err != nil {
		return common.Failure(err)
	}

	result, err := Aggregate(frame, groupBy, aggregations)
	if err != nil {
		return common.Failure(err)
	}
	return common.Success(map[string]interface{}{
		"columns": result.Names(),
		"rows":    result.OrderedRecords(),
	})
}

func (p *Provider) merge(params map[string]interface{}) (*types.Result, error) {
	left, err := p.load(params, "left")
	if err != nil {
		return common.Failure(err)
	}
	right, err := p.load(params, "right")
	if err != nil {
		return common.Failure(err)
	}
	on, err := stringList(params["on"])
	if err != nil {
		return common.Failure(common.TypeError("params", "on must be a string or a list of strings"))
	}
	how, ok := common.GetString(params, "how")
	if !ok || how == "" {
		how = "inner"
	}

	merged, err := Merge(left, right, on, how)
	if err != nil {
		return common.Failure(err)
	}
	return common.Success(map[string]interface{}{
		"count":   merged.Len(),
		"columns": merged.Names(),
		"rows":    merged.OrderedRecords(),
	})
}

func (p *Provider) convert(params map[string]interface{}) (*types.Result, error) {
	frame, err := p.load(params, "input")
	if err != nil {
		return common.Failure(err)
	}
	output, ok := common.GetString(params, "output")
	if !ok || output == "" {
		return common.Failure(common.TypeError("params", "output parameter required"))
	}
	format, _ := common.GetString(params, "format")

	if err := Save(frame, p.resolve(output), format); err != nil {
		return common.Failure(err)
	}
	return common.Success(map[string]interface{}{"written": true, "path": output, "rows": frame.Len()})
}

// stringList accepts a single name or a list of names.
func stringList(v interface{}) ([]string, error) {
	switch x := v.(type) {
	case string:
		return []string{x}, nil
	case []string:
		return x, nil
	case []interface{}:
		out := make([]string, len(x))
		for i, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d is %T", i, item)
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported %T", v)
}

func aggregationSpec(v interface{}) (map[string][]string, error) {
	switch x := v.(type) {
	case map[string][]string:
		return x, nil
	case map[string]interface{}:
		spec := make(map[string][]string, len(x))
		for col, funcs := range x {
			list, err := stringList(funcs)
			if err != nil {
				return nil, common.TypeError("params", "aggregations[%s] must be a function name or a list of names", col)
			}
			spec[col] = list
		}
		return spec, nil
	}
	return nil, common.TypeError("params", "aggregations must be an object")
}
