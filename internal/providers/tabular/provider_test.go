package tabular

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/mathops/internal/shared/testutil"
)

func TestProviderExecute(t *testing.T) {
	provider := NewProvider("testdata")
	ctx := context.Background()

	t.Run("Summary", func(t *testing.T) {
		result, err := provider.Execute(ctx, "data.summary", map[string]interface{}{"path": "sample_data.csv"})
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		summary := result.Data["summary"].(Summary)
		assert.Equal(t, 6, summary.RowCount)
	})

	t.Run("Summary missing file", func(t *testing.T) {
		result, err := provider.Execute(ctx, "data.summary", map[string]interface{}{"path": "nope.csv"})
		require.NoError(t, err)
		testutil.AssertError(t, result)
		assert.Equal(t, "File not found: nope.csv", *result.Error)
	})

	t.Run("Path cannot escape root", func(t *testing.T) {
		result, err := provider.Execute(ctx, "data.summary", map[string]interface{}{"path": "../load.go"})
		require.NoError(t, err)
		testutil.AssertError(t, result)
	})

	t.Run("Filter", func(t *testing.T) {
		result, err := provider.Execute(ctx, "data.filter", map[string]interface{}{
			"path": "sample_data.csv", "column": "age", "condition": ">", "value": 40.0,
		})
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Equal(t, 2, result.Data["count"])
	})

	t.Run("Aggregate", func(t *testing.T) {
		result, err := provider.Execute(ctx, "data.aggregate", map[string]interface{}{
			"path":         "sample_data.csv",
			"group_by":     "department",
			"aggregations": map[string]interface{}{"age": []interface{}{"mean", "max"}},
		})
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Equal(t, []string{"department", "age_mean", "age_max"}, result.Data["columns"])
	})

	t.Run("Aggregate bad aggregations", func(t *testing.T) {
		result, err := provider.Execute(ctx, "data.aggregate", map[string]interface{}{
			"path": "sample_data.csv", "group_by": "department", "aggregations": "mean",
		})
		require.NoError(t, err)
		testutil.AssertError(t, result)
		assert.Equal(t, "type_error", result.Kind)
	})

	t.Run("Merge", func(t *testing.T) {
		result, err := provider.Execute(ctx, "data.merge", map[string]interface{}{
			"left": "sample_data.csv", "right": "departments.csv", "on": []interface{}{"department"},
		})
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Equal(t, 5, result.Data["count"])
	})

	t.Run("Unknown tool", func(t *testing.T) {
		result, err := provider.Execute(ctx, "data.pivot", nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)
	})
}

func TestProviderConvert(t *testing.T) {
	dir := t.TempDir()
	src, err := os.ReadFile("testdata/sample_data.json")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in.json"), src, 0o644))

	provider := NewProvider(dir)
	result, err := provider.Execute(context.Background(), "data.convert", map[string]interface{}{
		"input": "in.json", "output": "out.csv", "format": "csv",
	})
	require.NoError(t, err)
	testutil.AssertSuccess(t, result)

	frame, err := LoadCSV(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
	assert.Equal(t, 4, frame.Len())
}
