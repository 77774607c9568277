package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/mathops/internal/shared/testutil"
	"github.com/GriffinCanCode/mathops/internal/shared/types"
)

func TestRegister(t *testing.T) {
	r := NewRegistry()
	p := testutil.NewMockServiceProvider(t, "test", types.CategoryMath)

	require.NoError(t, r.Register(p))
	_, ok := r.Get("test")
	assert.True(t, ok)

	assert.Error(t, r.Register(p), "duplicate IDs are rejected")

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegisterEmptyID(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(testutil.NewMockServiceProvider(t, "", types.CategoryMath)))
}

func TestList(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "math", types.CategoryMath)))
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "data", types.CategoryData)))

	services := r.List(nil)
	require.Len(t, services, 2)
	assert.Equal(t, "data", services[0].ID)
	assert.Equal(t, "math", services[1].ID)

	cat := types.CategoryMath
	filtered := r.List(&cat)
	require.Len(t, filtered, 1)
	assert.Equal(t, "math", filtered[0].ID)
}

func TestTool(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "math", types.CategoryMath)))

	tool, ok := r.Tool("math.test")
	require.True(t, ok)
	assert.Equal(t, "math.test", tool.ID)

	_, ok = r.Tool("math.missing")
	assert.False(t, ok)
	_, ok = r.Tool("nodot")
	assert.False(t, ok)
}

func TestDiscover(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "math", types.CategoryMath)))
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "data", types.CategoryData)))

	results := r.Discover("run a math test", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "math", results[0].ID)

	assert.Empty(t, r.Discover("weather", 5))
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	p := testutil.NewMockServiceProvider(t, "math", types.CategoryMath)
	p.On("Execute", mock.Anything, "math.test", mock.Anything).
		Return(&types.Result{Success: true, Data: map[string]interface{}{"result": 1}}, nil)
	require.NoError(t, r.Register(p))

	result, err := r.Execute(context.Background(), "math.test", nil)
	require.NoError(t, err)
	testutil.AssertSuccess(t, result)
	p.AssertExpectations(t)
}

func TestExecuteUnknown(t *testing.T) {
	r := NewRegistry()

	result, err := r.Execute(context.Background(), "missing.tool", nil)
	assert.Error(t, err)
	testutil.AssertError(t, result)

	result, err = r.Execute(context.Background(), "notool", nil)
	assert.Error(t, err)
	testutil.AssertError(t, result)
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "math", types.CategoryMath)))
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "data", types.CategoryData)))

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])
	assert.Equal(t, map[string]int{"math": 1, "data": 1}, stats["categories"])
}
