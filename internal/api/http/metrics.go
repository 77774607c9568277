package http

import (
	"github.com/GriffinCanCode/mathops/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
	"github.com/GriffinCanCode/mathops/internal/shared/types"
)

// track starts timing an operation. The returned func records the call
// with the kind of err, if any.
func (h *Handlers) track(operation string) func(error) {
	timer := monitoring.NewTimer(h.metrics, operation)
	return func(err error) {
		timer.Stop(errorKind(err))
	}
}

func errorKind(err error) string {
	if err == nil {
		return ""
	}
	if kind, ok := common.KindOf(err); ok {
		return kind.String()
	}
	return "internal"
}

// resultKind labels a registry result for metrics.
func resultKind(result *types.Result) string {
	switch {
	case result.Success:
		return ""
	case result.Kind != "":
		return result.Kind
	default:
		return "failed"
	}
}
