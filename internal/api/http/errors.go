package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
)

var errEmptyBody = errors.New("request body is empty")

// FieldError describes one rejected request field. The shape mirrors the
// validation errors clients of this API already parse.
type FieldError struct {
	Type  string        `json:"type"`
	Loc   []interface{} `json:"loc"`
	Msg   string        `json:"msg"`
	Input interface{}   `json:"input,omitempty"`
}

// abortValidation rejects a malformed request with 422.
func abortValidation(c *gin.Context, errs ...FieldError) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": errs})
}

// pathError builds the error for an unparseable path parameter.
func pathError(name, raw string, integer bool) FieldError {
	if integer {
		return FieldError{
			Type:  "int_parsing",
			Loc:   []interface{}{"path", name},
			Msg:   "Input should be a valid integer, unable to parse string as an integer",
			Input: raw,
		}
	}
	return FieldError{
		Type:  "float_parsing",
		Loc:   []interface{}{"path", name},
		Msg:   "Input should be a valid number, unable to parse string as a number",
		Input: raw,
	}
}

// bindingErrors converts an error from ShouldBindJSON into field errors.
func bindingErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, validationError(fe))
		}
		return out
	}

	var numErr *common.Error
	if errors.As(err, &numErr) {
		return []FieldError{{Type: "number_type", Loc: []interface{}{"body"}, Msg: numErr.Message}}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []interface{}{"body"}
		if typeErr.Field != "" {
			for _, part := range strings.Split(typeErr.Field, ".") {
				loc = append(loc, part)
			}
		}
		return []FieldError{{
			Type: "type_error",
			Loc:  loc,
			Msg:  fmt.Sprintf("Input should be a valid %s, got %s", typeErr.Type.Kind(), typeErr.Value),
		}}
	}

	return []FieldError{{Type: "json_invalid", Loc: []interface{}{"body"}, Msg: "JSON decode error: " + err.Error()}}
}

func validationError(fe validator.FieldError) FieldError {
	loc := []interface{}{"body", strings.ToLower(fe.Field())}
	switch fe.Tag() {
	case "required":
		return FieldError{Type: "missing", Loc: loc, Msg: "Field required"}
	case "min":
		return FieldError{
			Type: "too_short",
			Loc:  loc,
			Msg:  fmt.Sprintf("List should have at least %s item after validation, not 0", fe.Param()),
		}
	default:
		return FieldError{Type: fe.Tag(), Loc: loc, Msg: fe.Error()}
	}
}

// respondOperationError reports a failure from the math core. Both kinds
// map to 400 with the kind named in the error field; anything else is an
// internal error.
func respondOperationError(c *gin.Context, err error) {
	kind, ok := common.KindOf(err)
	if !ok {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"detail":  "An unexpected error occurred",
			"success": false,
		})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"detail":  "Invalid input: " + err.Error(),
		"error":   kind.String(),
		"success": false,
	})
}
