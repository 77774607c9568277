package http

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// Document builds the OpenAPI 3 description of the API.
func Document() *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Mathematical Operations API",
			Version:     Version,
			Description: "Exact integer and floating-point operations over HTTP",
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				"ValueError":      openapi3.NewSchemaRef("", valueErrorSchema()),
				"ValidationError": openapi3.NewSchemaRef("", validationErrorSchema()),
				"Statistics":      openapi3.NewSchemaRef("", statisticsSchema()),
			},
		},
	}

	doc.Paths.Set("/", &openapi3.PathItem{Get: simpleOperation("root", "API information")})
	doc.Paths.Set("/health", &openapi3.PathItem{Get: simpleOperation("health", "Health check")})

	doc.Paths.Set("/square/{number}", &openapi3.PathItem{
		Get: mathOperation("square", "Calculate the square of a number",
			pathParam("number", "Number to square", openapi3.NewFloat64Schema()),
			nil,
			object(map[string]*openapi3.Schema{
				"input":  openapi3.NewFloat64Schema(),
				"result": openapi3.NewFloat64Schema(),
			}),
		),
	})
	doc.Paths.Set("/factorial/{number}", &openapi3.PathItem{
		Get: mathOperation("factorial", "Calculate the factorial of a non-negative integer",
			pathParam("number", "Integer >= 0", openapi3.NewIntegerSchema()),
			nil,
			object(map[string]*openapi3.Schema{
				"input":  openapi3.NewIntegerSchema(),
				"result": openapi3.NewIntegerSchema(),
			}),
		),
	})
	doc.Paths.Set("/fibonacci/{count}", &openapi3.PathItem{
		Get: mathOperation("fibonacci", "Generate the first count Fibonacci numbers",
			pathParam("count", "Number of terms (> 0)", openapi3.NewIntegerSchema()),
			nil,
			object(map[string]*openapi3.Schema{
				"count":    openapi3.NewIntegerSchema(),
				"sequence": openapi3.NewArraySchema().WithItems(openapi3.NewIntegerSchema()),
			}),
		),
	})
	doc.Paths.Set("/prime/{number}", &openapi3.PathItem{
		Get: mathOperation("is_prime", "Check whether an integer is prime",
			pathParam("number", "Integer >= 2", openapi3.NewIntegerSchema()),
			nil,
			object(map[string]*openapi3.Schema{
				"input":    openapi3.NewIntegerSchema(),
				"is_prime": openapi3.NewBoolSchema(),
			}),
		),
	})

	powerBody := object(map[string]*openapi3.Schema{
		"base":     openapi3.NewFloat64Schema(),
		"exponent": openapi3.NewFloat64Schema(),
	}, "base", "exponent")
	doc.Paths.Set("/power", &openapi3.PathItem{
		Post: mathOperation("power", "Raise base to the power of exponent",
			nil,
			powerBody,
			object(map[string]*openapi3.Schema{
				"base":     openapi3.NewFloat64Schema(),
				"exponent": openapi3.NewFloat64Schema(),
				"result":   openapi3.NewFloat64Schema(),
			}),
		),
	})

	statsBody := object(map[string]*openapi3.Schema{
		"numbers": openapi3.NewArraySchema().WithItems(openapi3.NewFloat64Schema()).WithMinItems(1),
	}, "numbers")
	doc.Paths.Set("/stats", &openapi3.PathItem{
		Post: mathOperation("calculate_stats", "Calculate count, mean, median, min, max and sum",
			nil,
			statsBody,
			object(map[string]*openapi3.Schema{
				"input_numbers": openapi3.NewArraySchema().WithItems(openapi3.NewFloat64Schema()),
				"statistics":    statisticsSchema(),
			}),
		),
	})

	doc.Paths.Set("/services", &openapi3.PathItem{Get: &openapi3.Operation{
		OperationID: "list_services",
		Summary:     "List registered services",
		Tags:        []string{"services"},
		Parameters: openapi3.Parameters{
			{Value: openapi3.NewQueryParameter("category").
				WithSchema(openapi3.NewStringSchema().WithEnum("math", "data"))},
		},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("Registered services")}),
			openapi3.WithStatus(http.StatusUnprocessableEntity, validationResponse()),
		),
	}})
	doc.Paths.Set("/services/discover", &openapi3.PathItem{Post: &openapi3.Operation{
		OperationID: "discover_services",
		Summary:     "Find services relevant to a query",
		Tags:        []string{"services"},
		RequestBody: &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().WithRequired(true).
			WithJSONSchema(object(map[string]*openapi3.Schema{
				"query": openapi3.NewStringSchema(),
				"limit": openapi3.NewIntegerSchema(),
			}, "query"))},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("Matching services")}),
			openapi3.WithStatus(http.StatusUnprocessableEntity, validationResponse()),
		),
	}})
	doc.Paths.Set("/services/execute", &openapi3.PathItem{Post: &openapi3.Operation{
		OperationID: "execute_service",
		Summary:     "Execute a service tool",
		Tags:        []string{"services"},
		RequestBody: &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().WithRequired(true).
			WithJSONSchema(object(map[string]*openapi3.Schema{
				"tool_id": openapi3.NewStringSchema(),
				"params":  openapi3.NewObjectSchema(),
			}, "tool_id", "params"))},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("Tool result")}),
			openapi3.WithStatus(http.StatusNotFound, &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("Unknown service")}),
			openapi3.WithStatus(http.StatusUnprocessableEntity, validationResponse()),
		),
	}})

	return doc
}

func simpleOperation(id, summary string) *openapi3.Operation {
	return &openapi3.Operation{
		OperationID: id,
		Summary:     summary,
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription(summary)}),
		),
	}
}

// mathOperation describes one numeric endpoint. param and body are
// optional.
func mathOperation(id, summary string, param *openapi3.Parameter, body, result *openapi3.Schema) *openapi3.Operation {
	result.Properties["operation"] = openapi3.NewSchemaRef("", openapi3.NewStringSchema())
	result.Properties["success"] = openapi3.NewSchemaRef("", openapi3.NewBoolSchema())

	op := &openapi3.Operation{
		OperationID: id,
		Summary:     summary,
		Tags:        []string{"math"},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().WithDescription("Successful result").WithJSONSchema(result),
			}),
			openapi3.WithStatus(http.StatusBadRequest, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().WithDescription("Input outside the operation's domain").
					WithContent(openapi3.NewContentWithJSONSchemaRef(componentRef("ValueError", valueErrorSchema()))),
			}),
			openapi3.WithStatus(http.StatusUnprocessableEntity, validationResponse()),
		),
	}
	if param != nil {
		op.Parameters = openapi3.Parameters{{Value: param}}
	}
	if body != nil {
		op.RequestBody = &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(body)}
	}
	return op
}

func pathParam(name, description string, schema *openapi3.Schema) *openapi3.Parameter {
	return openapi3.NewPathParameter(name).WithDescription(description).WithSchema(schema)
}

func validationResponse() *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription("Malformed request").
			WithContent(openapi3.NewContentWithJSONSchemaRef(componentRef("ValidationError", validationErrorSchema()))),
	}
}

// componentRef refers to a shared schema while keeping its value resolved.
func componentRef(name string, schema *openapi3.Schema) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Ref: "#/components/schemas/" + name, Value: schema}
}

func object(properties map[string]*openapi3.Schema, required ...string) *openapi3.Schema {
	schema := openapi3.NewObjectSchema().WithProperties(properties)
	schema.Required = required
	return schema
}

func valueErrorSchema() *openapi3.Schema {
	return object(map[string]*openapi3.Schema{
		"detail":  openapi3.NewStringSchema(),
		"error":   openapi3.NewStringSchema().WithEnum("value_error", "type_error"),
		"success": openapi3.NewBoolSchema(),
	}, "detail", "error", "success")
}

func validationErrorSchema() *openapi3.Schema {
	item := object(map[string]*openapi3.Schema{
		"type": openapi3.NewStringSchema(),
		"loc":  openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()),
		"msg":  openapi3.NewStringSchema(),
	}, "type", "loc", "msg")
	return object(map[string]*openapi3.Schema{
		"detail": openapi3.NewArraySchema().WithItems(item),
	}, "detail")
}

func statisticsSchema() *openapi3.Schema {
	return object(map[string]*openapi3.Schema{
		"count":  openapi3.NewIntegerSchema(),
		"mean":   openapi3.NewFloat64Schema(),
		"median": openapi3.NewFloat64Schema(),
		"min":    openapi3.NewFloat64Schema(),
		"max":    openapi3.NewFloat64Schema(),
		"sum":    openapi3.NewFloat64Schema(),
	}, "count", "mean", "median", "min", "max", "sum")
}
