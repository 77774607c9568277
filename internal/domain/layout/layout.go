package layout

// Layout describes what a project built from this template must contain.
// Paths are slash separated and relative to the project root; globs use
// doublestar syntax.
type Layout struct {
	RequiredFiles []string

	// LogicDir holds the business logic packages.
	LogicDir       string
	LogicFiles     string
	RequiredFuncs  []string
	APIFiles       string
	ServerFiles    []string
	CLIFiles       string
	RequiredModule []string
	OptionalModule []string
	TestFiles      []string
}

// Default returns the layout of this repository.
func Default() Layout {
	return Layout{
		RequiredFiles: []string{
			"go.mod",
			"cmd/server/main.go",
			"cmd/mathcli/main.go",
		},
		LogicDir:       "internal/providers",
		LogicFiles:     "internal/providers/**/*.go",
		RequiredFuncs:  []string{"Square", "Power", "Factorial", "Fibonacci", "IsPrime", "Calculate"},
		APIFiles:       "internal/api/**/*.go",
		ServerFiles:    []string{"internal/infrastructure/server/*.go", "cmd/server/*.go"},
		CLIFiles:       "cmd/mathcli/*.go",
		RequiredModule: []string{"github.com/gin-gonic/gin"},
		OptionalModule: []string{"github.com/stretchr/testify"},
		TestFiles: []string{
			"internal/providers/math/operations/*_test.go",
			"internal/api/http/*_test.go",
			"cmd/mathcli/*_test.go",
		},
	}
}
