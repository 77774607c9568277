package layout

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/mod/modfile"
)

// Section groups the checks that passed under one heading.
type Section struct {
	Title  string
	Passed []string
}

// Report is the outcome of validating one project.
type Report struct {
	Root     string
	Module   string
	Sections []*Section
	Errors   []string
	Warnings []string
}

// OK reports whether no errors were found. Warnings do not fail a project.
func (r *Report) OK() bool {
	return len(r.Errors) == 0
}

func (r *Report) section(title string) *Section {
	s := &Section{Title: title}
	r.Sections = append(r.Sections, s)
	return s
}

func (r *Report) errorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Validator checks a project tree against a Layout.
type Validator struct {
	layout Layout
	root   string
	fsys   fs.FS
	fset   *token.FileSet
}

// New creates a validator for the project at root.
func New(root string, layout Layout) *Validator {
	return &Validator{
		layout: layout,
		root:   root,
		fsys:   os.DirFS(root),
		fset:   token.NewFileSet(),
	}
}

// Validate runs every check against the project at root using the
// default layout.
func Validate(root string) (*Report, error) {
	return New(root, Default()).Run()
}

// Run executes all checks. It fails only when the project root itself is
// unusable; problems inside the project are collected in the report.
func (v *Validator) Run() (*Report, error) {
	info, err := os.Stat(v.root)
	if err != nil {
		return nil, fmt.Errorf("project path does not exist: %s", v.root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project path is not a directory: %s", v.root)
	}

	r := &Report{Root: v.root}
	v.checkRequiredFiles(r)
	v.checkModule(r)
	v.checkBusinessLogic(r)
	v.checkAPI(r)
	v.checkCLI(r)
	v.checkTests(r)
	return r, nil
}

func (v *Validator) checkRequiredFiles(r *Report) {
	s := r.section("Checking required files...")
	for _, name := range v.layout.RequiredFiles {
		if _, err := fs.Stat(v.fsys, name); err != nil {
			r.errorf("Missing required file: %s", name)
			continue
		}
		s.Passed = append(s.Passed, name)
	}
}

func (v *Validator) checkModule(r *Report) {
	s := r.section("Checking go.mod...")
	data, err := fs.ReadFile(v.fsys, "go.mod")
	if err != nil {
		// Already reported as a missing file.
		return
	}

	mod, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		r.errorf("Error parsing go.mod: %v", err)
		return
	}
	if mod.Module != nil {
		r.Module = mod.Module.Mod.Path
		s.Passed = append(s.Passed, "module "+r.Module)
	}

	required := make(map[string]bool, len(mod.Require))
	for _, req := range mod.Require {
		required[req.Mod.Path] = true
	}
	for _, dep := range v.layout.RequiredModule {
		if required[dep] {
			s.Passed = append(s.Passed, dep+" required")
		} else {
			r.errorf("go.mod does not require %s", dep)
		}
	}
	for _, dep := range v.layout.OptionalModule {
		if required[dep] {
			s.Passed = append(s.Passed, dep+" required")
		} else {
			r.warnf("go.mod does not require %s", dep)
		}
	}
}

func (v *Validator) checkBusinessLogic(r *Report) {
	s := r.section("Checking business logic structure...")
	files, err := v.parseGlob(v.layout.LogicFiles)
	if err != nil {
		r.errorf("Error parsing business logic package: %v", err)
		return
	}
	if len(files) == 0 {
		r.errorf("Missing business logic package: %s", v.layout.LogicDir)
		return
	}
	s.Passed = append(s.Passed, fmt.Sprintf("Found business logic package: %s (%d files)", v.layout.LogicDir, len(files)))

	defined := map[string]bool{}
	for _, f := range files {
		for _, decl := range f.Decls {
			if fn, ok := decl.(*ast.FuncDecl); ok && fn.Recv == nil {
				defined[fn.Name.Name] = true
			}
		}
	}
	for _, name := range v.layout.RequiredFuncs {
		if defined[name] {
			s.Passed = append(s.Passed, fmt.Sprintf("Function '%s' found", name))
		} else {
			r.warnf("Function '%s' not found in business logic. This may be intentional if renamed for domain.", name)
		}
	}
}

func (v *Validator) checkAPI(r *Report) {
	s := r.section("Checking API structure...")
	files, err := v.parseGlob(v.layout.APIFiles)
	if err != nil {
		r.warnf("Could not fully parse API package: %v", err)
		return
	}
	if len(files) == 0 {
		r.errorf("Missing API package: %s", v.layout.APIFiles)
		return
	}

	if importsAny(files, func(p string) bool { return p == "github.com/gin-gonic/gin" }) {
		s.Passed = append(s.Passed, "gin imported")
	} else {
		r.errorf("gin not imported in API package")
	}
	if importsAny(files, v.isLogicImport) {
		s.Passed = append(s.Passed, "Business logic imported from "+v.layout.LogicDir)
	} else {
		r.warnf("Business logic import from %s not detected. Ensure API calls business logic functions.", v.layout.LogicDir)
	}

	var server []*ast.File
	for _, pattern := range v.layout.ServerFiles {
		more, err := v.parseGlob(pattern)
		if err != nil {
			r.warnf("Could not fully parse server files: %v", err)
			return
		}
		server = append(server, more...)
	}
	if slices.ContainsFunc(append(server, files...), constructsEngine) {
		s.Passed = append(s.Passed, "gin engine created")
	} else {
		r.errorf("gin engine instance not found")
	}
}

func (v *Validator) checkCLI(r *Report) {
	s := r.section("Checking CLI structure...")
	files, err := v.parseGlob(v.layout.CLIFiles)
	if err != nil {
		r.warnf("Could not fully parse CLI: %v", err)
		return
	}
	if len(files) == 0 {
		return
	}

	if importsAny(files, func(p string) bool { return p == "flag" }) {
		s.Passed = append(s.Passed, "flag imported")
	} else {
		r.warnf("flag not imported in CLI")
	}
	if importsAny(files, v.isLogicImport) {
		s.Passed = append(s.Passed, "Business logic imported from "+v.layout.LogicDir)
	} else {
		r.warnf("Business logic import from %s not detected in CLI", v.layout.LogicDir)
	}
	if slices.ContainsFunc(files, definesMain) {
		s.Passed = append(s.Passed, "main() function found")
	} else {
		r.warnf("main() function not found in CLI")
	}
}

func (v *Validator) checkTests(r *Report) {
	s := r.section("Checking test structure...")
	found := 0
	for _, pattern := range v.layout.TestFiles {
		matches, err := doublestar.Glob(v.fsys, pattern)
		if err != nil || len(matches) == 0 {
			continue
		}
		found++
		s.Passed = append(s.Passed, path.Dir(pattern)+" ("+strconv.Itoa(len(matches))+" files)")
	}

	switch {
	case found == 0:
		r.warnf("No test files found")
	case found < len(v.layout.TestFiles):
		r.warnf("Only %d/%d expected test files found", found, len(v.layout.TestFiles))
	}
}

// parseGlob parses every non-test Go file matching pattern.
func (v *Validator) parseGlob(pattern string) ([]*ast.File, error) {
	matches, err := doublestar.Glob(v.fsys, pattern)
	if err != nil {
		return nil, err
	}
	slices.Sort(matches)

	files := make([]*ast.File, 0, len(matches))
	for _, name := range matches {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := fs.ReadFile(v.fsys, name)
		if err != nil {
			return nil, err
		}
		f, err := parser.ParseFile(v.fset, name, src, parser.SkipObjectResolution)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func (v *Validator) isLogicImport(importPath string) bool {
	return strings.Contains(importPath+"/", "/"+v.layout.LogicDir+"/")
}

func importsAny(files []*ast.File, match func(string) bool) bool {
	for _, f := range files {
		for _, imp := range f.Imports {
			p, err := strconv.Unquote(imp.Path.Value)
			if err == nil && match(p) {
				return true
			}
		}
	}
	return false
}

// constructsEngine reports whether f calls gin.New or gin.Default.
func constructsEngine(f *ast.File) bool {
	found := false
	ast.Inspect(f, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return !found
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if pkg, ok := sel.X.(*ast.Ident); ok && pkg.Name == "gin" && (sel.Sel.Name == "New" || sel.Sel.Name == "Default") {
			found = true
		}
		return !found
	})
	return found
}

func definesMain(f *ast.File) bool {
	if f.Name.Name != "main" {
		return false
	}
	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Recv == nil && fn.Name.Name == "main" {
			return true
		}
	}
	return false
}
