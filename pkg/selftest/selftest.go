// Package selftest implements the checks run by "prompt-get --test". It only uses the
// exported surface of the consolidate package, so it exercises what users get.
package selftest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"promptget/pkg/consolidate"
)

// Report counts the outcome of a self-test run.
type Report struct {
	Passed int
	Failed int
}

type suite struct {
	w      io.Writer
	logger *zap.Logger
	report Report
}

// Run executes every check, printing one PASS/FAIL line per case to w.
// It returns an error when at least one case fails.
func Run(w io.Writer, logger *zap.Logger) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &suite{w: w, logger: logger}

	fmt.Fprintln(w, "=== Running self-tests ===")

	fmt.Fprintln(w, "\nComment headers")
	s.headers()

	fmt.Fprintln(w, "\nSkip logic")
	s.skipLogic()

	fmt.Fprintln(w, "\nIntegration")
	s.integration()

	fmt.Fprintf(w, "\n=== %d passed, %d failed ===\n", s.report.Passed, s.report.Failed)
	if s.report.Failed > 0 {
		return s.report, fmt.Errorf("%d self-test case(s) failed", s.report.Failed)
	}
	return s.report, nil
}

func (s *suite) check(name string, err error) {
	if err != nil {
		s.report.Failed++
		fmt.Fprintf(s.w, "  FAIL %s: %v\n", name, err)
		return
	}
	s.report.Passed++
	fmt.Fprintf(s.w, "  PASS %s\n", name)
}

func (s *suite) headers() {
	cases := []struct {
		path string
		want string
	}{
		{"./test.py", "# ./test.py"},
		{"./script.js", "// ./script.js"},
		{"./component.tsx", "// ./component.tsx"},
		{"./STYLE.CSS", "<!-- ./STYLE.CSS -->"},
		{"./index.html", "<!-- ./index.html -->"},
		{"./README.md", "# ./README.md"},
		{"./Makefile", "# ./Makefile"},
	}
	for _, tc := range cases {
		var err error
		if got := consolidate.Header(tc.path); got != tc.want {
			err = fmt.Errorf("expected %q, got %q", tc.want, got)
		}
		s.check(tc.path, err)
	}
}

func (s *suite) skipLogic() {
	policy := consolidate.DefaultPolicy()
	cases := []struct {
		path string
		skip bool
	}{
		{".gitignore", true},
		{".DS_Store", true},
		{"normal.py", false},
		{"prompt.txt", true},
		{"package.json", true},
		{"package-lock.json", true},
		{"node_modules/package.json", true},
		{"src/__pycache__/module.pyc", true},
		{"venv/bin/python", true},
		{".git/config", true},
		{"src/.hidden/app.py", true},
		{"src/components/App.jsx", false},
	}
	for _, tc := range cases {
		var err error
		if got := policy.Excluded(tc.path); got != tc.skip {
			err = fmt.Errorf("expected excluded=%v, got %v", tc.skip, got)
		}
		s.check(tc.path, err)
	}
}

func (s *suite) integration() {
	dir, err := os.MkdirTemp("", "prompt-get-selftest-")
	if err != nil {
		s.check("create temporary directory", err)
		return
	}
	defer os.RemoveAll(dir)

	files := map[string]string{
		"test.py":               `print("Hello World")`,
		"script.js":             `console.log("Hello World")`,
		"style.css":             `body { color: red; }`,
		"index.html":            `<html><body>Hello</body></html>`,
		".gitignore":            `*.pyc`,
		"package.json":          `{"name": "test"}`,
		"package-lock.json":     `{"lockfileVersion": 1}`,
		"node_modules/test.txt": `skipped`,
		"__pycache__/test.txt":  `skipped`,
		"venv/test.txt":         `skipped`,
		"prompt.txt":            `stale output`,
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			s.check("create test tree", err)
			return
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			s.check("create test tree", err)
			return
		}
	}

	want := consolidate.Render([]consolidate.FileEntry{
		{Path: "./index.html", Content: []byte(files["index.html"])},
		{Path: "./script.js", Content: []byte(files["script.js"])},
		{Path: "./style.css", Content: []byte(files["style.css"])},
		{Path: "./test.py", Content: []byte(files["test.py"])},
	})

	first, err := s.consolidate(dir)
	if err == nil && !bytes.Equal(first, want) {
		err = fmt.Errorf("unexpected output:\n%s", first)
	}
	s.check("consolidate temporary tree", err)
	if err != nil {
		return
	}

	second, err := s.consolidate(dir)
	if err == nil && !bytes.Equal(first, second) {
		err = fmt.Errorf("second run differs from the first")
	}
	s.check("second run is byte-identical", err)
}

func (s *suite) consolidate(dir string) ([]byte, error) {
	res, err := consolidate.Run(consolidate.Options{Root: dir}, s.logger)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(res.OutputPath)
}
