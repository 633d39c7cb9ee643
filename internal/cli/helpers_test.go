//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package cli_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/joe/pathkit/internal/cli"
	"github.com/joe/pathkit/internal/config"
	"github.com/joe/pathkit/pkg/filesystem"
)

// remote is a location served by the test's memory filesystem.
func remote(path string) string {
	return "sftp://joe@mem/" + path
}

type harness struct {
	runner *cli.Runner
	mem    *filesystem.MemoryFileSystem
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newHarness() *harness {
	mem := filesystem.NewMemoryFileSystem()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	runner := cli.NewRunner(out, errOut, nil)
	runner.Connect = func(filesystem.Location) (filesystem.FileSystem, func(), error) {
		return mem, func() {}, nil
	}

	return &harness{runner: runner, mem: mem, out: out, errOut: errOut}
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()

	cfg, err := config.Parse(args)
	if err != nil {
		t.Fatalf("Parse(%v) failed: %v", args, err)
	}

	return h.runner.Run(cfg)
}

func (h *harness) mkdir(t *testing.T, paths ...string) {
	t.Helper()

	for _, path := range paths {
		if err := h.mem.Mkdir(path, 0o755); err != nil {
			t.Fatalf("Mkdir(%s) failed: %v", path, err)
		}
	}
}

func (h *harness) write(t *testing.T, path, content string) {
	t.Helper()

	file, err := h.mem.Create(path, 0o644)
	if err != nil {
		t.Fatalf("Create(%s) failed: %v", path, err)
	}

	if _, err := io.WriteString(file, content); err != nil {
		t.Fatalf("Write(%s) failed: %v", path, err)
	}

	if err := file.Close(); err != nil {
		t.Fatalf("Close(%s) failed: %v", path, err)
	}
}

func (h *harness) read(t *testing.T, path string) string {
	t.Helper()

	file, err := h.mem.Open(path)
	if err != nil {
		t.Fatalf("Open(%s) failed: %v", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		t.Fatalf("Read(%s) failed: %v", path, err)
	}

	return string(data)
}

// seedTree creates /src/{a.txt, b.txt, sub/c.txt, link -> a.txt}.
func (h *harness) seedTree(t *testing.T) {
	t.Helper()

	h.mkdir(t, "/src", "/src/sub")
	h.write(t, "/src/a.txt", "alpha")
	h.write(t, "/src/b.txt", "bravo")
	h.write(t, "/src/sub/c.txt", "charlie")

	if err := h.mem.Symlink("a.txt", "/src/link"); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}
}
