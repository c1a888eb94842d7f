//go:build mage

// Package main contains Mage build targets for leetcode-search developer tooling.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir      = "bin"
	binName     = "leetcode-search"
	cmdPkg      = "./cmd/leetcode-search"
	workflowDir = "dist/alfred-workflow"
	iconFile    = "icon.png"
)

// ldflags stamps the version reported by `leetcode-search --version`.
func ldflags() string {
	v := os.Getenv("VERSION")
	if v == "" {
		v = "dev"
	}
	return "-X main.version=" + v
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", ldflags(), "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Workflow builds darwin binaries for both architectures into the Alfred
// workflow directory and copies the icon next to them.
func Workflow() error {
	mg.Deps(Test)

	if err := os.MkdirAll(workflowDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", workflowDir, err)
	}
	for _, arch := range []string{"amd64", "arm64"} {
		out := filepath.Join(workflowDir, binName+"-"+arch)
		env := map[string]string{"GOOS": "darwin", "GOARCH": arch, "CGO_ENABLED": "0"}
		if err := sh.RunWithV(env, "go", "build", "-ldflags", ldflags(), "-o", out, cmdPkg); err != nil {
			return fmt.Errorf("go build %s: %w", arch, err)
		}
		fmt.Println("  ", out)
	}
	if err := copyFile(iconFile, filepath.Join(workflowDir, iconFile)); err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("warning: %s not found, workflow items will have no icon\n", iconFile)
			return nil
		}
		return err
	}
	fmt.Println("Alfred workflow assembled in", workflowDir)
	return nil
}

// Clean removes build outputs.
func Clean() error {
	for _, dir := range []string{binDir, "dist"} {
		if err := sh.Rm(dir); err != nil {
			return err
		}
	}
	return nil
}

// Stats prints project metrics: Go production and test LOC.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}
