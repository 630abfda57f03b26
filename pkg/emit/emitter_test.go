package emit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-stencil/pkg/emit"
)

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")

	emitter := emit.New()
	if err := emitter.WriteString(path, "hello"); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got := string(data); got != "hello" {
		t.Fatalf("content mismatch: want %q got %q", "hello", got)
	}
	if len(data) != 5 {
		t.Fatalf("expected exactly 5 bytes, got %d", len(data))
	}
}

func TestWrite_PreservesWhitespaceInPath(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "output.txt ")

	emitter := emit.New()
	if err := emitter.WriteString(path, "hello"); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back at requested path: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("content mismatch: %q", string(data))
	}

	trimmed := filepath.Join(root, "output.txt")
	if _, err := os.Stat(trimmed); !os.IsNotExist(err) {
		t.Fatalf("file leaked to trimmed path %q, stat err: %v", trimmed, err)
	}
}

func TestWrite_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "component.tsx")

	emitter := emit.New()
	if err := emitter.WriteString(path, "first version with trailing content"); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := emitter.WriteString(path, "second"); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if diff := cmp.Diff("second", string(data)); diff != "" {
		t.Fatalf("overwrite mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_MissingParentDirFails(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "missing_dir", "output.txt")

	emitter := emit.New()
	if err := emitter.WriteString(path, "hello"); err == nil {
		t.Fatalf("expected error writing into missing directory")
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file at %s, stat err: %v", path, err)
	}
}

func TestWrite_MkdirAllCreatesParents(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "client", "src", "components", "menu.tsx")

	emitter := emit.New(emit.WithMkdirAll(0o755))
	if err := emitter.WriteString(path, "export {}\n"); err != nil {
		t.Fatalf("write with mkdir: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "export {}\n" {
		t.Fatalf("content mismatch: %q", string(data))
	}
}

func TestWrite_EmptyPathRejected(t *testing.T) {
	emitter := emit.New()
	if err := emitter.WriteString("  ", "hello"); err == nil {
		t.Fatalf("expected error for empty destination path")
	}
}

func TestWrite_FileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")

	emitter := emit.New(emit.WithFileMode(0o600))
	if err := emitter.WriteString(path, "#!/bin/sh\n"); err != nil {
		t.Fatalf("write: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Fatalf("mode mismatch: want 0600 got %v", got)
	}
}
