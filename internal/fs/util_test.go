package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a")
	dst := filepath.Join(dir, "b")

	err := os.WriteFile(src, []byte("hello"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	err = Move(src, dst)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("source file still exists")
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestMoveMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := Move(filepath.Join(dir, "missing"), filepath.Join(dir, "b"))
	if err == nil {
		t.Errorf("expected an error for a missing source")
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a")
	dst := filepath.Join(dir, "b")
	os.WriteFile(src, []byte("data"), 0644)

	err := copyFile(src, dst)
	if err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(dst)
	if string(data) != "data" {
		t.Errorf("unexpected content %q", data)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("copy should keep the source: %v", err)
	}
}
