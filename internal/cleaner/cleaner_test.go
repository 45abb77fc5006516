package cleaner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func exists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

func TestDeleteContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "first.png")
	touch(t, dir, "third.png")
	touch(t, dir, "keep.png")

	outcomes := New(dir).Delete([]string{"first.png", "second.png", "third.png"})
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}

	for i, name := range []string{"first.png", "second.png", "third.png"} {
		if outcomes[i].Name != name {
			t.Errorf("outcome %d is for %s; want %s", i, outcomes[i].Name, name)
		}
	}
	if outcomes[0].Err != nil || outcomes[2].Err != nil {
		t.Errorf("first and third deletions should succeed: %v, %v", outcomes[0].Err, outcomes[2].Err)
	}
	if !errors.Is(outcomes[1].Err, fs.ErrNotExist) {
		t.Errorf("second deletion should fail with not exist, got %v", outcomes[1].Err)
	}
	if Failed(outcomes) != 1 {
		t.Errorf("Failed = %d; want 1", Failed(outcomes))
	}

	if exists(dir, "first.png") || exists(dir, "third.png") {
		t.Error("deleted files are still on disk")
	}
	if !exists(dir, "keep.png") {
		t.Error("unselected file was removed")
	}
}

func TestDeleteTwice(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "dup.png")

	outcomes := New(dir).Delete([]string{"dup.png", "dup.png"})
	if outcomes[0].Err != nil {
		t.Errorf("first deletion failed: %v", outcomes[0].Err)
	}
	if outcomes[1].Err == nil {
		t.Error("second deletion of the same file should fail")
	}
}

func TestDeleteNothing(t *testing.T) {
	outcomes := New(t.TempDir()).Delete(nil)
	if len(outcomes) != 0 || Failed(outcomes) != 0 {
		t.Errorf("expected no outcomes, got %v", outcomes)
	}
}
