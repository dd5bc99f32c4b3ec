package alias

import (
	"path/filepath"
	"testing"

	tu "demoshell/internal/testutil"
)

func TestTable_Lookup(t *testing.T) {
	tbl := New(map[string]string{"ll": "ls -la", " gs ": "git status", "": "x", "blank": " "})
	if got, ok := tbl.Lookup("ll"); !ok || got != "ls -la" {
		t.Fatalf("Lookup(ll) = %q, %v", got, ok)
	}
	if got, ok := tbl.Lookup("gs"); !ok || got != "git status" {
		t.Fatalf("Lookup(gs) = %q, %v", got, ok)
	}
	if _, ok := tbl.Lookup("ll "); ok {
		t.Fatal("lookup must be exact")
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tbl.Len())
	}
	names := tbl.Names()
	if len(names) != 2 || names[0] != "gs" || names[1] != "ll" {
		t.Fatalf("Names = %v", names)
	}
}

func TestTable_CopiesInput(t *testing.T) {
	src := map[string]string{"ll": "ls -la"}
	tbl := New(src)
	src["ll"] = "rm -rf /"
	if got, _ := tbl.Lookup("ll"); got != "ls -la" {
		t.Fatalf("table shares caller map: %q", got)
	}
}

func TestStore_SetRemove(t *testing.T) {
	tu.ConfigHome(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if tbl.Len() != 0 {
		t.Fatalf("expected empty table, got %v", tbl.Names())
	}

	replaced, err := Set(path, "LL", "ls -la")
	if err != nil || replaced {
		t.Fatalf("Set = %v, %v", replaced, err)
	}
	replaced, err = Set(path, "ll", "ls -lah")
	if err != nil || !replaced {
		t.Fatalf("second Set = %v, %v", replaced, err)
	}
	if _, err := Set(path, "gs", "git status"); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	tbl, err = Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got, _ := tbl.Lookup("ll"); got != "ls -lah" {
		t.Fatalf("ll = %q", got)
	}

	removed, missing, err := Remove(path, []string{"gs", "nope"})
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if len(removed) != 1 || removed[0] != "gs" || len(missing) != 1 || missing[0] != "nope" {
		t.Fatalf("removed=%v missing=%v", removed, missing)
	}
	tbl, _ = Load(path)
	if tbl.Len() != 1 {
		t.Fatalf("final aliases = %v", tbl.Names())
	}
}

func TestStore_SetRejectsEmpty(t *testing.T) {
	tu.ConfigHome(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if _, err := Set(path, " ", "ls"); err == nil {
		t.Fatal("expected error for empty name")
	}
	if _, err := Set(path, "ll", ""); err == nil {
		t.Fatal("expected error for empty target")
	}
}
