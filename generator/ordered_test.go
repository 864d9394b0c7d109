package generator

import (
	"errors"
	"reflect"
	"testing"
)

func TestTableInsertOrder(t *testing.T) {
	table := NewTable[int64]()

	keys := []string{"zeta", "alpha", "mid"}
	for i, k := range keys {
		if err := table.Insert(k, int64(i)); err != nil {
			t.Fatalf("Insert(%q) failed: %v", k, err)
		}
	}

	if !reflect.DeepEqual(table.Keys(), keys) {
		t.Errorf("Keys() = %v, want insertion order %v", table.Keys(), keys)
	}
	if v, ok := table.Get("alpha"); !ok || v != 1 {
		t.Errorf("Get(alpha) = %v, %v, want 1, true", v, ok)
	}
}

func TestTableRejectsDuplicates(t *testing.T) {
	table := NewTable[int64]()

	if err := table.Insert("nq", 7); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	err := table.Insert("nq", 99)
	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("reinsert returned %v, want *DuplicateKeyError", err)
	}
	if dup.Key != "nq" {
		t.Errorf("duplicate key = %q, want nq", dup.Key)
	}

	// the prior entry must be untouched
	if v, _ := table.Get("nq"); v != 7 {
		t.Errorf("Get(nq) after failed insert = %d, want 7", v)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}
