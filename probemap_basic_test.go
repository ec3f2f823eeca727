package probemap_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/theflywheel/probemap"
)

func TestBasicOperations(t *testing.T) {
	m := probemap.New[probemap.Int, int]()

	for i := 0; i < 10; i++ {
		if _, _, err := m.Set(probemap.Int(i), i*100); err != nil {
			t.Fatalf("Failed to set key %d: %v", i, err)
		}
	}

	for i := 0; i < 10; i++ {
		value, err := m.Get(probemap.Int(i))
		if err != nil {
			t.Fatalf("Key %d not found: %v", i, err)
		}
		if value != i*100 {
			t.Errorf("Value mismatch for key %d: expected %d, got %d", i, i*100, value)
		}
	}

	if m.Len() != 10 {
		t.Errorf("Expected 10 entries, got %d", m.Len())
	}
}

// TestOverwrite tests overwriting existing keys
func TestOverwrite(t *testing.T) {
	m := probemap.New[probemap.String, int]()

	old, replaced, err := m.Set("answer", 100)
	if err != nil {
		t.Fatalf("Failed to set initial value: %v", err)
	}
	if replaced || old != 0 {
		t.Fatalf("Expected no previous value, got %d (replaced=%v)", old, replaced)
	}

	old, replaced, err = m.Set("answer", 200)
	if err != nil {
		t.Fatalf("Failed to overwrite value: %v", err)
	}
	if !replaced || old != 100 {
		t.Fatalf("Expected previous value 100, got %d (replaced=%v)", old, replaced)
	}

	value, err := m.Get("answer")
	if err != nil {
		t.Fatal("Key not found after overwrite")
	}
	if value != 200 {
		t.Fatalf("Expected updated value 200, got %d", value)
	}
	if m.Len() != 1 {
		t.Fatalf("Overwrite changed size to %d", m.Len())
	}
}

func TestDeleteThenLookup(t *testing.T) {
	m := probemap.New[probemap.String, string]()
	for i := 0; i < 5; i++ {
		if _, _, err := m.Set(probemap.String(fmt.Sprintf("key-%d", i)), "v"); err != nil {
			t.Fatalf("Failed to set key %d: %v", i, err)
		}
	}

	if _, err := m.Delete("key-2"); err != nil {
		t.Fatalf("Failed to delete key-2: %v", err)
	}
	if ok, _ := m.Contains("key-2"); ok {
		t.Error("key-2 still present after delete")
	}
	if _, err := m.Get("key-2"); !errors.Is(err, probemap.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := m.Delete("key-2"); !errors.Is(err, probemap.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}

	for _, k := range []probemap.String{"key-0", "key-1", "key-3", "key-4"} {
		if ok, _ := m.Contains(k); !ok {
			t.Errorf("%s lost after unrelated delete", k)
		}
	}
	if m.Len() != 4 {
		t.Errorf("Expected 4 entries, got %d", m.Len())
	}
}
