package generator

import "fmt"

// DuplicateKeyError aborts a run: colliding symbol names mean the header set
// cannot be translated deterministically.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q", e.Key)
}

// Table is a string-keyed mapping that preserves insertion order and rejects
// reinsertion of an existing key.
type Table[V any] struct {
	keys []string
	vals map[string]V
}

func NewTable[V any]() *Table[V] {
	return &Table[V]{vals: make(map[string]V)}
}

func (t *Table[V]) Insert(key string, val V) error {
	if _, ok := t.vals[key]; ok {
		return &DuplicateKeyError{Key: key}
	}

	t.keys = append(t.keys, key)
	t.vals[key] = val

	return nil
}

func (t *Table[V]) Get(key string) (V, bool) {
	v, ok := t.vals[key]
	return v, ok
}

func (t *Table[V]) Keys() []string {
	return t.keys
}

func (t *Table[V]) Len() int {
	return len(t.keys)
}
