package state

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/VolumeFi/gpu-dao-cw/internal/store"
)

// Item is a singleton JSON value stored under its namespace.
type Item[T any] struct {
	namespace string
}

// NewItem declares an Item stored at namespace.
func NewItem[T any](namespace string) Item[T] {
	return Item[T]{namespace: namespace}
}

// Load reads the value. A missing value wraps store.ErrNotFound.
func (i Item[T]) Load(kv store.KVStore) (*T, error) {
	data, err := kv.Get([]byte(i.namespace))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", i.namespace, err)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", i.namespace, err)
	}
	return &v, nil
}

// Exists reports whether the value has been saved.
func (i Item[T]) Exists(kv store.KVStore) (bool, error) {
	_, err := kv.Get([]byte(i.namespace))
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", i.namespace, err)
	}
	return true, nil
}

// Save writes the value.
func (i Item[T]) Save(kv store.KVStore, v *T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", i.namespace, err)
	}
	if err := kv.Set([]byte(i.namespace), data); err != nil {
		return fmt.Errorf("save %s: %w", i.namespace, err)
	}
	return nil
}
