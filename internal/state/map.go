package state

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/VolumeFi/gpu-dao-cw/internal/store"
)

// errStop ends a Range early.
var errStop = errors.New("stop")

// Map is a string-keyed collection of JSON values under a namespace.
type Map[V any] struct {
	namespace string
}

// NewMap declares a Map stored under namespace.
func NewMap[V any](namespace string) Map[V] {
	return Map[V]{namespace: namespace}
}

// Load reads the value at k. A missing entry wraps store.ErrNotFound.
func (m Map[V]) Load(kv store.KVStore, k string) (*V, error) {
	data, err := kv.Get(mapKey(m.namespace, k))
	if err != nil {
		return nil, fmt.Errorf("load %s[%s]: %w", m.namespace, k, err)
	}
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode %s[%s]: %w", m.namespace, k, err)
	}
	return &v, nil
}

// Has reports whether k is present.
func (m Map[V]) Has(kv store.KVStore, k string) (bool, error) {
	_, err := kv.Get(mapKey(m.namespace, k))
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s[%s]: %w", m.namespace, k, err)
	}
	return true, nil
}

// Save writes v at k.
func (m Map[V]) Save(kv store.KVStore, k string, v *V) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s[%s]: %w", m.namespace, k, err)
	}
	if err := kv.Set(mapKey(m.namespace, k), data); err != nil {
		return fmt.Errorf("save %s[%s]: %w", m.namespace, k, err)
	}
	return nil
}

// Remove deletes k.
func (m Map[V]) Remove(kv store.KVStore, k string) error {
	if err := kv.Delete(mapKey(m.namespace, k)); err != nil {
		return fmt.Errorf("remove %s[%s]: %w", m.namespace, k, err)
	}
	return nil
}

// Entry is one key/value pair returned by Range.
type Entry[V any] struct {
	Key   string
	Value V
}

// Range returns up to limit entries with keys strictly greater than
// startAfter, in ascending key order. limit <= 0 means no limit.
func (m Map[V]) Range(kv store.KVStore, startAfter string, limit int) ([]Entry[V], error) {
	prefix := mapPrefix(m.namespace)
	var out []Entry[V]
	err := kv.Iterate(prefix, func(key, value []byte) error {
		k := string(key[len(prefix):])
		if startAfter != "" && k <= startAfter {
			return nil
		}
		var v V
		if err := json.Unmarshal(value, &v); err != nil {
			return fmt.Errorf("decode %s[%s]: %w", m.namespace, k, err)
		}
		out = append(out, Entry[V]{Key: k, Value: v})
		if limit > 0 && len(out) >= limit {
			return errStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return nil, err
	}
	return out, nil
}
