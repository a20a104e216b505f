package config

// table holds the values of one setting type. A nil pending map means the
// table is live only; writes made while the store is locked go to pending and
// are applied on unlock.
type table[T any] struct {
	live    map[string]T
	pending map[string]T
}

func newTable[T any]() table[T] {
	return table[T]{live: make(map[string]T)}
}

func (t *table[T]) get(key string) (T, bool) {
	v, ok := t.live[key]
	return v, ok
}

func (t *table[T]) has(key string) bool {
	_, ok := t.live[key]
	return ok
}

func (t *table[T]) set(key string, v T, gated bool) {
	if !gated {
		t.live[key] = v
		return
	}
	if t.pending == nil {
		t.pending = make(map[string]T)
	}
	t.pending[key] = v
}

func (t *table[T]) pendingValue(key string) (T, bool) {
	v, ok := t.pending[key]
	return v, ok
}

// apply moves every pending value into the live map
func (t *table[T]) apply() {
	for k, v := range t.pending {
		t.live[k] = v
	}
	t.pending = nil
}
