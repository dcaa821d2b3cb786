package store

import "slices"

// table is an id-indexed collection that lists rows in insertion order.
type table[V any] struct {
	order []int
	rows  map[int]V
}

func newTable[V any]() *table[V] {
	return &table[V]{rows: make(map[int]V)}
}

func (t *table[V]) get(id int) (V, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[V]) has(id int) bool {
	_, ok := t.rows[id]
	return ok
}

// insert reports false without touching the row when id is taken.
func (t *table[V]) insert(id int, v V) bool {
	if t.has(id) {
		return false
	}
	t.rows[id] = v
	t.order = append(t.order, id)
	return true
}

// replace keeps the row's listing position.
func (t *table[V]) replace(id int, v V) bool {
	if !t.has(id) {
		return false
	}
	t.rows[id] = v
	return true
}

func (t *table[V]) remove(id int) bool {
	if !t.has(id) {
		return false
	}
	delete(t.rows, id)
	if i := slices.Index(t.order, id); i >= 0 {
		t.order = slices.Delete(t.order, i, i+1)
	}
	return true
}

func (t *table[V]) list() []V {
	out := make([]V, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[V]) len() int { return len(t.rows) }
