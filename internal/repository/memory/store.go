// Package memory is a process-local storage backend behind the same
// repository contracts as the gorm implementation. It backs STORAGE=memory
// deployments and the service-level tests.
package memory

import (
	"sort"
	"sync"

	"flowa-be/internal/entity"

	"github.com/google/uuid"
)

// Store holds every table. All access goes through mu.
type Store struct {
	mu  sync.Mutex
	seq int64

	users     *table[entity.User]
	providers *table[entity.UserProvider]
	brands    *table[entity.Brand]
	themes    *table[entity.Theme]
	products  *table[entity.Product]
	sessions  *table[entity.ChatSession]
	messages  *table[entity.ChatMessage]
	contents  *table[entity.GeneratedContent]
	accounts  *table[entity.SocialAccount]
	posts     *table[entity.SocialPost]
	settings  *table[entity.Settings]
}

func NewStore() *Store {
	return &Store{
		users:     newTable(cloneUser),
		providers: newTable[entity.UserProvider](nil),
		brands:    newTable(cloneBrand),
		themes:    newTable[entity.Theme](nil),
		products:  newTable(cloneProduct),
		sessions:  newTable(cloneSession),
		messages:  newTable[entity.ChatMessage](nil),
		contents:  newTable[entity.GeneratedContent](nil),
		accounts:  newTable(cloneAccount),
		posts:     newTable(clonePost),
		settings:  newTable(cloneSettings),
	}
}

func (s *Store) next() int64 {
	s.seq++
	return s.seq
}

type entry[T any] struct {
	value T
	seq   int64
}

type table[T any] struct {
	rows  map[uuid.UUID]entry[T]
	clone func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{rows: make(map[uuid.UUID]entry[T]), clone: clone}
}

func (t *table[T]) get(id uuid.UUID) (T, bool) {
	e, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(e.value), true
}

// all returns copies in insertion order.
func (t *table[T]) all() []T {
	entries := make([]entry[T], 0, len(t.rows))
	for _, e := range t.rows {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = t.clone(e.value)
	}
	return out
}

// insert adds a row and records how to take it back out.
func (t *table[T]) insert(s *Store, log *txLog, id uuid.UUID, v T) {
	t.rows[id] = entry[T]{value: t.clone(v), seq: s.next()}
	log.push(func() { delete(t.rows, id) })
}

// replace overwrites an existing row in place, keeping its order.
func (t *table[T]) replace(log *txLog, id uuid.UUID, v T) bool {
	prev, ok := t.rows[id]
	if !ok {
		return false
	}
	t.rows[id] = entry[T]{value: t.clone(v), seq: prev.seq}
	log.push(func() { t.rows[id] = prev })
	return true
}

// txLog is the undo log of one unit of work. A nil log means autocommit.
type txLog struct {
	undo []func()
}

func (l *txLog) push(f func()) {
	if l != nil {
		l.undo = append(l.undo, f)
	}
}

func (l *txLog) rollback() {
	for i := len(l.undo) - 1; i >= 0; i-- {
		l.undo[i]()
	}
	l.undo = nil
}
