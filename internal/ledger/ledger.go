package ledger

import (
	"sync"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
)

// Ledger holds the cart entries of one session. Add, Increase, Decrease, Remove
// and Clear are the only mutation entry points; each runs as a single
// read-modify-write under the ledger lock. Readers work on Snapshot copies.
type Ledger struct {
	mu      sync.Mutex
	entries []domain.LineItem
	touched time.Time
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{touched: time.Now()}
}

// Add merges item into the entry with the same key, or appends it as a new entry.
// On merge only the quantity changes; every other field stays as it was.
func (l *Ledger) Add(item domain.LineItem) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.touched = time.Now()

	if i := l.indexOf(item.Key()); i >= 0 {
		l.entries[i].Quantity += item.Quantity
		return
	}
	l.entries = append(l.entries, cloneItem(item))
}

// Increase adds one to the quantity of the entry at key, if any
func (l *Ledger) Increase(key domain.Key) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.touched = time.Now()

	if i := l.indexOf(key); i >= 0 {
		l.entries[i].Quantity++
	}
}

// Decrease takes one from the quantity of the entry at key. An entry that
// reaches zero is removed.
func (l *Ledger) Decrease(key domain.Key) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.touched = time.Now()

	i := l.indexOf(key)
	if i < 0 {
		return
	}
	l.entries[i].Quantity--
	if l.entries[i].Quantity <= 0 {
		l.removeAt(i)
	}
}

// Remove deletes the entry at key, if any
func (l *Ledger) Remove(key domain.Key) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.touched = time.Now()

	if i := l.indexOf(key); i >= 0 {
		l.removeAt(i)
	}
}

// Clear drops every entry
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.touched = time.Now()
	l.entries = nil
}

// Snapshot returns a copy of the entries in insertion order
func (l *Ledger) Snapshot() []domain.LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.LineItem, len(l.entries))
	for i, e := range l.entries {
		out[i] = cloneItem(e)
	}
	return out
}

// Len returns the number of distinct entries
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Ledger) touch() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.touched = time.Now()
}

func (l *Ledger) lastTouched() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.touched
}

func (l *Ledger) indexOf(key domain.Key) int {
	for i := range l.entries {
		if l.entries[i].Key() == key {
			return i
		}
	}
	return -1
}

func (l *Ledger) removeAt(i int) {
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
}

// cloneItem copies the optional sale price so snapshots never alias ledger state
func cloneItem(item domain.LineItem) domain.LineItem {
	if item.SalePrice != nil {
		sale := *item.SalePrice
		item.SalePrice = &sale
	}
	return item
}
