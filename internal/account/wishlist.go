package account

import (
	"slices"
	"sync"

	"github.com/fjod/go_storefront/internal/domain"
)

const placeholderImage = "https://via.placeholder.com/100"

func seedWishlist() []domain.WishItem {
	return []domain.WishItem{
		{ID: 1, Name: "무선 이어폰", Price: 99000, Image: placeholderImage},
		{ID: 2, Name: "게이밍 마우스", Price: 45000, Image: placeholderImage},
	}
}

// Wishlist keeps one seeded wishlist per session in memory
type Wishlist struct {
	mu    sync.Mutex
	items map[string][]domain.WishItem // sessionID -> items
}

func NewWishlist() *Wishlist {
	return &Wishlist{items: make(map[string][]domain.WishItem)}
}

func (w *Wishlist) List(sessionID string) []domain.WishItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.load(sessionID))
}

// Remove deletes the item with id. Unknown ids are ignored.
func (w *Wishlist) Remove(sessionID string, id int64) []domain.WishItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	items := slices.DeleteFunc(w.load(sessionID), func(item domain.WishItem) bool {
		return item.ID == id
	})
	w.items[sessionID] = items
	return slices.Clone(items)
}

// Drop forgets the wishlist of sessionID
func (w *Wishlist) Drop(sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.items, sessionID)
}

func (w *Wishlist) load(sessionID string) []domain.WishItem {
	items, ok := w.items[sessionID]
	if !ok {
		items = seedWishlist()
		w.items[sessionID] = items
	}
	return items
}
