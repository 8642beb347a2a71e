package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const storeFile = "cart.json"

// Store maintains the renter's in-progress selection. UI components
// depend on this interface; the durable binding is one implementation.
type Store interface {
	Items() ([]Item, error)
	Add(item Item) error
	Remove(equipmentID string) error
	UpdateQuantity(equipmentID string, quantity int) error
	Clear() error
	// Subscribe registers a change listener fired synchronously after
	// every mutation. The returned func unregisters it.
	Subscribe(fn func(items []Item)) (cancel func())
}

// FileStore persists the item list as one JSON array in the state
// directory, the durable-storage analog of the browser cart key.
type FileStore struct {
	mu      sync.Mutex
	path    string
	nextSub int
	subs    map[int]func(items []Item)
}

var _ Store = (*FileStore)(nil)

func NewFileStore(dir string) *FileStore {
	return &FileStore{
		path: filepath.Join(dir, storeFile),
		subs: make(map[int]func(items []Item)),
	}
}

func (s *FileStore) load() ([]Item, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Item{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadCart, err)
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadCart, err)
	}
	return items, nil
}

func (s *FileStore) save(items []Item) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}
	return nil
}

func (s *FileStore) notify(items []Item) {
	for _, fn := range s.subs {
		fn(items)
	}
}

func (s *FileStore) Items() ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add appends the item with quantity forced to 1. A duplicate equipment
// id is rejected with ErrAlreadyInCart and leaves the cart unchanged.
func (s *FileStore) Add(item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	for _, existing := range items {
		if existing.EquipmentID == item.EquipmentID {
			return ErrAlreadyInCart
		}
	}

	item.Quantity = 1
	items = append(items, item)
	if err := s.save(items); err != nil {
		return err
	}
	s.notify(items)
	return nil
}

func (s *FileStore) Remove(equipmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}

	kept := items[:0]
	found := false
	for _, item := range items {
		if item.EquipmentID == equipmentID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return ErrItemNotFound
	}
	if err := s.save(kept); err != nil {
		return err
	}
	s.notify(kept)
	return nil
}

// UpdateQuantity clamps every requested value to 1. The quantity stepper
// exists in the UI but the rental contract is one unit per listing.
func (s *FileStore) UpdateQuantity(equipmentID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if items[i].EquipmentID == equipmentID {
			items[i].Quantity = clampQuantity(quantity)
			found = true
			break
		}
	}
	if !found {
		return ErrItemNotFound
	}
	if err := s.save(items); err != nil {
		return err
	}
	s.notify(items)
	return nil
}

// Clear empties the store. Called exactly once, on successful order
// submission.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save([]Item{}); err != nil {
		return err
	}
	s.notify([]Item{})
	return nil
}

func (s *FileStore) Subscribe(fn func(items []Item)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func clampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	// TODO: raise the ceiling once product confirms multi-unit rentals.
	return 1
}
