package forms

import (
	"context"
	"errors"
	"io"
	"sync"

	"pickfoo-owner/internal/domain"
)

// MenuStore is the mutation side of the shared menu query layer.
type MenuStore interface {
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, fields interface{}) (*domain.MenuItem, error)
	AssignRestaurants(ctx context.Context, id string, restaurantIDs []string) (*domain.MenuItem, error)
}

const menuUploadFolder = "menu"

var errVariantIndex = errors.New("forms: variant index out of range")

// MenuItemForm collects a menu item with its ordered variant list. An empty
// variant list means single-price mode (the base price governs).
type MenuItemForm struct {
	uploads Uploader
	store   MenuStore

	mu             sync.Mutex
	editingID      string
	value          domain.MenuItem
	uploadingImage bool
}

func NewMenuItemForm(uploads Uploader, store MenuStore) *MenuItemForm {
	return &MenuItemForm{
		uploads: uploads,
		store:   store,
		value:   domain.MenuItem{IsActive: true},
	}
}

func (f *MenuItemForm) Apply(mutate func(*domain.MenuItem)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mutate(&f.value)
}

func (f *MenuItemForm) Value() domain.MenuItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := f.value
	v.Variants = append([]domain.Variant(nil), f.value.Variants...)
	return v
}

// Edit populates the form from an existing item. Items without variants
// come back in single-price mode.
func (f *MenuItemForm) Edit(item *domain.MenuItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editingID = item.ID
	f.value = *item
	f.value.Variants = append([]domain.Variant(nil), item.Variants...)
}

func (f *MenuItemForm) AppendVariant(v domain.Variant) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value.Variants = append(f.value.Variants, v)
}

// RemoveVariant drops the entry at i. Subsequent entries shift down one
// index; relative order never changes. Removing the last entry returns the
// item to single-price mode.
func (f *MenuItemForm) RemoveVariant(i int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i < 0 || i >= len(f.value.Variants) {
		return errVariantIndex
	}
	f.value.Variants = append(f.value.Variants[:i], f.value.Variants[i+1:]...)
	return nil
}

func (f *MenuItemForm) Variants() []domain.Variant {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Variant(nil), f.value.Variants...)
}

func (f *MenuItemForm) UploadingImage() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uploadingImage
}

// AttachImage uploads the item image. Same dependent-upload contract as the
// restaurant form: busy while in flight, revert on failure.
func (f *MenuItemForm) AttachImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	f.mu.Lock()
	if f.uploadingImage {
		f.mu.Unlock()
		return "", errors.New("forms: image upload already in flight")
	}
	f.uploadingImage = true
	f.mu.Unlock()

	url, err := f.uploads.UploadFile(ctx, menuUploadFolder, filename, r)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploadingImage = false
	if err != nil {
		return "", err
	}
	f.value.Image = url
	return url, nil
}

// Submit validates and saves the item.
func (f *MenuItemForm) Submit(ctx context.Context) (*domain.MenuItem, error) {
	f.mu.Lock()
	value := f.value
	value.Variants = append([]domain.Variant(nil), f.value.Variants...)
	editingID := f.editingID
	f.mu.Unlock()

	if errs := ValidateMenuItem(&value); len(errs) > 0 {
		return nil, errs
	}

	var (
		saved *domain.MenuItem
		err   error
	)
	if editingID == "" {
		saved, err = f.store.Create(ctx, &value)
	} else {
		saved, err = f.store.Update(ctx, editingID, &value)
	}
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.editingID = ""
	f.value = domain.MenuItem{IsActive: true}
	f.mu.Unlock()
	return saved, nil
}

// Assign links an existing item to the given restaurants.
func (f *MenuItemForm) Assign(ctx context.Context, id string, restaurantIDs []string) (*domain.MenuItem, error) {
	return f.store.AssignRestaurants(ctx, id, restaurantIDs)
}
