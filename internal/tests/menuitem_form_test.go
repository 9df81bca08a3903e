package tests

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pickfoo-owner/internal/domain"
	"pickfoo-owner/internal/forms"
	"pickfoo-owner/internal/mocks"
)

func fillValidMenuItem(m *domain.MenuItem) {
	m.Name = "Masala Dosa"
	m.Description = "Crisp dosa with spiced potato filling"
	m.Price = 120
	m.Category = "c1"
}

func TestMenuItemForm_VariantOrder(t *testing.T) {
	form := forms.NewMenuItemForm(mocks.NewUploader(t), mocks.NewMenuStore(t))

	form.AppendVariant(domain.Variant{Name: "Small", Price: 100})
	form.AppendVariant(domain.Variant{Name: "Medium", Price: 140})
	form.AppendVariant(domain.Variant{Name: "Large", Price: 180})

	require.NoError(t, form.RemoveVariant(1))

	variants := form.Variants()
	require.Len(t, variants, 2)
	assert.Equal(t, "Small", variants[0].Name)
	assert.Equal(t, "Large", variants[1].Name)
}

func TestMenuItemForm_RemoveVariantOutOfRange(t *testing.T) {
	form := forms.NewMenuItemForm(mocks.NewUploader(t), mocks.NewMenuStore(t))
	form.AppendVariant(domain.Variant{Name: "Small", Price: 100})

	assert.Error(t, form.RemoveVariant(-1))
	assert.Error(t, form.RemoveVariant(1))
	assert.NoError(t, form.RemoveVariant(0))

	// Removing the last variant returns to single-price mode.
	assert.Empty(t, form.Variants())
}

func TestMenuItemForm_AttachImage(t *testing.T) {
	uploader := mocks.NewUploader(t)
	form := forms.NewMenuItemForm(uploader, mocks.NewMenuStore(t))

	uploader.On("UploadFile", mock.Anything, "menu", "dosa.jpg", mock.Anything).
		Return("/uploads/menu/f1_dosa.jpg", nil).Once()

	url, err := form.AttachImage(context.Background(), "dosa.jpg", strings.NewReader("jpg"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/menu/f1_dosa.jpg", url)
	assert.Equal(t, "/uploads/menu/f1_dosa.jpg", form.Value().Image)
	assert.False(t, form.UploadingImage())
}

func TestMenuItemForm_SubmitValidation(t *testing.T) {
	store := mocks.NewMenuStore(t)
	form := forms.NewMenuItemForm(mocks.NewUploader(t), store)

	form.Apply(fillValidMenuItem)
	form.AppendVariant(domain.Variant{Name: "", Price: -5})

	_, err := form.Submit(context.Background())
	require.Error(t, err)

	var fieldErrs forms.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
}

func TestMenuItemForm_SubmitCreatesAndResets(t *testing.T) {
	store := mocks.NewMenuStore(t)
	form := forms.NewMenuItemForm(mocks.NewUploader(t), store)

	form.Apply(fillValidMenuItem)
	form.AppendVariant(domain.Variant{Name: "Regular", Price: 120})

	saved := &domain.MenuItem{ID: "m1", Name: "Masala Dosa"}
	store.On("Create", mock.Anything, mock.AnythingOfType("*domain.MenuItem")).
		Return(saved, nil).Once()

	got, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "m1", got.ID)

	assert.Empty(t, form.Value().Name)
	assert.True(t, form.Value().IsActive)
	assert.Empty(t, form.Variants())
}

func TestMenuItemForm_EditSubmitsUpdate(t *testing.T) {
	store := mocks.NewMenuStore(t)
	form := forms.NewMenuItemForm(mocks.NewUploader(t), store)

	existing := &domain.MenuItem{ID: "m1", IsActive: true}
	fillValidMenuItem(existing)
	form.Edit(existing)

	store.On("Update", mock.Anything, "m1", mock.Anything).
		Return(existing, nil).Once()

	_, err := form.Submit(context.Background())
	require.NoError(t, err)
}

func TestMenuItemForm_SubmitErrorKeepsDraft(t *testing.T) {
	store := mocks.NewMenuStore(t)
	form := forms.NewMenuItemForm(mocks.NewUploader(t), store)

	form.Apply(fillValidMenuItem)
	store.On("Create", mock.Anything, mock.AnythingOfType("*domain.MenuItem")).
		Return(nil, errors.New("backend down")).Once()

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Masala Dosa", form.Value().Name)
}

func TestMenuItemForm_Assign(t *testing.T) {
	store := mocks.NewMenuStore(t)
	form := forms.NewMenuItemForm(mocks.NewUploader(t), store)

	assigned := &domain.MenuItem{ID: "m1", Restaurants: []string{"r1", "r2"}}
	store.On("AssignRestaurants", mock.Anything, "m1", []string{"r1", "r2"}).
		Return(assigned, nil).Once()

	got, err := form.Assign(context.Background(), "m1", []string{"r1", "r2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, got.Restaurants)
}
