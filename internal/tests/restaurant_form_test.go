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

func fillValidRestaurant(r *domain.Restaurant) {
	r.Name = "Spice Villa"
	r.Description = "Authentic South Indian food made fresh daily"
	r.Email = "contact@spicevilla.example.com"
	r.ContactNumber = "9876543210"
	r.Address = domain.Address{
		Street:  "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		ZipCode: "560001",
	}
	r.LegalDocs.FSSAILicenseNumber = "12345678901234"
}

func TestRestaurantForm_AttachFile(t *testing.T) {
	uploader := mocks.NewUploader(t)
	store := mocks.NewRestaurantStore(t)
	form := forms.NewRestaurantForm(uploader, store, nil)

	uploader.On("UploadFile", mock.Anything, "restaurants", "logo.png", mock.Anything).
		Return("/uploads/restaurants/f1_logo.png", nil).Once()

	url, err := form.AttachFile(context.Background(), forms.FieldLogo, "logo.png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/restaurants/f1_logo.png", url)
	assert.Equal(t, "/uploads/restaurants/f1_logo.png", form.Value().Image)
	assert.False(t, form.Uploading(forms.FieldLogo))
}

func TestRestaurantForm_ReplacingFileDeletesPrevious(t *testing.T) {
	uploader := mocks.NewUploader(t)
	store := mocks.NewRestaurantStore(t)
	form := forms.NewRestaurantForm(uploader, store, nil)

	uploader.On("UploadFile", mock.Anything, "restaurants", "old.png", mock.Anything).
		Return("/uploads/restaurants/f1_old.png", nil).Once()
	uploader.On("UploadFile", mock.Anything, "restaurants", "new.png", mock.Anything).
		Return("/uploads/restaurants/f2_new.png", nil).Once()
	uploader.On("DeleteFile", mock.Anything, "/uploads/restaurants/f1_old.png").
		Return(nil).Once()

	ctx := context.Background()
	_, err := form.AttachFile(ctx, forms.FieldLogo, "old.png", strings.NewReader("a"))
	require.NoError(t, err)
	_, err = form.AttachFile(ctx, forms.FieldLogo, "new.png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/restaurants/f2_new.png", form.Value().Image)
}

func TestRestaurantForm_FailedUploadKeepsPriorState(t *testing.T) {
	uploader := mocks.NewUploader(t)
	store := mocks.NewRestaurantStore(t)
	form := forms.NewRestaurantForm(uploader, store, nil)

	uploader.On("UploadFile", mock.Anything, "restaurants", "logo.png", mock.Anything).
		Return("/uploads/restaurants/f1_logo.png", nil).Once()
	uploader.On("UploadFile", mock.Anything, "restaurants", "broken.png", mock.Anything).
		Return("", errors.New("storage unavailable")).Once()

	ctx := context.Background()
	_, err := form.AttachFile(ctx, forms.FieldLogo, "logo.png", strings.NewReader("a"))
	require.NoError(t, err)

	_, err = form.AttachFile(ctx, forms.FieldLogo, "broken.png", strings.NewReader("b"))
	assert.Error(t, err)
	assert.Equal(t, "/uploads/restaurants/f1_logo.png", form.Value().Image)
	assert.False(t, form.Uploading(forms.FieldLogo))
}

func TestRestaurantForm_UnknownField(t *testing.T) {
	form := forms.NewRestaurantForm(mocks.NewUploader(t), mocks.NewRestaurantStore(t), nil)

	_, err := form.AttachFile(context.Background(), "selfie", "x.png", strings.NewReader("a"))
	assert.Error(t, err)
}

func TestRestaurantForm_RemoveFile(t *testing.T) {
	uploader := mocks.NewUploader(t)
	form := forms.NewRestaurantForm(uploader, mocks.NewRestaurantStore(t), nil)

	uploader.On("UploadFile", mock.Anything, "restaurants", "fssai.pdf", mock.Anything).
		Return("/uploads/restaurants/f1_fssai.pdf", nil).Once()
	uploader.On("DeleteFile", mock.Anything, "/uploads/restaurants/f1_fssai.pdf").
		Return(nil).Once()

	ctx := context.Background()
	_, err := form.AttachFile(ctx, forms.FieldFSSAICertificate, "fssai.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	require.NoError(t, form.RemoveFile(ctx, forms.FieldFSSAICertificate))

	assert.Empty(t, form.Value().LegalDocs.FSSAICertificateURL)
}

func TestRestaurantForm_SubmitValidationBlocksNetworkCall(t *testing.T) {
	store := mocks.NewRestaurantStore(t)
	form := forms.NewRestaurantForm(mocks.NewUploader(t), store, nil)

	_, err := form.Submit(context.Background())
	require.Error(t, err)

	var fieldErrs forms.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.NotEmpty(t, fieldErrs)
}

func TestRestaurantForm_SubmitCreatesAndResets(t *testing.T) {
	store := mocks.NewRestaurantStore(t)
	form := forms.NewRestaurantForm(mocks.NewUploader(t), store, nil)

	form.Apply(fillValidRestaurant)

	saved := &domain.Restaurant{ID: "r1", Name: "Spice Villa", Status: "pending"}
	store.On("Create", mock.Anything, mock.AnythingOfType("*domain.Restaurant")).
		Return(saved, nil).Once()

	got, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "r1", got.ID)

	// Submission resets the form back to registration defaults.
	assert.Empty(t, form.Value().Name)
	assert.False(t, form.Editing())
	assert.Len(t, form.Value().OpeningHours, 7)
}

func TestRestaurantForm_EditSubmitsUpdate(t *testing.T) {
	store := mocks.NewRestaurantStore(t)
	form := forms.NewRestaurantForm(mocks.NewUploader(t), store, nil)

	existing := &domain.Restaurant{ID: "r1"}
	fillValidRestaurant(existing)
	form.Edit(existing)
	require.True(t, form.Editing())

	store.On("Update", mock.Anything, "r1", mock.Anything).
		Return(existing, nil).Once()

	_, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.False(t, form.Editing())
}

func TestRestaurantForm_CancelRegistrationDeletesUploads(t *testing.T) {
	uploader := mocks.NewUploader(t)
	form := forms.NewRestaurantForm(uploader, mocks.NewRestaurantStore(t), nil)

	uploader.On("UploadFile", mock.Anything, "restaurants", "logo.png", mock.Anything).
		Return("/uploads/restaurants/f1_logo.png", nil).Once()
	uploader.On("UploadFile", mock.Anything, "restaurants", "fssai.pdf", mock.Anything).
		Return("/uploads/restaurants/f2_fssai.pdf", nil).Once()

	ctx := context.Background()
	_, err := form.AttachFile(ctx, forms.FieldLogo, "logo.png", strings.NewReader("a"))
	require.NoError(t, err)
	_, err = form.AttachFile(ctx, forms.FieldFSSAICertificate, "fssai.pdf", strings.NewReader("b"))
	require.NoError(t, err)

	uploader.On("DeleteFile", mock.Anything, "/uploads/restaurants/f1_logo.png").Return(nil).Once()
	uploader.On("DeleteFile", mock.Anything, "/uploads/restaurants/f2_fssai.pdf").Return(nil).Once()

	require.NoError(t, form.Cancel(ctx))
	assert.Empty(t, form.Value().Image)
	assert.Empty(t, form.Value().LegalDocs.FSSAICertificateURL)
}

func TestRestaurantForm_CancelAttemptsEveryDeletion(t *testing.T) {
	uploader := mocks.NewUploader(t)
	form := forms.NewRestaurantForm(uploader, mocks.NewRestaurantStore(t), nil)

	uploader.On("UploadFile", mock.Anything, "restaurants", "logo.png", mock.Anything).
		Return("/uploads/restaurants/f1_logo.png", nil).Once()
	uploader.On("UploadFile", mock.Anything, "restaurants", "gst.pdf", mock.Anything).
		Return("/uploads/restaurants/f2_gst.pdf", nil).Once()

	ctx := context.Background()
	_, err := form.AttachFile(ctx, forms.FieldLogo, "logo.png", strings.NewReader("a"))
	require.NoError(t, err)
	_, err = form.AttachFile(ctx, forms.FieldGSTCertificate, "gst.pdf", strings.NewReader("b"))
	require.NoError(t, err)

	// One deletion fails; the other must still be attempted.
	uploader.On("DeleteFile", mock.Anything, "/uploads/restaurants/f1_logo.png").
		Return(errors.New("already gone")).Once()
	uploader.On("DeleteFile", mock.Anything, "/uploads/restaurants/f2_gst.pdf").
		Return(nil).Once()

	assert.Error(t, form.Cancel(ctx))
}

func TestRestaurantForm_DraftSurvivesRestart(t *testing.T) {
	local := openLocalStore(t)
	uploader := mocks.NewUploader(t)
	form := forms.NewRestaurantForm(uploader, mocks.NewRestaurantStore(t), local)

	uploader.On("UploadFile", mock.Anything, "restaurants", "logo.png", mock.Anything).
		Return("/uploads/restaurants/f1_logo.png", nil).Once()
	uploader.On("UploadFile", mock.Anything, "restaurants", "fssai.pdf", mock.Anything).
		Return("/uploads/restaurants/f2_fssai.pdf", nil).Once()

	ctx := context.Background()
	_, err := form.AttachFile(ctx, forms.FieldLogo, "logo.png", strings.NewReader("a"))
	require.NoError(t, err)
	_, err = form.AttachFile(ctx, forms.FieldFSSAICertificate, "fssai.pdf", strings.NewReader("b"))
	require.NoError(t, err)

	// A fresh form over the same store stands in for a restart mid
	// registration: the uploaded files must still be referencable.
	restarted := forms.NewRestaurantForm(mocks.NewUploader(t), mocks.NewRestaurantStore(t), local)
	assert.Equal(t, "/uploads/restaurants/f1_logo.png", restarted.Value().Image)
	assert.Equal(t, "/uploads/restaurants/f2_fssai.pdf", restarted.Value().LegalDocs.FSSAICertificateURL)
}

func TestRestaurantForm_RemovedFileStaysGoneAfterRestart(t *testing.T) {
	local := openLocalStore(t)
	uploader := mocks.NewUploader(t)
	form := forms.NewRestaurantForm(uploader, mocks.NewRestaurantStore(t), local)

	uploader.On("UploadFile", mock.Anything, "restaurants", "logo.png", mock.Anything).
		Return("/uploads/restaurants/f1_logo.png", nil).Once()
	uploader.On("DeleteFile", mock.Anything, "/uploads/restaurants/f1_logo.png").
		Return(nil).Once()

	ctx := context.Background()
	_, err := form.AttachFile(ctx, forms.FieldLogo, "logo.png", strings.NewReader("a"))
	require.NoError(t, err)
	require.NoError(t, form.RemoveFile(ctx, forms.FieldLogo))

	// The mirror must not resurrect a URL whose file was deleted.
	restarted := forms.NewRestaurantForm(mocks.NewUploader(t), mocks.NewRestaurantStore(t), local)
	assert.Empty(t, restarted.Value().Image)
}

func TestRestaurantForm_CancelEditDeletesNothing(t *testing.T) {
	uploader := mocks.NewUploader(t)
	form := forms.NewRestaurantForm(uploader, mocks.NewRestaurantStore(t), nil)

	existing := &domain.Restaurant{
		ID:    "r1",
		Image: "/uploads/restaurants/f1_logo.png",
	}
	existing.LegalDocs.FSSAICertificateURL = "/uploads/restaurants/f2_fssai.pdf"
	form.Edit(existing)

	// No DeleteFile expectations: the entity still references these files.
	require.NoError(t, form.Cancel(context.Background()))
	assert.False(t, form.Editing())
	assert.Empty(t, form.Value().Image)
}
