package forms

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"

	"pickfoo-owner/internal/domain"
	"pickfoo-owner/internal/localstore"
)

// Uploader is the content-storage side of the backend client.
type Uploader interface {
	UploadFile(ctx context.Context, folder, filename string, r io.Reader) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
}

// RestaurantStore is the mutation side of the shared restaurant query layer.
type RestaurantStore interface {
	Create(ctx context.Context, r *domain.Restaurant) (*domain.Restaurant, error)
	Update(ctx context.Context, id string, fields interface{}) (*domain.Restaurant, error)
}

// Upload field names for the restaurant form.
const (
	FieldLogo              = "logo"
	FieldFSSAICertificate  = "fssaiCertificate"
	FieldGSTCertificate    = "gstCertificate"
	FieldTradeLicense      = "tradeLicense"
	FieldHealthCertificate = "healthCertificate"
)

const uploadFolder = "restaurants"

var errUnknownField = errors.New("forms: unknown upload field")

// RestaurantForm orchestrates restaurant registration and editing: field
// values, dependent file uploads, draft mirroring, and the asymmetric cancel
// semantics (a cancelled registration deletes its uploads, a cancelled edit
// does not).
type RestaurantForm struct {
	uploads Uploader
	store   RestaurantStore
	local   *localstore.Store

	mu        sync.Mutex
	editingID string
	value     domain.Restaurant
	docsURLs  map[string]string
	uploading map[string]bool
}

func NewRestaurantForm(uploads Uploader, store RestaurantStore, local *localstore.Store) *RestaurantForm {
	f := &RestaurantForm{
		uploads:   uploads,
		store:     store,
		local:     local,
		docsURLs:  make(map[string]string),
		uploading: make(map[string]bool),
	}
	f.value = defaultRestaurant()
	f.restoreDraft()
	return f
}

func defaultRestaurant() domain.Restaurant {
	hours := make([]domain.OpeningHours, 7)
	for i := range hours {
		hours[i] = domain.OpeningHours{Day: i, OpenTime: "09:00", CloseTime: "22:00"}
	}
	return domain.Restaurant{OpeningHours: hours}
}

// restoreDraft rehydrates uploaded-file references mirrored before a
// restart, so files uploaded mid-registration stay referencable.
func (f *RestaurantForm) restoreDraft() {
	if f.local == nil {
		return
	}
	if logo, ok, err := f.local.Get(localstore.KeyLogoURL); err == nil && ok {
		f.value.Image = logo
	}
	var docs map[string]string
	if ok, err := f.local.GetJSON(localstore.KeyDocsURLs, &docs); err == nil && ok {
		for field, url := range docs {
			f.docsURLs[field] = url
			f.setDocURL(field, url)
		}
	}
}

// persistDraft writes the upload references through to the local store. An
// emptied field deletes its mirrored key, so a removed file cannot come back
// on the next restart.
func (f *RestaurantForm) persistDraft() {
	if f.local == nil {
		return
	}
	if f.value.Image != "" {
		if err := f.local.Set(localstore.KeyLogoURL, f.value.Image); err != nil {
			log.Printf("[forms] failed to mirror logo url: %v", err)
		}
	} else if err := f.local.Delete(localstore.KeyLogoURL); err != nil {
		log.Printf("[forms] failed to clear logo mirror: %v", err)
	}
	if len(f.docsURLs) > 0 {
		if err := f.local.SetJSON(localstore.KeyDocsURLs, f.docsURLs); err != nil {
			log.Printf("[forms] failed to mirror document urls: %v", err)
		}
	} else if err := f.local.Delete(localstore.KeyDocsURLs); err != nil {
		log.Printf("[forms] failed to clear document mirror: %v", err)
	}
}

func (f *RestaurantForm) clearDraft() {
	if f.local == nil {
		return
	}
	if err := f.local.Delete(localstore.KeyLogoURL); err != nil {
		log.Printf("[forms] failed to clear logo draft: %v", err)
	}
	if err := f.local.Delete(localstore.KeyDocsURLs); err != nil {
		log.Printf("[forms] failed to clear docs draft: %v", err)
	}
}

// setDocURL writes a document URL into the form value. Must hold f.mu.
func (f *RestaurantForm) setDocURL(field, url string) {
	switch field {
	case FieldFSSAICertificate:
		f.value.LegalDocs.FSSAICertificateURL = url
	case FieldGSTCertificate:
		f.value.LegalDocs.GSTCertificateURL = url
	case FieldTradeLicense:
		f.value.LegalDocs.TradeLicenseURL = url
	case FieldHealthCertificate:
		f.value.LegalDocs.HealthCertificateURL = url
	}
}

func (f *RestaurantForm) fieldURL(field string) string {
	if field == FieldLogo {
		return f.value.Image
	}
	return f.docsURLs[field]
}

func validUploadField(field string) bool {
	switch field {
	case FieldLogo, FieldFSSAICertificate, FieldGSTCertificate, FieldTradeLicense, FieldHealthCertificate:
		return true
	default:
		return false
	}
}

// Apply mutates the form value under the form's lock.
func (f *RestaurantForm) Apply(mutate func(*domain.Restaurant)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mutate(&f.value)
}

// Value returns a copy of the current form value.
func (f *RestaurantForm) Value() domain.Restaurant {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// Editing reports whether the form is in edit mode (an existing id).
func (f *RestaurantForm) Editing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editingID != ""
}

// Uploading reports whether field has an upload in flight. While true the
// field's URL is not yet part of the submittable value.
func (f *RestaurantForm) Uploading(field string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uploading[field]
}

// Edit populates the form from an existing restaurant. Files referenced by
// a persisted entity are never treated as deletable drafts.
func (f *RestaurantForm) Edit(r *domain.Restaurant) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editingID = r.ID
	f.value = *r
	f.docsURLs = make(map[string]string)
	if r.LegalDocs.FSSAICertificateURL != "" {
		f.docsURLs[FieldFSSAICertificate] = r.LegalDocs.FSSAICertificateURL
	}
	if r.LegalDocs.GSTCertificateURL != "" {
		f.docsURLs[FieldGSTCertificate] = r.LegalDocs.GSTCertificateURL
	}
	if r.LegalDocs.TradeLicenseURL != "" {
		f.docsURLs[FieldTradeLicense] = r.LegalDocs.TradeLicenseURL
	}
	if r.LegalDocs.HealthCertificateURL != "" {
		f.docsURLs[FieldHealthCertificate] = r.LegalDocs.HealthCertificateURL
	}
}

// AttachFile uploads a file for the given field. On success the returned
// URL replaces the field value (best-effort deleting the previous upload);
// on failure the field keeps its prior state. Submission is not blocked
// while an upload is in flight.
func (f *RestaurantForm) AttachFile(ctx context.Context, field, filename string, r io.Reader) (string, error) {
	if !validUploadField(field) {
		return "", errUnknownField
	}

	f.mu.Lock()
	if f.uploading[field] {
		f.mu.Unlock()
		return "", errors.New("forms: upload already in flight for " + field)
	}
	f.uploading[field] = true
	prev := f.fieldURL(field)
	f.mu.Unlock()

	url, err := f.uploads.UploadFile(ctx, uploadFolder, filename, r)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploading[field] = false
	if err != nil {
		// Field reverts to its prior state; the operation is retriable.
		return "", err
	}

	if prev != "" && prev != url {
		if delErr := f.uploads.DeleteFile(ctx, prev); delErr != nil {
			log.Printf("[forms] failed to delete replaced file %s: %v", prev, delErr)
		}
	}

	if field == FieldLogo {
		f.value.Image = url
	} else {
		f.docsURLs[field] = url
		f.setDocURL(field, url)
	}
	f.persistDraft()
	return url, nil
}

// RemoveFile deletes the field's uploaded file and clears the field.
func (f *RestaurantForm) RemoveFile(ctx context.Context, field string) error {
	if !validUploadField(field) {
		return errUnknownField
	}

	f.mu.Lock()
	url := f.fieldURL(field)
	f.mu.Unlock()

	if url != "" {
		if err := f.uploads.DeleteFile(ctx, url); err != nil {
			return err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if field == FieldLogo {
		f.value.Image = ""
	} else {
		delete(f.docsURLs, field)
		f.setDocURL(field, "")
	}
	f.persistDraft()
	return nil
}

// Submit validates and saves. Validation failures block the network call;
// a submit while an upload is still in flight sends whatever URL the field
// currently holds.
func (f *RestaurantForm) Submit(ctx context.Context) (*domain.Restaurant, error) {
	f.mu.Lock()
	value := f.value
	editingID := f.editingID
	f.mu.Unlock()

	if errs := ValidateRestaurant(&value); len(errs) > 0 {
		return nil, errs
	}

	var (
		saved *domain.Restaurant
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

	f.reset()
	return saved, nil
}

// Cancel abandons the form. In registration mode every file uploaded so far
// is deleted from storage, all deletions attempted even if some fail; in
// edit mode nothing is deleted, since the files may belong to the persisted
// entity.
func (f *RestaurantForm) Cancel(ctx context.Context) error {
	f.mu.Lock()
	editingID := f.editingID
	var urls []string
	if editingID == "" {
		if f.value.Image != "" {
			urls = append(urls, f.value.Image)
		}
		for _, url := range f.docsURLs {
			urls = append(urls, url)
		}
	}
	f.mu.Unlock()

	var errs []error
	for _, url := range urls {
		if err := f.uploads.DeleteFile(ctx, url); err != nil {
			log.Printf("[forms] failed to delete %s on cancel: %v", url, err)
			errs = append(errs, err)
		}
	}

	f.reset()
	return errors.Join(errs...)
}

func (f *RestaurantForm) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editingID = ""
	f.value = defaultRestaurant()
	f.docsURLs = make(map[string]string)
	f.uploading = make(map[string]bool)
	f.clearDraft()
}
