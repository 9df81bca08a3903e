package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pickfoo-owner/internal/domain"
)

func validRestaurant() domain.Restaurant {
	r := domain.Restaurant{
		Name:          "Spice Villa",
		Description:   "Authentic South Indian food made fresh daily",
		Email:         "contact@spicevilla.example.com",
		ContactNumber: "9876543210",
		Address: domain.Address{
			Street:  "12 MG Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			ZipCode: "560001",
		},
	}
	r.LegalDocs.FSSAILicenseNumber = "12345678901234"
	return r
}

func TestValidateRestaurant(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*domain.Restaurant)
		expectedField string
	}{
		{"valid", func(r *domain.Restaurant) {}, ""},
		{"short_name", func(r *domain.Restaurant) { r.Name = "ab" }, "name"},
		{"short_description", func(r *domain.Restaurant) { r.Description = "too short" }, "description"},
		{"bad_email", func(r *domain.Restaurant) { r.Email = "not-an-email" }, "email"},
		{"short_contact", func(r *domain.Restaurant) { r.ContactNumber = "12345" }, "contactNumber"},
		{"short_street", func(r *domain.Restaurant) { r.Address.Street = "x" }, "address.street"},
		{"missing_city", func(r *domain.Restaurant) { r.Address.City = "" }, "address.city"},
		{"missing_state", func(r *domain.Restaurant) { r.Address.State = "" }, "address.state"},
		{"short_zip", func(r *domain.Restaurant) { r.Address.ZipCode = "12" }, "address.zipCode"},
		{"bad_fssai", func(r *domain.Restaurant) { r.LegalDocs.FSSAILicenseNumber = "123" }, "legalDocs.fssaiLicenseNumber"},
		{"bad_day", func(r *domain.Restaurant) {
			r.OpeningHours = []domain.OpeningHours{{Day: 7, OpenTime: "09:00", CloseTime: "22:00"}}
		}, "openingHours.0.day"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r := validRestaurant()
			testCase.mutate(&r)

			errs := ValidateRestaurant(&r)
			if testCase.expectedField == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Len(t, errs, 1)
			assert.Equal(t, testCase.expectedField, errs[0].Field)
		})
	}
}

func TestValidateMenuItem(t *testing.T) {
	tests := []struct {
		name          string
		item          domain.MenuItem
		expectedField string
	}{
		{
			name: "valid",
			item: domain.MenuItem{
				Name:        "Masala Dosa",
				Description: "Crisp dosa with spiced potato filling",
				Price:       120,
				Category:    "c1",
			},
		},
		{
			name: "short_name",
			item: domain.MenuItem{
				Name:        "X",
				Description: "Crisp dosa with spiced potato filling",
				Category:    "c1",
			},
			expectedField: "name",
		},
		{
			name: "negative_price",
			item: domain.MenuItem{
				Name:        "Masala Dosa",
				Description: "Crisp dosa with spiced potato filling",
				Price:       -10,
				Category:    "c1",
			},
			expectedField: "price",
		},
		{
			name: "missing_category",
			item: domain.MenuItem{
				Name:        "Masala Dosa",
				Description: "Crisp dosa with spiced potato filling",
			},
			expectedField: "category",
		},
		{
			name: "unnamed_variant",
			item: domain.MenuItem{
				Name:        "Masala Dosa",
				Description: "Crisp dosa with spiced potato filling",
				Category:    "c1",
				Variants:    []domain.Variant{{Name: "", Price: 100}},
			},
			expectedField: "variants.0.name",
		},
		{
			name: "blank_ingredient",
			item: domain.MenuItem{
				Name:        "Masala Dosa",
				Description: "Crisp dosa with spiced potato filling",
				Category:    "c1",
				Ingredients: []string{"rice", " "},
			},
			expectedField: "ingredients.1",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			errs := ValidateMenuItem(&testCase.item)
			if testCase.expectedField == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Len(t, errs, 1)
			assert.Equal(t, testCase.expectedField, errs[0].Field)
		})
	}
}
