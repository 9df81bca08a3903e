package forms

import (
	"fmt"
	"regexp"
	"strings"

	"pickfoo-owner/internal/domain"
)

// FieldError is a validation failure shown adjacent to its field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// FieldErrors blocks submission; the first entry is the first failing field.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "forms: validation failed"
	}
	return e[0].Error()
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRestaurant applies the fixed restaurant rule set. Rules and
// messages match the backend's expectations.
func ValidateRestaurant(r *domain.Restaurant) FieldErrors {
	var errs FieldErrors

	if len(strings.TrimSpace(r.Name)) < 3 {
		errs = append(errs, FieldError{"name", "Restaurant name must be at least 3 characters"})
	}
	if len(strings.TrimSpace(r.Description)) < 10 {
		errs = append(errs, FieldError{"description", "Description must be at least 10 characters"})
	}
	if !emailPattern.MatchString(r.Email) {
		errs = append(errs, FieldError{"email", "Invalid support email"})
	}
	if len(r.ContactNumber) < 10 {
		errs = append(errs, FieldError{"contactNumber", "Invalid contact number"})
	}
	if len(strings.TrimSpace(r.Address.Street)) < 5 {
		errs = append(errs, FieldError{"address.street", "Street address is required"})
	}
	if len(strings.TrimSpace(r.Address.City)) < 2 {
		errs = append(errs, FieldError{"address.city", "City is required"})
	}
	if len(strings.TrimSpace(r.Address.State)) < 2 {
		errs = append(errs, FieldError{"address.state", "State is required"})
	}
	if len(r.Address.ZipCode) < 5 {
		errs = append(errs, FieldError{"address.zipCode", "Invalid zip code"})
	}
	if len(r.LegalDocs.FSSAILicenseNumber) != 14 {
		errs = append(errs, FieldError{"legalDocs.fssaiLicenseNumber", "14-digit FSSAI number is required"})
	}
	for i, h := range r.OpeningHours {
		if h.Day < 0 || h.Day > 6 {
			errs = append(errs, FieldError{fmt.Sprintf("openingHours.%d.day", i), "Day must be between 0 and 6"})
		}
	}

	return errs
}

// ValidateMenuItem applies the fixed menu-item rule set.
func ValidateMenuItem(m *domain.MenuItem) FieldErrors {
	var errs FieldErrors

	if len(strings.TrimSpace(m.Name)) < 2 {
		errs = append(errs, FieldError{"name", "Item name must be at least 2 characters"})
	}
	if len(strings.TrimSpace(m.Description)) < 10 {
		errs = append(errs, FieldError{"description", "Description is required"})
	}
	if m.Price < 0 {
		errs = append(errs, FieldError{"price", "Price cannot be negative"})
	}
	if strings.TrimSpace(m.Category) == "" {
		errs = append(errs, FieldError{"category", "Category is required"})
	}
	for i, v := range m.Variants {
		if strings.TrimSpace(v.Name) == "" {
			errs = append(errs, FieldError{fmt.Sprintf("variants.%d.name", i), "Variant name is required"})
		}
		if v.Price < 0 {
			errs = append(errs, FieldError{fmt.Sprintf("variants.%d.price", i), "Variant price cannot be negative"})
		}
	}
	for i, ing := range m.Ingredients {
		if strings.TrimSpace(ing) == "" {
			errs = append(errs, FieldError{fmt.Sprintf("ingredients.%d", i), "Ingredient name is required"})
		}
	}

	return errs
}

// ValidateCategory checks a category before create/update.
func ValidateCategory(c *domain.Category) FieldErrors {
	var errs FieldErrors
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, FieldError{"name", "Category name is required"})
	}
	return errs
}
