package domain

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// FilterDateLayout is the wire format for the date-range bounds.
const FilterDateLayout = "2006-01-02"

// FilterState is the flat set of independent predicates a viewer can apply.
// Every field is optional; the zero value matches everything.
type FilterState struct {
	SearchTerm string `json:"searchTerm" query:"q"`
	HebrewName string `json:"hebrewName" query:"hebrewName"`
	City       string `json:"city" query:"city"`
	State      string `json:"state" query:"state"`
	School     string `json:"school" query:"school"`
	College    string `json:"college" query:"college"`
	Military   string `json:"military" query:"military"`
	Synagogue  string `json:"synagogue" query:"synagogue"`
	Occupation string `json:"occupation" query:"occupation"`
	DateFrom   string `json:"dateFrom" query:"dateFrom"`
	DateTo     string `json:"dateTo" query:"dateTo"`
	AgeMin     string `json:"ageMin" query:"ageMin"`
	AgeMax     string `json:"ageMax" query:"ageMax"`

	HolocaustSurvivor bool `json:"holocaustSurvivor" query:"holocaustSurvivor"`
	MilitaryService   bool `json:"militaryService" query:"militaryService"`
}

// IsZero reports whether the state is the identity filter.
func (f FilterState) IsZero() bool {
	return f == FilterState{}
}

// Validate checks the parseable fields without normalizing them.
func (f FilterState) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.DateFrom, validation.Date(FilterDateLayout)),
		validation.Field(&f.DateTo, validation.Date(FilterDateLayout)),
		validation.Field(&f.AgeMin, is.Digit),
		validation.Field(&f.AgeMax, is.Digit),
	)
}
