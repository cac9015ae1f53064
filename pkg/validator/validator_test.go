package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pair struct {
	BN string `json:"bn" validate:"required"`
	EN string `json:"en" validate:"required"`
}

type form struct {
	Name  pair    `json:"name"`
	Price float64 `json:"price" validate:"min=0"`
	Image string  `json:"image" validate:"required,url"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(&form{Name: pair{BN: "ডিম"}, Price: -1, Image: "not a url"})

	assert.ElementsMatch(t, []FieldError{
		{Field: "name.en", Tag: "required"},
		{Field: "price", Tag: "min", Param: "0"},
		{Field: "image", Tag: "url"},
	}, errs)
}

func TestValidateStructOK(t *testing.T) {
	errs := ValidateStruct(&form{Name: pair{BN: "ডিম", EN: "Eggs"}, Price: 0, Image: "https://example.com/e.jpg"})
	assert.Empty(t, errs)
}
