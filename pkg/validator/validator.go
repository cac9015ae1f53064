package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed rule. Field is the JSON path of the value,
// e.g. "name.bn" or "price".
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

var validate = validator.New()

func init() {
	// Report JSON names instead of Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// ValidateStruct runs the `validate` tags of data and returns every failure.
func ValidateStruct(data interface{}) []FieldError {
	var errors []FieldError
	err := validate.Struct(data)
	if err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return []FieldError{{Field: "", Tag: "invalid"}}
		}
		for _, err := range verrs {
			errors = append(errors, FieldError{
				Field: fieldPath(err.Namespace()),
				Tag:   err.Tag(),
				Param: err.Param(),
			})
		}
	}
	return errors
}

// fieldPath drops the root struct name: "ProductInput.name.bn" -> "name.bn".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
