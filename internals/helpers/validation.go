package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names so messages can be keyed by wire field
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct runs the struct's validate tags and returns one message per
// failing field, in field order. messages is keyed by json field name.
func ValidateStruct(s any, messages map[string]string) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(ves))
	for _, fe := range ves {
		if msg, ok := messages[fe.Field()]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, fmt.Sprintf("El campo %s no es válido", fe.Field()))
	}
	return out
}
