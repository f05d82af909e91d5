// Package bind decodes and validates JSON request bodies
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "pairmatch/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

var (
	once     sync.Once
	validate *validator.Validate
	trans    ut.Translator
)

func initValidator() {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report json names, not Go field names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ = uni.GetTranslator("en")
		_ = entrans.RegisterDefaultTranslations(validate, trans)
	})
}

// Validator returns the shared validator instance
func Validator() *validator.Validate {
	initValidator()
	return validate
}

// ParseJSON decodes the request body into T and validates struct tags.
// Unknown fields are rejected. Errors come back coded for the envelope
func ParseJSON[T any](r *http.Request) (T, error) {
	var out T
	initValidator()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return out, perr.JSONErrf("empty request body")
		}
		return out, perr.Wrap(err, perr.ErrorCodeJSON, "invalid JSON body")
	}

	if err := validate.Struct(&out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fe.Translate(trans))
			}
			e := perr.Validationf("%s", strings.Join(msgs, "; "))
			return out, perr.WithField(e, verrs[0].Field())
		}
		return out, perr.Wrap(err, perr.ErrorCodeValidation, "validation failed")
	}
	return out, nil
}

// Struct validates any tagged struct outside the request path
func Struct(v any) error {
	initValidator()
	if err := validate.Struct(v); err != nil {
		return perr.Wrap(err, perr.ErrorCodeValidation, "validation failed")
	}
	return nil
}
