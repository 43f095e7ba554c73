// Package validation checks api request payloads with go-playground/validator
// and turns failures into the human readable messages the admin ui shows.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const maxPriceDecimals = 2

// Messages maps "<StructField>.<tag>" to the message reported for it.
// Messages of slice elements may contain one %d verb for the 1-based index.
type Messages map[string]string

var validate = newValidator() //nolint:gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	for tag, fn := range map[string]validator.Func{
		"notblank": validators.NotBlank,
		"price":    isPrice,
		"stock":    isStock,
		"httpurl":  isHTTPURL,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	return v
}

// Check validates v and returns the failure messages, nil if v is valid.
// Failures without an entry in msgs get a generic message.
func Check(v any, msgs Messages) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(validationErrors))

	for _, ve := range validationErrors {
		field, idx := splitIndex(ve.StructField())

		msg, ok := msgs[field+"."+ve.Tag()]
		if !ok {
			out = append(out, "Field '"+ve.Field()+"' failed validation tag '"+ve.Tag()+"'")
			continue
		}

		if idx >= 0 {
			msg = fmt.Sprintf(msg, idx+1)
		}

		out = append(out, msg)
	}

	return out
}

// splitIndex splits "Images[2]" into "Images" and 2; idx is -1 without index.
func splitIndex(field string) (name string, idx int) {
	open := strings.IndexByte(field, '[')
	if open < 0 || !strings.HasSuffix(field, "]") {
		return field, -1
	}

	n, err := strconv.Atoi(field[open+1 : len(field)-1])
	if err != nil {
		return field, -1
	}

	return field[:open], n
}

// IsPrice reports whether s is a non-negative number with at most two decimals.
func IsPrice(s string) bool {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return false
	}

	_, decimals, found := strings.Cut(s, ".")
	if !found {
		return true
	}

	return len(decimals) <= maxPriceDecimals
}

// IsStock reports whether s is a non-negative integer.
func IsStock(s string) bool {
	n, err := strconv.ParseInt(s, 10, 64)
	return err == nil && n >= 0
}

// IsHTTPURL reports whether s is an absolute http or https url.
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}

	return u.Scheme == "http" || u.Scheme == "https"
}

func isPrice(fl validator.FieldLevel) bool {
	return IsPrice(fieldString(fl))
}

func isStock(fl validator.FieldLevel) bool {
	return IsStock(fieldString(fl))
}

// isHTTPURL accepts empty strings, empty image slots are dropped later.
func isHTTPURL(fl validator.FieldLevel) bool {
	s := fieldString(fl)
	return s == "" || IsHTTPURL(s)
}

func fieldString(fl validator.FieldLevel) string {
	if n, ok := fl.Field().Interface().(json.Number); ok {
		return n.String()
	}

	return fl.Field().String()
}
