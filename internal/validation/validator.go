package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names so paths read like schedules[0].spotsTotal
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("isodate", matches(dateRe))
	_ = v.RegisterValidation("hhmm", matches(timeRe))
	return v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// FieldError points at one offending field using its JSON path.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Errors is returned for any payload that fails validation. Nothing is
// applied when it is non-empty.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		if fe.Path == "" {
			parts = append(parts, fe.Message)
			continue
		}
		parts = append(parts, fe.Path+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Checker is implemented by inputs with rules that span several fields.
type Checker interface {
	Check() Errors
}

// Struct runs tag validation and then any cross-field checks.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		out := make(Errors, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{Path: trimRoot(fe.Namespace()), Message: message(fe)})
		}
		return out
	}
	if c, ok := v.(Checker); ok {
		if errs := c.Check(); len(errs) > 0 {
			return errs
		}
	}
	return nil
}

// Decode parses a JSON body into dst and validates it.
func Decode(body []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(dst); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) {
			return Errors{{Path: te.Field, Message: "expected " + jsonType(te.Type)}}
		}
		return Errors{{Message: "invalid JSON body"}}
	}
	return Struct(dst)
}

// Prefix moves every path under parent, e.g. "workshops[2]".
func Prefix(err error, parent string) error {
	var errs Errors
	if !errors.As(err, &errs) {
		return err
	}
	out := make(Errors, len(errs))
	for i, fe := range errs {
		fe.Path = strings.TrimSuffix(parent+"."+fe.Path, ".")
		out[i] = fe
	}
	return out
}

func trimRoot(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func jsonType(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int64, reflect.Int32, reflect.Float64, reflect.Float32:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		if isNumber(fe.Kind()) {
			return "Must be greater than or equal to " + fe.Param()
		}
		return fmt.Sprintf("Must contain at least %s %s", fe.Param(), unit(fe.Kind()))
	case "max":
		if isNumber(fe.Kind()) {
			return "Must be less than or equal to " + fe.Param()
		}
		return fmt.Sprintf("Must contain at most %s %s", fe.Param(), unit(fe.Kind()))
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return "Invalid email"
	case "isodate":
		return "Invalid date format"
	case "hhmm":
		return "Invalid time format"
	default:
		return "Invalid value (" + fe.Tag() + ")"
	}
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func unit(k reflect.Kind) string {
	if k == reflect.String {
		return "character(s)"
	}
	return "item(s)"
}
