package handler

import (
	"fmt"
	"reflect"
	"strings"

	"recruitgateway/src/model"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bodyFieldErrors flattens a validator result into location/message pairs
// rooted at "body".
func bodyFieldErrors(err error) []model.FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []model.FieldError{{Loc: []string{"body"}, Msg: err.Error()}}
	}

	out := make([]model.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace is "<PayloadType>.<field>[.<nested>...]"; the root
		// struct segment is noise for clients.
		loc := []string{"body"}
		if segs := strings.Split(fe.Namespace(), "."); len(segs) > 1 {
			loc = append(loc, segs[1:]...)
		}
		out = append(out, model.FieldError{Loc: loc, Msg: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "gte":
		return fmt.Sprintf("value must be greater than or equal to %s", fe.Param())
	case "max":
		return fmt.Sprintf("value must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
