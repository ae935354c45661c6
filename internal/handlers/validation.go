package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/vlourenco/solarapi/pkg/response"
)

// RegisterValidatorTagNames makes binding errors report json field names
// instead of Go struct field names. Called once at startup.
func RegisterValidatorTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindJSON binds the request body and, on failure, writes the 422 (rule
// violation) or 400 (malformed body) response. Returns false if the request
// was rejected.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.ValidationError(c, FieldErrors(err))
		} else {
			response.BadRequest(c, err.Error())
		}
		return false
	}
	return true
}

// FieldErrors converts a validation failure into the field → messages map
// rendered in 422 responses.
func FieldErrors(err error) map[string][]string {
	fields := map[string][]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["body"] = []string{err.Error()}
		return fields
	}

	for _, fe := range verrs {
		name := fieldPath(fe.Namespace())
		fields[name] = append(fields[name], fieldMessage(name, fe))
	}
	return fields
}

// fieldPath strips the root struct name and rewrites slice index syntax:
// "ProjectRequest.equipment[0].id" becomes "equipment.0.id".
func fieldPath(ns string) string {
	if idx := strings.Index(ns, "."); idx != -1 {
		ns = ns[idx+1:]
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	ns = strings.ReplaceAll(ns, "]", "")
	return ns
}

func fieldMessage(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", name)
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("The %s must be at least %s characters.", name, fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("The %s must have at least %s items.", name, fe.Param())
		default:
			return fmt.Sprintf("The %s must be at least %s.", name, fe.Param())
		}
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s may not be greater than %s characters.", name, fe.Param())
		}
		return fmt.Sprintf("The %s may not be greater than %s.", name, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", name)
	}
}
