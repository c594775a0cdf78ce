package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps "<jsonField>.<tag>" to the message reported to clients.
var fieldMessages = map[string]string{
	"name.min":                  "Name must be at least 2 characters.",
	"name.max":                  "Name must be at most 255 characters.",
	"status.max":                "Status must be at most 50 characters.",
	"type.max":                  "Type must be at most 50 characters.",
	"featureType.max":           "Feature type must be at most 50 characters.",
	"storyType.max":             "Story type must be at most 50 characters.",
	"techSpecType.max":          "Technical specification type must be at most 50 characters.",
	"status.required":           "Please select a status.",
	"type.required":             "Please select a type.",
	"shortDescription.min":      "Description must be at least 10 characters.",
	"productSpecs.min":          "Product specs must be at least 20 characters.",
	"featureType.required":      "Please select a feature type.",
	"appId.required":            "Valid application ID is required.",
	"appId.uuid":                "Valid application ID is required.",
	"appName.required":          "Application name is required.",
	"specifications.required":   "Specifications are required.",
	"featureBreakdown.required": "Feature breakdown is required.",
	"description.min":           "Description must be at least 10 characters.",
	"storyType.required":        "Please select a story type.",
	"techSpecType.required":     "Please select a technical specification type.",
	"userStory.min":             "User story must be at least 10 characters.",
	"acceptanceCriteria.min":    "Acceptance criteria must be at least 10 characters.",
	"featureId.uuid":            "Valid feature ID is required.",
	"images.url":                "Images must be valid URLs.",
}

// per-resource overrides where the same field reads differently
var resourceMessages = map[string]map[string]string{
	"ApplicationPayload": {"type.required": "Please select an app type."},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a payload against its field descriptors and returns a
// *ValidationError listing every failing field, or nil.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	resource := reflect.Indirect(reflect.ValueOf(payload)).Type().Name()
	out := &ValidationError{Messages: make([]string, 0, len(fieldErrs))}
	seen := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := messageFor(resource, fe)
		if seen[msg] {
			continue
		}
		seen[msg] = true
		out.Messages = append(out.Messages, msg)
	}
	return out
}

func messageFor(resource string, fe validator.FieldError) string {
	field := fe.Field()
	// dive errors are reported as images[0]
	if i := strings.IndexByte(field, '['); i > 0 {
		field = field[:i]
	}
	key := field + "." + fe.Tag()
	if m, ok := resourceMessages[resource][key]; ok {
		return m
	}
	if m, ok := fieldMessages[key]; ok {
		return m
	}
	return fmt.Sprintf("%s is invalid (%s).", field, fe.Tag())
}
