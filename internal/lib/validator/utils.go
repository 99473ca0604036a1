package validator

import (
	"fmt"
	"mediaratings/proj/internal/domain/fields"
	"mediaratings/proj/internal/domain/filters"
	"reflect"
	"strings"
	"unicode"

	govalidator "github.com/go-playground/validator/v10"
)

// New returns a validator with the custom tags of this package registered.
func New() *govalidator.Validate {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())
	v.RegisterValidation("sortbymediafield", ValidateSortByMediaField)
	v.RegisterValidation("mediatype", ValidateMediaType)
	v.RegisterValidation("notblank", ValidateNotBlank)
	return v
}

func structType(obj any) reflect.Type {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func CamelToSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// baseField strips the element index validator adds for dived fields
// ("Genres[2]" -> "Genres").
func baseField(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}

func getFieldName(obj any, origFieldName string) (fieldName string) {
	t := structType(obj)
	field, found := t.FieldByName(baseField(origFieldName))
	if !found {
		panic(fmt.Sprintf("Field %s not found in type %s", origFieldName, t.Name()))
	}
	suffix := origFieldName[len(baseField(origFieldName)):]
	fieldName = CamelToSnake(field.Name) + suffix
	for _, key := range []string{"json", "schema"} {
		if tag := field.Tag.Get(key); tag != "" && tag != "-" {
			if name := strings.Split(tag, ",")[0]; name != "" {
				return name + suffix
			}
		}
	}
	return
}

func ProcessValidationErrors(obj any, errs govalidator.ValidationErrors) map[string]string {
	processedErrors := make(map[string]string)
	for _, e := range errs {
		processedErrors[getFieldName(obj, e.StructField())] = GetErrorMsgForField(obj, e)
	}
	return processedErrors
}

func ValidateStruct(validator *govalidator.Validate, obj any) (validationErrs map[string]string) {
	if err := validator.Struct(obj); err != nil {
		validationErrs = ProcessValidationErrors(obj, err.(govalidator.ValidationErrors))
	}
	return
}

func GetErrorMsgForField(obj any, err govalidator.FieldError) (errorMsg string) {
	t := structType(obj)
	field, found := t.FieldByName(baseField(err.StructField()))
	if !found {
		panic(fmt.Sprintf("Field %s not found in type %s", err.StructField(), t.Name()))
	}
	errorMsg = field.Tag.Get("errorMsg")
	if errorMsg == "" {
		switch err.Tag() {
		case "required", "notblank":
			errorMsg = "This field is required"
		case "max":
			errorMsg = fmt.Sprintf("The maximum value is %s", err.Param())
		case "min":
			errorMsg = fmt.Sprintf("The minimum value is %s", err.Param())
		case "gte":
			errorMsg = fmt.Sprintf("Value should be greater than or equal to %s", err.Param())
		case "lte":
			errorMsg = fmt.Sprintf("Value should be less than or equal to %s", err.Param())
		case "lt":
			errorMsg = fmt.Sprintf("Value should be less than %s", err.Param())
		case "gt":
			errorMsg = fmt.Sprintf("Value should be greater than %s", err.Param())
		case "oneof":
			errorMsg = fmt.Sprintf("Value should be one of %s", err.Param())
		case "len":
			errorMsg = fmt.Sprintf("Length should be equal to %s", err.Param())
		case "unique":
			errorMsg = "Value must not contain duplicate values"
		case "url":
			errorMsg = "Value must be a valid URL"
		case "uuid":
			errorMsg = "Value must be a valid UUID"
		case "alphanum":
			errorMsg = "Value must be alphanumeric"
		case "mediatype":
			errorMsg = fmt.Sprintf("Value must be one of %s", strings.Join(fields.MediaTypes(), ", "))
		case "sortbymediafield":
			errorMsg = fmt.Sprintf(
				"Value must be one of the sortable media fields, optionally prefixed with '-' (%s)",
				strings.Join(filters.MediaSortSafelist, ", "),
			)
		default:
			errorMsg = "This field is invalid"
		}
	}
	return
}

// CUSTOM VALIDATORS

func ValidateSortByMediaField(fl govalidator.FieldLevel) bool {
	sort := fl.Field().String()
	if sort == "" {
		return true
	}
	f := filters.Filters{Sort: sort, SortSafelist: filters.MediaSortSafelist}
	return f.IsSafeSort()
}

func ValidateMediaType(fl govalidator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, t := range fields.MediaTypes() {
		if strings.EqualFold(t, value) {
			return true
		}
	}
	return false
}

func ValidateNotBlank(fl govalidator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
