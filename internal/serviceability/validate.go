package serviceability

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"serviceability/internal/domain/entity"
	domainerrors "serviceability/internal/domain/errors"
	"serviceability/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// DefaultPincodePattern accepts six digits with a non-zero lead digit.
const DefaultPincodePattern = `^[1-9][0-9]{5}$`

// Validator checks merchant payloads. Checks are syntactic only; a well-formed
// pincode is never looked up anywhere.
type Validator struct {
	validate *validator.Validate
	pincode  *regexp.Regexp
}

// NewValidator builds a Validator. An empty pattern selects DefaultPincodePattern.
func NewValidator(pincodePattern string) (*Validator, error) {
	if pincodePattern == "" {
		pincodePattern = DefaultPincodePattern
	}

	pincode, err := regexp.Compile(pincodePattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pincode pattern %q", pincodePattern)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, errors.Wrap(err, "failed to register notblank validation")
	}
	if err := validate.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pincode.MatchString(fl.Field().String())
	}); err != nil {
		return nil, errors.Wrap(err, "failed to register pincode validation")
	}

	return &Validator{validate: validate, pincode: pincode}, nil
}

// Struct validates any tagged struct and reports failures as ErrValidationFailed.
func (v *Validator) Struct(payload any) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

// Profile validates the descriptive fields of a merchant.
func (v *Validator) Profile(profile entity.MerchantProfile) error {
	return v.Struct(profile)
}

// Pincode reports whether token is a well-formed pincode.
func (v *Validator) Pincode(token string) bool {
	return v.pincode.MatchString(token)
}

// Pincodes splits tokens into well-formed and rejected ones, both
// deduplicated and in input order.
func (v *Validator) Pincodes(tokens []string) (valid, rejected []string) {
	valid = make([]string, 0, len(tokens))
	for _, token := range entity.UniquePincodes(tokens) {
		if v.Pincode(token) {
			valid = append(valid, token)
		} else {
			rejected = append(rejected, token)
		}
	}

	return valid, rejected
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	case "email":
		return field + " must be a valid email address"
	case "pincode":
		return field + " must be a valid pincode"
	default:
		return fmt.Sprintf("%s failed %s validation", field, fieldErr.Tag())
	}
}
