// Package validator validates structures by the "validate" tag, see github.com/go-playground/validator.
// Error messages refer to fields by the "configKey" tag, if present, then by the "json" tag.
package validator

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslation "github.com/go-playground/validator/v10/translations/en"

	"github.com/keboola/remote-files/internal/pkg/utils/errors"
)

type Rule struct {
	Tag  string
	Func validator.FuncCtx
	// ErrorMsg is used instead of the default translation, the field name is the first argument.
	ErrorMsg string
}

type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func New(rules ...Rule) *Validator {
	validate := validator.New()

	// Register default EN translator
	enLocale := en.New()
	translator, found := ut.New(enLocale, enLocale).GetTranslator("en")
	if !found {
		panic(errors.New("en translator was not found"))
	}
	if err := enTranslation.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(errors.Errorf("translator was not registered: %w", err))
	}

	// Register custom rules
	for _, rule := range rules {
		rule := rule
		if err := validate.RegisterValidationCtx(rule.Tag, rule.Func); err != nil {
			panic(err)
		}
		if rule.ErrorMsg != "" {
			msg := rule.ErrorMsg
			err := validate.RegisterTranslation(rule.Tag, translator, func(ut ut.Translator) error {
				return ut.Add(rule.Tag, msg, true)
			}, func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T(fe.Tag(), fe.Field())
				return t
			})
			if err != nil {
				panic(err)
			}
		}
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name, _, _ := strings.Cut(fld.Tag.Get("configKey"), ","); name != "" && name != "-" {
			return name
		}
		if name, _, _ := strings.Cut(fld.Tag.Get("json"), ","); name != "" && name != "-" {
			return name
		}
		return fld.Name
	})

	return &Validator{validate: validate, translator: translator}
}

// Validate a structure, all errors are returned as a list.
func (v *Validator) Validate(ctx context.Context, value any) error {
	if err := v.validate.StructCtx(ctx, value); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.processErrors(validationErrs)
		}
		return errors.WithStack(err)
	}
	return nil
}

func (v *Validator) processErrors(errs validator.ValidationErrors) error {
	result := errors.NewMultiError()
	for _, e := range errs {
		msg := e.Translate(v.translator)
		msg = strings.Replace(msg, e.Field(), fmt.Sprintf(`"%s"`, fieldPath(e.Namespace())), 1)
		result.Append(errors.New(msg))
	}
	return result.ErrorOrNil()
}

// fieldPath removes the struct name from the namespace.
func fieldPath(namespace string) string {
	if _, path, found := strings.Cut(namespace, "."); found {
		return path
	}
	return namespace
}
