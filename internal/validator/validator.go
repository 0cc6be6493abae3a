package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	ptBR "github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	ptBRTranslations "github.com/go-playground/validator/v10/translations/pt_BR"
)

var (
	// trans is the singleton Portuguese translator for validation errors.
	trans     ut.Translator
	setupOnce sync.Once
)

// Setup registers the validator with Portuguese translations on Gin's binding engine.
// Safe to call more than once; only the first call has an effect.
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*govalidator.Validate)
		if !ok {
			return
		}

		// Use JSON tag name for field names in error messages.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		locale := ptBR.New()
		uni := ut.New(locale, locale)
		trans, _ = uni.GetTranslator("pt_BR")
		_ = ptBRTranslations.RegisterDefaultTranslations(v, trans)
	})
}

// TranslateErrors takes a binding error and returns a map of field name to
// human-readable message. JSON type mismatches are reported against the
// offending field; anything else lands under "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			if trans != nil {
				fields[fe.Field()] = fe.Translate(trans)
			} else {
				fields[fe.Field()] = fe.Error()
			}
		}
		return fields
	}

	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		fields[te.Field] = fmt.Sprintf("tipo inválido: esperado %s", te.Type)
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// Bind binds and validates the request body into dst.
// Returns nil on success or a translated field error map on failure.
func Bind(c *gin.Context, dst interface{}) map[string]string {
	if err := c.ShouldBindJSON(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}
