package fiber

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
)

var (
	vOnce  sync.Once
	vValid *validator.Validate
	vTrans ut.Translator
)

func validate() (*validator.Validate, ut.Translator) {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// messages name the query parameter, not the Go field
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("query")
			if tag == "" || tag == "-" {
				return fld.Name
			}
			return strings.SplitN(tag, ",", 2)[0]
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		_ = v.RegisterTranslation("datetime", trans,
			func(ut ut.Translator) error {
				return ut.Add("datetime", "{0} must be a valid date (YYYY-MM-DD)", true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T("datetime", fe.Field())
				return t
			},
		)

		vValid, vTrans = v, trans
	})
	return vValid, vTrans
}

// bindQuery parses the query string into dst and validates it. The returned
// message is suitable for an ErrorResponse.
func bindQuery(c *fiber.Ctx, dst any) (string, bool) {
	if err := c.QueryParser(dst); err != nil {
		return "malformed query string", false
	}
	v, trans := validate()
	if err := v.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return verrs[0].Translate(trans), false
		}
		return err.Error(), false
	}
	return "", true
}
