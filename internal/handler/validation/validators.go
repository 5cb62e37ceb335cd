package validation

import (
	"reflect"
	"time"

	"lifepass-admin/internal/domain/catalog"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

// Register installs the custom rules on gin's validator. Safe to call more than once.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("channeltype", channelType); err != nil {
		return err
	}
	return v.RegisterValidation("daterange", dateRange)
}

func channelType(fl validator.FieldLevel) bool {
	return catalog.ChannelType(fl.Field().String()).IsValid()
}

// dateRange checks that the field (an end date) is not before the sibling named
// by the parameter (a start date). Both use DateLayout.
func dateRange(fl validator.FieldLevel) bool {
	end, err := time.Parse(DateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	start := fl.Parent().FieldByName(fl.Param())
	if !start.IsValid() {
		return false
	}
	if start.Kind() == reflect.Ptr {
		if start.IsNil() {
			return true
		}
		start = start.Elem()
	}
	from, err := time.Parse(DateLayout, start.String())
	if err != nil {
		// the start field reports its own format error
		return true
	}
	return !end.Before(from)
}
