package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/aksoyb/schedly/internal/pkg/helpers"
)

// RegisterCustomRules attaches scheduling-specific rules to gin's binding
// validator so malformed days and clock values are rejected at bind time.
// Call once at startup.
func RegisterCustomRules() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// "clock" accepts strict 24-hour "HH:MM" strings.
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := helpers.ParseClock(fl.Field().String())
		return err == nil
	})

	// "weekday" accepts full English day names, "Monday".."Sunday".
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, known := helpers.DayIndex(fl.Field().String())
		return known
	})
}
