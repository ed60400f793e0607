package utils

import (
	"regexp"

	"hospicare-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("time_hhmm", validateTimeHHMM)
	validate.RegisterValidation("date_ymd", validateDateYMD)
	validate.RegisterValidation("slot_duration", validateSlotDuration)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateTimeHHMM(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexTimeHHMM).MatchString(fl.Field().String())
}

func validateDateYMD(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexDateYMD).MatchString(fl.Field().String())
}

func validateSlotDuration(fl validator.FieldLevel) bool {
	duration := fl.Field().Int()
	return duration >= constvars.SlotDurationMinutesMin && duration <= constvars.SlotDurationMinutesMax
}
