package main

import (
	"github.com/protomem/study-planner/internal/model"
	"github.com/protomem/study-planner/internal/validator"
)

// Validation rules

func validateRequestCredentials(v *validator.Validator, request requestCredentials) {
	v.CheckField(validator.NotBlank(request.Email), "email", "cannot be blank")
	v.CheckField(validator.MaxRunes(request.Email, 254), "email", "must not be more than 254 characters")
	v.CheckField(validator.IsEmail(request.Email), "email", "must be a valid email address")

	v.CheckField(validator.NotBlank(request.Password), "password", "cannot be blank")
	v.CheckField(len(request.Password) <= 72, "password", "must not be more than 72 bytes")
}

func validateRequestCreateSession(v *validator.Validator, request requestCreateSession) {
	v.CheckField(validator.NotBlank(request.Title), "title", "cannot be blank")
	v.CheckField(validator.MaxRunes(request.Title, 200), "title", "must not be more than 200 characters")

	v.CheckField(validator.NotBlank(request.Date), "date", "cannot be blank")
	v.CheckField(validator.IsTime(request.Date, model.DateLayout), "date", "must be in YYYY-MM-DD format")

	v.CheckField(validator.NotBlank(request.Time), "time", "cannot be blank")
	v.CheckField(validator.IsTime(request.Time, model.TimeLayout), "time", "must be in HH:MM format")

	v.CheckField(request.DurationMin != nil, "durationMin", "must be provided")

	v.CheckField(validator.MaxRunes(request.Priority, 32), "priority", "must not be more than 32 characters")
}

func validateRequestCreateSubject(v *validator.Validator, request requestCreateSubject) {
	v.CheckField(validator.NotBlank(request.Name), "name", "cannot be blank")
	v.CheckField(validator.MaxRunes(request.Name, 100), "name", "must not be more than 100 characters")

	if request.Color != "" {
		v.CheckField(validator.Matches(request.Color, validator.RgxHexColor), "color", "must be a hex colour like #e7dfd5")
	}
}
