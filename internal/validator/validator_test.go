package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	var v Validator
	assert.False(t, v.HasErrors())

	v.Check(true, "never")
	v.CheckField(true, "title", "never")
	assert.False(t, v.HasErrors())

	v.CheckField(false, "title", "cannot be blank")
	v.CheckField(false, "title", "second message is dropped")
	v.Check(false, "general")

	assert.True(t, v.HasErrors())
	assert.Equal(t, map[string]string{"title": "cannot be blank"}, v.FieldErrors)
	assert.Equal(t, []string{"general"}, v.Errors)
}

func TestHelpers(t *testing.T) {
	assert.False(t, NotBlank("  \t"))
	assert.True(t, NotBlank(" x "))

	assert.True(t, IsEmail("student@example.com"))
	assert.False(t, IsEmail("student@"))
	assert.False(t, IsEmail("not an email"))

	assert.True(t, Matches("#fff", RgxHexColor))
	assert.True(t, Matches("#E7DFD5", RgxHexColor))
	assert.False(t, Matches("e7dfd5", RgxHexColor))
	assert.False(t, Matches("#e7dfd", RgxHexColor))

	assert.True(t, IsTime("2026-10-18", "2006-01-02"))
	assert.False(t, IsTime("18.10.2026", "2006-01-02"))

	assert.True(t, MinRunes("пароль", 6))
	assert.False(t, MaxRunes("пароль", 5))
}
