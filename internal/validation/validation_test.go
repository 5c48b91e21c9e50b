package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckSignupInput(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		errs := Check(SignupInput{
			Name:     "Suprim",
			Email:    "suprim@example.com",
			Password: "sup3r-secret",
		})
		assert.Nil(t, errs)
	})

	t.Run("missing fields are each reported", func(t *testing.T) {
		errs := Check(SignupInput{})
		assert.NotEmpty(t, errs["name"])
		assert.NotEmpty(t, errs["email"])
		assert.NotEmpty(t, errs["password"])
	})

	t.Run("bad email format", func(t *testing.T) {
		errs := Check(SignupInput{Name: "S", Email: "not-an-email", Password: "12345678"})
		assert.Equal(t, []string{"Must be a valid email address."}, errs["email"])
	})

	t.Run("short password", func(t *testing.T) {
		errs := Check(SignupInput{Name: "S", Email: "s@example.com", Password: "short"})
		assert.NotEmpty(t, errs["password"])
	})
}

func TestCheckCreateNewsInput(t *testing.T) {
	t.Run("images and tags are optional", func(t *testing.T) {
		errs := Check(CreateNewsInput{Title: "24K Gold", Description: "desc"})
		assert.Nil(t, errs)
	})

	t.Run("bad image URL reported under images", func(t *testing.T) {
		errs := Check(CreateNewsInput{
			Title:       "24K Gold",
			Description: "desc",
			Images:      []string{"https://cdn.example.com/a.jpg", "not a url"},
		})
		assert.NotEmpty(t, errs["images"])
		assert.Empty(t, errs["title"])
	})

	t.Run("missing title", func(t *testing.T) {
		errs := Check(CreateNewsInput{Description: "desc"})
		assert.NotEmpty(t, errs["title"])
	})
}

func TestCheckEditNewsInput(t *testing.T) {
	t.Run("only id is required", func(t *testing.T) {
		assert.Nil(t, Check(EditNewsInput{ID: "abc1234"}))
	})

	t.Run("missing id rejected", func(t *testing.T) {
		errs := Check(EditNewsInput{Title: "New title"})
		assert.NotEmpty(t, errs["id"])
	})
}

func TestCheckCreateQueryInput(t *testing.T) {
	t.Run("valid with phone", func(t *testing.T) {
		errs := Check(CreateQueryInput{
			Name:        "Visitor",
			Subject:     "Account opening",
			Email:       "visitor@example.com",
			PhoneNumber: "9841000000",
			Message:     "Please call me back.",
		})
		assert.Nil(t, errs)
	})

	t.Run("phone must be digits", func(t *testing.T) {
		errs := Check(CreateQueryInput{
			Name:        "Visitor",
			Subject:     "Hello",
			Email:       "visitor@example.com",
			PhoneNumber: "98-41",
			Message:     "Hi",
		})
		assert.Equal(t, []string{"Must contain only digits."}, errs["phoneNumber"])
	})

	t.Run("phone is optional", func(t *testing.T) {
		errs := Check(CreateQueryInput{
			Name:    "Visitor",
			Subject: "Hello",
			Email:   "visitor@example.com",
			Message: "Hi",
		})
		assert.Nil(t, errs)
	})
}

func TestCheckDeleteNewsInput(t *testing.T) {
	errs := Check(DeleteNewsInput{})
	assert.NotEmpty(t, errs["newsId"])
	assert.Nil(t, Check(DeleteNewsInput{NewsID: "abc1234"}))
}
