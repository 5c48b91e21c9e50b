package validation

// SignupInput is the payload for the signup action.
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SigninInput is the payload for the signin action.
type SigninInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateNewsInput is the payload for the create-news action.
// Images and tags are optional; when present, images must be URLs.
type CreateNewsInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
	Tags        []string `json:"tags" validate:"omitempty,dive,required"`
}

// EditNewsInput is the payload for the edit-news action. Only the id is
// required; absent content fields leave the stored values untouched.
type EditNewsInput struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"omitempty"`
	Description string   `json:"description" validate:"omitempty"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
	Tags        []string `json:"tags" validate:"omitempty,dive,required"`
}

// DeleteNewsInput is the payload for the delete-news action.
type DeleteNewsInput struct {
	NewsID string `json:"newsId" validate:"required"`
}

// CreateQueryInput is the payload for the public contact-query action.
// The phone number is validated as digits but persisted as text.
type CreateQueryInput struct {
	Name        string `json:"name" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,numeric"`
	Message     string `json:"message" validate:"required"`
}
