package domain

// User is the persisted entity returned to clients. ID is assigned by the
// store on insert and never changes afterwards.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateUserInput carries unvalidated candidate values for a new user.
type CreateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserInput is a partial update: a nil field keeps the stored value.
type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
