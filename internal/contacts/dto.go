package contacts

// CreateInput is the public contact-form payload.
type CreateInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	Department string `json:"department"`
}
