package user

// RegisterInput holds the fields for creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      int
	Phone    string
	Diseases []string
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput is a signed access token with the account it identifies.
type AuthOutput struct {
	Token string
	User  UserOutput
}

// UserOutput is the externally visible account shape, without the
// password hash.
type UserOutput struct {
	ID       string
	Name     string
	Email    string
	Age      int
	Phone    string
	Diseases []string
}

// UpdateProfileInput holds the mutable profile fields.
type UpdateProfileInput struct {
	Name     string
	Age      int
	Phone    string
	Diseases []string
}
