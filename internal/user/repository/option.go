package repository

// InsertOptions holds the parameters for creating a user. PasswordHash is
// the bcrypt digest, hashing happens in the usecase.
type InsertOptions struct {
	Name         string
	Email        string
	PasswordHash string
	Age          int
	Phone        string
	Diseases     []string
}

// UpdateProfileOptions holds the replacement profile fields.
type UpdateProfileOptions struct {
	ID       string
	Name     string
	Age      int
	Phone    string
	Diseases []string
}
