package models

// User is the payload of register and login. Token is the fresh credential.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	UserName  string `json:"username"`
	Token     string `json:"token"`
	CreatedAt string `json:"createdAt"`
}

// RegisterInput mirrors the RegisterInput GraphQL input type.
type RegisterInput struct {
	UserName        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}
