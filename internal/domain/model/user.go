package model

// Roles carried in the "role" claim of API tokens.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
