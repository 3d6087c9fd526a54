package dto

// CreateUserRequest entrada para crear un usuario.
type CreateUserRequest struct {
	Username string `json:"username"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
