package dto

// CreateUserRequest alta de usuario.
type CreateUserRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	AccessLevel string `json:"access_level"`
}

// UpdateUserRequest edición de usuario. Password vacío conserva el actual.
type UpdateUserRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	AccessLevel string `json:"access_level"`
}
