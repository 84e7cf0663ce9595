package dto

import "github.com/jhoicas/inventario-cli/internal/domain/entity"

// RegisterRequest entrada para registro de usuario (password en texto,
// se hashea en el backend).
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Company   string `json:"company,omitempty"`
}

// UpdateProfileRequest actualización parcial del perfil. Solo los campos
// no nulos viajan en el PATCH.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Company   *string `json:"company,omitempty"`
}

// AuthResponse salida de login/registro: usuario y token cuando el backend
// los devuelve.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *entity.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *entity.User `json:"user,omitempty"`
}

// UsersResponse salida de la lista de usuarios (solo admin).
type UsersResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Users   []entity.User `json:"users,omitempty"`
}
