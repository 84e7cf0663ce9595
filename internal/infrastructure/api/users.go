package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// Users cliente de usuarios y autenticación. Login y Register son
// anónimos; el resto requiere token.
type Users struct {
	c *Client
}

// NewUsers construye el cliente de usuarios.
func NewUsers(c *Client) *Users {
	return &Users{c: c}
}

// Login autentica con email y contraseña. El token puede llegar como
// access_token o token según la revisión del backend; el núcleo ya lo
// normaliza en el Envelope.
func (u *Users) Login(ctx context.Context, creds entity.Credentials) dto.AuthResponse {
	env := u.c.Post(ctx, "/auth/login", "", creds)
	if !env.Success {
		return dto.AuthResponse{Success: false, Message: env.Message}
	}
	var body struct {
		User *entity.User `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &body); err != nil {
		return dto.AuthResponse{Success: false, Message: msgConnectionError}
	}
	return dto.AuthResponse{Success: true, Message: env.Message, User: body.User, Token: env.Token}
}

// Register registra un nuevo usuario. No abre sesión.
func (u *Users) Register(ctx context.Context, in dto.RegisterRequest) dto.AuthResponse {
	env := u.c.Post(ctx, "/auth/register", "", in)
	if !env.Success {
		return dto.AuthResponse{Success: false, Message: env.Message}
	}
	var body struct {
		User *entity.User `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &body); err != nil {
		return dto.AuthResponse{Success: false, Message: msgConnectionError}
	}
	return dto.AuthResponse{Success: true, Message: env.Message, User: body.User, Token: env.Token}
}

// GetProfile obtiene el perfil del usuario autenticado. El backend devuelve
// el usuario como cuerpo directo.
func (u *Users) GetProfile(ctx context.Context, token string) dto.UserResponse {
	env := u.c.Get(ctx, "/auth/profile", token)
	if !env.Success {
		return dto.UserResponse{Success: false, Message: env.Message}
	}
	var user entity.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		return dto.UserResponse{Success: false, Message: msgConnectionError}
	}
	return dto.UserResponse{Success: true, Message: env.Message, User: &user}
}

// UpdateProfile actualiza parcialmente el perfil (PATCH).
func (u *Users) UpdateProfile(ctx context.Context, token string, in dto.UpdateProfileRequest) dto.UserResponse {
	env := u.c.Patch(ctx, "/auth/profile", token, in)
	if !env.Success {
		return dto.UserResponse{Success: false, Message: env.Message}
	}
	var user entity.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		return dto.UserResponse{Success: false, Message: msgConnectionError}
	}
	return dto.UserResponse{Success: true, Message: "Perfil actualizado exitosamente", User: &user}
}

// GetAll lista todos los usuarios (solo admin).
func (u *Users) GetAll(ctx context.Context, token string) dto.UsersResponse {
	env := u.c.Get(ctx, "/users", token)
	if !env.Success {
		return dto.UsersResponse{Success: false, Message: env.Message}
	}
	var users []entity.User
	if err := json.Unmarshal(env.Data, &users); err != nil {
		return dto.UsersResponse{Success: false, Message: msgConnectionError}
	}
	return dto.UsersResponse{Success: true, Message: "Usuarios obtenidos exitosamente", Users: users}
}

// Delete elimina un usuario (solo admin).
func (u *Users) Delete(ctx context.Context, token string, userID int64) dto.Result {
	env := u.c.Delete(ctx, fmt.Sprintf("/users/%d", userID), token)
	if !env.Success {
		return dto.Result{Success: false, Message: env.Message}
	}
	return dto.Result{Success: true, Message: "Usuario eliminado exitosamente"}
}
