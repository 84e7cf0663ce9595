// Package session es el dueño de la sesión autenticada: realiza login y
// registro a través del cliente de usuarios, persiste el par usuario+token
// y expone las consultas de sesión actual que consumen el guard y el resto
// de clientes de recurso.
package session

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

// KV contrato del almacén durable clave-valor. Las operaciones no fallan:
// en un entorno sin almacenamiento degradan a no-op.
type KV interface {
	Get(key string) (string, bool)
	SetMany(kv map[string]string)
	DeleteMany(keys ...string)
}

// UsersAPI operaciones del cliente de usuarios que necesita la sesión.
type UsersAPI interface {
	Login(ctx context.Context, creds entity.Credentials) dto.AuthResponse
	Register(ctx context.Context, in dto.RegisterRequest) dto.AuthResponse
	GetProfile(ctx context.Context, token string) dto.UserResponse
}

// Repository repositorio de sesión. Invariante: usuario y token se
// escriben y se borran juntos, nunca uno sin el otro.
type Repository struct {
	users  UsersAPI
	store  KV
	prefix string
	log    *logger.Logger
}

// NewRepository construye el repositorio de sesión. prefix vacío usa
// "inventory" (claves inventory_user / inventory_token).
func NewRepository(users UsersAPI, store KV, prefix string, log *logger.Logger) *Repository {
	if prefix == "" {
		prefix = "inventory"
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Repository{users: users, store: store, prefix: prefix, log: log}
}

func (r *Repository) userKey() string  { return r.prefix + "_user" }
func (r *Repository) tokenKey() string { return r.prefix + "_token" }

// Login delega en el cliente de usuarios y, solo si el backend devolvió
// usuario y token, persiste la sesión de forma atómica. En cualquier fallo
// no se persiste nada y se devuelve el mensaje del servidor o un genérico.
func (r *Repository) Login(ctx context.Context, creds entity.Credentials) dto.Result {
	if creds.Email == "" || creds.Password == "" {
		return dto.Result{Success: false, Message: "Email y contraseña son requeridos"}
	}

	resp := r.users.Login(ctx, creds)
	if resp.Success && resp.User != nil && resp.Token != "" {
		r.saveSession(*resp.User, resp.Token)
		r.log.Info().Str("email", resp.User.Email).Msg("sesión iniciada")
		return dto.Result{Success: true, Message: "Login exitoso"}
	}

	msg := resp.Message
	if msg == "" {
		msg = "Error desconocido durante el login."
	}
	return dto.Result{Success: false, Message: msg}
}

// Register delega en el cliente de usuarios. Nunca persiste sesión: el
// registro no implica login.
func (r *Repository) Register(ctx context.Context, in dto.RegisterRequest) dto.Result {
	resp := r.users.Register(ctx, in)
	if resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Registro exitoso."
		}
		return dto.Result{Success: true, Message: msg}
	}
	msg := resp.Message
	if msg == "" {
		msg = "Error desconocido durante el registro."
	}
	return dto.Result{Success: false, Message: msg}
}

// saveSession persiste usuario y token en una sola escritura atómica.
func (r *Repository) saveSession(user entity.User, token string) {
	raw, err := json.Marshal(user)
	if err != nil {
		r.log.Error().Err(err).Msg("serializar usuario de sesión")
		return
	}
	r.store.SetMany(map[string]string{
		r.userKey():  string(raw),
		r.tokenKey(): token,
	})
}

// GetUser devuelve el usuario persistido, o nil si no hay sesión o el
// valor almacenado no es deserializable.
func (r *Repository) GetUser() *entity.User {
	raw, ok := r.store.Get(r.userKey())
	if !ok {
		return nil
	}
	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// GetToken devuelve el token persistido, o cadena vacía si no hay sesión.
func (r *Repository) GetToken() string {
	token, ok := r.store.Get(r.tokenKey())
	if !ok {
		return ""
	}
	return token
}

// Current devuelve la sesión completa si usuario y token están presentes.
func (r *Repository) Current() *entity.Session {
	user := r.GetUser()
	token := r.GetToken()
	if user == nil || token == "" {
		return nil
	}
	return &entity.Session{User: *user, Token: token}
}

// ClearSession elimina las dos claves incondicionalmente. Idempotente.
func (r *Repository) ClearSession() {
	r.store.DeleteMany(r.userKey(), r.tokenKey())
}
