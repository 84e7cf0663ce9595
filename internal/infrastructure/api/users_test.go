package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/api"
)

func TestLogin_UsuarioDelCuerpoYTokenDelSobre(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var creds entity.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "admin@x.com", creds.Email)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success":      true,
			"message":      "Login exitoso",
			"user":         map[string]any{"id": 1, "email": "admin@x.com", "role": "admin"},
			"access_token": "jwt-emitido",
		})
	}))
	defer srv.Close()

	users := api.NewUsers(newClient(t, srv.URL, dto.LocaleEN))
	resp := users.Login(context.Background(), entity.Credentials{Email: "admin@x.com", Password: "admin123"})

	require.True(t, resp.Success)
	assert.Equal(t, "Login exitoso", resp.Message)
	require.NotNil(t, resp.User)
	assert.Equal(t, "admin@x.com", resp.User.Email)
	assert.Equal(t, "jwt-emitido", resp.Token)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Credenciales inválidas"})
	}))
	defer srv.Close()

	users := api.NewUsers(newClient(t, srv.URL, dto.LocaleEN))
	resp := users.Login(context.Background(), entity.Credentials{Email: "admin@x.com", Password: "mala"})

	assert.False(t, resp.Success)
	assert.Equal(t, "Credenciales inválidas", resp.Message)
	assert.Nil(t, resp.User)
	assert.Empty(t, resp.Token)
}

func TestGetProfile_ElCuerpoEsElUsuario(t *testing.T) {
	// El perfil llega como usuario plano, sin sobre {success, user}.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/profile", r.URL.Path)
		assert.Equal(t, "Bearer jwt-valido", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":        1,
			"firstName": "Admin",
			"lastName":  "Principal",
			"email":     "admin@x.com",
			"role":      "admin",
		})
	}))
	defer srv.Close()

	users := api.NewUsers(newClient(t, srv.URL, dto.LocaleEN))
	resp := users.GetProfile(context.Background(), "jwt-valido")

	require.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Admin Principal", resp.User.FullName())
}

func TestRegister_NoDevuelveSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "el registro es anónimo")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Registro exitoso.",
			"user":    map[string]any{"id": 2, "email": "ana@x.com"},
		})
	}))
	defer srv.Close()

	users := api.NewUsers(newClient(t, srv.URL, dto.LocaleEN))
	resp := users.Register(context.Background(), dto.RegisterRequest{
		FirstName: "Ana", LastName: "García", Email: "ana@x.com", Password: "secreta123",
	})

	require.True(t, resp.Success)
	assert.Equal(t, "Registro exitoso.", resp.Message)
	assert.Empty(t, resp.Token, "el backend no emite token al registrar")
}

func TestGetAll_ListaDeUsuarios(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "email": "admin@x.com"},
			{"id": 2, "email": "ana@x.com"},
		})
	}))
	defer srv.Close()

	users := api.NewUsers(newClient(t, srv.URL, dto.LocaleEN))
	resp := users.GetAll(context.Background(), "jwt-admin")

	require.True(t, resp.Success)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, "ana@x.com", resp.Users[1].Email)
}
