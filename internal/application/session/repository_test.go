package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// fakeKV almacén en memoria que registra cada escritura y borrado para
// poder verificar que usuario y token viajan siempre en la misma operación.
type fakeKV struct {
	data     map[string]string
	setCalls []map[string]string
	delCalls [][]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(key string) (string, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeKV) SetMany(kv map[string]string) {
	call := map[string]string{}
	for k, v := range kv {
		f.data[k] = v
		call[k] = v
	}
	f.setCalls = append(f.setCalls, call)
}

func (f *fakeKV) DeleteMany(keys ...string) {
	for _, k := range keys {
		delete(f.data, k)
	}
	f.delCalls = append(f.delCalls, keys)
}

// fakeUsersAPI respuestas enlatadas del cliente de usuarios.
type fakeUsersAPI struct {
	loginResp    dto.AuthResponse
	registerResp dto.AuthResponse
	profileResp  dto.UserResponse
	loginCalls   int
	profileCalls int
}

func (f *fakeUsersAPI) Login(_ context.Context, _ entity.Credentials) dto.AuthResponse {
	f.loginCalls++
	return f.loginResp
}

func (f *fakeUsersAPI) Register(_ context.Context, _ dto.RegisterRequest) dto.AuthResponse {
	return f.registerResp
}

func (f *fakeUsersAPI) GetProfile(_ context.Context, _ string) dto.UserResponse {
	f.profileCalls++
	return f.profileResp
}

func adminUser() *entity.User {
	return &entity.User{
		ID:        1,
		FirstName: "Admin",
		LastName:  "Principal",
		Email:     "admin@x.com",
		Role:      entity.RoleAdmin,
	}
}

func TestLoginExitosoPersisteSesion(t *testing.T) {
	store := newFakeKV()
	users := &fakeUsersAPI{loginResp: dto.AuthResponse{
		Success: true,
		Message: "Login exitoso",
		User:    adminUser(),
		Token:   "jwt-valido",
	}}
	repo := NewRepository(users, store, "", nil)

	result := repo.Login(context.Background(), entity.Credentials{Email: "admin@x.com", Password: "admin123"})

	require.True(t, result.Success)
	assert.Equal(t, "Login exitoso", result.Message)

	sess := repo.Current()
	require.NotNil(t, sess, "la sesión debe quedar disponible tras el login")
	assert.Equal(t, "admin@x.com", sess.User.Email)
	assert.Equal(t, "jwt-valido", sess.Token)
}

func TestLoginPersisteUsuarioYTokenEnUnaSolaEscritura(t *testing.T) {
	store := newFakeKV()
	users := &fakeUsersAPI{loginResp: dto.AuthResponse{
		Success: true,
		User:    adminUser(),
		Token:   "jwt-valido",
	}}
	repo := NewRepository(users, store, "inventory", nil)

	repo.Login(context.Background(), entity.Credentials{Email: "admin@x.com", Password: "admin123"})

	require.Len(t, store.setCalls, 1, "una única escritura para el par usuario+token")
	call := store.setCalls[0]
	assert.Contains(t, call, "inventory_user")
	assert.Contains(t, call, "inventory_token")
	assert.Equal(t, "jwt-valido", call["inventory_token"])
}

func TestLoginFallidoNoTocaLaSesionAnterior(t *testing.T) {
	store := newFakeKV()
	store.data["inventory_user"] = `{"id":9,"email":"previo@x.com"}`
	store.data["inventory_token"] = "token-previo"

	users := &fakeUsersAPI{loginResp: dto.AuthResponse{
		Success: false,
		Message: "Credenciales inválidas",
	}}
	repo := NewRepository(users, store, "", nil)

	result := repo.Login(context.Background(), entity.Credentials{Email: "admin@x.com", Password: "incorrecta"})

	require.False(t, result.Success)
	assert.Equal(t, "Credenciales inválidas", result.Message)
	assert.Empty(t, store.setCalls, "un login fallido no escribe nada")
	assert.Empty(t, store.delCalls, "un login fallido no borra la sesión previa")
	assert.Equal(t, "token-previo", repo.GetToken())
}

func TestLoginSinCredencialesNoLlamaAlBackend(t *testing.T) {
	users := &fakeUsersAPI{}
	repo := NewRepository(users, newFakeKV(), "", nil)

	result := repo.Login(context.Background(), entity.Credentials{Email: "", Password: ""})

	require.False(t, result.Success)
	assert.Equal(t, "Email y contraseña son requeridos", result.Message)
	assert.Zero(t, users.loginCalls)
}

func TestLoginExitosoSinTokenNoPersiste(t *testing.T) {
	// Respuesta success pero sin token: el backend no completó el login.
	store := newFakeKV()
	users := &fakeUsersAPI{loginResp: dto.AuthResponse{
		Success: true,
		User:    adminUser(),
	}}
	repo := NewRepository(users, store, "", nil)

	result := repo.Login(context.Background(), entity.Credentials{Email: "admin@x.com", Password: "admin123"})

	assert.False(t, result.Success)
	assert.Empty(t, store.setCalls)
	assert.Nil(t, repo.Current())
}

func TestRegisterNuncaPersisteSesion(t *testing.T) {
	store := newFakeKV()
	users := &fakeUsersAPI{registerResp: dto.AuthResponse{
		Success: true,
		Message: "Registro exitoso.",
		User:    adminUser(),
		Token:   "jwt-de-registro",
	}}
	repo := NewRepository(users, store, "", nil)

	result := repo.Register(context.Background(), dto.RegisterRequest{
		FirstName: "Ana",
		LastName:  "García",
		Email:     "ana@x.com",
		Password:  "secreta1",
	})

	require.True(t, result.Success)
	assert.Equal(t, "Registro exitoso.", result.Message)
	assert.Empty(t, store.setCalls, "registrarse no implica iniciar sesión")
	assert.Nil(t, repo.Current())
}

func TestClearSessionBorraLasDosClavesYEsIdempotente(t *testing.T) {
	store := newFakeKV()
	store.data["inventory_user"] = `{"id":1}`
	store.data["inventory_token"] = "jwt"
	repo := NewRepository(&fakeUsersAPI{}, store, "", nil)

	repo.ClearSession()
	repo.ClearSession()

	assert.Nil(t, repo.GetUser())
	assert.Empty(t, repo.GetToken())
	require.Len(t, store.delCalls, 2)
	assert.ElementsMatch(t, []string{"inventory_user", "inventory_token"}, store.delCalls[0])
}

func TestGetUserConJSONCorruptoDevuelveNil(t *testing.T) {
	store := newFakeKV()
	store.data["inventory_user"] = "{esto no es json"
	store.data["inventory_token"] = "jwt"
	repo := NewRepository(&fakeUsersAPI{}, store, "", nil)

	assert.Nil(t, repo.GetUser())
	assert.Nil(t, repo.Current(), "sin usuario deserializable no hay sesión")
}

func TestPrefixPersonalizadoEnLasClaves(t *testing.T) {
	store := newFakeKV()
	users := &fakeUsersAPI{loginResp: dto.AuthResponse{
		Success: true,
		User:    adminUser(),
		Token:   "jwt",
	}}
	repo := NewRepository(users, store, "tienda", nil)

	repo.Login(context.Background(), entity.Credentials{Email: "admin@x.com", Password: "admin123"})

	_, ok := store.data["tienda_user"]
	assert.True(t, ok)
	_, ok = store.data["tienda_token"]
	assert.True(t, ok)
}
