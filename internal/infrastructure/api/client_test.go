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
	"github.com/jhoicas/inventario-cli/internal/infrastructure/api"
)

const msgConexion = "Error de conexión con el servidor. Por favor, inténtalo de nuevo."

func newClient(t *testing.T, baseURL string, loc dto.Locale) *api.Client {
	t.Helper()
	return api.New(api.Config{BaseURL: baseURL, Locale: loc})
}

// Respuesta sin contenido (DELETE 204) → success con mensaje por defecto.
func TestRequest_SinContenido_EsExito(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	env := newClient(t, srv.URL, dto.LocaleEN).Delete(context.Background(), "/products/1", "tok")
	assert.True(t, env.Success)
	assert.Equal(t, "Operación exitosa", env.Message)
	assert.Nil(t, env.Data)
}

// Estado OK con cuerpo → success, data cruda y mensaje del servidor.
func TestRequest_OKConCuerpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"todo bien","id":7}`))
	}))
	defer srv.Close()

	env := newClient(t, srv.URL, dto.LocaleEN).Get(context.Background(), "/products/7", "tok")
	require.True(t, env.Success)
	assert.Equal(t, "todo bien", env.Message)
	assert.JSONEq(t, `{"message":"todo bien","id":7}`, string(env.Data))
}

// Los listados llegan como array JSON de primer nivel: siguen siendo éxito
// con el mensaje por defecto y la data cruda.
func TestRequest_OKConArray_EsExito(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"USB Cable"},{"id":2,"name":"Power Bank"}]`))
	}))
	defer srv.Close()

	env := newClient(t, srv.URL, dto.LocaleEN).Get(context.Background(), "/products", "tok")
	require.True(t, env.Success, env.Message)
	assert.Equal(t, "Operación exitosa", env.Message)
	assert.Empty(t, env.Token)
	assert.JSONEq(t, `[{"id":1,"name":"USB Cable"},{"id":2,"name":"Power Bank"}]`, string(env.Data))
}

// Un array vacío también es éxito.
func TestRequest_OKConArrayVacio_EsExito(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	env := newClient(t, srv.URL, dto.LocaleEN).Get(context.Background(), "/products", "tok")
	require.True(t, env.Success)
	assert.Equal(t, "Operación exitosa", env.Message)
	assert.JSONEq(t, `[]`, string(env.Data))
}

// El token puede llegar como access_token o como token.
func TestRequest_ExtraeTokenDeAmbosNombres(t *testing.T) {
	cases := map[string]string{
		"access_token": `{"access_token":"tok-a"}`,
		"token":        `{"token":"tok-b"}`,
	}
	expected := map[string]string{"access_token": "tok-a", "token": "tok-b"}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			env := newClient(t, srv.URL, dto.LocaleEN).Post(context.Background(), "/auth/login", "", map[string]string{})
			require.True(t, env.Success)
			assert.Equal(t, expected[name], env.Token)
		})
	}
}

// access_token tiene prioridad cuando llegan los dos.
func TestRequest_AccessTokenTienePrioridad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"nuevo","token":"viejo"}`))
	}))
	defer srv.Close()

	env := newClient(t, srv.URL, dto.LocaleEN).Post(context.Background(), "/auth/login", "", nil)
	require.True(t, env.Success)
	assert.Equal(t, "nuevo", env.Token)
}

// Estado no OK con mensaje → el mensaje del servidor pasa íntegro.
func TestRequest_ErrorConMensaje_PasaVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	env := newClient(t, srv.URL, dto.LocaleEN).Post(context.Background(), "/auth/login", "", nil)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid credentials", env.Message)
}

// Estado no OK sin mensaje → fallback genérico con método y endpoint.
func TestRequest_ErrorSinMensaje_FallbackGenerico(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	env := newClient(t, srv.URL, dto.LocaleEN).Get(context.Background(), "/products", "tok")
	assert.False(t, env.Success)
	assert.Equal(t, "Error en la solicitud GET a /products", env.Message)
}

// Fallo de red → mensaje de conexión genérico, nunca un error lanzado.
func TestRequest_FalloDeRed_MensajeDeConexion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // el servidor ya no escucha

	env := newClient(t, srv.URL, dto.LocaleEN).Get(context.Background(), "/products", "tok")
	assert.False(t, env.Success)
	assert.Equal(t, msgConexion, env.Message)
}

// Cuerpo OK no parseable → se trata como fallo de conexión.
func TestRequest_CuerpoNoParseable_MensajeDeConexion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>no soy json</html>`))
	}))
	defer srv.Close()

	env := newClient(t, srv.URL, dto.LocaleEN).Get(context.Background(), "/products", "tok")
	assert.False(t, env.Success)
	assert.Equal(t, msgConexion, env.Message)
}

// Cabeceras: Content-Type siempre; Authorization solo con token;
// X-Request-Id en cada llamada.
func TestRequest_Cabeceras(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, dto.LocaleEN)

	c.Get(context.Background(), "/products", "mi-token")
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "Bearer mi-token", got.Get("Authorization"))
	assert.NotEmpty(t, got.Get("X-Request-Id"))

	c.Post(context.Background(), "/auth/login", "", map[string]string{"email": "a@b.c"})
	assert.Empty(t, got.Get("Authorization"), "sin token no debe viajar Authorization")
}

// El cuerpo se serializa como JSON solo cuando está presente.
func TestRequest_SerializaCuerpo(t *testing.T) {
	var body map[string]any
	var hadBody bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hadBody = r.ContentLength > 0
		if hadBody {
			_ = json.NewDecoder(r.Body).Decode(&body)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, dto.LocaleEN)

	c.Post(context.Background(), "/auth/login", "", map[string]string{"email": "a@b.c"})
	require.True(t, hadBody)
	assert.Equal(t, "a@b.c", body["email"])

	c.Get(context.Background(), "/products", "tok")
	assert.False(t, hadBody, "GET no debe llevar cuerpo")
}
