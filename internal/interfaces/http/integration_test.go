package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cli/internal/application/dashboard"
	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/application/session"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/api"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/store"
	apphttp "github.com/jhoicas/inventario-cli/internal/interfaces/http"
)

// fiberTransport inyecta la app Fiber como transporte del http.Client, de
// modo que el SDK cliente golpea el servidor de desarrollo sin abrir un
// puerto real.
type fiberTransport struct {
	app *fiber.App
}

func (ft fiberTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return ft.app.Test(req, -1)
}

// buildStack levanta el stub con el seed y construye encima el SDK completo:
// cliente HTTP, repositorio de sesión sobre un FileStore real y guard.
func buildStack(t *testing.T, locale dto.Locale) (*api.Client, *session.Repository) {
	t.Helper()

	users := memory.NewUserRepository()
	products := memory.NewProductRepository()
	suppliers := memory.NewSupplierRepository()
	require.NoError(t, memory.Seed(users, products, suppliers))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Users:     users,
		Products:  products,
		Suppliers: suppliers,
		Locale:    locale,
		JWT:       apphttp.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
	})

	client := api.New(api.Config{
		BaseURL:    "http://stub",
		Locale:     locale,
		HTTPClient: &http.Client{Transport: fiberTransport{app: app}},
	})
	repo := session.NewRepository(api.NewUsers(client), store.New(t.TempDir()), "inventory", nil)
	return client, repo
}

// canonicalProduct forma comparable entre despliegues: sin id ni timestamps,
// precio como string decimal.
type canonicalProduct struct {
	Name       string
	Stock      int
	MinStock   int
	Price      string
	SupplierID int64
}

func canonicalize(ps []entity.Product) []canonicalProduct {
	out := make([]canonicalProduct, 0, len(ps))
	for _, p := range ps {
		out = append(out, canonicalProduct{
			Name: p.Name, Stock: p.Stock, MinStock: p.MinStock,
			Price: p.Price.String(), SupplierID: p.SupplierID,
		})
	}
	return out
}

func TestLoginYListadoContraElStub(t *testing.T) {
	for _, loc := range []dto.Locale{dto.LocaleEN, dto.LocaleES} {
		t.Run(string(loc), func(t *testing.T) {
			client, repo := buildStack(t, loc)

			result := repo.Login(context.Background(),
				entity.Credentials{Email: "admin@x.com", Password: "admin123"})
			require.True(t, result.Success, result.Message)
			assert.Equal(t, "Login exitoso", result.Message)

			token := repo.GetToken()
			require.NotEmpty(t, token, "el login persiste el token emitido por el stub")

			resp := api.NewProducts(client).GetAll(context.Background(), token)
			require.True(t, resp.Success, resp.Message)
			require.Len(t, resp.Products, 5, "el catálogo completo del seed")
			assert.Equal(t, "Wireless Headphones", resp.Products[0].Name)
			assert.Equal(t, 10, resp.Products[0].MinStock)
		})
	}
}

// La misma sesión contra un despliegue ES y uno EN produce productos
// canónicos idénticos: el vocabulario es un detalle del cable.
func TestVocabulariosEquivalentesContraElStub(t *testing.T) {
	ctx := context.Background()
	byLocale := map[dto.Locale][]canonicalProduct{}

	for _, loc := range []dto.Locale{dto.LocaleEN, dto.LocaleES} {
		client, repo := buildStack(t, loc)
		result := repo.Login(ctx, entity.Credentials{Email: "admin@x.com", Password: "admin123"})
		require.True(t, result.Success, result.Message)

		resp := api.NewProducts(client).GetAll(ctx, repo.GetToken())
		require.True(t, resp.Success, resp.Message)
		byLocale[loc] = canonicalize(resp.Products)
	}

	assert.Equal(t, byLocale[dto.LocaleEN], byLocale[dto.LocaleES])
}

func TestGuardVerificaElPerfilContraElStub(t *testing.T) {
	_, repo := buildStack(t, dto.LocaleES)
	result := repo.Login(context.Background(),
		entity.Credentials{Email: "admin@x.com", Password: "admin123"})
	require.True(t, result.Success, result.Message)

	guard := session.NewGuard(repo, true)
	sess, err := guard.Require(context.Background())

	require.NoError(t, err)
	assert.Equal(t, session.StateAuthenticated, guard.State())
	assert.Equal(t, "admin@x.com", sess.User.Email)
}

func TestDashboardContraElStub(t *testing.T) {
	client, repo := buildStack(t, dto.LocaleES)
	result := repo.Login(context.Background(),
		entity.Credentials{Email: "admin@x.com", Password: "admin123"})
	require.True(t, result.Success, result.Message)
	token := repo.GetToken()

	uc := dashboard.NewSummaryUseCase(api.NewProducts(client), api.NewSuppliers(client))
	summary, err := uc.GetSummary(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, 5, summary.TotalProducts)
	assert.Equal(t, 56, summary.TotalUnits)
	assert.Equal(t, 3, summary.TotalSuppliers)
	// Headphones 5<=10, USB Cable 3<=20 y Speaker 8<=12 están en stock bajo.
	assert.Len(t, summary.LowStock, 3)
	assert.Equal(t, "2278.44", summary.TotalValue.String())
}
