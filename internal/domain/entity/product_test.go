package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// Stock por debajo del mínimo → stock bajo.
func TestIsLowStock_DebajoDelMinimo(t *testing.T) {
	p := entity.Product{Stock: 3, MinStock: 20}
	assert.True(t, p.IsLowStock())
}

// Caso límite: Stock == MinStock cuenta como stock bajo.
func TestIsLowStock_IgualAlMinimo(t *testing.T) {
	p := entity.Product{Stock: 10, MinStock: 10}
	assert.True(t, p.IsLowStock(), "stock igual al mínimo debe clasificarse como bajo")
}

func TestIsLowStock_PorEncimaDelMinimo(t *testing.T) {
	p := entity.Product{Stock: 25, MinStock: 15}
	assert.False(t, p.IsLowStock())
}

func TestStockValue(t *testing.T) {
	p := entity.Product{Stock: 5, Price: decimal.RequireFromString("99.99")}
	assert.True(t, p.StockValue().Equal(decimal.RequireFromString("499.95")))
}

func TestValidate_RechazaStockNegativo(t *testing.T) {
	p := entity.Product{Name: "Cable USB", Stock: -1, Price: decimal.NewFromInt(10)}
	assert.ErrorIs(t, p.Validate(), domain.ErrNegativeStock)
}

func TestValidate_RechazaPrecioNegativo(t *testing.T) {
	p := entity.Product{Name: "Cable USB", Price: decimal.NewFromInt(-1)}
	assert.ErrorIs(t, p.Validate(), domain.ErrNegativePrice)
}

func TestValidate_RechazaNombreVacio(t *testing.T) {
	p := entity.Product{Price: decimal.Zero}
	assert.ErrorIs(t, p.Validate(), domain.ErrInvalidInput)
}
