package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/domain"
)

// Product representa un producto del inventario. Stock y MinStock son
// enteros no negativos; Price es decimal no negativo. El esquema canónico
// interno es siempre el vocabulario en inglés; la traducción al vocabulario
// localizado del backend ocurre en la capa de DTOs.
type Product struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Stock       int
	MinStock    int
	Price       decimal.Decimal
	SupplierID  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el producto está en stock bajo. El caso límite
// Stock == MinStock cuenta como stock bajo.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// StockValue devuelve el valor del inventario de este producto (stock × precio).
func (p Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// Validate comprueba los invariantes del producto antes de enviarlo al
// backend. Los fallos de validación local nunca llegan a la capa HTTP.
func (p Product) Validate() error {
	if p.Name == "" {
		return domain.ErrInvalidInput
	}
	if p.Stock < 0 || p.MinStock < 0 {
		return domain.ErrNegativeStock
	}
	if p.Price.IsNegative() {
		return domain.ErrNegativePrice
	}
	return nil
}
