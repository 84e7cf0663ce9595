package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor. Un proveedor tiene muchos productos;
// la relación vive en Product.SupplierID.
type Supplier struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SupplierWithProducts agrega el proveedor con sus productos y los
// totales derivados que muestra el detalle.
type SupplierWithProducts struct {
	Supplier         Supplier
	Products         []Product
	TotalProducts    int
	TotalValue       decimal.Decimal
	LowStockProducts int
}

// ComputeTotals recalcula los agregados derivados a partir de Products.
func (s *SupplierWithProducts) ComputeTotals() {
	s.TotalProducts = len(s.Products)
	s.TotalValue = decimal.Zero
	s.LowStockProducts = 0
	for _, p := range s.Products {
		s.TotalValue = s.TotalValue.Add(p.StockValue())
		if p.IsLowStock() {
			s.LowStockProducts++
		}
	}
}
