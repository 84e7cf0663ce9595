// Package dashboard contiene el caso de uso del resumen de inventario que
// muestra la pantalla principal: totales de stock, valor del inventario y
// alertas de stock bajo.
package dashboard

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// ProductsAPI operaciones del cliente de productos que necesita el resumen.
type ProductsAPI interface {
	GetAll(ctx context.Context, token string) dto.ProductResponse
}

// SuppliersAPI operaciones del cliente de proveedores que necesita el resumen.
type SuppliersAPI interface {
	GetAll(ctx context.Context, token string) dto.SupplierResponse
}

// Summary resumen agregado del inventario.
type Summary struct {
	TotalProducts  int             // referencias distintas
	TotalUnits     int             // unidades en stock
	TotalValue     decimal.Decimal // Σ stock × precio
	LowStock       []entity.Product
	TotalSuppliers int
}

// SummaryUseCase construye el resumen a partir de los clientes de recurso.
type SummaryUseCase struct {
	products  ProductsAPI
	suppliers SuppliersAPI
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(products ProductsAPI, suppliers SuppliersAPI) *SummaryUseCase {
	return &SummaryUseCase{products: products, suppliers: suppliers}
}

// GetSummary obtiene productos y proveedores en paralelo y calcula los
// agregados derivados. Un fallo en cualquiera de las dos llamadas aborta
// el resumen con el mensaje del backend.
func (uc *SummaryUseCase) GetSummary(ctx context.Context, token string) (*Summary, error) {
	prodCh := make(chan dto.ProductResponse, 1)
	supCh := make(chan dto.SupplierResponse, 1)

	go func() { prodCh <- uc.products.GetAll(ctx, token) }()
	go func() { supCh <- uc.suppliers.GetAll(ctx, token) }()

	prodResp := <-prodCh
	supResp := <-supCh

	if !prodResp.Success {
		return nil, errors.New(prodResp.Message)
	}
	if !supResp.Success {
		return nil, errors.New(supResp.Message)
	}

	summary := &Summary{
		TotalProducts:  len(prodResp.Products),
		TotalValue:     decimal.Zero,
		TotalSuppliers: len(supResp.Suppliers),
	}
	for _, p := range prodResp.Products {
		summary.TotalUnits += p.Stock
		summary.TotalValue = summary.TotalValue.Add(p.StockValue())
		if p.IsLowStock() {
			summary.LowStock = append(summary.LowStock, p)
		}
	}
	return summary, nil
}
