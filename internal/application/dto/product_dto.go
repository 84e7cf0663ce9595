package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto (esquema canónico
// en inglés; la traducción al vocabulario del backend ocurre en wire.go).
type CreateProductRequest struct {
	Name        string
	Description string
	Category    string
	Stock       int
	MinStock    int
	Price       decimal.Decimal
	SupplierID  int64
}

// UpdateProductRequest actualización parcial: solo los campos no nulos
// viajan en el PUT.
type UpdateProductRequest struct {
	Name        *string
	Description *string
	Category    *string
	Stock       *int
	MinStock    *int
	Price       *decimal.Decimal
	SupplierID  *int64
}

// ProductResponse salida con forma de recurso: product para operaciones
// sobre un producto, products para listados.
type ProductResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Product  *entity.Product  `json:"product,omitempty"`
	Products []entity.Product `json:"products,omitempty"`
}
