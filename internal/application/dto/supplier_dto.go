package dto

import "github.com/jhoicas/inventario-cli/internal/domain/entity"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// UpdateSupplierRequest actualización parcial del proveedor.
type UpdateSupplierRequest struct {
	Name    *string `json:"name,omitempty"`
	Contact *string `json:"contact,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// SupplierResponse salida con forma de recurso.
type SupplierResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Supplier  *entity.Supplier  `json:"supplier,omitempty"`
	Suppliers []entity.Supplier `json:"suppliers,omitempty"`
}

// SupplierWithProductsResponse salida del detalle proveedor + productos.
type SupplierWithProductsResponse struct {
	Success bool                         `json:"success"`
	Message string                       `json:"message"`
	Data    *entity.SupplierWithProducts `json:"data,omitempty"`
}
