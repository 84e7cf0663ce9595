package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// Suppliers cliente del recurso proveedores. Las rutas se localizan según
// la configuración; los campos del proveedor no varían entre revisiones.
type Suppliers struct {
	c *Client
}

// NewSuppliers construye el cliente de proveedores.
func NewSuppliers(c *Client) *Suppliers {
	return &Suppliers{c: c}
}

// GetAll lista todos los proveedores.
func (s *Suppliers) GetAll(ctx context.Context, token string) dto.SupplierResponse {
	env := s.c.Get(ctx, s.c.suppliersPath(), token)
	if !env.Success {
		return dto.SupplierResponse{Success: false, Message: env.Message}
	}
	var items []entity.Supplier
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return dto.SupplierResponse{Success: false, Message: msgConnectionError}
	}
	return dto.SupplierResponse{Success: true, Message: "Proveedores obtenidos exitosamente", Suppliers: items}
}

// GetByID obtiene un proveedor por id.
func (s *Suppliers) GetByID(ctx context.Context, token string, supplierID int64) dto.SupplierResponse {
	env := s.c.Get(ctx, fmt.Sprintf("%s/%d", s.c.suppliersPath(), supplierID), token)
	if !env.Success {
		return dto.SupplierResponse{Success: false, Message: env.Message}
	}
	var supplier entity.Supplier
	if err := json.Unmarshal(env.Data, &supplier); err != nil {
		return dto.SupplierResponse{Success: false, Message: msgConnectionError}
	}
	return dto.SupplierResponse{Success: true, Message: "Proveedor obtenido exitosamente", Supplier: &supplier}
}

// Create crea un nuevo proveedor.
func (s *Suppliers) Create(ctx context.Context, token string, in dto.CreateSupplierRequest) dto.SupplierResponse {
	env := s.c.Post(ctx, s.c.suppliersPath(), token, in)
	if !env.Success {
		return dto.SupplierResponse{Success: false, Message: env.Message}
	}
	var supplier entity.Supplier
	if err := json.Unmarshal(env.Data, &supplier); err != nil {
		return dto.SupplierResponse{Success: false, Message: msgConnectionError}
	}
	return dto.SupplierResponse{Success: true, Message: "Proveedor creado exitosamente", Supplier: &supplier}
}

// Update actualiza un proveedor.
func (s *Suppliers) Update(ctx context.Context, token string, supplierID int64, in dto.UpdateSupplierRequest) dto.SupplierResponse {
	env := s.c.Put(ctx, fmt.Sprintf("%s/%d", s.c.suppliersPath(), supplierID), token, in)
	if !env.Success {
		return dto.SupplierResponse{Success: false, Message: env.Message}
	}
	var supplier entity.Supplier
	if err := json.Unmarshal(env.Data, &supplier); err != nil {
		return dto.SupplierResponse{Success: false, Message: msgConnectionError}
	}
	return dto.SupplierResponse{Success: true, Message: "Proveedor actualizado exitosamente", Supplier: &supplier}
}

// Delete elimina un proveedor.
func (s *Suppliers) Delete(ctx context.Context, token string, supplierID int64) dto.Result {
	env := s.c.Delete(ctx, fmt.Sprintf("%s/%d", s.c.suppliersPath(), supplierID), token)
	if !env.Success {
		return dto.Result{Success: false, Message: env.Message}
	}
	return dto.Result{Success: true, Message: "Proveedor eliminado exitosamente"}
}

// GetWithProducts obtiene un proveedor con sus productos y totales.
func (s *Suppliers) GetWithProducts(ctx context.Context, token string, supplierID int64) dto.SupplierWithProductsResponse {
	env := s.c.Get(ctx, s.c.supplierProductsPath(supplierID), token)
	if !env.Success {
		return dto.SupplierWithProductsResponse{Success: false, Message: env.Message}
	}
	data, err := dto.DecodeSupplierWithProducts(s.c.locale, env.Data)
	if err != nil {
		return dto.SupplierWithProductsResponse{Success: false, Message: msgConnectionError}
	}
	return dto.SupplierWithProductsResponse{Success: true, Message: env.Message, Data: data}
}
