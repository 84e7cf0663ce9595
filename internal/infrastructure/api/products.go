package api

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
)

// Products cliente del recurso productos. Reetiqueta el dato del Envelope
// en la forma {success, message, product|products}; los errores del núcleo
// pasan sin cambios, sin validación ni reintentos adicionales.
type Products struct {
	c *Client
}

// NewProducts construye el cliente de productos.
func NewProducts(c *Client) *Products {
	return &Products{c: c}
}

// GetAll lista todos los productos.
func (p *Products) GetAll(ctx context.Context, token string) dto.ProductResponse {
	env := p.c.Get(ctx, p.c.productsPath(), token)
	if !env.Success {
		return dto.ProductResponse{Success: false, Message: env.Message}
	}
	items, err := dto.DecodeProducts(p.c.locale, env.Data)
	if err != nil {
		return dto.ProductResponse{Success: false, Message: msgConnectionError}
	}
	return dto.ProductResponse{Success: true, Message: "Productos obtenidos exitosamente", Products: items}
}

// GetByID obtiene un producto por id.
func (p *Products) GetByID(ctx context.Context, token string, productID int64) dto.ProductResponse {
	env := p.c.Get(ctx, fmt.Sprintf("%s/%d", p.c.productsPath(), productID), token)
	if !env.Success {
		return dto.ProductResponse{Success: false, Message: env.Message}
	}
	product, err := dto.DecodeProduct(p.c.locale, env.Data)
	if err != nil {
		return dto.ProductResponse{Success: false, Message: msgConnectionError}
	}
	return dto.ProductResponse{Success: true, Message: "Producto obtenido exitosamente", Product: product}
}

// Create crea un nuevo producto.
func (p *Products) Create(ctx context.Context, token string, in dto.CreateProductRequest) dto.ProductResponse {
	env := p.c.Post(ctx, p.c.productsPath(), token, dto.EncodeCreateProduct(p.c.locale, in))
	if !env.Success {
		return dto.ProductResponse{Success: false, Message: env.Message}
	}
	product, err := dto.DecodeProduct(p.c.locale, env.Data)
	if err != nil {
		return dto.ProductResponse{Success: false, Message: msgConnectionError}
	}
	return dto.ProductResponse{Success: true, Message: "Producto creado exitosamente", Product: product}
}

// Update actualiza un producto (solo los campos no nulos del request).
func (p *Products) Update(ctx context.Context, token string, productID int64, in dto.UpdateProductRequest) dto.ProductResponse {
	env := p.c.Put(ctx, fmt.Sprintf("%s/%d", p.c.productsPath(), productID), token, dto.EncodeUpdateProduct(p.c.locale, in))
	if !env.Success {
		return dto.ProductResponse{Success: false, Message: env.Message}
	}
	product, err := dto.DecodeProduct(p.c.locale, env.Data)
	if err != nil {
		return dto.ProductResponse{Success: false, Message: msgConnectionError}
	}
	return dto.ProductResponse{Success: true, Message: "Producto actualizado exitosamente", Product: product}
}

// Delete elimina un producto.
func (p *Products) Delete(ctx context.Context, token string, productID int64) dto.Result {
	env := p.c.Delete(ctx, fmt.Sprintf("%s/%d", p.c.productsPath(), productID), token)
	if !env.Success {
		return dto.Result{Success: false, Message: env.Message}
	}
	return dto.Result{Success: true, Message: "Producto eliminado exitosamente"}
}

// GetBySupplier lista los productos de un proveedor.
func (p *Products) GetBySupplier(ctx context.Context, token string, supplierID int64) dto.ProductResponse {
	env := p.c.Get(ctx, p.c.productsBySupplierPath(supplierID), token)
	if !env.Success {
		return dto.ProductResponse{Success: false, Message: env.Message}
	}
	items, err := dto.DecodeProducts(p.c.locale, env.Data)
	if err != nil {
		return dto.ProductResponse{Success: false, Message: msgConnectionError}
	}
	return dto.ProductResponse{Success: true, Message: "Productos del proveedor obtenidos exitosamente", Products: items}
}

// UpdateStock actualiza solo el stock de un producto.
func (p *Products) UpdateStock(ctx context.Context, token string, productID int64, newStock int) dto.ProductResponse {
	endpoint := fmt.Sprintf("%s/%d/stock", p.c.productsPath(), productID)
	env := p.c.Patch(ctx, endpoint, token, dto.EncodeStockPatch(p.c.locale, newStock))
	if !env.Success {
		return dto.ProductResponse{Success: false, Message: env.Message}
	}
	product, err := dto.DecodeProduct(p.c.locale, env.Data)
	if err != nil {
		return dto.ProductResponse{Success: false, Message: msgConnectionError}
	}
	return dto.ProductResponse{Success: true, Message: "Stock actualizado exitosamente", Product: product}
}
