package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// Locale fija el vocabulario del backend: rutas y nombres de campo.
// El esquema canónico interno es siempre el inglés; exactamente un
// vocabulario por configuración, los dos nunca conviven en los tipos
// de dominio.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
)

func init() {
	// El backend intercambia precios como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ── Formas de cable para Product ─────────────────────────────────────────────

type productEN struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	Price       decimal.Decimal `json:"price"`
	SupplierID  int64           `json:"supplierId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type productES struct {
	ID                 int64           `json:"id"`
	Nombre             string          `json:"nombre"`
	Descripcion        string          `json:"descripcion,omitempty"`
	Categoria          string          `json:"categoria,omitempty"`
	Cantidad           int             `json:"cantidad"`
	CantidadMinima     int             `json:"cantidadMinima"`
	Precio             decimal.Decimal `json:"precio"`
	ProveedorID        int64           `json:"proveedorId"`
	FechaCreacion      time.Time       `json:"fechaCreacion"`
	FechaActualizacion time.Time       `json:"fechaActualizacion"`
}

func (w productEN) toEntity() entity.Product {
	return entity.Product{
		ID: w.ID, Name: w.Name, Description: w.Description, Category: w.Category,
		Stock: w.Stock, MinStock: w.MinStock, Price: w.Price, SupplierID: w.SupplierID,
		CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt,
	}
}

func (w productES) toEntity() entity.Product {
	return entity.Product{
		ID: w.ID, Name: w.Nombre, Description: w.Descripcion, Category: w.Categoria,
		Stock: w.Cantidad, MinStock: w.CantidadMinima, Price: w.Precio, SupplierID: w.ProveedorID,
		CreatedAt: w.FechaCreacion, UpdatedAt: w.FechaActualizacion,
	}
}

// EncodeProduct traduce un producto canónico a la forma de cable del locale.
func EncodeProduct(loc Locale, p entity.Product) any {
	if loc == LocaleES {
		return productES{
			ID: p.ID, Nombre: p.Name, Descripcion: p.Description, Categoria: p.Category,
			Cantidad: p.Stock, CantidadMinima: p.MinStock, Precio: p.Price,
			ProveedorID: p.SupplierID, FechaCreacion: p.CreatedAt, FechaActualizacion: p.UpdatedAt,
		}
	}
	return productEN{
		ID: p.ID, Name: p.Name, Description: p.Description, Category: p.Category,
		Stock: p.Stock, MinStock: p.MinStock, Price: p.Price,
		SupplierID: p.SupplierID, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

// EncodeProducts traduce una lista de productos canónicos.
func EncodeProducts(loc Locale, ps []entity.Product) any {
	if loc == LocaleES {
		out := make([]productES, 0, len(ps))
		for _, p := range ps {
			out = append(out, EncodeProduct(loc, p).(productES))
		}
		return out
	}
	out := make([]productEN, 0, len(ps))
	for _, p := range ps {
		out = append(out, EncodeProduct(loc, p).(productEN))
	}
	return out
}

// DecodeProduct interpreta un producto en la forma de cable del locale.
func DecodeProduct(loc Locale, raw []byte) (*entity.Product, error) {
	if loc == LocaleES {
		var w productES
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		p := w.toEntity()
		return &p, nil
	}
	var w productEN
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	p := w.toEntity()
	return &p, nil
}

// DecodeProducts interpreta una lista de productos.
func DecodeProducts(loc Locale, raw []byte) ([]entity.Product, error) {
	if loc == LocaleES {
		var ws []productES
		if err := json.Unmarshal(raw, &ws); err != nil {
			return nil, err
		}
		out := make([]entity.Product, 0, len(ws))
		for _, w := range ws {
			out = append(out, w.toEntity())
		}
		return out, nil
	}
	var ws []productEN
	if err := json.Unmarshal(raw, &ws); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// ── Formas de cable para crear/actualizar ────────────────────────────────────

type createProductEN struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	Price       decimal.Decimal `json:"price"`
	SupplierID  int64           `json:"supplierId"`
}

type createProductES struct {
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion,omitempty"`
	Categoria      string          `json:"categoria,omitempty"`
	Cantidad       int             `json:"cantidad"`
	CantidadMinima int             `json:"cantidadMinima"`
	Precio         decimal.Decimal `json:"precio"`
	ProveedorID    int64           `json:"proveedorId"`
}

// EncodeCreateProduct traduce la entrada de creación al cable del locale.
func EncodeCreateProduct(loc Locale, in CreateProductRequest) any {
	if loc == LocaleES {
		return createProductES{
			Nombre: in.Name, Descripcion: in.Description, Categoria: in.Category,
			Cantidad: in.Stock, CantidadMinima: in.MinStock, Precio: in.Price,
			ProveedorID: in.SupplierID,
		}
	}
	return createProductEN{
		Name: in.Name, Description: in.Description, Category: in.Category,
		Stock: in.Stock, MinStock: in.MinStock, Price: in.Price,
		SupplierID: in.SupplierID,
	}
}

// DecodeCreateProduct interpreta la entrada de creación (lado servidor).
func DecodeCreateProduct(loc Locale, raw []byte) (CreateProductRequest, error) {
	if loc == LocaleES {
		var w createProductES
		if err := json.Unmarshal(raw, &w); err != nil {
			return CreateProductRequest{}, err
		}
		return CreateProductRequest{
			Name: w.Nombre, Description: w.Descripcion, Category: w.Categoria,
			Stock: w.Cantidad, MinStock: w.CantidadMinima, Price: w.Precio,
			SupplierID: w.ProveedorID,
		}, nil
	}
	var w createProductEN
	if err := json.Unmarshal(raw, &w); err != nil {
		return CreateProductRequest{}, err
	}
	return CreateProductRequest{
		Name: w.Name, Description: w.Description, Category: w.Category,
		Stock: w.Stock, MinStock: w.MinStock, Price: w.Price,
		SupplierID: w.SupplierID,
	}, nil
}

type updateProductEN struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	MinStock    *int             `json:"minStock,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	SupplierID  *int64           `json:"supplierId,omitempty"`
}

type updateProductES struct {
	Nombre         *string          `json:"nombre,omitempty"`
	Descripcion    *string          `json:"descripcion,omitempty"`
	Categoria      *string          `json:"categoria,omitempty"`
	Cantidad       *int             `json:"cantidad,omitempty"`
	CantidadMinima *int             `json:"cantidadMinima,omitempty"`
	Precio         *decimal.Decimal `json:"precio,omitempty"`
	ProveedorID    *int64           `json:"proveedorId,omitempty"`
}

// EncodeUpdateProduct traduce la actualización parcial; solo los campos no
// nulos viajan en el cuerpo.
func EncodeUpdateProduct(loc Locale, in UpdateProductRequest) any {
	if loc == LocaleES {
		return updateProductES{
			Nombre: in.Name, Descripcion: in.Description, Categoria: in.Category,
			Cantidad: in.Stock, CantidadMinima: in.MinStock, Precio: in.Price,
			ProveedorID: in.SupplierID,
		}
	}
	return updateProductEN{
		Name: in.Name, Description: in.Description, Category: in.Category,
		Stock: in.Stock, MinStock: in.MinStock, Price: in.Price,
		SupplierID: in.SupplierID,
	}
}

// DecodeUpdateProduct interpreta la actualización parcial (lado servidor).
func DecodeUpdateProduct(loc Locale, raw []byte) (UpdateProductRequest, error) {
	if loc == LocaleES {
		var w updateProductES
		if err := json.Unmarshal(raw, &w); err != nil {
			return UpdateProductRequest{}, err
		}
		return UpdateProductRequest{
			Name: w.Nombre, Description: w.Descripcion, Category: w.Categoria,
			Stock: w.Cantidad, MinStock: w.CantidadMinima, Price: w.Precio,
			SupplierID: w.ProveedorID,
		}, nil
	}
	var w updateProductEN
	if err := json.Unmarshal(raw, &w); err != nil {
		return UpdateProductRequest{}, err
	}
	return UpdateProductRequest{
		Name: w.Name, Description: w.Description, Category: w.Category,
		Stock: w.Stock, MinStock: w.MinStock, Price: w.Price,
		SupplierID: w.SupplierID,
	}, nil
}

// ── Patch de stock ───────────────────────────────────────────────────────────

// EncodeStockPatch cuerpo del PATCH de stock según el locale.
func EncodeStockPatch(loc Locale, newStock int) map[string]int {
	if loc == LocaleES {
		return map[string]int{"cantidad": newStock}
	}
	return map[string]int{"stock": newStock}
}

// DecodeStockPatch interpreta el cuerpo del PATCH de stock (lado servidor).
// La ausencia de la clave del vocabulario configurado es un error: un cuerpo
// con el vocabulario equivocado no debe leerse como stock cero.
func DecodeStockPatch(loc Locale, raw []byte) (int, error) {
	var body map[string]int
	if err := json.Unmarshal(raw, &body); err != nil {
		return 0, err
	}
	key := "stock"
	if loc == LocaleES {
		key = "cantidad"
	}
	v, ok := body[key]
	if !ok {
		return 0, fmt.Errorf("falta el campo %q", key)
	}
	return v, nil
}

// ── Proveedor con productos ──────────────────────────────────────────────────

type supplierWithProductsWire struct {
	Supplier         entity.Supplier `json:"supplier"`
	Products         json.RawMessage `json:"products"`
	TotalProducts    int             `json:"totalProducts"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	LowStockProducts int             `json:"lowStockProducts"`
}

// EncodeSupplierWithProducts traduce el agregado proveedor + productos.
// Los campos del proveedor no se localizan; los productos anidados sí.
func EncodeSupplierWithProducts(loc Locale, sw entity.SupplierWithProducts) (any, error) {
	products, err := json.Marshal(EncodeProducts(loc, sw.Products))
	if err != nil {
		return nil, err
	}
	return supplierWithProductsWire{
		Supplier:         sw.Supplier,
		Products:         products,
		TotalProducts:    sw.TotalProducts,
		TotalValue:       sw.TotalValue,
		LowStockProducts: sw.LowStockProducts,
	}, nil
}

// DecodeSupplierWithProducts interpreta el agregado proveedor + productos.
func DecodeSupplierWithProducts(loc Locale, raw []byte) (*entity.SupplierWithProducts, error) {
	var w supplierWithProductsWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	var products []entity.Product
	if len(w.Products) > 0 {
		var err error
		products, err = DecodeProducts(loc, w.Products)
		if err != nil {
			return nil, err
		}
	}
	return &entity.SupplierWithProducts{
		Supplier:         w.Supplier,
		Products:         products,
		TotalProducts:    w.TotalProducts,
		TotalValue:       w.TotalValue,
		LowStockProducts: w.LowStockProducts,
	}, nil
}
