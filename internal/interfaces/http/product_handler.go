package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/memory"
)

// ProductHandler maneja las peticiones HTTP para productos (protegido).
// El vocabulario de los cuerpos depende del locale configurado; la
// traducción vive en el codec de dto, nunca aquí.
type ProductHandler struct {
	repo   *memory.ProductRepository
	locale dto.Locale
}

// NewProductHandler construye el handler.
func NewProductHandler(repo *memory.ProductRepository, locale dto.Locale) *ProductHandler {
	return &ProductHandler{repo: repo, locale: locale}
}

func parseID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

// List devuelve todos los productos.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.EncodeProducts(h.locale, h.repo.List()))
}

// GetByID devuelve un producto.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	p, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Producto no encontrado"})
	}
	return c.JSON(dto.EncodeProduct(h.locale, p))
}

// Create crea un producto.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in, err := dto.DecodeCreateProduct(h.locale, c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p := entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		Price:       in.Price,
		SupplierID:  in.SupplierID,
	}
	if err := p.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	created := h.repo.Create(p)
	return c.Status(fiber.StatusCreated).JSON(dto.EncodeProduct(h.locale, created))
}

// Update actualización parcial vía PUT: solo los campos presentes cambian.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	p, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Producto no encontrado"})
	}
	in, err := dto.DecodeUpdateProduct(h.locale, c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.MinStock != nil {
		p.MinStock = *in.MinStock
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.SupplierID != nil {
		p.SupplierID = *in.SupplierID
	}
	if err := p.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	updated, err := h.repo.Update(p)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Producto no encontrado"})
	}
	return c.JSON(dto.EncodeProduct(h.locale, updated))
}

// Delete elimina un producto. Devuelve 204 en éxito; 404 con el mensaje
// de fallo si no existe.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Producto no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListBySupplier devuelve los productos de un proveedor.
func (h *ProductHandler) ListBySupplier(c *fiber.Ctx) error {
	supplierID, err := parseID(c, "supplierId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	return c.JSON(dto.EncodeProducts(h.locale, h.repo.ListBySupplier(supplierID)))
}

// UpdateStock PATCH de solo el stock del producto.
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	p, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Producto no encontrado"})
	}
	newStock, err := dto.DecodeStockPatch(h.locale, c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if newStock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: domain.ErrNegativeStock.Error()})
	}
	p.Stock = newStock
	updated, err := h.repo.Update(p)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Producto no encontrado"})
	}
	return c.JSON(dto.EncodeProduct(h.locale, updated))
}
