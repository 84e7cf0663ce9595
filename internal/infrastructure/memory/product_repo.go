package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// ProductRepository productos en memoria.
type ProductRepository struct {
	mu       sync.RWMutex
	seq      int64
	products map[int64]entity.Product
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: map[int64]entity.Product{}}
}

// Create asigna id y timestamps y guarda el producto.
func (r *ProductRepository) Create(p entity.Product) entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	p.ID = r.seq
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products[p.ID] = p
	return p
}

// GetByID devuelve el producto por id.
func (r *ProductRepository) GetByID(id int64) (entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return entity.Product{}, domain.ErrNotFound
	}
	return p, nil
}

// List devuelve todos los productos ordenados por id.
func (r *ProductRepository) List() []entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Product, 0, len(r.products))
	for i := int64(1); i <= r.seq; i++ {
		if p, ok := r.products[i]; ok {
			out = append(out, p)
		}
	}
	return out
}

// ListBySupplier devuelve los productos de un proveedor.
func (r *ProductRepository) ListBySupplier(supplierID int64) []entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.Product
	for i := int64(1); i <= r.seq; i++ {
		if p, ok := r.products[i]; ok && p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out
}

// Update reemplaza el producto completo (mismo id). Falla si no existe.
func (r *ProductRepository) Update(p entity.Product) (entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.products[p.ID]
	if !ok {
		return entity.Product{}, domain.ErrNotFound
	}
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	r.products[p.ID] = p
	return p, nil
}

// Delete elimina el producto. Falla si no existe.
func (r *ProductRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}
