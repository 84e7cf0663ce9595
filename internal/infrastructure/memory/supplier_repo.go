package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// SupplierRepository proveedores en memoria.
type SupplierRepository struct {
	mu        sync.RWMutex
	seq       int64
	suppliers map[int64]entity.Supplier
}

// NewSupplierRepository construye el repositorio vacío.
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{suppliers: map[int64]entity.Supplier{}}
}

// Create asigna id y timestamps y guarda el proveedor.
func (r *SupplierRepository) Create(s entity.Supplier) entity.Supplier {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	s.ID = r.seq
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	r.suppliers[s.ID] = s
	return s
}

// GetByID devuelve el proveedor por id.
func (r *SupplierRepository) GetByID(id int64) (entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.suppliers[id]
	if !ok {
		return entity.Supplier{}, domain.ErrNotFound
	}
	return s, nil
}

// List devuelve todos los proveedores ordenados por id.
func (r *SupplierRepository) List() []entity.Supplier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Supplier, 0, len(r.suppliers))
	for i := int64(1); i <= r.seq; i++ {
		if s, ok := r.suppliers[i]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Update reemplaza el proveedor (mismo id). Falla si no existe.
func (r *SupplierRepository) Update(s entity.Supplier) (entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.suppliers[s.ID]
	if !ok {
		return entity.Supplier{}, domain.ErrNotFound
	}
	s.CreatedAt = current.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	r.suppliers[s.ID] = s
	return s, nil
}

// Delete elimina el proveedor. Falla si no existe.
func (r *SupplierRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.suppliers, id)
	return nil
}
