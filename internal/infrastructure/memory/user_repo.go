// Package memory implementa los repositorios en memoria del servidor de
// desarrollo. Cada repositorio asigna ids numéricos crecientes y protege
// su colección con un mutex; el backend real es el dueño de los datos en
// producción, aquí solo se reproduce su contrato.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// UserRepository usuarios en memoria, con hash bcrypt separado de la entidad.
type UserRepository struct {
	mu     sync.RWMutex
	seq    int64
	users  map[int64]entity.User
	hashes map[int64]string
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[int64]entity.User{}, hashes: map[int64]string{}}
}

// Create registra el usuario con su hash. Falla si el email ya existe.
func (r *UserRepository) Create(u entity.User, passwordHash string) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return entity.User{}, domain.ErrEmailAlreadyExists
		}
	}
	r.seq++
	u.ID = r.seq
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = u
	r.hashes[u.ID] = passwordHash
	return u, nil
}

// GetByEmail devuelve el usuario y su hash bcrypt.
func (r *UserRepository) GetByEmail(email string) (entity.User, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, u := range r.users {
		if u.Email == email {
			return u, r.hashes[id], nil
		}
	}
	return entity.User{}, "", domain.ErrUserNotFound
}

// GetByID devuelve el usuario por id.
func (r *UserRepository) GetByID(id int64) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return entity.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

// Update reemplaza los campos editables del perfil.
func (r *UserRepository) Update(u entity.User) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.users[u.ID]
	if !ok {
		return entity.User{}, domain.ErrUserNotFound
	}
	u.Email = current.Email
	u.Role = current.Role
	u.CreatedAt = current.CreatedAt
	u.UpdatedAt = time.Now().UTC()
	r.users[u.ID] = u
	return u, nil
}

// List devuelve todos los usuarios ordenados por id.
func (r *UserRepository) List() []entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.User, 0, len(r.users))
	for i := int64(1); i <= r.seq; i++ {
		if u, ok := r.users[i]; ok {
			out = append(out, u)
		}
	}
	return out
}

// Delete elimina el usuario. Falla si no existe.
func (r *UserRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	delete(r.hashes, id)
	return nil
}
