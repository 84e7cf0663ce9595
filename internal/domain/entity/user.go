package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa la identidad de un usuario del sistema. El cliente nunca
// inventa ni muta ids; todo cambio pasa por el backend.
type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName devuelve nombre y apellido juntos para presentación.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Credentials par email/contraseña usado solo como entrada de login.
// Nunca se persiste.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
