package memory

import (
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// Seed carga el juego de datos de desarrollo: un usuario admin y el
// catálogo de ejemplo que muestra la pantalla principal.
func Seed(users *UserRepository, products *ProductRepository, suppliers *SupplierRepository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := users.Create(entity.User{
		FirstName: "Admin",
		LastName:  "Principal",
		Email:     "admin@x.com",
		Role:      entity.RoleAdmin,
	}, string(hash)); err != nil {
		return err
	}

	for _, s := range []entity.Supplier{
		{Name: "TechCorp Solutions", Contact: "contact@techcorp.com"},
		{Name: "Global Electronics", Contact: "sales@globalelec.com"},
		{Name: "Audio Specialists", Contact: "info@audiospec.com"},
	} {
		suppliers.Create(s)
	}

	for _, p := range []entity.Product{
		{Name: "Wireless Headphones", Category: "Audio", Stock: 5, MinStock: 10, Price: decimal.RequireFromString("99.99"), SupplierID: 1},
		{Name: "Smartphone Case", Category: "Accesorios", Stock: 25, MinStock: 15, Price: decimal.RequireFromString("19.99"), SupplierID: 2},
		{Name: "USB Cable", Category: "Accesorios", Stock: 3, MinStock: 20, Price: decimal.RequireFromString("12.99"), SupplierID: 1},
		{Name: "Bluetooth Speaker", Category: "Audio", Stock: 8, MinStock: 12, Price: decimal.RequireFromString("79.99"), SupplierID: 3},
		{Name: "Power Bank", Category: "Energía", Stock: 15, MinStock: 8, Price: decimal.RequireFromString("39.99"), SupplierID: 2},
	} {
		products.Create(p)
	}

	return nil
}
