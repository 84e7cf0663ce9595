// inventario es la CLI de gestión de inventario: autenticación, resumen
// de stock y CRUD de productos y proveedores contra el backend REST.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/inventario-cli/internal/application/dashboard"
	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/application/session"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/api"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/store"
	"github.com/jhoicas/inventario-cli/pkg/config"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuración:", err)
		os.Exit(1)
	}

	// En la CLI los logs van por stderr y solo interesan a partir de warn,
	// salvo en development.
	level := "warn"
	if cfg.App.Env == "development" {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: level})

	client := api.New(api.Config{
		BaseURL: cfg.API.BaseURL,
		Locale:  dto.Locale(cfg.API.Locale),
		Log:     log,
	})

	users := api.NewUsers(client)
	kv := store.New(cfg.Session.Dir)
	repo := session.NewRepository(users, kv, cfg.Session.Prefix, log)

	lang := language.English
	if cfg.API.Locale == "es" {
		lang = language.Spanish
	}

	app := &cli{
		out:       os.Stdout,
		errOut:    os.Stderr,
		products:  api.NewProducts(client),
		suppliers: api.NewSuppliers(client),
		users:     users,
		repo:      repo,
		guard:     session.NewGuard(repo, cfg.Session.VerifyRemote),
		printer:   message.NewPrinter(lang),
	}

	os.Exit(app.run(context.Background(), os.Args[1:]))
}

type cli struct {
	out       io.Writer
	errOut    io.Writer
	products  *api.Products
	suppliers *api.Suppliers
	users     *api.Users
	repo      *session.Repository
	guard     *session.Guard
	printer   *message.Printer
}

func (a *cli) run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return 2
	}

	switch args[0] {
	case "login":
		return a.cmdLogin(ctx, args[1:])
	case "logout":
		return a.cmdLogout()
	case "register":
		return a.cmdRegister(ctx, args[1:])
	case "whoami":
		return a.cmdWhoami(ctx)
	case "dashboard":
		return a.cmdDashboard(ctx)
	case "products":
		return a.cmdProducts(ctx, args[1:])
	case "suppliers":
		return a.cmdSuppliers(ctx, args[1:])
	case "users":
		return a.cmdUsers(ctx, args[1:])
	case "profile":
		return a.cmdProfile(ctx, args[1:])
	case "help", "-h", "--help":
		a.usage()
		return 0
	default:
		fmt.Fprintf(a.errOut, "comando desconocido: %s\n\n", args[0])
		a.usage()
		return 2
	}
}

func (a *cli) usage() {
	fmt.Fprint(a.errOut, `uso: inventario <comando> [flags]

comandos:
  login       iniciar sesión (-email, -password)
  logout      cerrar la sesión local
  register    registrar un usuario nuevo
  whoami      mostrar el usuario autenticado
  dashboard   resumen de inventario y alertas de stock bajo
  products    list | get | create | update | delete | stock | by-supplier
  suppliers   list | get | create | update | delete | products
  users       list | delete (solo admin)
  profile     show | update
`)
}

// require cruza el guard de autenticación; sin sesión válida redirige al
// punto de entrada de login.
func (a *cli) require(ctx context.Context) (string, bool) {
	sess, err := a.guard.Require(ctx)
	if err != nil {
		if errors.Is(err, session.ErrUnauthenticated) {
			fmt.Fprintln(a.errOut, "Sesión no válida o expirada. Ejecuta: inventario login")
		} else {
			fmt.Fprintln(a.errOut, err)
		}
		return "", false
	}
	return sess.Token, true
}

func (a *cli) money(d decimal.Decimal) string {
	f, _ := d.Float64()
	return a.printer.Sprintf("%.2f", f)
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func (a *cli) cmdLogin(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "email del usuario")
	password := fs.String("password", "", "contraseña")
	if fs.Parse(args) != nil {
		return 2
	}

	res := a.repo.Login(ctx, entity.Credentials{Email: *email, Password: *password})
	fmt.Fprintln(a.out, res.Message)
	if !res.Success {
		return 1
	}
	return 0
}

func (a *cli) cmdLogout() int {
	a.repo.ClearSession()
	fmt.Fprintln(a.out, "Sesión cerrada")
	return 0
}

func (a *cli) cmdRegister(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	first := fs.String("first-name", "", "nombre")
	last := fs.String("last-name", "", "apellido")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "contraseña")
	confirm := fs.String("confirm", "", "confirmación de contraseña")
	company := fs.String("company", "", "empresa (opcional)")
	if fs.Parse(args) != nil {
		return 2
	}

	// Validación local: nunca llega a la capa HTTP.
	if *first == "" || *last == "" || *email == "" || *password == "" {
		fmt.Fprintln(a.out, "Nombre, apellido, email y contraseña son requeridos")
		return 1
	}
	if *password != *confirm {
		fmt.Fprintln(a.out, "Las contraseñas no coinciden")
		return 1
	}

	res := a.repo.Register(ctx, dto.RegisterRequest{
		FirstName: *first,
		LastName:  *last,
		Email:     *email,
		Password:  *password,
		Company:   *company,
	})
	fmt.Fprintln(a.out, res.Message)
	if !res.Success {
		return 1
	}
	return 0
}

func (a *cli) cmdWhoami(ctx context.Context) int {
	sess, err := a.guard.Require(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "No hay sesión activa")
		return 1
	}
	u := sess.User
	fmt.Fprintf(a.out, "%s <%s> rol=%s\n", u.FullName(), u.Email, u.Role)
	return 0
}

// ── Dashboard ────────────────────────────────────────────────────────────────

func (a *cli) cmdDashboard(ctx context.Context) int {
	token, ok := a.require(ctx)
	if !ok {
		return 1
	}

	uc := dashboard.NewSummaryUseCase(a.products, a.suppliers)
	summary, err := uc.GetSummary(ctx, token)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return 1
	}

	fmt.Fprintf(a.out, "Productos:   %d referencias, %d unidades\n", summary.TotalProducts, summary.TotalUnits)
	fmt.Fprintf(a.out, "Valor total: %s\n", a.money(summary.TotalValue))
	fmt.Fprintf(a.out, "Proveedores: %d\n", summary.TotalSuppliers)
	if len(summary.LowStock) > 0 {
		fmt.Fprintf(a.out, "\nStock bajo (%d):\n", len(summary.LowStock))
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		for _, p := range summary.LowStock {
			fmt.Fprintf(w, "  %d\t%s\t%d/%d\n", p.ID, p.Name, p.Stock, p.MinStock)
		}
		w.Flush()
	}
	return 0
}

// ── Products ─────────────────────────────────────────────────────────────────

func (a *cli) cmdProducts(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.errOut, "uso: inventario products <list|get|create|update|delete|stock|by-supplier> [flags]")
		return 2
	}
	token, ok := a.require(ctx)
	if !ok {
		return 1
	}

	switch args[0] {
	case "list":
		resp := a.products.GetAll(ctx, token)
		if !resp.Success {
			fmt.Fprintln(a.out, resp.Message)
			return 1
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tCATEGORÍA\tSTOCK\tMÍNIMO\tPRECIO\tPROVEEDOR\tESTADO")
		for _, p := range resp.Products {
			status := "OK"
			if p.IsLowStock() {
				status = "Stock bajo"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\t%d\t%s\n",
				p.ID, p.Name, p.Category, p.Stock, p.MinStock, a.money(p.Price), p.SupplierID, status)
		}
		w.Flush()
		return 0

	case "get":
		fs := flag.NewFlagSet("products get", flag.ContinueOnError)
		id := fs.Int64("id", 0, "id del producto")
		if fs.Parse(args[1:]) != nil {
			return 2
		}
		resp := a.products.GetByID(ctx, token, *id)
		if !resp.Success {
			fmt.Fprintln(a.out, resp.Message)
			return 1
		}
		a.printProduct(*resp.Product)
		return 0

	case "create":
		fs := flag.NewFlagSet("products create", flag.ContinueOnError)
		name := fs.String("name", "", "nombre")
		description := fs.String("description", "", "descripción")
		category := fs.String("category", "", "categoría")
		stock := fs.Int("stock", 0, "stock inicial")
		minStock := fs.Int("min-stock", 0, "stock mínimo")
		price := fs.String("price", "0", "precio")
		supplierID := fs.Int64("supplier", 0, "id del proveedor")
		if fs.Parse(args[1:]) != nil {
			return 2
		}
		priceDec, err := decimal.NewFromString(*price)
		if err != nil {
			fmt.Fprintln(a.out, "Precio inválido:", *price)
			return 1
		}
		resp := a.products.Create(ctx, token, dto.CreateProductRequest{
			Name:        *name,
			Description: *description,
			Category:    *category,
			Stock:       *stock,
			MinStock:    *minStock,
			Price:       priceDec,
			SupplierID:  *supplierID,
		})
		fmt.Fprintln(a.out, resp.Message)
		if !resp.Success {
			return 1
		}
		a.printProduct(*resp.Product)
		return 0

	case "update":
		fs := flag.NewFlagSet("products update", flag.ContinueOnError)
		id := fs.Int64("id", 0, "id del producto")
		name := fs.String("name", "", "nombre")
		description := fs.String("description", "", "descripción")
		category := fs.String("category", "", "categoría")
		stock := fs.Int("stock", 0, "stock")
		minStock := fs.Int("min-stock", 0, "stock mínimo")
		price := fs.String("price", "", "precio")
		supplierID := fs.Int64("supplier", 0, "id del proveedor")
		if fs.Parse(args[1:]) != nil {
			return 2
		}
		// Solo viajan los flags realmente pasados.
		var in dto.UpdateProductRequest
		var badPrice bool
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "name":
				in.Name = name
			case "description":
				in.Description = description
			case "category":
				in.Category = category
			case "stock":
				in.Stock = stock
			case "min-stock":
				in.MinStock = minStock
			case "price":
				d, err := decimal.NewFromString(*price)
				if err != nil {
					badPrice = true
					return
				}
				in.Price = &d
			case "supplier":
				in.SupplierID = supplierID
			}
		})
		if badPrice {
			fmt.Fprintln(a.out, "Precio inválido:", *price)
			return 1
		}
		resp := a.products.Update(ctx, token, *id, in)
		fmt.Fprintln(a.out, resp.Message)
		if !resp.Success {
			return 1
		}
		a.printProduct(*resp.Product)
		return 0

	case "delete":
		fs := flag.NewFlagSet("products delete", flag.ContinueOnError)
		id := fs.Int64("id", 0, "id del producto")
		if fs.Parse(args[1:]) != nil {
			return 2
		}
		res := a.products.Delete(ctx, token, *id)
		fmt.Fprintln(a.out, res.Message)
		if !res.Success {
			return 1
		}
		return 0

	case "stock":
		fs := flag.NewFlagSet("products stock", flag.ContinueOnError)
		id := fs.Int64("id", 0, "id del producto")
		stock := fs.Int("stock", 0, "nuevo stock")
		if fs.Parse(args[1:]) != nil {
			return 2
		}
		resp := a.products.UpdateStock(ctx, token, *id, *stock)
		fmt.Fprintln(a.out, resp.Message)
		if !resp.Success {
			return 1
		}
		a.printProduct(*resp.Product)
		return 0

	case "by-supplier":
		fs := flag.NewFlagSet("products by-supplier", flag.ContinueOnError)
		id := fs.Int64("id", 0, "id del proveedor")
		if fs.Parse(args[1:]) != nil {
			return 2
		}
		resp := a.products.GetBySupplier(ctx, token, *id)
		if !resp.Success {
			fmt.Fprintln(a.out, resp.Message)
			return 1
		}
		for _, p := range resp.Products {
			fmt.Fprintf(a.out, "%d  %s  (%d en stock)\n", p.ID, p.Name, p.Stock)
		}
		return 0

	default:
		fmt.Fprintf(a.errOut, "subcomando desconocido: products %s\n", args[0])
		return 2
	}
}

// ── Suppliers ────────────────────────────────────────────────────────────────

func (a *cli) cmdSuppliers(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.errOut, "uso: inventario suppliers <list|get|create|update|delete|products> [flags]")
		return 2
	}
	token, ok := a.require(ctx)
	if !ok {
		return 1
	}

	switch args[0] {
	case "list":
		resp := a.suppliers.GetAll(ctx, token)
		if !resp.Success {
			fmt.Fprintln(a.out, resp.Message)
			return 1
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tCONTACTO\tTELÉFONO")
		for _, s := range resp.Suppliers {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.ID, s.Name, s.Contact, s.Phone)
		}
		w.Flush()
		return 0

	case "get":
		fs := flag.NewFlagSet("suppliers get", flag.ContinueOnError)
		id := fs.Int64("id", 0, "id del proveedor")
		if fs.Parse(args[1:]) != nil {
			return 2
		}
		resp := a.suppliers.GetByID(ctx, token, *id)
		if !resp.Success {
			fmt.Fprintln(a.out, resp.Message)
			return 1
		}
		s := *resp.Supplier
		fmt.Fprintf(a.out, "%d  %s\n  contacto: %s\n  teléfono: %s\n  dirección: %s\n",
			s.ID, s.Name, s.Contact, s.Phone, s.Address)
		return 0

	case "create":
		fs := flag.NewFlagSet("suppliers create", flag.ContinueOnError)
		name := fs.String("name", "", "nombre")
		contact := fs.String("contact", "", "email de contacto")
		phone := fs.String("phone", "", "teléfono (opcional)")
		address := fs.String("address", "", "dirección (opcional)")
		if fs.Parse(args[1:]) != nil {
			return 2
		}
		if *name == "" || *contact == "" {
			fmt.Fprintln(a.out, "Nombre y contacto son requeridos")
			return 1
		}
		resp := a.suppliers.Create(ctx, token, dto.CreateSupplierRequest{
			Name: *name, Contact: *contact, Phone: *phone, Address: *address,
		})
		fmt.Fprintln(a.out, resp.Message)
		if !resp.Success {
			return 1
		}
		return 0

	case "update":
		fs := flag.NewFlagSet("suppliers update", flag.ContinueOnError)
		id := fs.Int64("id", 0, "id del proveedor")
		name := fs.String("name", "", "nombre")
		contact := fs.String("contact", "", "email de contacto")
		phone := fs.String("phone", "", "teléfono")
		address := fs.String("address", "", "dirección")
		if fs.Parse(args[1:]) != nil {
			return 2
		}
		var in dto.UpdateSupplierRequest
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "name":
				in.Name = name
			case "contact":
				in.Contact = contact
			case "phone":
				in.Phone = phone
			case "address":
				in.Address = address
			}
		})
		resp := a.suppliers.Update(ctx, token, *id, in)
		fmt.Fprintln(a.out, resp.Message)
		if !resp.Success {
			return 1
		}
		return 0

	case "delete":
		fs := flag.NewFlagSet("suppliers delete", flag.ContinueOnError)
		id := fs.Int64("id", 0, "id del proveedor")
		if fs.Parse(args[1:]) != nil {
			return 2
		}
		res := a.suppliers.Delete(ctx, token, *id)
		fmt.Fprintln(a.out, res.Message)
		if !res.Success {
			return 1
		}
		return 0

	case "products":
		fs := flag.NewFlagSet("suppliers products", flag.ContinueOnError)
		id := fs.Int64("id", 0, "id del proveedor")
		if fs.Parse(args[1:]) != nil {
			return 2
		}
		resp := a.suppliers.GetWithProducts(ctx, token, *id)
		if !resp.Success {
			fmt.Fprintln(a.out, resp.Message)
			return 1
		}
		d := resp.Data
		fmt.Fprintf(a.out, "%s: %d productos, valor %s, %d en stock bajo\n",
			d.Supplier.Name, d.TotalProducts, a.money(d.TotalValue), d.LowStockProducts)
		for _, p := range d.Products {
			fmt.Fprintf(a.out, "  %d  %s  (%d en stock)\n", p.ID, p.Name, p.Stock)
		}
		return 0

	default:
		fmt.Fprintf(a.errOut, "subcomando desconocido: suppliers %s\n", args[0])
		return 2
	}
}

// ── Users / profile ──────────────────────────────────────────────────────────

func (a *cli) cmdUsers(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.errOut, "uso: inventario users <list|delete> [flags]")
		return 2
	}
	token, ok := a.require(ctx)
	if !ok {
		return 1
	}

	switch args[0] {
	case "list":
		resp := a.users.GetAll(ctx, token)
		if !resp.Success {
			fmt.Fprintln(a.out, resp.Message)
			return 1
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tROL")
		for _, u := range resp.Users {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.FullName(), u.Email, u.Role)
		}
		w.Flush()
		return 0

	case "delete":
		fs := flag.NewFlagSet("users delete", flag.ContinueOnError)
		id := fs.Int64("id", 0, "id del usuario")
		if fs.Parse(args[1:]) != nil {
			return 2
		}
		res := a.users.Delete(ctx, token, *id)
		fmt.Fprintln(a.out, res.Message)
		if !res.Success {
			return 1
		}
		return 0

	default:
		fmt.Fprintf(a.errOut, "subcomando desconocido: users %s\n", args[0])
		return 2
	}
}

func (a *cli) cmdProfile(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.errOut, "uso: inventario profile <show|update> [flags]")
		return 2
	}
	token, ok := a.require(ctx)
	if !ok {
		return 1
	}

	switch args[0] {
	case "show":
		resp := a.users.GetProfile(ctx, token)
		if !resp.Success {
			fmt.Fprintln(a.out, resp.Message)
			return 1
		}
		u := *resp.User
		fmt.Fprintf(a.out, "%s <%s>\n  empresa: %s\n  rol: %s\n", u.FullName(), u.Email, u.Company, u.Role)
		return 0

	case "update":
		fs := flag.NewFlagSet("profile update", flag.ContinueOnError)
		first := fs.String("first-name", "", "nombre")
		last := fs.String("last-name", "", "apellido")
		company := fs.String("company", "", "empresa")
		if fs.Parse(args[1:]) != nil {
			return 2
		}
		var in dto.UpdateProfileRequest
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "first-name":
				in.FirstName = first
			case "last-name":
				in.LastName = last
			case "company":
				in.Company = company
			}
		})
		resp := a.users.UpdateProfile(ctx, token, in)
		fmt.Fprintln(a.out, resp.Message)
		if !resp.Success {
			return 1
		}
		return 0

	default:
		fmt.Fprintf(a.errOut, "subcomando desconocido: profile %s\n", args[0])
		return 2
	}
}

func (a *cli) printProduct(p entity.Product) {
	status := "OK"
	if p.IsLowStock() {
		status = "Stock bajo"
	}
	fmt.Fprintf(a.out, "%d  %s [%s]\n  stock: %d (mínimo %d) %s\n  precio: %s  proveedor: %d\n",
		p.ID, p.Name, p.Category, p.Stock, p.MinStock, status, a.money(p.Price), p.SupplierID)
}
