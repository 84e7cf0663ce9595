package session

import (
	"context"
	"errors"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// ErrUnauthenticated lo devuelve Require cuando no hay sesión válida; el
// consumidor debe redirigir al punto de entrada de login.
var ErrUnauthenticated = errors.New("sesión no válida o expirada, inicia sesión de nuevo")

// State estados del guard de autenticación.
type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "loading"
	}
}

// Guard máquina de estados loading -> authenticated | unauthenticated.
// Con verifyRemote activo el token local se valida contra /auth/profile en
// cada Check; desactivado, basta la presencia local de usuario y token.
type Guard struct {
	repo         *Repository
	verifyRemote bool
	state        State
}

// NewGuard construye el guard en estado loading.
func NewGuard(repo *Repository, verifyRemote bool) *Guard {
	return &Guard{repo: repo, verifyRemote: verifyRemote, state: StateLoading}
}

// State devuelve el estado actual del guard.
func (g *Guard) State() State {
	return g.state
}

// Check resuelve el estado. Sin token -> unauthenticated. Con token y
// verificación remota, un perfil válido refresca el usuario persistido;
// un token inválido o expirado (o un fallo de red, igual que el original)
// limpia la sesión obsoleta antes de reportar unauthenticated.
func (g *Guard) Check(ctx context.Context) (State, *entity.Session) {
	token := g.repo.GetToken()
	if token == "" {
		g.repo.ClearSession()
		g.state = StateUnauthenticated
		return g.state, nil
	}

	if !g.verifyRemote {
		sess := g.repo.Current()
		if sess == nil {
			g.repo.ClearSession()
			g.state = StateUnauthenticated
			return g.state, nil
		}
		g.state = StateAuthenticated
		return g.state, sess
	}

	resp := g.repo.users.GetProfile(ctx, token)
	if !resp.Success || resp.User == nil {
		g.repo.ClearSession()
		g.state = StateUnauthenticated
		return g.state, nil
	}

	// Mantener la identidad persistida al día con el backend.
	g.repo.saveSession(*resp.User, token)
	g.state = StateAuthenticated
	return g.state, &entity.Session{User: *resp.User, Token: token}
}

// Require devuelve la sesión autenticada o ErrUnauthenticated. Es la
// puerta que cruzan todos los comandos protegidos.
func (g *Guard) Require(ctx context.Context) (*entity.Session, error) {
	state, sess := g.Check(ctx)
	if state != StateAuthenticated {
		return nil, ErrUnauthenticated
	}
	return sess, nil
}
