package entity

// Session es el par {usuario, token} que prueba la autenticación local.
// Es la única entidad con ciclo de vida puramente local: se crea en el
// login, se destruye en el logout o al detectar un token inválido.
// Invariante: usuario y token se escriben y se borran juntos, nunca uno solo.
type Session struct {
	User  User
	Token string
}
