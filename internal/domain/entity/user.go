package entity

import "time"

// Niveles de acceso, en jerarquía ascendente.
const (
	LevelOperador      = "operador"
	LevelSupervisor    = "supervisor"
	LevelAdministrador = "administrador"
)

// levelRank ordena la jerarquía para comparaciones (operador < supervisor < administrador).
var levelRank = map[string]int{
	LevelOperador:      1,
	LevelSupervisor:    2,
	LevelAdministrador: 3,
}

// LevelAtLeast reporta si level alcanza el nivel mínimo requerido.
// Niveles desconocidos nunca alcanzan nada.
func LevelAtLeast(level, min string) bool {
	l, ok := levelRank[level]
	if !ok {
		return false
	}
	m, ok := levelRank[min]
	if !ok {
		return false
	}
	return l >= m
}

// ValidLevel reporta si level es un nivel de acceso conocido.
func ValidLevel(level string) bool {
	_, ok := levelRank[level]
	return ok
}

// User usuario de la aplicación. Autor de movimientos y sujeto de permisos.
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt
	AccessLevel  string // operador | supervisor | administrador
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
