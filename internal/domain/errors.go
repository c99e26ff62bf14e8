package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrDuplicateName = errors.New("ya existe una categoría con ese nombre")
	ErrInvalidInput  = errors.New("entrada inválida")
)

// ValidationError es un rechazo del backend recuperable en el punto de uso:
// se muestra junto al control que lo provocó y no afecta al snapshot.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// TransportError envuelve un fallo de red o de decodificación. La mutación
// que lo provocó se considera no aplicada: quien llama no debe avanzar a un
// estado de éxito (cerrar modal, limpiar edición) cuando lo recibe.
type TransportError struct {
	Op  string // operación del gateway (ej: "fetch snapshot")
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transporte: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsValidation indica si err es un rechazo de validación del backend.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsTransport indica si err es un fallo de transporte.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
