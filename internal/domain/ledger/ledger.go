// Package ledger contiene la función pura que gobierna las transiciones de
// cantidad de stock. No lee ni escribe almacenamiento: el caller es responsable
// de releer la cantidad vigente bajo bloqueo antes de aplicar el delta.
package ledger

import "github.com/jhoicas/catalogo-api/internal/domain"

// Operation tipo de movimiento sobre el stock.
type Operation string

const (
	OperationAdd Operation = "ADD"
	OperationSub Operation = "SUB"
)

// Valid indica si la operación es una de las soportadas.
func (o Operation) Valid() bool {
	return o == OperationAdd || o == OperationSub
}

// Apply calcula la nueva cantidad a partir de (current, op, amount) respetando
// el invariante 0 <= cantidad <= domain.MaxProductStock.
//
//   - amount fuera de [0, MaxProductStock] → domain.ErrInvalidInput, sin
//     intentar el delta.
//   - ADD que supere el tope → *domain.OutOfBoundsError{Kind: Overflow,
//     AllowedRemaining: MaxProductStock - current}.
//   - SUB que deje negativo → *domain.OutOfBoundsError{Kind: Underflow,
//     AllowedRemaining: current}.
func Apply(current int64, op Operation, amount int64) (int64, error) {
	if amount < 0 || amount > domain.MaxProductStock {
		return 0, domain.ErrInvalidInput
	}
	switch op {
	case OperationAdd:
		if current+amount > domain.MaxProductStock {
			return 0, &domain.OutOfBoundsError{Kind: domain.Overflow, AllowedRemaining: domain.MaxProductStock - current}
		}
		return current + amount, nil
	case OperationSub:
		if current-amount < 0 {
			return 0, &domain.OutOfBoundsError{Kind: domain.Underflow, AllowedRemaining: current}
		}
		return current - amount, nil
	default:
		return 0, domain.ErrInvalidInput
	}
}
