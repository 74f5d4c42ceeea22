package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// UserAccountRepository define el puerto de persistencia para UserAccount.
type UserAccountRepository interface {
	Create(account *entity.UserAccount) error
	FindByID(id string) (*entity.UserAccount, error)
	FindByEmail(email string) (*entity.UserAccount, error)
	// ListByFullName devuelve las cuentas cuyo full_name empieza por term
	// (insensible a mayúsculas), ordenadas por full_name. Con term vacío
	// devuelve todas.
	ListByFullName(term string) ([]*entity.UserAccount, error)
}
