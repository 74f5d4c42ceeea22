package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.UserAccountRepository = (*UserAccountRepo)(nil)

// UserAccountRepo implementación del puerto UserAccountRepository sobre PostgreSQL.
type UserAccountRepo struct {
	q Querier
}

// NewUserAccountRepository construye el adaptador de persistencia para cuentas.
func NewUserAccountRepository(q Querier) *UserAccountRepo {
	return &UserAccountRepo{q: q}
}

// Create persiste una cuenta nueva.
func (r *UserAccountRepo) Create(account *entity.UserAccount) error {
	query := `
		INSERT INTO user_accounts (id, full_name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.FullName, account.Email, account.PasswordHash,
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("insert user account: %w", err)
	}
	return nil
}

// FindByID obtiene una cuenta por ID.
func (r *UserAccountRepo) FindByID(id string) (*entity.UserAccount, error) {
	query := `
		SELECT id, full_name, email, password_hash, created_at, updated_at
		FROM user_accounts WHERE id = $1`
	return r.findOne(query, id)
}

// FindByEmail obtiene una cuenta por email (único global).
func (r *UserAccountRepo) FindByEmail(email string) (*entity.UserAccount, error) {
	query := `
		SELECT id, full_name, email, password_hash, created_at, updated_at
		FROM user_accounts WHERE email = $1`
	return r.findOne(query, email)
}

// ListByFullName lista cuentas cuyo full_name empieza por term (insensible a
// mayúsculas), ordenadas por full_name. Con term vacío devuelve todas.
func (r *UserAccountRepo) ListByFullName(term string) ([]*entity.UserAccount, error) {
	query := `
		SELECT id, full_name, email, password_hash, created_at, updated_at
		FROM user_accounts
		WHERE $1 = '' OR full_name ILIKE $1 || '%'
		ORDER BY full_name`
	rows, err := r.q.Query(context.Background(), query, term)
	if err != nil {
		return nil, fmt.Errorf("list user accounts: %w", err)
	}
	defer rows.Close()

	var list []*entity.UserAccount
	for rows.Next() {
		var a entity.UserAccount
		if err := rows.Scan(&a.ID, &a.FullName, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *UserAccountRepo) findOne(query string, arg any) (*entity.UserAccount, error) {
	var a entity.UserAccount
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.FullName, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user account: %w", err)
	}
	return &a, nil
}
