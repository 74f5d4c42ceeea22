package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UserAccountUseCase casos de uso de cuentas: registro, login y consultas.
type UserAccountUseCase struct {
	accountRepo repository.UserAccountRepository
	jwtCfg      JWTConfig
}

// NewUserAccountUseCase construye el caso de uso.
func NewUserAccountUseCase(accountRepo repository.UserAccountRepository, jwtCfg JWTConfig) *UserAccountUseCase {
	return &UserAccountUseCase{accountRepo: accountRepo, jwtCfg: jwtCfg}
}

// Register crea una cuenta: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailExists si el email ya está registrado.
func (uc *UserAccountUseCase) Register(in dto.RegisterRequest) (*dto.UserAccountResponse, error) {
	existing, err := uc.accountRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	account := &entity.UserAccount{
		ID:           uuid.New().String(),
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return toUserAccountResponse(account), nil
}

// Login verifica email/password, genera el JWT y retorna token + cuenta.
func (uc *UserAccountUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := uc.accountRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserAccountResponse(account),
	}, nil
}

// Get obtiene una cuenta por ID.
func (uc *UserAccountUseCase) Get(id string) (*dto.UserAccountResponse, error) {
	account, err := uc.accountRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserAccountResponse(account), nil
}

// List devuelve las cuentas cuyo full_name empieza por term (insensible a
// mayúsculas), ordenadas por full_name. Con term vacío devuelve todas.
func (uc *UserAccountUseCase) List(term string) ([]dto.UserAccountResponse, error) {
	accounts, err := uc.accountRepo.ListByFullName(term)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		items = append(items, *toUserAccountResponse(a))
	}
	return items, nil
}

func toUserAccountResponse(a *entity.UserAccount) *dto.UserAccountResponse {
	if a == nil {
		return nil
	}
	return &dto.UserAccountResponse{
		ID:        a.ID,
		FullName:  a.FullName,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
