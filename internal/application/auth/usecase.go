// Package auth registro y login de cuentas de operador.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/domain"
	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
	"github.com/Wesley1888/InvenMate/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	repo repository.UserRepository
	jwt  JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.UserRepository, cfg JWTConfig) *UseCase {
	return &UseCase{repo: repo, jwt: cfg}
}

// Register crea una cuenta nueva. El email es único; el rol por defecto es operador.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || len(in.Password) < 6 || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleOperador
	}
	if role != entity.RoleAdmin && role != entity.RoleOperador {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login valida credenciales y emite un token con nombre y rol en los claims.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.repo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwt.Secret, user.ID, user.Name, user.Role, uc.jwt.Issuer, uc.jwt.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// GetProfile obtiene la cuenta del token vigente.
func (uc *UseCase) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
