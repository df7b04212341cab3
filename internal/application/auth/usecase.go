// Package auth contiene los casos de uso de autenticación: login, registro
// (solo admin) y logout.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/salesops-api/internal/application/dto"
	"github.com/jhoicas/salesops-api/internal/domain"
	"github.com/jhoicas/salesops-api/internal/domain/entity"
	"github.com/jhoicas/salesops-api/internal/domain/repository"
	"github.com/jhoicas/salesops-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica username/password, genera el JWT con el rol en los claims y
// devuelve token + usuario. Credenciales inválidas → domain.ErrUnauthorized
// (sin distinguir usuario inexistente de password incorrecto).
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username y password son requeridos", domain.ErrInvalidInput)
	}
	user, err := uc.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("login: generar token: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		Role:  user.Role,
		User:  toUserDTO(user),
	}, nil
}

// Register crea un usuario con password hasheado. El handler restringe la
// ruta a admin; aquí solo se valida la entrada.
func (uc *UseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserDTO, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username y password son requeridos", domain.ErrInvalidInput)
	}
	role := req.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash: %w", err)
	}
	now := time.Now()
	name := req.Name
	if name == "" {
		name = req.Username
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Username:     strings.TrimSpace(req.Username),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	out := toUserDTO(user)
	return &out, nil
}

func toUserDTO(u *entity.User) dto.UserDTO {
	return dto.UserDTO{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
