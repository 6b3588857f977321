package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/domain"
	"github.com/tu-usuario/estoque-api/internal/domain/repository"
	"github.com/tu-usuario/estoque-api/pkg/config"
	"github.com/tu-usuario/estoque-api/pkg/jwt"
)

// UseCase autenticación con credenciales y emisión de JWT.
type UseCase struct {
	users repository.UserRepository
	cfg   config.JWTConfig
}

func NewUseCase(users repository.UserRepository, cfg config.JWTConfig) *UseCase {
	return &UseCase{users: users, cfg: cfg}
}

// Login valida las credenciales y devuelve un token firmado. Un usuario
// inexistente y una contraseña incorrecta responden lo mismo.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Username, user.AccessLevel, uc.cfg.Issuer, uc.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:          user.ID,
			Username:    user.Username,
			AccessLevel: user.AccessLevel,
			CreatedAt:   user.CreatedAt,
			UpdatedAt:   user.UpdatedAt,
		},
	}, nil
}
