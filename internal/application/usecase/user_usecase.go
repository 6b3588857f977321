package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/domain"
	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	"github.com/tu-usuario/estoque-api/internal/domain/repository"
)

// UserUseCase administración de usuarios. Protege al sistema de quedarse sin
// administradores: el último no se puede eliminar ni degradar.
type UserUseCase struct {
	repo repository.UserRepository
}

func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (uc *UserUseCase) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if req.Username == "" || req.Password == "" || !entity.ValidLevel(req.AccessLevel) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hash),
		AccessLevel:  req.AccessLevel,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (uc *UserUseCase) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if req.Username == "" || !entity.ValidLevel(req.AccessLevel) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if user.AccessLevel == entity.LevelAdministrador && req.AccessLevel != entity.LevelAdministrador {
		last, err := uc.isLastAdmin(ctx)
		if err != nil {
			return nil, err
		}
		if last {
			return nil, domain.ErrLastAdmin
		}
	}

	user.Username = req.Username
	user.AccessLevel = req.AccessLevel
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()

	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Delete elimina un usuario. Un usuario no puede eliminarse a sí mismo y el
// último administrador no puede eliminarse.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return domain.ErrConflict
	}
	user, err := uc.repo.GetByID(targetID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.AccessLevel == entity.LevelAdministrador {
		last, err := uc.isLastAdmin(ctx)
		if err != nil {
			return err
		}
		if last {
			return domain.ErrLastAdmin
		}
	}
	return uc.repo.Delete(targetID)
}

func (uc *UserUseCase) isLastAdmin(ctx context.Context) (bool, error) {
	count, err := uc.repo.CountByLevel(entity.LevelAdministrador)
	if err != nil {
		return false, err
	}
	return count <= 1, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		AccessLevel: u.AccessLevel,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
