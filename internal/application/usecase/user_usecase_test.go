package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/application/usecase"
	"github.com/tu-usuario/estoque-api/internal/domain"
	"github.com/tu-usuario/estoque-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		dup := *u
		r.users[u.ID] = &dup
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	dup := *u
	r.users[u.ID] = &dup
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	dup := *u
	return &dup, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			dup := *u
			return &dup, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	dup := *u
	r.users[u.ID] = &dup
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		dup := *u
		out = append(out, &dup)
	}
	return out, nil
}

func (r *fakeUserRepo) CountByLevel(level string) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.AccessLevel == level {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func admin(id, username string) *entity.User {
	return &entity.User{ID: id, Username: username, PasswordHash: "x", AccessLevel: entity.LevelAdministrador}
}

func operador(id, username string) *entity.User {
	return &entity.User{ID: id, Username: username, PasswordHash: "x", AccessLevel: entity.LevelOperador}
}

// ──────────────────────────────────────────────────────────────────────────────
// Política de administradores
// ──────────────────────────────────────────────────────────────────────────────

func TestUserDelete_UltimoAdministrador(t *testing.T) {
	repo := newFakeUserRepo(admin("a1", "admin"), operador("o1", "operador"))
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete(context.Background(), "o1", "a1")
	require.ErrorIs(t, err, domain.ErrLastAdmin,
		"el último administrador no debe poder eliminarse")

	_, err = repo.GetByID("a1")
	require.NoError(t, err)
	assert.Len(t, repo.users, 2, "nada debe eliminarse")
}

func TestUserDelete_AdminConOtroAdmin(t *testing.T) {
	repo := newFakeUserRepo(admin("a1", "admin"), admin("a2", "admin2"))
	uc := usecase.NewUserUseCase(repo)

	require.NoError(t, uc.Delete(context.Background(), "a2", "a1"),
		"con dos administradores se puede eliminar uno")
	assert.Len(t, repo.users, 1)
}

func TestUserDelete_AutoEliminacion(t *testing.T) {
	repo := newFakeUserRepo(admin("a1", "admin"), admin("a2", "admin2"))
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete(context.Background(), "a1", "a1")
	require.ErrorIs(t, err, domain.ErrConflict,
		"un usuario no debe poder eliminarse a sí mismo")
}

func TestUserDelete_Inexistente(t *testing.T) {
	repo := newFakeUserRepo(admin("a1", "admin"))
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete(context.Background(), "a1", "no-existe")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserUpdate_DegradarUltimoAdministrador(t *testing.T) {
	repo := newFakeUserRepo(admin("a1", "admin"))
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Update(context.Background(), "a1", dto.UpdateUserRequest{
		Username:    "admin",
		AccessLevel: entity.LevelOperador,
	})
	require.ErrorIs(t, err, domain.ErrLastAdmin,
		"degradar al último administrador dejaría el sistema sin administración")
}

// ──────────────────────────────────────────────────────────────────────────────
// Altas y edición
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_HashDeContrasena(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	resp, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username:    "mariana",
		Password:    "secreta123",
		AccessLevel: entity.LevelSupervisor,
	})
	require.NoError(t, err)

	stored := repo.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestUserCreate_NivelInvalido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username:    "mariana",
		Password:    "secreta123",
		AccessLevel: "gerente",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_ContrasenaVaciaConservaHash(t *testing.T) {
	original := admin("a1", "admin")
	original.PasswordHash = "$2a$10$hash-original"
	repo := newFakeUserRepo(original, admin("a2", "admin2"))
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Update(context.Background(), "a1", dto.UpdateUserRequest{
		Username:    "admin-renombrado",
		AccessLevel: entity.LevelAdministrador,
	})
	require.NoError(t, err)

	assert.Equal(t, "$2a$10$hash-original", repo.users["a1"].PasswordHash,
		"sin contraseña nueva el hash no debe cambiar")
	assert.Equal(t, "admin-renombrado", repo.users["a1"].Username)
}
