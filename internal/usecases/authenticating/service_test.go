package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	repomocks "github.com/rabie02/servicenow-gateway/infrastructure/repository/mocks"
	"github.com/rabie02/servicenow-gateway/internal/config"
	"github.com/rabie02/servicenow-gateway/internal/domain"
	"github.com/rabie02/servicenow-gateway/pkg/apiErrors"
)

func authConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret:          "segredo-de-teste",
			TokenTTLMinutes: 60,
		},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(t *testing.T, userRepo *repomocks.MockUserRepository)
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Deve autenticar usuário ativo com senha correta",
			email:    "Ana@BPM.local",
			password: "senha-forte",
			setup: func(t *testing.T, userRepo *repomocks.MockUserRepository) {
				// O e-mail é normalizado antes da consulta.
				userRepo.EXPECT().
					GetUserByEmail("ana@bpm.local").
					Return(&domain.User{
						ID:           7,
						Name:         "Ana",
						Email:        "ana@bpm.local",
						PasswordHash: hashPassword(t, "senha-forte"),
						Active:       true,
						RoleID:       domain.RoleSupervisor,
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "Deve rejeitar senha incorreta",
			email:    "ana@bpm.local",
			password: "senha-errada",
			setup: func(t *testing.T, userRepo *repomocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("ana@bpm.local").
					Return(&domain.User{
						ID:           7,
						PasswordHash: hashPassword(t, "senha-forte"),
						Active:       true,
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrInvalidCredentials)

				var authErr *AuthError
				assert.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
			},
		},
		{
			name:     "Deve rejeitar conta desativada",
			email:    "ana@bpm.local",
			password: "senha-forte",
			setup: func(t *testing.T, userRepo *repomocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("ana@bpm.local").
					Return(&domain.User{
						ID:           7,
						PasswordHash: hashPassword(t, "senha-forte"),
						Active:       false,
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrUserDisabled)
			},
		},
		{
			name:     "Deve rejeitar usuário inexistente",
			email:    "ninguem@bpm.local",
			password: "senha",
			setup: func(t *testing.T, userRepo *repomocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("ninguem@bpm.local").
					Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
		{
			name:  "Deve exigir email e senha",
			email: "",
			setup: func(t *testing.T, userRepo *repomocks.MockUserRepository) {},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := repomocks.NewMockUserRepository(ctrl)
			tt.setup(t, userRepo)

			service := NewService(userRepo, authConfig())

			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := repomocks.NewMockUserRepository(ctrl)
	cfg := authConfig()
	service := NewService(userRepo, cfg)

	userRepo.EXPECT().
		GetUserByEmail("ana@bpm.local").
		Return(&domain.User{
			ID:           7,
			Name:         "Ana",
			Email:        "ana@bpm.local",
			PasswordHash: hashPassword(t, "senha-forte"),
			Active:       true,
			RoleID:       domain.RoleAdmin,
		}, nil)

	token, err := service.LoginUser("ana@bpm.local", "senha-forte")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "ana@bpm.local", claims.UserEmail)
	assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
}

func TestValidateTokenExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := authConfig()
	service := NewService(repomocks.NewMockUserRepository(ctrl), cfg)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte(cfg.Auth.Secret))
	assert.NoError(t, err)

	_, err = service.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(repomocks.NewMockUserRepository(ctrl), authConfig())

	tests := []string{
		"",
		"nao-e-um-jwt",
	}

	for _, tokenString := range tests {
		_, err := service.ValidateToken(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}

	// Token assinado com outro segredo
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := other.SignedString([]byte("outro-segredo"))
	assert.NoError(t, err)

	_, err = service.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCreateUserDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := repomocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, authConfig())

	userRepo.EXPECT().
		GetUserByEmail("novo@bpm.local").
		Return(nil, nil)

	userRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, "novo@bpm.local", user.Email)
			assert.NotEqual(t, "senha-forte", user.PasswordHash, "a senha nunca é persistida em claro")
			assert.False(t, user.Active, "usuário novo nasce desativado")
			assert.Equal(t, domain.RoleAgent, user.RoleID)
			user.ID = 12
			return user, nil
		})

	created, err := service.CreateUser(&domain.User{
		Name:         "Novo",
		Lastname:     "Usuário",
		Email:        " Novo@BPM.local ",
		PasswordHash: "senha-forte",
	})

	assert.NoError(t, err)
	assert.Equal(t, 12, created.ID)
}
