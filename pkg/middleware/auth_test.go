package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	repomocks "github.com/rabie02/servicenow-gateway/infrastructure/repository/mocks"
	"github.com/rabie02/servicenow-gateway/internal/config"
	"github.com/rabie02/servicenow-gateway/internal/domain"
	"github.com/rabie02/servicenow-gateway/internal/usecases/authenticating"
)

const testSecret = "segredo-de-teste"

func newAuthService(t *testing.T) authenticating.Authenticator {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return authenticating.NewService(repomocks.NewMockUserRepository(ctrl), &config.Config{
		Auth: config.Auth{
			Secret:          testSecret,
			TokenTTLMinutes: 60,
		},
	})
}

func signToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
		UserID:     7,
		UserEmail:  "ana@bpm.local",
		UserRoleID: domain.RoleSupervisor,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		authorization  string
		expectedStatus int
		expectedCode   string
		expectNext     bool
	}{
		{
			name:           "Deve liberar o login sem token",
			path:           "/v1/login",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "Deve liberar o healthcheck sem token",
			path:           "/healthcheck",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "Deve barrar requisição sem cabeçalho Authorization",
			path:           "/v1/quotes",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "AUTH_008",
		},
		{
			name:           "Deve exigir token em rotas fora da lista de exceções",
			path:           "/v1/register",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "AUTH_008",
		},
		{
			name:           "Deve barrar cabeçalho sem esquema Bearer",
			path:           "/v1/quotes",
			authorization:  "Basic abc123",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "AUTH_008",
		},
		{
			name:           "Deve barrar token inválido",
			path:           "/v1/quotes",
			authorization:  "Bearer nao-e-um-jwt",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "AUTH_004",
		},
		{
			name:           "Deve aceitar token válido",
			path:           "/v1/quotes",
			authorization:  "Bearer valido",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(newAuthService(t))(next)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authorization == "Bearer valido" {
				req.Header.Set("Authorization", "Bearer "+signToken(t, time.Now().Add(time.Hour)))
			} else if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectNext, nextCalled, "a cadeia só avança com token aceito")

			if tt.expectedCode != "" {
				body := recorder.Body.String()
				assert.Contains(t, body, `"success":false`)
				assert.Contains(t, body, tt.expectedCode)
			}
		})
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("a cadeia não pode avançar com token expirado")
	})

	handler := AuthMiddleware(newAuthService(t))(next)

	req := httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, time.Now().Add(-time.Hour)))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "AUTH_005")
}

func TestAuthMiddlewareInjectsClaims(t *testing.T) {
	var claims *domain.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ = r.Context().Value(ContextKeyUser).(*domain.Claims)
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(newAuthService(t))(next)

	req := httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, time.Now().Add(time.Hour)))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	if assert.NotNil(t, claims) {
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "ana@bpm.local", claims.UserEmail)
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		middleware     func(http.Handler) http.Handler
		roleID         int
		expectedStatus int
	}{
		{
			name:           "Administrador acessa rota restrita",
			middleware:     AdminOnly(),
			roleID:         domain.RoleAdmin,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Agente não acessa rota de administrador",
			middleware:     AdminOnly(),
			roleID:         domain.RoleAgent,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Supervisor acessa rota de mutação",
			middleware:     AdminOrSupervisor(),
			roleID:         domain.RoleSupervisor,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Agente não dispara mutação",
			middleware:     AdminOrSupervisor(),
			roleID:         domain.RoleAgent,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Agente acessa rota de leitura",
			middleware:     AllRoles(),
			roleID:         domain.RoleAgent,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(newAuthService(t))(tt.middleware(next))

			token := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
				UserID:     7,
				UserRoleID: tt.roleID,
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			})
			signed, err := token.SignedString([]byte(testSecret))
			assert.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
			req.Header.Set("Authorization", "Bearer "+signed)

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
		})
	}
}
