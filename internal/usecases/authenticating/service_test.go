package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository/mocks"
	"github.com/vfg2006/coop-ratio-api/internal/config"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey: "test-secret",
		Auth: config.Auth{
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 24 * time.Hour,
		},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool     { return &b }

func authCode(t *testing.T, err error) string {
	t.Helper()
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "esperado AuthError, recebido %v", err)
	return authErr.Code
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())
	ctx := context.Background()

	validRequest := domain.RegisterRequest{
		Username:        "joao",
		Email:           " Joao@Coop.com ",
		Password:        "senha-forte1",
		PasswordConfirm: "senha-forte1",
		FirstName:       "João",
	}

	tests := []struct {
		name     string
		req      domain.RegisterRequest
		setup    func()
		validate func(t *testing.T, user *domain.User, err error)
	}{
		{
			name: "Cadastro válido cria admin inativo com email normalizado",
			req:  validRequest,
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "joao").Return(nil, nil)
				mockUserRepo.EXPECT().GetUserByEmail(ctx, "joao@coop.com").Return(nil, nil)
				mockUserRepo.EXPECT().
					CreateUser(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
						u.ID = 10
						return u, nil
					})
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				require.NoError(t, err)
				assert.Equal(t, 10, user.ID)
				assert.Equal(t, domain.RoleAdmin, user.Role)
				assert.False(t, user.IsActive)
				assert.Equal(t, "joao@coop.com", user.Email)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-forte1")))
			},
		},
		{
			name: "Senhas diferentes",
			req: domain.RegisterRequest{
				Username:        "joao",
				Email:           "joao@coop.com",
				Password:        "senha-forte1",
				PasswordConfirm: "senha-forte2",
			},
			setup: func() {},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, ErrPasswordMismatch)
			},
		},
		{
			name: "Senha curta",
			req: domain.RegisterRequest{
				Username:        "joao",
				Email:           "joao@coop.com",
				Password:        "abc12",
				PasswordConfirm: "abc12",
			},
			setup: func() {},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.ErrorIs(t, err, ErrWeakPassword)
				assert.Equal(t, apiErrors.ErrInvalidFormat, authCode(t, err))
			},
		},
		{
			name: "Campos obrigatórios ausentes",
			req:  domain.RegisterRequest{Username: "joao"},
			setup: func() {},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
		{
			name: "Usuário já existente",
			req:  validRequest,
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "joao").Return(&domain.User{ID: 3}, nil)
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
				assert.Equal(t, apiErrors.ErrUserAlreadyExists, authCode(t, err))
			},
		},
		{
			name: "Violação de unicidade no banco",
			req:  validRequest,
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "joao").Return(nil, nil)
				mockUserRepo.EXPECT().GetUserByEmail(ctx, "joao@coop.com").Return(nil, nil)
				mockUserRepo.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil, repository.ErrDuplicate)
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			user, err := service.Register(ctx, tt.req)
			tt.validate(t, user, err)
		})
	}
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())
	ctx := context.Background()

	req := domain.RegisterRequest{
		Username:        "maria",
		Email:           "maria@coop.com",
		Password:        "outra-senha9",
		PasswordConfirm: "outra-senha9",
		Role:            domain.RoleMaster,
	}

	mockUserRepo.EXPECT().GetUserByUsername(ctx, "maria").Return(nil, nil)
	mockUserRepo.EXPECT().GetUserByEmail(ctx, "maria@coop.com").Return(nil, nil)
	mockUserRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
			u.ID = 2
			return u, nil
		})

	user, err := service.CreateUser(ctx, 1, req)
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.Equal(t, domain.RoleMaster, user.Role)
	require.NotNil(t, user.CreatedBy)
	assert.Equal(t, 1, *user.CreatedBy)

	req.Role = "superuser"
	mockUserRepo.EXPECT().GetUserByUsername(ctx, "maria").Return(nil, nil)
	mockUserRepo.EXPECT().GetUserByEmail(ctx, "maria@coop.com").Return(nil, nil)

	_, err = service.CreateUser(ctx, 1, req)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestService_LoginAndRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())
	ctx := context.Background()

	activeUser := &domain.User{
		ID:           7,
		Username:     "ana",
		Email:        "ana@coop.com",
		Role:         domain.RoleAdmin,
		IsActive:     true,
		PasswordHash: hashPassword(t, "senha-correta"),
	}

	tests := []struct {
		name       string
		identifier string
		password   string
		setup      func()
		validate   func(t *testing.T, tokens *domain.TokenPair, err error)
	}{
		{
			name:       "Login por nome de usuário",
			identifier: "ana",
			password:   "senha-correta",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "ana").Return(activeUser, nil)
			},
			validate: func(t *testing.T, tokens *domain.TokenPair, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, tokens.Access)
				assert.NotEmpty(t, tokens.Refresh)
				assert.Equal(t, domain.RoleAdmin, tokens.UserRole)

				claims, err := service.ValidateToken(tokens.Access)
				require.NoError(t, err)
				assert.Equal(t, 7, claims.UserID)
				assert.Equal(t, domain.TokenTypeAccess, claims.TokenType)

				_, err = service.ValidateToken(tokens.Refresh)
				assert.ErrorIs(t, err, ErrInvalidToken)
			},
		},
		{
			name:       "Login por email",
			identifier: "ANA@coop.com",
			password:   "senha-correta",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "ANA@coop.com").Return(nil, nil)
				mockUserRepo.EXPECT().GetUserByEmail(ctx, "ana@coop.com").Return(activeUser, nil)
			},
			validate: func(t *testing.T, tokens *domain.TokenPair, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, tokens.Access)
			},
		},
		{
			name:       "Senha incorreta",
			identifier: "ana",
			password:   "errada",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "ana").Return(activeUser, nil)
			},
			validate: func(t *testing.T, tokens *domain.TokenPair, err error) {
				assert.Nil(t, tokens)
				assert.True(t, IsCredentialsError(err))
				assert.Equal(t, apiErrors.ErrInvalidCredentials, authCode(t, err))
			},
		},
		{
			name:       "Usuário inexistente",
			identifier: "ninguem",
			password:   "qualquer-coisa",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "ninguem").Return(nil, nil)
			},
			validate: func(t *testing.T, tokens *domain.TokenPair, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:       "Usuário inativo",
			identifier: "pedro",
			password:   "senha-correta",
			setup: func() {
				inactive := *activeUser
				inactive.Username = "pedro"
				inactive.IsActive = false
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "pedro").Return(&inactive, nil)
			},
			validate: func(t *testing.T, tokens *domain.TokenPair, err error) {
				assert.ErrorIs(t, err, ErrUserDisabled)
				assert.Equal(t, apiErrors.ErrUserDisabled, authCode(t, err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			tokens, err := service.Login(ctx, tt.identifier, tt.password)
			tt.validate(t, tokens, err)
		})
	}

	t.Run("Refresh emite novo token de acesso", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByUsername(ctx, "ana").Return(activeUser, nil)
		tokens, err := service.Login(ctx, "ana", "senha-correta")
		require.NoError(t, err)

		mockUserRepo.EXPECT().GetUserByID(ctx, 7).Return(activeUser, nil)
		access, err := service.Refresh(ctx, tokens.Refresh)
		require.NoError(t, err)

		claims, err := service.ValidateToken(access)
		require.NoError(t, err)
		assert.Equal(t, "ana", claims.Username)
	})

	t.Run("Refresh rejeita token de acesso", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByUsername(ctx, "ana").Return(activeUser, nil)
		tokens, err := service.Login(ctx, "ana", "senha-correta")
		require.NoError(t, err)

		_, err = service.Refresh(ctx, tokens.Access)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})
}

func TestService_ValidateToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	svc := &Service{userRepo: mockUserRepo, cfg: testConfig(), now: time.Now}

	user := &domain.User{ID: 1, Username: "ana", Role: domain.RoleAdmin}
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.generateToken(user, domain.TokenTypeAccess, time.Hour)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Equal(t, apiErrors.ErrExpiredToken, authCode(t, err))

	_, err = svc.ValidateToken("nao-e-um-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_UpdateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())
	ctx := context.Background()

	master := &domain.Claims{UserID: 1, Role: domain.RoleMaster}
	admin := &domain.Claims{UserID: 5, Role: domain.RoleAdmin}

	tests := []struct {
		name      string
		requester *domain.Claims
		req       domain.UpdateUserRequest
		setup     func()
		validate  func(t *testing.T, user *domain.User, err error)
	}{
		{
			name:      "Master ativa usuário",
			requester: master,
			req:       domain.UpdateUserRequest{ID: 5, IsActive: boolPtr(true)},
			setup: func() {
				mockUserRepo.EXPECT().GetUserByID(ctx, 5).Return(&domain.User{ID: 5, Role: domain.RoleAdmin}, nil)
				mockUserRepo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				require.NoError(t, err)
				assert.True(t, user.IsActive)
			},
		},
		{
			name:      "Admin edita o próprio nome",
			requester: admin,
			req:       domain.UpdateUserRequest{ID: 5, FirstName: strPtr(" Carla ")},
			setup: func() {
				mockUserRepo.EXPECT().GetUserByID(ctx, 5).Return(&domain.User{ID: 5, Role: domain.RoleAdmin, IsActive: true}, nil)
				mockUserRepo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Carla", user.FirstName)
			},
		},
		{
			name:      "Admin não pode editar outro usuário",
			requester: admin,
			req:       domain.UpdateUserRequest{ID: 9, FirstName: strPtr("X")},
			setup:     func() {},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.ErrorIs(t, err, ErrNotProfileOwner)
				assert.True(t, IsAuthorizationError(err))
			},
		},
		{
			name:      "Admin não pode alterar o próprio perfil",
			requester: admin,
			req:       domain.UpdateUserRequest{ID: 5, Role: strPtr(domain.RoleMaster)},
			setup:     func() {},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.ErrorIs(t, err, ErrInsufficientPrivilege)
				assert.ErrorIs(t, err, ErrRoleChangeForbidden)
			},
		},
		{
			name:      "Email já usado por outro usuário",
			requester: master,
			req:       domain.UpdateUserRequest{ID: 5, Email: strPtr("outro@coop.com")},
			setup: func() {
				mockUserRepo.EXPECT().GetUserByID(ctx, 5).Return(&domain.User{ID: 5}, nil)
				mockUserRepo.EXPECT().GetUserByEmail(ctx, "outro@coop.com").Return(&domain.User{ID: 6}, nil)
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
			},
		},
		{
			name:      "Usuário não encontrado",
			requester: master,
			req:       domain.UpdateUserRequest{ID: 42, IsActive: boolPtr(false)},
			setup: func() {
				mockUserRepo.EXPECT().GetUserByID(ctx, 42).Return(nil, nil)
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.ErrorIs(t, err, ErrUserNotFound)
				assert.Equal(t, apiErrors.ErrUserNotFound, authCode(t, err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			user, err := service.UpdateUser(ctx, tt.requester, tt.req)
			tt.validate(t, user, err)
		})
	}
}

func TestService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())
	ctx := context.Background()

	mockUserRepo.EXPECT().GetUserByID(ctx, 3).Return(&domain.User{ID: 3, IsActive: true}, nil)
	mockUserRepo.EXPECT().
		UpdateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) error {
			assert.True(t, u.Deleted)
			assert.NotNil(t, u.DeletedAt)
			assert.False(t, u.IsActive)
			return nil
		})

	require.NoError(t, service.DeleteUser(ctx, 3))
}

func TestService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())
	ctx := context.Background()

	newUser := func() *domain.User {
		return &domain.User{ID: 4, Email: "a@coop.com", PasswordHash: hashPassword(t, "senha-atual1")}
	}

	t.Run("Troca de senha com senha atual correta", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(ctx, 4).Return(newUser(), nil)
		mockUserRepo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)

		user, err := service.UpdateProfile(ctx, 4, domain.UpdateProfileRequest{
			CurrentPassword: "senha-atual1",
			NewPassword:     "senha-nova22",
		})
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-nova22")))
	})

	t.Run("Senha atual incorreta", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(ctx, 4).Return(newUser(), nil)

		_, err := service.UpdateProfile(ctx, 4, domain.UpdateProfileRequest{
			CurrentPassword: "errada",
			NewPassword:     "senha-nova22",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Nova senha numérica", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(ctx, 4).Return(newUser(), nil)

		_, err := service.UpdateProfile(ctx, 4, domain.UpdateProfileRequest{
			CurrentPassword: "senha-atual1",
			NewPassword:     "12345678",
		})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("Senha atual ausente", func(t *testing.T) {
		_, err := service.UpdateProfile(ctx, 4, domain.UpdateProfileRequest{})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	tests := []struct {
		password string
		wantErr  bool
	}{
		{"curta", true},
		{"12345678", true},
		{"1234567a", false},
		{"senhasegura", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthErrorCategories(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		credentials   bool
		authorization bool
	}{
		{name: "senha errada", err: NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""), credentials: true},
		{name: "conta desativada", err: NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, 3, ""), credentials: true},
		{name: "token de tipo errado", err: NewAuthError(ErrWrongTokenType, apiErrors.ErrInvalidToken, ""), authorization: true},
		{name: "perfil de outro usuário", err: NewAuthError(ErrNotProfileOwner, apiErrors.ErrInsufficientPrivilege, ""), authorization: true},
		{name: "mudança de perfil sem master", err: NewAuthError(ErrRoleChangeForbidden, apiErrors.ErrInsufficientPrivilege, ""), authorization: true},
		{name: "perfil desconhecido", err: NewAuthError(ErrUnknownRole, apiErrors.ErrInvalidFormat, "")},
		{name: "falha ao assinar", err: NewAuthError(ErrTokenIssue, apiErrors.ErrInternalServer, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.credentials, IsCredentialsError(tt.err))
			assert.Equal(t, tt.authorization, IsAuthorizationError(tt.err))
		})
	}

	err := NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, 3, "Conta desativada")
	assert.Equal(t, "user account is disabled: Conta desativada", err.Error())
	assert.Equal(t, 3, err.UserID)
}
