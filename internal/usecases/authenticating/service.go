package authenticating

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/internal/config"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type Authenticator interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	CreateUser(ctx context.Context, creatorID int, req domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, identifier, password string) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ListUsers(ctx context.Context, filters domain.UserFilters) ([]*domain.User, error)
	GetUser(ctx context.Context, userID int) (*domain.User, error)
	UpdateUser(ctx context.Context, requester *domain.Claims, req domain.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, userID int) error
	UpdateProfile(ctx context.Context, userID int, req domain.UpdateProfileRequest) (*domain.User, error)
	ValidatePasswordStrength(password string) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// Register é o cadastro público: o usuário nasce como admin e inativo até um master ativá-lo
func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	user, err := s.buildUser(ctx, req)
	if err != nil {
		return nil, err
	}

	user.Role = domain.RoleAdmin
	user.IsActive = false

	return s.persistUser(ctx, user)
}

// CreateUser é usado por um master e já cria o usuário ativo
func (s *Service) CreateUser(ctx context.Context, creatorID int, req domain.RegisterRequest) (*domain.User, error) {
	user, err := s.buildUser(ctx, req)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleAdmin
	}
	if !domain.IsValidRole(role) {
		return nil, NewAuthError(ErrUnknownRole, apiErrors.ErrInvalidFormat, "Perfil inválido: "+role)
	}

	user.Role = role
	user.IsActive = true
	user.CreatedBy = &creatorID

	return s.persistUser(ctx, user)
}

func (s *Service) buildUser(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	email := handleEmail(req.Email)

	if username == "" || email == "" || req.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário, email e senha são obrigatórios")
	}

	if req.Password != req.PasswordConfirm {
		return nil, NewAuthError(ErrPasswordMismatch, apiErrors.ErrInvalidRequest, "As senhas não conferem")
	}

	if err := s.ValidatePasswordStrength(req.Password); err != nil {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, err.Error())
	}

	if err := s.ensureUnique(ctx, 0, username, email, req.PhoneNumber); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		Username:     username,
		Email:        email,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PhoneNumber:  normalizePhone(req.PhoneNumber),
		PasswordHash: string(hashedPassword),
	}, nil
}

func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*phone)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ensureUnique verifica usuário, email e telefone, ignorando o próprio usuário em edições
func (s *Service) ensureUnique(ctx context.Context, selfID int, username, email string, phone *string) error {
	if username != "" {
		existing, err := s.userRepo.GetUserByUsername(ctx, username)
		if err != nil {
			return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
		}
		if existing != nil && existing.ID != selfID {
			return NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Nome de usuário já cadastrado")
		}
	}

	if email != "" {
		existing, err := s.userRepo.GetUserByEmail(ctx, email)
		if err != nil {
			return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
		}
		if existing != nil && existing.ID != selfID {
			return NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
		}
	}

	if p := normalizePhone(phone); p != nil {
		existing, err := s.userRepo.GetUserByPhone(ctx, *p)
		if err != nil {
			return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
		}
		if existing != nil && existing.ID != selfID {
			return NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Telefone já cadastrado")
		}
	}

	return nil
}

func (s *Service) persistUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Usuário já cadastrado")
		}
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	logrus.WithFields(logrus.Fields{
		"user_id": created.ID,
		"role":    created.Role,
	}).Info("Usuário criado")

	return created, nil
}

// Login aceita nome de usuário ou email
func (s *Service) Login(ctx context.Context, identifier, password string) (*domain.TokenPair, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	user, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Usuário ou senha inválidos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Usuário ou senha inválidos")
	}

	if !user.IsActive {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	refresh, err := s.generateToken(user, domain.TokenTypeRefresh, s.cfg.Auth.RefreshTokenTTL)
	if err != nil {
		return nil, NewUserAuthError(fmt.Errorf("%w: %w", ErrTokenIssue, err), apiErrors.ErrInternalServer, user.ID, "Erro ao gerar token de autenticação")
	}

	access, err := s.generateToken(user, domain.TokenTypeAccess, s.cfg.Auth.AccessTokenTTL)
	if err != nil {
		return nil, NewUserAuthError(fmt.Errorf("%w: %w", ErrTokenIssue, err), apiErrors.ErrInternalServer, user.ID, "Erro ao gerar token de autenticação")
	}

	return &domain.TokenPair{
		Refresh:  refresh,
		Access:   access,
		UserRole: user.Role,
	}, nil
}

func (s *Service) findByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, identifier)
	if err != nil || user != nil {
		return user, err
	}

	if strings.Contains(identifier, "@") {
		return s.userRepo.GetUserByEmail(ctx, handleEmail(identifier))
	}

	return nil, nil
}

// Refresh emite um novo token de acesso a partir de um token de refresh válido
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Token de refresh é obrigatório")
	}

	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return "", err
	}

	if claims.TokenType != domain.TokenTypeRefresh {
		return "", NewAuthError(ErrWrongTokenType, apiErrors.ErrInvalidToken, "Token informado não é de refresh")
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrInvalidToken, "Usuário do token não encontrado")
	}

	if !user.IsActive {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	access, err := s.generateToken(user, domain.TokenTypeAccess, s.cfg.Auth.AccessTokenTTL)
	if err != nil {
		return "", NewUserAuthError(fmt.Errorf("%w: %w", ErrTokenIssue, err), apiErrors.ErrInternalServer, user.ID, "Erro ao gerar token de autenticação")
	}

	return access, nil
}

func (s *Service) generateToken(user *domain.User, tokenType string, ttl time.Duration) (string, error) {
	now := s.now()

	claims := domain.Claims{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) parseToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	return claims, nil
}

// ValidateToken aceita apenas tokens de acesso
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != domain.TokenTypeAccess {
		return nil, NewAuthError(ErrWrongTokenType, apiErrors.ErrInvalidToken, "Token informado não é de acesso")
	}

	return claims, nil
}

func (s *Service) ListUsers(ctx context.Context, filters domain.UserFilters) ([]*domain.User, error) {
	users, err := s.userRepo.ListUser(ctx, filters)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários")
	}

	return users, nil
}

func (s *Service) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logrus.Error(err)
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}

	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	return user, nil
}

// UpdateUser permite editar o próprio cadastro; perfil e ativação só podem ser alterados por um master
func (s *Service) UpdateUser(ctx context.Context, requester *domain.Claims, req domain.UpdateUserRequest) (*domain.User, error) {
	if req.ID == 0 {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID é obrigatório")
	}

	if requester == nil || (!requester.IsMaster() && requester.UserID != req.ID) {
		return nil, NewAuthError(ErrNotProfileOwner, apiErrors.ErrInsufficientPrivilege, "Não autorizado a alterar outro usuário")
	}

	if !requester.IsMaster() && (req.Role != nil || req.IsActive != nil) {
		return nil, NewAuthError(ErrRoleChangeForbidden, apiErrors.ErrInsufficientPrivilege, "Apenas master pode alterar perfil ou ativação")
	}

	user, err := s.GetUser(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	var username, email string
	if req.Username != nil {
		username = strings.TrimSpace(*req.Username)
		user.Username = username
	}

	if req.Email != nil {
		email = handleEmail(*req.Email)
		user.Email = email
	}

	if req.PhoneNumber != nil {
		user.PhoneNumber = normalizePhone(req.PhoneNumber)
	}

	if err := s.ensureUnique(ctx, user.ID, username, email, req.PhoneNumber); err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}

	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}

	if req.Role != nil {
		if !domain.IsValidRole(*req.Role) {
			return nil, NewAuthError(ErrUnknownRole, apiErrors.ErrInvalidFormat, "Perfil inválido: "+*req.Role)
		}
		user.Role = *req.Role
	}

	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Usuário já cadastrado")
		}
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar usuário")
	}

	return user, nil
}

// DeleteUser faz exclusão lógica
func (s *Service) DeleteUser(ctx context.Context, userID int) error {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	now := s.now()
	user.Deleted = true
	user.DeletedAt = &now
	user.IsActive = false

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao remover usuário")
	}

	return nil
}

// UpdateProfile exige a senha atual; a nova senha é opcional
func (s *Service) UpdateProfile(ctx context.Context, userID int, req domain.UpdateProfileRequest) (*domain.User, error) {
	if req.CurrentPassword == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Senha atual é obrigatória")
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha atual incorreta")
	}

	if req.Email != nil {
		email := handleEmail(*req.Email)
		if err := s.ensureUnique(ctx, user.ID, "", email, nil); err != nil {
			return nil, err
		}
		user.Email = email
	}

	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}

	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}

	if req.NewPassword != "" {
		if err := s.ValidatePasswordStrength(req.NewPassword); err != nil {
			return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, err.Error())
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar perfil")
	}

	return user, nil
}

// ValidatePasswordStrength exige no mínimo 8 caracteres e ao menos um caractere não numérico
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("a senha deve conter pelo menos %d caracteres", minPasswordLength)
	}

	for _, char := range password {
		if !unicode.IsDigit(char) {
			return nil
		}
	}

	return errors.New("a senha não pode ser inteiramente numérica")
}
