package ratioclient

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const refreshPath = "api/token/refresh/"

// TokenManager mantém o access token válido antes de cada requisição autenticada
type TokenManager struct {
	store TokenStore
	mu    sync.Mutex
	now   func() time.Time
}

func NewTokenManager(store TokenStore) *TokenManager {
	return &TokenManager{store: store, now: time.Now}
}

// tokenExpiry lê o exp do JWT sem validar a assinatura; o servidor valida de verdade
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (tm *TokenManager) isExpired(token string) bool {
	exp, ok := tokenExpiry(token)
	if !ok {
		// token ilegível é tratado como expirado
		return true
	}
	return !tm.now().Before(exp)
}

// EnsureValidToken devolve um access token utilizável, renovando-o uma única vez quando expirado
func (tm *TokenManager) EnsureValidToken(ctx context.Context, c *RatioClient) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tokens, err := tm.store.Load()
	if err != nil {
		return "", err
	}
	if tokens.Access == "" && tokens.Refresh == "" {
		return "", ErrNotAuthenticated
	}
	if tokens.Access != "" && !tm.isExpired(tokens.Access) {
		return tokens.Access, nil
	}
	if tokens.Refresh == "" {
		return "", ErrNoRefreshToken
	}

	logrus.Debug("ratioclient: access token expirado, renovando")

	var resp struct {
		Access string `json:"access"`
	}
	if err := c.send(ctx, http.MethodPost, refreshPath, nil, map[string]string{"refresh": tokens.Refresh}, &resp, ""); err != nil {
		return "", errors.Wrap(err, "ratioclient: falha ao renovar token")
	}
	if resp.Access == "" {
		return "", errors.New("ratioclient: resposta de renovação sem access token")
	}

	tokens.Access = resp.Access
	if err := tm.store.Save(tokens); err != nil {
		return "", err
	}
	return tokens.Access, nil
}
