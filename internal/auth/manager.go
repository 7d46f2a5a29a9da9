// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/tomtom215/menupick/internal/config"
	"github.com/tomtom215/menupick/internal/logging"
	"github.com/tomtom215/menupick/internal/metrics"
	"github.com/tomtom215/menupick/internal/models"
	"github.com/tomtom215/menupick/internal/services"
	"github.com/tomtom215/menupick/internal/storage"
	"github.com/tomtom215/menupick/internal/transport"
)

var (
	// ErrNoCachedToken is returned by CachedLogin when no Kakao token is stored.
	ErrNoCachedToken = errors.New("no cached kakao access token")

	// ErrCallbackDenied is returned when the provider reports an error
	// instead of an authorization code.
	ErrCallbackDenied = errors.New("kakao authorization denied")

	// ErrStateMismatch is returned when the callback state does not match.
	ErrStateMismatch = errors.New("oauth state mismatch")
)

// Backend exchanges a Kakao access token for the app's bearer token.
// services.AuthService satisfies it.
type Backend interface {
	KakaoLogin(ctx context.Context, accessToken string) (*models.LoginResult, error)
}

// Manager owns the login state.
type Manager struct {
	store   storage.Store
	backend Backend
	oauth   *oauth2.Config
	log     zerolog.Logger

	mu     sync.Mutex
	state  State
	subs   map[int]chan State
	nextID int
}

// NewManager creates a Manager. The state stays Unknown until the first
// Refresh or login.
func NewManager(store storage.Store, backend Backend, kakao config.KakaoConfig, logger *logging.Logger) *Manager {
	return &Manager{
		store:   store,
		backend: backend,
		oauth: &oauth2.Config{
			ClientID:     kakao.ClientID,
			ClientSecret: kakao.ClientSecret,
			RedirectURL:  kakao.RedirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:   kakao.AuthURL,
				TokenURL:  kakao.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		log:  logger.For(logging.CategoryAuth),
		subs: make(map[int]chan State),
	}
}

// Check reports whether the token, nickname and email are all stored.
func (m *Manager) Check(ctx context.Context) (bool, error) {
	for _, key := range []string{storage.KeyToken, storage.KeyNickname, storage.KeyEmail} {
		value, ok, err := m.store.Get(ctx, key)
		if err != nil {
			return false, fmt.Errorf("read %s: %w", key, err)
		}
		if !ok || value == "" {
			return false, nil
		}
	}
	return true, nil
}

// State returns the last computed state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Refresh recomputes the state from storage and publishes a change.
// On a read error the state is left as it was.
func (m *Manager) Refresh(ctx context.Context) (State, error) {
	loggedIn, err := m.Check(ctx)
	if err != nil {
		logger := logging.Ctx(ctx, m.log)
		logger.Warn().Err(err).Msg("Login state check failed")
		return m.State(), err
	}
	next := stateFor(loggedIn)
	m.setState(next)
	return next, nil
}

// Subscribe returns a channel receiving every state change and a function
// that cancels the subscription. A slow subscriber only ever sees the
// latest state.
func (m *Manager) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = ch
	m.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

func (m *Manager) setState(next State) {
	m.mu.Lock()
	prev := m.state
	if prev == next {
		m.mu.Unlock()
		return
	}
	m.state = next
	for _, ch := range m.subs {
		select {
		case <-ch:
		default:
		}
		ch <- next
	}
	m.mu.Unlock()

	metrics.SetLoggedIn(next == StateLoggedIn)
	metrics.RecordAuthTransition(prev.String(), next.String())
	m.log.Info().Str("from", prev.String()).Str("to", next.String()).Msg("Login state changed")
}

// LoginURL returns the Kakao authorization URL carrying state.
func (m *Manager) LoginURL(state string) string {
	return m.oauth.AuthCodeURL(state)
}

// CompleteLogin exchanges an authorization code and signs in.
func (m *Manager) CompleteLogin(ctx context.Context, code string) (*models.LoginResult, error) {
	if code == "" {
		return nil, loginError(errors.New("authorization code is empty"))
	}

	token, err := m.oauth.Exchange(ctx, code)
	if err != nil {
		logger := logging.Ctx(ctx, m.log)
		logger.Warn().Err(err).Msg("Kakao code exchange failed")
		return nil, loginError(fmt.Errorf("exchange authorization code: %w", err))
	}
	return m.login(ctx, token.AccessToken)
}

// CachedLogin signs in again with the stored Kakao access token.
func (m *Manager) CachedLogin(ctx context.Context) (*models.LoginResult, error) {
	kakaoToken, ok, err := m.store.Get(ctx, storage.KeyKakaoAccessToken)
	if err != nil {
		return nil, fmt.Errorf("read cached kakao token: %w", err)
	}
	if !ok || kakaoToken == "" {
		return nil, ErrNoCachedToken
	}
	return m.login(ctx, kakaoToken)
}

func (m *Manager) login(ctx context.Context, kakaoToken string) (*models.LoginResult, error) {
	res, err := m.backend.KakaoLogin(ctx, kakaoToken)
	if err != nil {
		return nil, err
	}

	values := []struct{ key, value string }{
		{storage.KeyToken, res.AccessToken},
		{storage.KeyNickname, res.User.Nickname},
		{storage.KeyEmail, res.User.Email},
		{storage.KeyKakaoAccessToken, kakaoToken},
	}
	written := make([]string, 0, len(values))
	for _, v := range values {
		if err := m.store.Set(ctx, v.key, v.value); err != nil {
			m.rollback(ctx, written)
			return nil, fmt.Errorf("store %s: %w", v.key, err)
		}
		written = append(written, v.key)
	}

	logger := logging.Ctx(ctx, m.log)
	logger.Info().Str("user_id", res.User.ID).Msg("Logged in")
	if _, err := m.Refresh(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

// rollback removes the keys a failed login already wrote. Its context is
// detached so a canceled login still cleans up.
func (m *Manager) rollback(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}
	if err := m.store.Delete(context.WithoutCancel(ctx), keys...); err != nil {
		logger := logging.Ctx(ctx, m.log)
		logger.Warn().Err(err).Strs("keys", keys).Msg("Failed to roll back partial login")
	}
}

// Logout clears the token, nickname, email and the cached Kakao token.
func (m *Manager) Logout(ctx context.Context) error {
	return m.logout(ctx, storage.KeyToken, storage.KeyNickname, storage.KeyEmail, storage.KeyKakaoAccessToken)
}

// LogoutKeepCache clears the app session but keeps the Kakao token.
func (m *Manager) LogoutKeepCache(ctx context.Context) error {
	return m.logout(ctx, storage.KeyToken, storage.KeyNickname, storage.KeyEmail)
}

func (m *Manager) logout(ctx context.Context, keys ...string) error {
	if err := m.store.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("clear login: %w", err)
	}
	logger := logging.Ctx(ctx, m.log)
	logger.Info().Int("cleared", len(keys)).Msg("Logged out")
	m.setState(StateLoggedOut)
	return nil
}

// Profile returns the stored nickname and email.
func (m *Manager) Profile(ctx context.Context) (nickname, email string, err error) {
	if nickname, _, err = m.store.Get(ctx, storage.KeyNickname); err != nil {
		return "", "", err
	}
	if email, _, err = m.store.Get(ctx, storage.KeyEmail); err != nil {
		return "", "", err
	}
	return nickname, email, nil
}

func loginError(err error) error {
	return transport.Wrap(err, services.CodeKakaoLogin, services.Message(services.CodeKakaoLogin))
}
