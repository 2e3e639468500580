package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/repository"
	"github.com/avc-dev/shlink-dashboard/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

const (
	ProviderGoogle = "google"
	ProviderGithub = "github"

	StateCookie = "oauthstate"
	stateTTL    = 10 * time.Minute
)

// OAuthCredentials клиентские ключи провайдеров; провайдер без client id не регистрируется
type OAuthCredentials struct {
	GoogleClientID     string
	GoogleClientSecret string
	GithubClientID     string
	GithubClientSecret string
}

// oauthProfile идентичность пользователя у провайдера
type oauthProfile struct {
	ID    string
	Email string
}

type oauthProvider struct {
	config     oauth2.Config
	profileURL string
	emailsURL  string
	decode     func(raw []byte) (oauthProfile, error)
}

// OAuthService вход через внешних провайдеров
type OAuthService struct {
	providers     map[string]*oauthProvider
	users         repository.UserStore
	policy        AuthPolicy
	httpClient    *http.Client
	secureCookies bool
	logger        *zap.Logger
	now           func() time.Time
}

// NewOAuthService создает OAuthService; callback URL строится как {baseURL}/auth/oauth/{provider}/callback
func NewOAuthService(
	creds OAuthCredentials,
	baseURL string,
	users repository.UserStore,
	policy AuthPolicy,
	secureCookies bool,
	logger *zap.Logger,
) *OAuthService {
	s := &OAuthService{
		providers:     make(map[string]*oauthProvider),
		users:         users,
		policy:        policy,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		secureCookies: secureCookies,
		logger:        logger,
		now:           time.Now,
	}

	callback := func(provider string) string {
		return strings.TrimRight(baseURL, "/") + "/auth/oauth/" + provider + "/callback"
	}

	if creds.GoogleClientID != "" {
		s.providers[ProviderGoogle] = &oauthProvider{
			config: oauth2.Config{
				ClientID:     creds.GoogleClientID,
				ClientSecret: creds.GoogleClientSecret,
				RedirectURL:  callback(ProviderGoogle),
				Scopes: []string{
					"https://www.googleapis.com/auth/userinfo.email",
					"https://www.googleapis.com/auth/userinfo.profile",
				},
				Endpoint: google.Endpoint,
			},
			profileURL: "https://www.googleapis.com/oauth2/v2/userinfo",
			decode:     decodeGoogleProfile,
		}
	}
	if creds.GithubClientID != "" {
		s.providers[ProviderGithub] = &oauthProvider{
			config: oauth2.Config{
				ClientID:     creds.GithubClientID,
				ClientSecret: creds.GithubClientSecret,
				RedirectURL:  callback(ProviderGithub),
				Scopes:       []string{"user:email"},
				Endpoint:     github.Endpoint,
			},
			profileURL: "https://api.github.com/user",
			emailsURL:  "https://api.github.com/user/emails",
			decode:     decodeGithubProfile,
		}
	}
	return s
}

// Providers возвращает имена настроенных провайдеров
func (s *OAuthService) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for name := range s.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *OAuthService) provider(name string) (*oauthProvider, error) {
	p, ok := s.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}
	return p, nil
}

// AuthCodeURL выставляет куку state и возвращает адрес страницы согласия провайдера
func (s *OAuthService) AuthCodeURL(w http.ResponseWriter, providerName string) (string, error) {
	p, err := s.provider(providerName)
	if err != nil {
		return "", err
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}
	state := base64.RawURLEncoding.EncodeToString(b)

	http.SetCookie(w, &http.Cookie{
		Name:     StateCookie,
		Value:    state,
		Path:     "/auth/oauth",
		Expires:  s.now().Add(stateTTL),
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return p.config.AuthCodeURL(state), nil
}

// CheckState сверяет параметр state с кукой и удаляет куку
func (s *OAuthService) CheckState(w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(StateCookie)
	if err != nil {
		return fmt.Errorf("%w: missing state cookie", ErrOAuthState)
	}

	http.SetCookie(w, &http.Cookie{Name: StateCookie, Value: "", Path: "/auth/oauth", MaxAge: -1, HttpOnly: true})

	if cookie.Value == "" || r.FormValue("state") != cookie.Value {
		return ErrOAuthState
	}
	return nil
}

// Exchange обменивает код на токен, загружает профиль и находит или создает пользователя
func (s *OAuthService) Exchange(ctx context.Context, providerName, code string) (model.User, error) {
	p, err := s.provider(providerName)
	if err != nil {
		return model.User{}, err
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}
	client := p.config.Client(ctx, token)

	profile, err := s.fetchProfile(ctx, client, p)
	if err != nil {
		return model.User{}, err
	}
	return s.findOrCreate(ctx, providerName, profile)
}

func (s *OAuthService) fetchProfile(ctx context.Context, client *http.Client, p *oauthProvider) (oauthProfile, error) {
	raw, err := getJSON(ctx, client, p.profileURL)
	if err != nil {
		return oauthProfile{}, fmt.Errorf("failed to fetch oauth profile: %w", err)
	}
	profile, err := p.decode(raw)
	if err != nil {
		return oauthProfile{}, err
	}

	if profile.Email == "" && p.emailsURL != "" {
		raw, err := getJSON(ctx, client, p.emailsURL)
		if err != nil {
			return oauthProfile{}, fmt.Errorf("failed to fetch oauth emails: %w", err)
		}
		profile.Email, err = primaryGithubEmail(raw)
		if err != nil {
			return oauthProfile{}, err
		}
	}

	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))
	return profile, nil
}

func getJSON(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return body, nil
}

func decodeGoogleProfile(raw []byte) (oauthProfile, error) {
	var info struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(raw, &info); err != nil {
		return oauthProfile{}, fmt.Errorf("failed to decode google profile: %w", err)
	}
	return oauthProfile{ID: info.ID, Email: info.Email}, nil
}

func decodeGithubProfile(raw []byte) (oauthProfile, error) {
	var info struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(raw, &info); err != nil {
		return oauthProfile{}, fmt.Errorf("failed to decode github profile: %w", err)
	}
	return oauthProfile{ID: strconv.FormatInt(info.ID, 10), Email: info.Email}, nil
}

// primaryGithubEmail выбирает основной подтвержденный адрес из /user/emails
func primaryGithubEmail(raw []byte) (string, error) {
	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err := json.Unmarshal(raw, &emails); err != nil {
		return "", fmt.Errorf("failed to decode github emails: %w", err)
	}
	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	return "", nil
}

// findOrCreate ищет пользователя по идентичности провайдера, затем по email
func (s *OAuthService) findOrCreate(ctx context.Context, provider string, profile oauthProfile) (model.User, error) {
	if profile.ID == "" || profile.ID == "0" {
		return model.User{}, fmt.Errorf("%w: missing provider id", ErrOAuthProfile)
	}

	user, err := s.users.GetUserByProvider(ctx, provider, profile.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to find user by provider: %w", err)
	}

	if profile.Email == "" {
		return model.User{}, ErrOAuthProfile
	}

	now := s.now()
	user, err = s.users.GetUserByEmail(ctx, profile.Email)
	switch {
	case err == nil:
		if user.Provider == "" {
			user.Provider = provider
			user.ProviderUID = profile.ID
			user.UpdatedAt = now
			if err := s.users.UpdateUser(ctx, user); err != nil {
				return model.User{}, fmt.Errorf("failed to link oauth identity: %w", err)
			}
			s.logger.Info("oauth identity linked", zap.String("user_id", user.ID), zap.String("provider", provider))
		}
		return user, nil
	case !errors.Is(err, store.ErrNotFound):
		return model.User{}, fmt.Errorf("failed to find user by email: %w", err)
	}

	if !s.policy.RegistrationEnabled(ctx) {
		return model.User{}, ErrRegistrationClosed
	}

	user, err = s.users.CreateUser(ctx, model.User{
		ID:          uuid.New().String(),
		Email:       profile.Email,
		Role:        model.RoleNormalUser,
		Provider:    provider,
		ProviderUID: profile.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create oauth user: %w", err)
	}

	s.logger.Info("user registered via oauth", zap.String("user_id", user.ID), zap.String("provider", provider))
	return user, nil
}
