package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"flowa-be/internal/config"
	"flowa-be/internal/dto"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/pkg/logger"
	"flowa-be/internal/repository/contract"
	"flowa-be/internal/repository/specification"
	"flowa-be/internal/repository/unitofwork"
	"flowa-be/pkg/events"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	providerGoogle    = "google"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// OAuthStateStore remembers issued state values until the callback consumes them.
type OAuthStateStore interface {
	Put(state string)
	Take(state string) bool
}

// GoogleProfile is the subset of the userinfo response used for sign-in.
type GoogleProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleProfileFetcher exchanges an authorization code for the user's profile.
type GoogleProfileFetcher func(ctx context.Context, code string) (*GoogleProfile, error)

type IOAuthService interface {
	GetLoginURL() (*dto.GoogleLoginResponse, error)
	HandleCallback(ctx context.Context, state, code string) (*dto.AuthResponse, error)
}

type oauthService struct {
	uowFactory unitofwork.RepositoryFactory
	googleConf *oauth2.Config
	states     OAuthStateStore
	fetch      GoogleProfileFetcher
	tokens     TokenIssuer
	activity   *ActivityEmitter
	logger     logger.ILogger
}

func NewOAuthService(
	uowFactory unitofwork.RepositoryFactory,
	cfg config.OAuthConfig,
	states OAuthStateStore,
	tokens TokenIssuer,
	activity *ActivityEmitter,
	log logger.ILogger,
) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	s := &oauthService{
		uowFactory: uowFactory,
		googleConf: conf,
		states:     states,
		tokens:     tokens,
		activity:   activity,
		logger:     log,
	}
	s.fetch = s.fetchGoogleProfile
	return s
}

// WithProfileFetcher replaces the Google round trip, used by tests.
func WithProfileFetcher(svc IOAuthService, fetch GoogleProfileFetcher) IOAuthService {
	if s, ok := svc.(*oauthService); ok {
		s.fetch = fetch
	}
	return svc
}

func (s *oauthService) GetLoginURL() (*dto.GoogleLoginResponse, error) {
	if s.googleConf.ClientID == "" {
		return nil, apperror.New(apperror.ErrUpstream, "Google sign-in is not configured")
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return nil, apperror.Internal(err)
	}
	state := base64.URLEncoding.EncodeToString(b)
	s.states.Put(state)

	return &dto.GoogleLoginResponse{Url: s.googleConf.AuthCodeURL(state)}, nil
}

func (s *oauthService) HandleCallback(ctx context.Context, state, code string) (*dto.AuthResponse, error) {
	if !s.states.Take(state) {
		return nil, apperror.Unauthorized("Invalid OAuth state")
	}
	if code == "" {
		return nil, apperror.Validation("code is required")
	}

	profile, err := s.fetch(ctx, code)
	if err != nil {
		s.logger.Warn("OAuthService", "Google sign-in failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Upstream(err, "Google sign-in failed")
	}
	if profile.ID == "" || profile.Email == "" {
		return nil, apperror.Upstream(errors.New("incomplete profile"), "Google sign-in failed")
	}

	user, err := s.resolveUser(ctx, profile)
	if err != nil {
		return nil, err
	}
	return s.tokens.respond(user)
}

// resolveUser finds the user by provider link, then by e-mail, and creates
// one as a content creator when neither exists. The provider link is always
// refreshed.
func (s *oauthService) resolveUser(ctx context.Context, profile *GoogleProfile) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByProvider(ctx, providerGoogle, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		user, err = uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: profile.Email})
		if err != nil {
			return nil, apperror.Internal(err)
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback()

	created := false
	if user == nil {
		now := time.Now()
		user = &entity.User{
			Id:        uuid.New(),
			Name:      profile.Name,
			Email:     normalizeEmail(profile.Email),
			Role:      entity.UserRoleContentCreator,
			ApiKeys:   []entity.ApiKey{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			if errors.Is(err, contract.ErrDuplicate) {
				return nil, apperror.Conflict("User already exists")
			}
			return nil, apperror.Internal(err)
		}
		created = true
	}

	if err := uow.UserRepository().SaveUserProvider(ctx, &entity.UserProvider{
		Id:             uuid.New(),
		UserId:         user.Id,
		ProviderName:   providerGoogle,
		ProviderUserId: profile.ID,
		CreatedAt:      time.Now(),
	}); err != nil {
		return nil, apperror.Internal(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err)
	}

	if created {
		s.logger.Info("OAuthService", "User created from Google sign-in", map[string]interface{}{"user_id": user.Id.String()})
		s.activity.Emit(ctx, events.New(events.UserRegistered, user.Id, map[string]interface{}{
			"userId":   user.Id.String(),
			"role":     string(user.Role),
			"provider": providerGoogle,
		}))
	}
	return user, nil
}

func (s *oauthService) fetchGoogleProfile(ctx context.Context, code string) (*GoogleProfile, error) {
	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.googleConf.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info returned status %d", resp.StatusCode)
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse user info: %w", err)
	}
	return &profile, nil
}
