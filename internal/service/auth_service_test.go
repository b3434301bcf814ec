package service

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"flowa-be/internal/config"
	"flowa-be/internal/dto"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/pkg/serverutils"
	"flowa-be/internal/repository/memory"
	"flowa-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

var testTokens = TokenIssuer{Secret: testSecret, TTL: time.Hour}

func newAuthService(f *fixture, mailer *MockEmailService) IAuthService {
	return NewAuthService(f.uowFactory, memory.NewPendingRegistrationRepository(), mailer, testTokens, f.activity, f.log)
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f, new(MockEmailService))
	ctx := context.Background()

	res, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "  Ana  ",
		Email:    "Ana@Example.com ",
		Password: "secret123",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", res.Name)
	assert.Equal(t, "ana@example.com", res.Email)
	assert.Equal(t, "content_creator", res.Role)

	claims, err := serverutils.ParseToken(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Id.String(), claims.UserID)
	assert.Equal(t, []string{events.UserRegistered}, f.publisher.types())

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, res.Id, login.Id)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	assert.True(t, apperror.HasCode(err, apperror.ErrUnauthorized))

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.True(t, apperror.HasCode(err, apperror.ErrUnauthorized))
}

func TestRegisterKeepsCreatorRoles(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f, new(MockEmailService))

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Bo", Email: "bo@example.com", Password: "secret123", Role: "brand_manager",
	})
	require.NoError(t, err)
	assert.Equal(t, "brand_manager", res.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f, new(MockEmailService))
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "A", Email: "dup@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "B", Email: "DUP@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.ErrValidation))
	assert.Equal(t, "User already exists", err.Error())
}

func TestVerifiedRegistrationFlow(t *testing.T) {
	f := newFixture(t)
	mailer := new(MockEmailService)
	svc := newAuthService(f, mailer)
	ctx := context.Background()

	var code string
	mailer.On("SendVerificationCode", "new@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { code = args.String(1) }).
		Return(nil).Once()
	mailer.On("SendWelcome", "new@example.com", "Newcomer").Return(errors.New("smtp down")).Once()

	require.NoError(t, svc.BeginRegistration(ctx, &dto.BeginRegistrationRequest{Email: "New@example.com"}))
	require.Len(t, code, 6)

	_, err := svc.CompleteRegistration(ctx, &dto.CompleteRegistrationRequest{
		Name: "Newcomer", Email: "new@example.com", Password: "secret123", Code: "000000x",
	})
	assert.True(t, apperror.HasCode(err, apperror.ErrValidation))

	res, err := svc.CompleteRegistration(ctx, &dto.CompleteRegistrationRequest{
		Name: "Newcomer", Email: "new@example.com", Password: "secret123", Code: code,
	})
	require.NoError(t, err)
	assert.Equal(t, "content_creator", res.Role)

	// The code is consumed on success.
	_, err = svc.CompleteRegistration(ctx, &dto.CompleteRegistrationRequest{
		Name: "Newcomer", Email: "new@example.com", Password: "secret123", Code: code,
	})
	assert.True(t, apperror.HasCode(err, apperror.ErrValidation))
	mailer.AssertExpectations(t)
}

func TestBeginRegistrationReportsMailFailure(t *testing.T) {
	f := newFixture(t)
	mailer := new(MockEmailService)
	svc := newAuthService(f, mailer)
	mailer.On("SendVerificationCode", "x@example.com", mock.Anything).Return(errors.New("smtp down"))

	err := svc.BeginRegistration(context.Background(), &dto.BeginRegistrationRequest{Email: "x@example.com"})
	assert.True(t, apperror.HasCode(err, apperror.ErrUpstream))
}

func newOAuthService(f *fixture, fetch GoogleProfileFetcher) IOAuthService {
	svc := NewOAuthService(f.uowFactory, config.OAuthConfig{
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		GoogleRedirectURL:  "http://localhost:3000/api/auth/google/callback",
	}, memory.NewStateStore(time.Minute), testTokens, f.activity, f.log)
	return WithProfileFetcher(svc, fetch)
}

func loginState(t *testing.T, svc IOAuthService) string {
	t.Helper()
	res, err := svc.GetLoginURL()
	require.NoError(t, err)
	u, err := url.Parse(res.Url)
	require.NoError(t, err)
	state := u.Query().Get("state")
	require.NotEmpty(t, state)
	return state
}

func TestGoogleCallbackCreatesThenReusesUser(t *testing.T) {
	f := newFixture(t)
	svc := newOAuthService(f, func(ctx context.Context, code string) (*GoogleProfile, error) {
		return &GoogleProfile{ID: "g-1", Email: "Gina@example.com", Name: "Gina"}, nil
	})
	ctx := context.Background()

	first, err := svc.HandleCallback(ctx, loginState(t, svc), "code-1")
	require.NoError(t, err)
	assert.Equal(t, "gina@example.com", first.Email)
	assert.Equal(t, "content_creator", first.Role)

	second, err := svc.HandleCallback(ctx, loginState(t, svc), "code-2")
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, []string{events.UserRegistered}, f.publisher.types())
}

func TestGoogleCallbackLinksExistingEmail(t *testing.T) {
	f := newFixture(t)
	auth := newAuthService(f, new(MockEmailService))
	ctx := context.Background()
	registered, err := auth.Register(ctx, &dto.RegisterRequest{Name: "Ivo", Email: "ivo@example.com", Password: "secret123", Role: "brand_manager"})
	require.NoError(t, err)

	svc := newOAuthService(f, func(ctx context.Context, code string) (*GoogleProfile, error) {
		return &GoogleProfile{ID: "g-2", Email: "ivo@example.com", Name: "Ivo"}, nil
	})
	res, err := svc.HandleCallback(ctx, loginState(t, svc), "code")
	require.NoError(t, err)
	assert.Equal(t, registered.Id, res.Id)
	assert.Equal(t, "brand_manager", res.Role)
}

func TestGoogleCallbackRejectsBadState(t *testing.T) {
	f := newFixture(t)
	svc := newOAuthService(f, func(ctx context.Context, code string) (*GoogleProfile, error) {
		return nil, errors.New("exchange failed")
	})
	ctx := context.Background()

	_, err := svc.HandleCallback(ctx, "forged", "code")
	assert.True(t, apperror.HasCode(err, apperror.ErrUnauthorized))

	state := loginState(t, svc)
	_, err = svc.HandleCallback(ctx, state, "code")
	assert.True(t, apperror.HasCode(err, apperror.ErrUpstream))

	// A state can only be used once.
	_, err = svc.HandleCallback(ctx, state, "code")
	assert.True(t, apperror.HasCode(err, apperror.ErrUnauthorized))
}
