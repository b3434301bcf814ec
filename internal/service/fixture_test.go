package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"flowa-be/internal/config"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/logger"
	"flowa-be/internal/repository/memory"
	"flowa-be/internal/repository/unitofwork"
	"flowa-be/pkg/access"
	"flowa-be/pkg/events"
	"flowa-be/pkg/llm/factory"
	"flowa-be/pkg/metrics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendVerificationCode(toEmail, code string) error {
	args := m.Called(toEmail, code)
	return args.Error(0)
}

func (m *MockEmailService) SendWelcome(toEmail, name string) error {
	args := m.Called(toEmail, name)
	return args.Error(0)
}

type fixture struct {
	uowFactory unitofwork.RepositoryFactory
	providers  *factory.Registry
	generation config.GenerationConfig
	metrics    *metrics.Metrics
	publisher  *recordingPublisher
	activity   *ActivityEmitter
	log        logger.ILogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	providers, err := factory.NewRegistry("openai", "openai", "anthropic", "google", "deepseek")
	require.NoError(t, err)

	log := logger.NewNopLogger()
	publisher := &recordingPublisher{}
	return &fixture{
		uowFactory: memory.NewRepositoryFactory(memory.NewStore()),
		providers:  providers,
		generation: config.GenerationConfig{
			DefaultModel:         "openai",
			DefaultTemperature:   entity.DefaultTemperature,
			DefaultMaxTokens:     entity.DefaultMaxTokens,
			DefaultContentLength: entity.DefaultContentLength,
			MaxBatchCount:        10,
		},
		metrics:   metrics.NewMetrics("flowa_test"),
		publisher: publisher,
		activity:  NewActivityEmitter(publisher, log),
		log:       log,
	}
}

func (f *fixture) chatService() IChatService {
	return NewChatService(f.uowFactory, f.providers, f.generation, f.activity, f.metrics, f.log)
}

func (f *fixture) contentService() IContentService {
	return NewContentService(f.uowFactory, f.providers, f.generation, f.activity, f.metrics, f.log)
}

func (f *fixture) user(t *testing.T, role entity.UserRole) access.Actor {
	t.Helper()
	ctx := context.Background()
	user := &entity.User{
		Id:      uuid.New(),
		Name:    "User " + string(role),
		Email:   uuid.New().String() + "@example.com",
		Role:    role,
		ApiKeys: []entity.ApiKey{},
	}
	require.NoError(t, f.uowFactory.NewUnitOfWork(ctx).UserRepository().Create(ctx, user))
	return access.Actor{ID: user.Id, Role: string(role)}
}

func (f *fixture) brand(t *testing.T, owner access.Actor) *entity.Brand {
	t.Helper()
	ctx := context.Background()
	brand := &entity.Brand{
		Id:       uuid.New(),
		OwnerId:  owner.ID,
		Name:     "Flowa Coffee",
		Tone:     entity.DefaultTone,
		Keywords: []string{"coffee", "espresso"},
		Hashtags: []string{"#flowacoffee"},
		IsActive: true,
	}
	require.NoError(t, f.uowFactory.NewUnitOfWork(ctx).BrandRepository().Create(ctx, brand))
	return brand
}

func (f *fixture) theme(t *testing.T, brand *entity.Brand) *entity.Theme {
	t.Helper()
	ctx := context.Background()
	theme := &entity.Theme{
		Id:            uuid.New(),
		BrandId:       brand.Id,
		Name:          "Morning",
		Category:      entity.ThemeCategoryKnowledge,
		ContentLength: entity.DefaultContentLength,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}
	require.NoError(t, f.uowFactory.NewUnitOfWork(ctx).ThemeRepository().Create(ctx, theme))
	return theme
}
