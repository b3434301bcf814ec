package service

import (
	"context"
	"fmt"
	"time"

	"flowa-be/internal/config"
	"flowa-be/internal/dto"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/pkg/logger"
	"flowa-be/internal/repository/specification"
	"flowa-be/internal/repository/unitofwork"
	"flowa-be/pkg/access"
	"flowa-be/pkg/events"
	"flowa-be/pkg/llm"
	"flowa-be/pkg/metrics"
	"flowa-be/pkg/prompt"

	"github.com/google/uuid"
)

type IContentService interface {
	Generate(ctx context.Context, actor access.Actor, req *dto.GenerateContentRequest) (*dto.GenerateContentResponse, error)
	Optimize(ctx context.Context, actor access.Actor, req *dto.OptimizeContentRequest) (*dto.OptimizeContentResponse, error)
	Keywords(ctx context.Context, actor access.Actor, query *dto.KeywordQuery) (*llm.KeywordAnalysis, error)
	GenerateImage(ctx context.Context, actor access.Actor, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error)
}

type contentService struct {
	uowFactory unitofwork.RepositoryFactory
	providers  ContentProviders
	generation config.GenerationConfig
	activity   *ActivityEmitter
	metrics    *metrics.Metrics
	logger     logger.ILogger
}

func NewContentService(
	uowFactory unitofwork.RepositoryFactory,
	providers ContentProviders,
	generation config.GenerationConfig,
	activity *ActivityEmitter,
	m *metrics.Metrics,
	log logger.ILogger,
) IContentService {
	return &contentService{
		uowFactory: uowFactory,
		providers:  providers,
		generation: generation,
		activity:   activity,
		metrics:    m,
		logger:     log,
	}
}

// Generate opens a dedicated session holding the prompt, the batch and a
// summary message.
func (s *contentService) Generate(ctx context.Context, actor access.Actor, req *dto.GenerateContentRequest) (*dto.GenerateContentResponse, error) {
	count, err := batchCount(req.Count, s.generation.MaxBatchCount)
	if err != nil {
		return nil, err
	}
	aiModel := entity.AiModel(req.AiModel)
	if aiModel == "" {
		aiModel = entity.AiModel(s.generation.DefaultModel)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	brand, theme, err := s.brandAndTheme(ctx, uow, actor, req.BrandId, req.ThemeId, true)
	if err != nil {
		return nil, err
	}

	products, err := uow.ProductRepository().FindAll(ctx,
		specification.ByBrandID{BrandID: brand.Id},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	platform := prompt.NormalizePlatform(req.SocialPlatform)
	session := &entity.ChatSession{
		Id:      uuid.New(),
		UserId:  actor.ID,
		BrandId: brand.Id,
		Title:   fmt.Sprintf("Generated content for %s", theme.Name),
		AiModel: aiModel,
		ModelParameters: entity.ModelParameters{
			Temperature: s.generation.DefaultTemperature,
			MaxTokens:   s.generation.DefaultMaxTokens,
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	pieces, err := generatePieces(ctx, s.providers.Get(string(aiModel)), session, brand, theme, products, platform, count)
	if err != nil {
		return nil, err
	}

	batch := &entity.SessionAppend{}
	session.AppendMessage(batch, entity.MessageRoleSystem,
		prompt.NewGenerationBuilder(brand, theme, products, platform, count).Build(), now)
	for _, piece := range pieces {
		session.AppendContent(batch, theme.Id, piece, platform, now)
	}
	session.AppendMessage(batch, entity.MessageRoleAssistant,
		fmt.Sprintf("Generated %d contents for theme \"%s\" on %s.", count, theme.Name, platform), now)

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := uow.ChatMessageRepository().CreateBulk(ctx, batch.Messages); err != nil {
		return nil, storageError(err)
	}
	if err := uow.GeneratedContentRepository().CreateBulk(ctx, batch.Contents); err != nil {
		return nil, storageError(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err)
	}

	s.metrics.IncGenerated(platform, len(batch.Contents))
	s.metrics.IncChatMessages(len(batch.Messages))
	s.logger.Info("ContentService", "Content generated", map[string]interface{}{
		"chat_id":  session.Id.String(),
		"theme_id": theme.Id.String(),
		"platform": platform,
		"count":    count,
	})
	s.activity.Emit(ctx, events.New(events.ContentGenerated, actor.ID, map[string]interface{}{
		"chatId":   session.Id.String(),
		"themeId":  theme.Id.String(),
		"count":    count,
		"platform": platform,
	}))

	return &dto.GenerateContentResponse{
		ChatId:   session.Id,
		Count:    len(batch.Contents),
		Platform: platform,
		Contents: toContentResponses(batch.Contents, map[uuid.UUID]string{theme.Id: theme.Name}),
	}, nil
}

// Optimize appends a rewritten copy of an entry to the session that owns it.
// The original entry is left untouched.
func (s *contentService) Optimize(ctx context.Context, actor access.Actor, req *dto.OptimizeContentRequest) (*dto.OptimizeContentResponse, error) {
	contentId, err := parseID(req.ContentId, "Content")
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	original, err := uow.GeneratedContentRepository().FindOne(ctx, specification.ByID{ID: contentId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if original == nil {
		return nil, apperror.NotFound("Content not found")
	}

	session, brand, err := sessionFor(ctx, uow, actor, original.ChatSessionId)
	if err != nil {
		return nil, err
	}

	theme, err := uow.ThemeRepository().FindOne(ctx, specification.ByID{ID: original.ThemeId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if theme == nil {
		theme = &entity.Theme{Id: original.ThemeId}
	}

	platform := prompt.NormalizePlatform(req.Platform)
	optimized, err := s.providers.Get(string(session.AiModel)).Optimize(ctx, llm.OptimizeRequest{
		Content:       original.Content,
		Platform:      platform,
		BrandName:     brand.Name,
		BrandHashtags: brand.Hashtags,
		ThemeName:     theme.Name,
		ThemeCategory: string(theme.Category),
	}, sessionOptions(session)...)
	if err != nil {
		return nil, apperror.Upstream(err, "Content optimization failed")
	}

	now := time.Now()
	batch := &entity.SessionAppend{}
	entry := session.AppendContent(batch, original.ThemeId, optimized, platform, now)
	session.AppendMessage(batch, entity.MessageRoleSystem, fmt.Sprintf("Optimize content for %s", platform), now)
	session.AppendMessage(batch, entity.MessageRoleAssistant, fmt.Sprintf("Content optimized for %s.", platform), now)

	if err := commitAppend(ctx, uow, session, batch); err != nil {
		mapped := storageError(err)
		if apperror.HasCode(mapped, apperror.ErrConflict) {
			s.metrics.IncSessionConflict()
		}
		return nil, mapped
	}

	s.metrics.IncOptimized(platform)
	s.metrics.IncChatMessages(len(batch.Messages))
	s.activity.Emit(ctx, events.New(events.ContentOptimized, session.UserId, map[string]interface{}{
		"chatId":    session.Id.String(),
		"contentId": entry.Id.String(),
		"sourceId":  original.Id.String(),
		"platform":  platform,
	}))

	res := toContentResponses([]*entity.GeneratedContent{entry}, map[uuid.UUID]string{theme.Id: theme.Name})
	return &dto.OptimizeContentResponse{ChatId: session.Id, Platform: platform, Content: res[0]}, nil
}

func (s *contentService) Keywords(ctx context.Context, actor access.Actor, query *dto.KeywordQuery) (*llm.KeywordAnalysis, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	brand, _, err := s.brandAndTheme(ctx, uow, actor, query.BrandId, query.ThemeId, false)
	if err != nil {
		return nil, err
	}

	analysis, err := s.providers.Get(s.generation.DefaultModel).AnalyzeKeywords(ctx, llm.KeywordRequest{
		BrandName: brand.Name,
		Keywords:  brand.Keywords,
		Hashtags:  brand.Hashtags,
	})
	if err != nil {
		return nil, apperror.Upstream(err, "Keyword analysis failed")
	}
	return analysis, nil
}

func (s *contentService) GenerateImage(ctx context.Context, actor access.Actor, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	brand, _, err := s.brandAndTheme(ctx, uow, actor, req.BrandId, req.ThemeId, false)
	if err != nil {
		return nil, err
	}

	url, err := s.providers.Get(s.generation.DefaultModel).GenerateImage(ctx, llm.ImageRequest{
		Prompt:  req.Prompt,
		BrandId: brand.Id.String(),
	})
	if err != nil {
		return nil, apperror.Upstream(err, "Image generation failed")
	}
	return &dto.GenerateImageResponse{ImageUrl: url, Prompt: req.Prompt}, nil
}

// brandAndTheme gates the brand, then resolves the theme inside it. An empty
// theme id is allowed unless themeRequired is set.
func (s *contentService) brandAndTheme(ctx context.Context, uow unitofwork.UnitOfWork, actor access.Actor, rawBrandId, rawThemeId string, themeRequired bool) (*entity.Brand, *entity.Theme, error) {
	brandId, err := parseID(rawBrandId, "Brand")
	if err != nil {
		return nil, nil, err
	}
	brand, err := activeBrandFor(ctx, uow, actor, brandId)
	if err != nil {
		return nil, nil, err
	}

	if rawThemeId == "" && !themeRequired {
		return brand, nil, nil
	}
	themeId, err := parseID(rawThemeId, "Theme")
	if err != nil {
		return nil, nil, err
	}
	theme, err := uow.ThemeRepository().FindOne(ctx,
		specification.ByID{ID: themeId},
		specification.ByBrandID{BrandID: brand.Id},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	if theme == nil {
		return nil, nil, apperror.NotFound("Theme not found")
	}
	return brand, theme, nil
}
