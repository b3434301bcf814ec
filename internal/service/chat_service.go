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
	"flowa-be/pkg/chatcmd"
	"flowa-be/pkg/events"
	"flowa-be/pkg/llm"
	"flowa-be/pkg/metrics"
	"flowa-be/pkg/prompt"

	"github.com/google/uuid"
)

// ContentProviders resolves the generation backend for a session's AI model.
type ContentProviders interface {
	Get(model string) llm.ContentProvider
}

type IChatService interface {
	Create(ctx context.Context, actor access.Actor, req *dto.CreateChatRequest) (*dto.ChatSessionResponse, error)
	List(ctx context.Context, actor access.Actor, query *dto.ChatListQuery) ([]dto.ChatListItem, error)
	Get(ctx context.Context, actor access.Actor, chatId uuid.UUID) (*dto.ChatSessionResponse, error)
	SendMessage(ctx context.Context, actor access.Actor, chatId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	Generate(ctx context.Context, actor access.Actor, chatId uuid.UUID, req *dto.GenerateInChatRequest) (*dto.GenerateInChatResponse, error)
	ParseCommand(ctx context.Context, actor access.Actor, chatId uuid.UUID, req *dto.ParseCommandRequest) (*chatcmd.ParsedCommand, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	providers  ContentProviders
	generation config.GenerationConfig
	activity   *ActivityEmitter
	metrics    *metrics.Metrics
	logger     logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	providers ContentProviders,
	generation config.GenerationConfig,
	activity *ActivityEmitter,
	m *metrics.Metrics,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		providers:  providers,
		generation: generation,
		activity:   activity,
		metrics:    m,
		logger:     log,
	}
}

func (s *chatService) Create(ctx context.Context, actor access.Actor, req *dto.CreateChatRequest) (*dto.ChatSessionResponse, error) {
	brandId, err := parseID(req.BrandId, "Brand")
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	brand, err := activeBrandFor(ctx, uow, actor, brandId)
	if err != nil {
		return nil, err
	}

	aiModel := entity.AiModel(req.AiModel)
	if aiModel == "" {
		aiModel = entity.AiModel(s.generation.DefaultModel)
	}
	if !aiModel.Valid() {
		return nil, apperror.Validation("aiModel is invalid")
	}
	title := req.Title
	if title == "" {
		title = entity.DefaultChatTitle
	}

	now := time.Now()
	session := &entity.ChatSession{
		Id:      uuid.New(),
		UserId:  actor.ID,
		BrandId: brand.Id,
		Title:   title,
		AiModel: aiModel,
		ModelParameters: entity.ModelParameters{
			Temperature: s.generation.DefaultTemperature,
			MaxTokens:   s.generation.DefaultMaxTokens,
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	batch := &entity.SessionAppend{}
	session.AppendMessage(batch, entity.MessageRoleSystem, prompt.SeedMessage(brand), now)

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
	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err)
	}

	s.metrics.IncChatMessages(len(batch.Messages))
	s.logger.Info("ChatService", "Chat session created", map[string]interface{}{
		"chat_id":  session.Id.String(),
		"brand_id": brand.Id.String(),
	})
	s.activity.Emit(ctx, events.New(events.ChatCreated, actor.ID, map[string]interface{}{
		"chatId":  session.Id.String(),
		"brandId": brand.Id.String(),
		"title":   session.Title,
	}))

	session.Messages = batch.Messages
	return toSessionResponse(session, brand, nil), nil
}

func (s *chatService) List(ctx context.Context, actor access.Actor, query *dto.ChatListQuery) ([]dto.ChatListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: actor.ID},
		specification.OrderBy{Field: "updated_at", Desc: true},
		specification.Page(query.Page, query.Limit),
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	brands, err := s.brandsByID(ctx, uow, sessions)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ChatListItem, 0, len(sessions))
	for _, session := range sessions {
		summary := dto.BrandSummary{Id: session.BrandId}
		if b, ok := brands[session.BrandId]; ok {
			summary = dto.BrandSummary{Id: b.Id, Name: b.Name}
		}
		items = append(items, dto.ChatListItem{
			Id:        session.Id,
			Title:     session.Title,
			Brand:     summary,
			AiModel:   string(session.AiModel),
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		})
	}
	return items, nil
}

func (s *chatService) brandsByID(ctx context.Context, uow unitofwork.UnitOfWork, sessions []*entity.ChatSession) (map[uuid.UUID]*entity.Brand, error) {
	ids := make([]uuid.UUID, 0, len(sessions))
	seen := make(map[uuid.UUID]bool)
	for _, session := range sessions {
		if !seen[session.BrandId] {
			seen[session.BrandId] = true
			ids = append(ids, session.BrandId)
		}
	}
	out := make(map[uuid.UUID]*entity.Brand, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	brands, err := uow.BrandRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	for _, b := range brands {
		out[b.Id] = b
	}
	return out, nil
}

func (s *chatService) Get(ctx context.Context, actor access.Actor, chatId uuid.UUID) (*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, brand, err := sessionFor(ctx, uow, actor, chatId)
	if err != nil {
		return nil, err
	}

	if err := loadLog(ctx, uow, session); err != nil {
		return nil, err
	}
	names, err := themeNames(ctx, uow, session.GeneratedContent)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session, brand, names), nil
}

func (s *chatService) SendMessage(ctx context.Context, actor access.Actor, chatId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, brand, err := sessionFor(ctx, uow, actor, chatId)
	if err != nil {
		return nil, err
	}

	reply, err := s.providers.Get(string(session.AiModel)).Reply(ctx, llm.ReplyRequest{
		BrandName: brand.Name,
		Message:   req.Message,
	}, sessionOptions(session)...)
	if err != nil {
		return nil, apperror.Upstream(err, "Failed to get a reply")
	}

	now := time.Now()
	batch := &entity.SessionAppend{}
	session.AppendMessage(batch, entity.MessageRoleUser, req.Message, now)
	assistant := session.AppendMessage(batch, entity.MessageRoleAssistant, reply, now)

	if err := commitAppend(ctx, uow, session, batch); err != nil {
		return nil, s.conflict(err, session.Id)
	}

	s.metrics.IncChatMessages(len(batch.Messages))
	s.activity.Emit(ctx, events.New(events.ChatMessageSent, session.UserId, map[string]interface{}{
		"chatId":  session.Id.String(),
		"brandId": session.BrandId.String(),
	}))

	return &dto.SendMessageResponse{
		ChatId:  session.Id,
		Message: dto.ReplyMessage{Role: string(assistant.Role), Content: assistant.Content},
	}, nil
}

func (s *chatService) Generate(ctx context.Context, actor access.Actor, chatId uuid.UUID, req *dto.GenerateInChatRequest) (*dto.GenerateInChatResponse, error) {
	count, err := batchCount(req.Count, s.generation.MaxBatchCount)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, brand, err := sessionFor(ctx, uow, actor, chatId)
	if err != nil {
		return nil, err
	}

	themeId, err := parseID(req.ThemeId, "Theme")
	if err != nil {
		return nil, err
	}
	theme, err := uow.ThemeRepository().FindOne(ctx,
		specification.ByID{ID: themeId},
		specification.ByBrandID{BrandID: session.BrandId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if theme == nil {
		return nil, apperror.NotFound("Theme not found")
	}

	products, err := uow.ProductRepository().FindAll(ctx,
		specification.ByBrandID{BrandID: session.BrandId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	platform := prompt.NormalizePlatform(req.Platform)
	pieces, err := generatePieces(ctx, s.providers.Get(string(session.AiModel)), session, brand, theme, products, platform, count)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	batch := &entity.SessionAppend{}
	for _, piece := range pieces {
		session.AppendContent(batch, theme.Id, piece, platform, now)
	}
	session.AppendMessage(batch, entity.MessageRoleAssistant,
		fmt.Sprintf("I've generated %d content pieces based on the \"%s\" theme.", count, theme.Name), now)

	if err := commitAppend(ctx, uow, session, batch); err != nil {
		return nil, s.conflict(err, session.Id)
	}

	s.metrics.IncGenerated(platform, len(batch.Contents))
	s.metrics.IncChatMessages(len(batch.Messages))
	s.logger.Info("ChatService", "Content generated in chat", map[string]interface{}{
		"chat_id":  session.Id.String(),
		"theme_id": theme.Id.String(),
		"count":    count,
	})
	s.activity.Emit(ctx, events.New(events.ContentGenerated, session.UserId, map[string]interface{}{
		"chatId":   session.Id.String(),
		"themeId":  theme.Id.String(),
		"count":    count,
		"platform": platform,
	}))

	return &dto.GenerateInChatResponse{
		ChatId:           session.Id,
		GeneratedContent: toContentResponses(batch.Contents, map[uuid.UUID]string{theme.Id: theme.Name}),
	}, nil
}

func (s *chatService) ParseCommand(ctx context.Context, actor access.Actor, chatId uuid.UUID, req *dto.ParseCommandRequest) (*chatcmd.ParsedCommand, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, _, err := sessionFor(ctx, uow, actor, chatId)
	if err != nil {
		return nil, err
	}
	return chatcmd.Parse(req.Command, session.BrandId), nil
}

func (s *chatService) conflict(err error, chatId uuid.UUID) error {
	mapped := storageError(err)
	if apperror.HasCode(mapped, apperror.ErrConflict) {
		s.metrics.IncSessionConflict()
		s.logger.Warn("ChatService", "Rejected stale chat write", map[string]interface{}{"chat_id": chatId.String()})
	}
	return mapped
}

// batchCount applies the default of one piece and the configured ceiling.
func batchCount(requested, max int) (int, error) {
	switch {
	case requested < 0:
		return 0, apperror.Validation("count must be at least 1")
	case requested == 0:
		return 1, nil
	case max > 0 && requested > max:
		return 0, apperror.Validation(fmt.Sprintf("count must be at most %d", max))
	}
	return requested, nil
}

func sessionOptions(session *entity.ChatSession) []llm.Option {
	return []llm.Option{
		llm.WithModel(string(session.AiModel)),
		llm.WithTemperature(session.ModelParameters.Temperature),
		llm.WithMaxTokens(session.ModelParameters.MaxTokens),
	}
}

// generatePieces calls the provider count times. Any failure aborts the
// whole batch before anything is stored.
func generatePieces(
	ctx context.Context,
	provider llm.ContentProvider,
	session *entity.ChatSession,
	brand *entity.Brand,
	theme *entity.Theme,
	products []*entity.Product,
	platform string,
	count int,
) ([]string, error) {
	req := llm.GenerateRequest{
		Prompt:        prompt.NewGenerationBuilder(brand, theme, products, platform, count).Build(),
		ThemeName:     theme.Name,
		ThemeCategory: string(theme.Category),
		Platform:      platform,
	}

	pieces := make([]string, 0, count)
	for i := 0; i < count; i++ {
		piece, err := provider.Generate(ctx, req, sessionOptions(session)...)
		if err != nil {
			return nil, apperror.Upstream(err, "Content generation failed")
		}
		pieces = append(pieces, piece)
	}
	return pieces, nil
}

// commitAppend bumps the session version and stores the new log entries in
// one transaction. The version bump runs first so concurrent writers on the
// same session are rejected before they touch the log tables.
func commitAppend(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession, batch *entity.SessionAppend) error {
	if batch.Empty() {
		return nil
	}
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().SaveVersioned(ctx, session, session.Version); err != nil {
		return err
	}
	if len(batch.Messages) > 0 {
		if err := uow.ChatMessageRepository().CreateBulk(ctx, batch.Messages); err != nil {
			return err
		}
	}
	if len(batch.Contents) > 0 {
		if err := uow.GeneratedContentRepository().CreateBulk(ctx, batch.Contents); err != nil {
			return err
		}
	}
	return uow.Commit()
}

func loadLog(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession) error {
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.InLogOrder{},
	)
	if err != nil {
		return apperror.Internal(err)
	}
	contents, err := uow.GeneratedContentRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.InLogOrder{},
	)
	if err != nil {
		return apperror.Internal(err)
	}
	session.Messages = messages
	session.GeneratedContent = contents
	return nil
}

// themeNames resolves names for display, including soft-deleted themes.
func themeNames(ctx context.Context, uow unitofwork.UnitOfWork, contents []*entity.GeneratedContent) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string)
	ids := make([]uuid.UUID, 0)
	for _, c := range contents {
		if _, ok := names[c.ThemeId]; !ok {
			names[c.ThemeId] = ""
			ids = append(ids, c.ThemeId)
		}
	}
	if len(ids) == 0 {
		return names, nil
	}

	themes, err := uow.ThemeRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	for _, t := range themes {
		names[t.Id] = t.Name
	}
	return names, nil
}
