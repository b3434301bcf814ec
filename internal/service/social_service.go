package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flowa-be/internal/dto"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/pkg/logger"
	"flowa-be/internal/repository/specification"
	"flowa-be/internal/repository/unitofwork"
	"flowa-be/pkg/access"
	"flowa-be/pkg/events"

	"github.com/google/uuid"
)

type ISocialService interface {
	Connect(ctx context.Context, actor access.Actor, req *dto.ConnectSocialRequest) (*dto.SocialAccountResponse, error)
	Accounts(ctx context.Context, actor access.Actor) ([]dto.SocialAccountResponse, error)
	CreatePost(ctx context.Context, actor access.Actor, req *dto.CreateSocialPostRequest) (*dto.SocialPostsResponse, error)
	ListPosts(ctx context.Context, actor access.Actor, query *dto.SocialPostQuery) ([]dto.SocialPostResponse, error)
	Schedule(ctx context.Context, actor access.Actor, req *dto.SchedulePostsRequest) (*dto.SocialPostsResponse, error)
	UpdateStatus(ctx context.Context, actor access.Actor, postId uuid.UUID, req *dto.UpdatePostStatusRequest) (*dto.SocialPostResponse, error)
}

type socialService struct {
	uowFactory unitofwork.RepositoryFactory
	activity   *ActivityEmitter
	logger     logger.ILogger
	now        func() time.Time
}

func NewSocialService(uowFactory unitofwork.RepositoryFactory, activity *ActivityEmitter, log logger.ILogger) ISocialService {
	return &socialService{uowFactory: uowFactory, activity: activity, logger: log, now: time.Now}
}

// Connect records a simulated account link; no platform API is called.
func (s *socialService) Connect(ctx context.Context, actor access.Actor, req *dto.ConnectSocialRequest) (*dto.SocialAccountResponse, error) {
	platform := strings.ToLower(strings.TrimSpace(req.Platform))
	if !entity.IsSupportedSocialPlatform(platform) {
		return nil, apperror.Validation("Unsupported platform: " + req.Platform)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	var brandId *uuid.UUID
	if req.BrandId != "" {
		id, err := parseID(req.BrandId, "Brand")
		if err != nil {
			return nil, err
		}
		if _, err := activeBrandFor(ctx, uow, actor, id); err != nil {
			return nil, err
		}
		brandId = &id
	}

	now := s.now()
	accountName := strings.TrimSpace(req.AccountName)
	if accountName == "" {
		accountName = platform + " Account"
	}
	account := &entity.SocialAccount{
		UserId:      actor.ID,
		BrandId:     brandId,
		Platform:    platform,
		AccountId:   fmt.Sprintf("%s_%d", platform, now.UnixMilli()),
		AccountName: accountName,
		Token:       fmt.Sprintf("sample_token_%d", now.UnixMilli()),
		IsConnected: true,
		ConnectedAt: now,
	}
	if err := uow.SocialAccountRepository().Upsert(ctx, account); err != nil {
		return nil, apperror.Internal(err)
	}

	s.logger.Info("SocialService", "Social account connected", map[string]interface{}{
		"user_id":  actor.ID.String(),
		"platform": platform,
	})
	res := toAccountResponse(account)
	return &res, nil
}

func (s *socialService) Accounts(ctx context.Context, actor access.Actor) ([]dto.SocialAccountResponse, error) {
	accounts, err := s.uowFactory.NewUnitOfWork(ctx).SocialAccountRepository().FindByUser(ctx, actor.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	res := make([]dto.SocialAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		res = append(res, toAccountResponse(a))
	}
	return res, nil
}

// CreatePost creates one post per requested platform that has a connected
// account for the brand. Posts with a scheduled time wait; others publish now.
func (s *socialService) CreatePost(ctx context.Context, actor access.Actor, req *dto.CreateSocialPostRequest) (*dto.SocialPostsResponse, error) {
	brandId, err := parseID(req.BrandId, "Brand")
	if err != nil {
		return nil, err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	brand, err := activeBrandFor(ctx, uow, actor, brandId)
	if err != nil {
		return nil, err
	}

	contentId, err := parseID(req.ContentId, "Content")
	if err != nil {
		return nil, err
	}
	content, err := uow.GeneratedContentRepository().FindOne(ctx, specification.ByID{ID: contentId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if content == nil {
		return nil, apperror.NotFound("Content not found")
	}
	// Content from another brand's sessions is invisible here.
	source, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: content.ChatSessionId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if source == nil || source.BrandId != brand.Id {
		return nil, apperror.NotFound("Content not found")
	}

	accounts, err := uow.SocialAccountRepository().FindByBrand(ctx, brand.Id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	connected := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		if a.IsConnected {
			connected[a.Platform] = true
		}
	}

	platforms := make([]string, 0, len(req.Platforms))
	seen := make(map[string]bool)
	for _, p := range req.Platforms {
		p = strings.ToLower(strings.TrimSpace(p))
		if connected[p] && !seen[p] {
			seen[p] = true
			platforms = append(platforms, p)
		}
	}
	if len(platforms) == 0 {
		return nil, apperror.Validation("No connected social accounts for the selected platforms")
	}

	now := s.now()
	scheduledFor := now
	status := entity.PostStatusPublished
	if req.ScheduledTime != nil {
		scheduledFor = *req.ScheduledTime
		status = entity.PostStatusScheduled
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback()

	posts := make([]*entity.SocialPost, 0, len(platforms))
	for _, platform := range platforms {
		post := &entity.SocialPost{
			Id:           uuid.New(),
			UserId:       actor.ID,
			BrandId:      brand.Id,
			ContentId:    content.Id,
			Platform:     platform,
			Content:      content.Content,
			Status:       status,
			ScheduledFor: &scheduledFor,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if status == entity.PostStatusPublished {
			published := now
			post.PublishedAt = &published
		}
		if err := uow.SocialPostRepository().Create(ctx, post); err != nil {
			return nil, apperror.Internal(err)
		}
		posts = append(posts, post)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err)
	}

	s.activity.Emit(ctx, events.New(events.SocialPostCreated, actor.ID, map[string]interface{}{
		"brandId":   brand.Id.String(),
		"contentId": content.Id.String(),
		"platforms": platforms,
		"status":    string(status),
	}))
	return &dto.SocialPostsResponse{Posts: toPostResponses(posts)}, nil
}

func (s *socialService) ListPosts(ctx context.Context, actor access.Actor, query *dto.SocialPostQuery) ([]dto.SocialPostResponse, error) {
	filter := entity.SocialPostFilter{
		Platform: strings.ToLower(strings.TrimSpace(query.Platform)),
		Status:   entity.PostStatus(query.Status),
	}
	if query.BrandId != "" {
		id, err := uuid.Parse(query.BrandId)
		if err != nil {
			return nil, apperror.Validation("brandId must be a valid id")
		}
		filter.BrandId = &id
	}

	posts, err := s.uowFactory.NewUnitOfWork(ctx).SocialPostRepository().FindByUser(ctx, actor.ID, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return toPostResponses(posts), nil
}

// Schedule moves every listed post to scheduled, all or none.
func (s *socialService) Schedule(ctx context.Context, actor access.Actor, req *dto.SchedulePostsRequest) (*dto.SocialPostsResponse, error) {
	if len(req.Posts) == 0 {
		return nil, apperror.Validation("posts is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	posts := make([]*entity.SocialPost, 0, len(req.Posts))
	for _, item := range req.Posts {
		id, err := parseID(item.Id, "Post")
		if err != nil {
			return nil, err
		}
		post, err := s.postFor(ctx, uow, actor, id)
		if err != nil {
			return nil, err
		}
		scheduled := item.ScheduledTime
		post.ScheduledFor = &scheduled
		post.Status = entity.PostStatusScheduled
		post.PublishedAt = nil
		posts = append(posts, post)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback()
	for _, post := range posts {
		if err := uow.SocialPostRepository().UpdateStatus(ctx, post); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err)
	}
	return &dto.SocialPostsResponse{Posts: toPostResponses(posts)}, nil
}

func (s *socialService) UpdateStatus(ctx context.Context, actor access.Actor, postId uuid.UUID, req *dto.UpdatePostStatusRequest) (*dto.SocialPostResponse, error) {
	status := entity.PostStatus(req.Status)
	if !status.Valid() {
		return nil, apperror.Validation("Invalid status")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	post, err := s.postFor(ctx, uow, actor, postId)
	if err != nil {
		return nil, err
	}

	post.Status = status
	if status == entity.PostStatusPublished && post.PublishedAt == nil {
		now := s.now()
		post.PublishedAt = &now
	}
	if err := uow.SocialPostRepository().UpdateStatus(ctx, post); err != nil {
		return nil, apperror.Internal(err)
	}
	res := toPostResponse(post)
	return &res, nil
}

func (s *socialService) postFor(ctx context.Context, uow unitofwork.UnitOfWork, actor access.Actor, id uuid.UUID) (*entity.SocialPost, error) {
	post, err := uow.SocialPostRepository().FindOne(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	var owner uuid.UUID
	if post != nil {
		owner = post.UserId
	}
	if err := gate(actor, post != nil, "Post", owner); err != nil {
		return nil, err
	}
	return post, nil
}

func toPostResponses(posts []*entity.SocialPost) []dto.SocialPostResponse {
	res := make([]dto.SocialPostResponse, 0, len(posts))
	for _, p := range posts {
		res = append(res, toPostResponse(p))
	}
	return res
}
