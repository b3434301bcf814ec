package service

import (
	"context"

	"flowa-be/internal/dto"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/repository/specification"
	"flowa-be/internal/repository/unitofwork"
	"flowa-be/pkg/access"
)

// IAnalyticsService serves fixed reporting fixtures. Only the brand and theme
// filters are real: they are resolved and gated like every other brand read.
type IAnalyticsService interface {
	ContentStats(ctx context.Context, actor access.Actor, query *dto.AnalyticsQuery) (*dto.ContentStatsResponse, error)
	SocialPerformance(ctx context.Context, actor access.Actor, query *dto.AnalyticsQuery) (*dto.SocialPerformanceResponse, error)
	ContentAnalysis(ctx context.Context, actor access.Actor, query *dto.AnalyticsQuery) (*dto.ContentAnalysisResponse, error)
	ImprovementSuggestions(ctx context.Context, actor access.Actor, query *dto.AnalyticsQuery) (*dto.ImprovementSuggestionsResponse, error)
}

type analyticsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAnalyticsService(uowFactory unitofwork.RepositoryFactory) IAnalyticsService {
	return &analyticsService{uowFactory: uowFactory}
}

func (s *analyticsService) ContentStats(ctx context.Context, actor access.Actor, query *dto.AnalyticsQuery) (*dto.ContentStatsResponse, error) {
	if err := s.checkBrand(ctx, s.uowFactory.NewUnitOfWork(ctx), actor, query.BrandId); err != nil {
		return nil, err
	}

	return &dto.ContentStatsResponse{
		TotalThemes:           24,
		TotalContents:         156,
		ApprovalRate:          92.5,
		AverageGenerationTime: 2.3,
		ContentByTheme: []dto.NamedCount{
			{Name: "New products", Count: 45},
			{Name: "Usage tips", Count: 38},
			{Name: "Customer stories", Count: 32},
			{Name: "Industry news", Count: 25},
			{Name: "Promotions", Count: 16},
		},
		ContentByPlatform: []dto.NamedCount{
			{Name: "facebook", Count: 52},
			{Name: "instagram", Count: 48},
			{Name: "tiktok", Count: 25},
			{Name: "linkedin", Count: 18},
			{Name: "twitter", Count: 13},
		},
		TimeDistribution: []dto.NamedCount{
			{Name: "January", Count: 12},
			{Name: "February", Count: 15},
			{Name: "March", Count: 22},
			{Name: "April", Count: 28},
			{Name: "May", Count: 32},
			{Name: "June", Count: 47},
		},
	}, nil
}

func (s *analyticsService) SocialPerformance(ctx context.Context, actor access.Actor, query *dto.AnalyticsQuery) (*dto.SocialPerformanceResponse, error) {
	if err := s.checkBrand(ctx, s.uowFactory.NewUnitOfWork(ctx), actor, query.BrandId); err != nil {
		return nil, err
	}

	platforms := []dto.PlatformMetrics{
		{Platform: "facebook", Metrics: map[string]int{
			"posts": 32, "likes": 4250, "comments": 865, "shares": 342,
			"reach": 18500, "impressions": 27800, "followerGrowth": 215,
		}},
		{Platform: "instagram", Metrics: map[string]int{
			"posts": 28, "likes": 5680, "comments": 732, "saves": 423,
			"reach": 15200, "impressions": 22600, "followerGrowth": 187,
		}},
		{Platform: "tiktok", Metrics: map[string]int{
			"posts": 15, "likes": 8750, "comments": 1240, "shares": 856,
			"views": 124500, "followerGrowth": 412,
		}},
		{Platform: "linkedin", Metrics: map[string]int{
			"posts": 12, "likes": 865, "comments": 132, "shares": 78,
			"impressions": 8500, "followerGrowth": 45,
		}},
	}
	if query.Platform != "" {
		filtered := make([]dto.PlatformMetrics, 0, 1)
		for _, p := range platforms {
			if p.Platform == query.Platform {
				filtered = append(filtered, p)
			}
		}
		platforms = filtered
	}

	return &dto.SocialPerformanceResponse{
		Overview: dto.PerformanceOverview{
			TotalPosts:       87,
			TotalEngagements: 12450,
			TotalReach:       45600,
			TotalImpressions: 68900,
			FollowerGrowth:   523,
		},
		Platforms: platforms,
		TopPosts: []dto.TopPost{
			{Id: "1", Platform: "instagram", Content: "Sample Instagram content",
				Metrics: map[string]int{"likes": 1250, "comments": 187, "saves": 95, "reach": 4500}},
			{Id: "2", Platform: "tiktok", Content: "Sample TikTok content",
				Metrics: map[string]int{"likes": 3200, "comments": 456, "shares": 278, "views": 45600}},
			{Id: "3", Platform: "facebook", Content: "Sample Facebook content",
				Metrics: map[string]int{"likes": 875, "comments": 156, "shares": 87, "reach": 3800}},
		},
		TimeDistribution: []dto.WeeklyPerformance{
			{Week: "Week 1", Engagements: 1250, Reach: 5600},
			{Week: "Week 2", Engagements: 1580, Reach: 6200},
			{Week: "Week 3", Engagements: 2150, Reach: 7800},
			{Week: "Week 4", Engagements: 2450, Reach: 8500},
			{Week: "Week 5", Engagements: 2780, Reach: 9200},
			{Week: "Week 6", Engagements: 3240, Reach: 10500},
		},
	}, nil
}

func (s *analyticsService) ContentAnalysis(ctx context.Context, actor access.Actor, query *dto.AnalyticsQuery) (*dto.ContentAnalysisResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.checkBrand(ctx, uow, actor, query.BrandId); err != nil {
		return nil, err
	}
	if query.ThemeId != "" {
		themeId, err := parseID(query.ThemeId, "Theme")
		if err != nil {
			return nil, err
		}
		theme, err := uow.ThemeRepository().FindOne(ctx, specification.ByID{ID: themeId})
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if theme == nil {
			return nil, apperror.NotFound("Theme not found")
		}
	}

	return &dto.ContentAnalysisResponse{
		BestPerformingThemes: []dto.ThemePerformance{
			{ThemeName: "Customer stories", EngagementRate: 8.7, ReachRate: 12.5},
			{ThemeName: "Usage tips", EngagementRate: 7.2, ReachRate: 10.8},
			{ThemeName: "New products", EngagementRate: 6.5, ReachRate: 9.2},
		},
		OptimalPostingTimes: []dto.PostingTime{
			{Day: "Monday", Time: "18:00 - 20:00", EngagementRate: 6.8},
			{Day: "Wednesday", Time: "12:00 - 14:00", EngagementRate: 7.2},
			{Day: "Friday", Time: "19:00 - 21:00", EngagementRate: 8.5},
			{Day: "Sunday", Time: "10:00 - 12:00", EngagementRate: 7.9},
		},
		ContentLengthAnalysis: []dto.LengthAnalysis{
			{Platform: "facebook", OptimalLength: "1000-1500 characters", EngagementRate: 6.2},
			{Platform: "instagram", OptimalLength: "150-300 characters", EngagementRate: 7.8},
			{Platform: "tiktok", OptimalLength: "50-100 characters", EngagementRate: 9.5},
			{Platform: "linkedin", OptimalLength: "1200-1800 characters", EngagementRate: 5.4},
		},
		Suggestions: []string{
			"Post customer stories more often",
			"Schedule posts for Friday evening and Sunday morning",
			"Match content length to each platform",
			"Use more images and video on Instagram and TikTok",
		},
	}, nil
}

func (s *analyticsService) ImprovementSuggestions(ctx context.Context, actor access.Actor, query *dto.AnalyticsQuery) (*dto.ImprovementSuggestionsResponse, error) {
	if err := s.checkBrand(ctx, s.uowFactory.NewUnitOfWork(ctx), actor, query.BrandId); err != nil {
		return nil, err
	}

	return &dto.ImprovementSuggestionsResponse{
		ContentStrategy: []string{
			`Increase posts on the "Customer stories" theme by 30%`,
			"Shorten Facebook content to 800-1000 characters",
			"Add more images and video to Instagram content",
			"Use more questions and calls to action",
		},
		PostingSchedule: []string{
			"Post between 18:00 and 20:00 on weekdays",
			"Post more often on weekends",
			"Publish important content on Wednesday and Friday",
		},
		PlatformSpecific: []dto.PlatformSuggestions{
			{Platform: "facebook", Suggestions: []string{
				"Use more images and infographics",
				"Ask questions to drive interaction",
				"Use short 60-90 second videos",
			}},
			{Platform: "instagram", Suggestions: []string{
				"Use 10-15 popular hashtags",
				"Post Stories daily",
				"Use Reels for short, engaging content",
			}},
			{Platform: "tiktok", Suggestions: []string{
				"Join trending challenges",
				"Use popular music",
				"Make short, funny and educational content",
			}},
		},
	}, nil
}

// checkBrand gates the optional brand filter. An empty id means all brands.
func (s *analyticsService) checkBrand(ctx context.Context, uow unitofwork.UnitOfWork, actor access.Actor, rawBrandId string) error {
	if rawBrandId == "" {
		return nil
	}
	brandId, err := parseID(rawBrandId, "Brand")
	if err != nil {
		return err
	}
	_, err = activeBrandFor(ctx, uow, actor, brandId)
	return err
}
