package dto

type AnalyticsQuery struct {
	BrandId  string `query:"brandId"`
	ThemeId  string `query:"themeId"`
	Platform string `query:"platform"`
}

type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ContentStatsResponse struct {
	TotalThemes           int          `json:"totalThemes"`
	TotalContents         int          `json:"totalContents"`
	ApprovalRate          float64      `json:"approvalRate"`
	AverageGenerationTime float64      `json:"averageGenerationTime"`
	ContentByTheme        []NamedCount `json:"contentByTheme"`
	ContentByPlatform     []NamedCount `json:"contentByPlatform"`
	TimeDistribution      []NamedCount `json:"timeDistribution"`
}

type PerformanceOverview struct {
	TotalPosts       int `json:"totalPosts"`
	TotalEngagements int `json:"totalEngagements"`
	TotalReach       int `json:"totalReach"`
	TotalImpressions int `json:"totalImpressions"`
	FollowerGrowth   int `json:"followerGrowth"`
}

// PlatformMetrics keys differ per network (shares, saves, views).
type PlatformMetrics struct {
	Platform string         `json:"platform"`
	Metrics  map[string]int `json:"metrics"`
}

type TopPost struct {
	Id       string         `json:"id"`
	Platform string         `json:"platform"`
	Content  string         `json:"content"`
	Metrics  map[string]int `json:"metrics"`
}

type WeeklyPerformance struct {
	Week        string `json:"week"`
	Engagements int    `json:"engagements"`
	Reach       int    `json:"reach"`
}

type SocialPerformanceResponse struct {
	Overview         PerformanceOverview `json:"overview"`
	Platforms        []PlatformMetrics   `json:"platforms"`
	TopPosts         []TopPost           `json:"topPosts"`
	TimeDistribution []WeeklyPerformance `json:"timeDistribution"`
}

type ThemePerformance struct {
	ThemeName      string  `json:"themeName"`
	EngagementRate float64 `json:"engagementRate"`
	ReachRate      float64 `json:"reachRate"`
}

type PostingTime struct {
	Day            string  `json:"day"`
	Time           string  `json:"time"`
	EngagementRate float64 `json:"engagementRate"`
}

type LengthAnalysis struct {
	Platform       string  `json:"platform"`
	OptimalLength  string  `json:"optimalLength"`
	EngagementRate float64 `json:"engagementRate"`
}

type ContentAnalysisResponse struct {
	BestPerformingThemes  []ThemePerformance `json:"bestPerformingThemes"`
	OptimalPostingTimes   []PostingTime      `json:"optimalPostingTimes"`
	ContentLengthAnalysis []LengthAnalysis   `json:"contentLengthAnalysis"`
	Suggestions           []string           `json:"suggestions"`
}

type PlatformSuggestions struct {
	Platform    string   `json:"platform"`
	Suggestions []string `json:"suggestions"`
}

type ImprovementSuggestionsResponse struct {
	ContentStrategy  []string              `json:"contentStrategy"`
	PostingSchedule  []string              `json:"postingSchedule"`
	PlatformSpecific []PlatformSuggestions `json:"platformSpecific"`
}
