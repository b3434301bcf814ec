package stub

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"flowa-be/pkg/llm"
	"flowa-be/pkg/prompt"
)

var (
	placeholderPattern = regexp.MustCompile(`\[.*?\]`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// Provider is a deterministic in-process ContentProvider. It never calls out
// and never fails on well-formed input.
type Provider struct {
	model string
	now   func() time.Time
}

func NewProvider(model string) *Provider {
	return &Provider{model: model, now: time.Now}
}

// WithClock overrides the time source used for generated image URLs.
func (p *Provider) WithClock(now func() time.Time) *Provider {
	p.now = now
	return p
}

func (p *Provider) Model() string {
	return p.model
}

func (p *Provider) Reply(ctx context.Context, req llm.ReplyRequest, options ...llm.Option) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lower := strings.ToLower(req.Message)
	switch {
	case strings.Contains(lower, "hello") || strings.Contains(lower, "hi"):
		return fmt.Sprintf("Hello! I'm your AI assistant for %s. How can I help you today?", req.BrandName), nil
	case strings.Contains(lower, "help"):
		return fmt.Sprintf("I can help you create content for %s. You can ask me to generate content based on specific themes, or we can chat about your content needs.", req.BrandName), nil
	default:
		return fmt.Sprintf("Thank you for your message about \"%s...\". I'm here to assist with content creation for %s. Would you like me to generate some content ideas based on this?", truncate(req.Message, 30), req.BrandName), nil
	}
}

func (p *Provider) Generate(ctx context.Context, req llm.GenerateRequest, options ...llm.Option) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tag := hashtag(req.ThemeName)

	switch prompt.NormalizePlatform(req.Platform) {
	case prompt.PlatformFacebook:
		return fmt.Sprintf(`📣 [Sample Facebook post about "%s"]

Have you ever wondered how to [problem related to the theme]? Today we share [solution or idea].

[Detailed content about the theme in 3-4 short paragraphs]

Share this post if you found it useful and tell us about your experience in the comments!

#%s #UsefulTips #KnowledgeSharing`, req.ThemeName, tag), nil
	case prompt.PlatformInstagram:
		return fmt.Sprintf(`✨ [Catchy headline about "%s"]

[1-2 short paragraphs focused on imagery and emotion]

Have you had a similar experience? Share it with us in the comments!

.
.
.

#%s #Insta%s #TrendingNow #LifeStyle #Experience #MustTry`, req.ThemeName, tag, orDefault(req.ThemeCategory, "Life")), nil
	case prompt.PlatformTikTok:
		return fmt.Sprintf(`[TikTok script about "%s"]

🎵 Suggested music: [popular track that fits the content]

[0:00-0:05] Hook: "You won't believe this about [theme]..."
[0:05-0:15] Problem: "[problem related to the theme]"
[0:15-0:25] Solution: "[short solution]"
[0:25-0:30] Call to action: "Follow for more useful tips!"

#%s #FYP #TikTokTips`, req.ThemeName, tag), nil
	case prompt.PlatformLinkedIn:
		return fmt.Sprintf(`📊 [Professional headline about "%s"]

[Opening paragraph introducing the theme and why it matters to the industry]

According to recent research, [evidence or figures related to the theme].

Three key points to keep in mind:
1. [First key point]
2. [Second key point]
3. [Third key point]

[Closing paragraph with professional advice]

What is your experience with this? Share it in the comments.

#%s #ProfessionalDevelopment #IndustryInsights`, req.ThemeName, tag), nil
	case prompt.PlatformTwitter, prompt.PlatformX:
		return fmt.Sprintf(`[Short take on "%s"]

Did you know: [interesting fact about the theme]

This matters because [short reason].

Share if you found it useful!

#%s #QuickTips`, req.ThemeName, tag), nil
	default:
		return fmt.Sprintf(`This is a simulated content piece for the theme "%s".

Lorem ipsum dolor sit amet, consectetur adipiscing elit. Nullam auctor, nisl eget ultricies aliquam,
nunc nisl aliquet nunc, quis aliquam nisl nunc quis nisl. Nullam auctor, nisl eget ultricies aliquam,
nunc nisl aliquet nunc, quis aliquam nisl nunc quis nisl.

#SampleContent #%s`, req.ThemeName, tag), nil
	}
}

func (p *Provider) Optimize(ctx context.Context, req llm.OptimizeRequest, options ...llm.Option) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[Optimized for %s]\n\n", req.Platform)

	stripped := placeholderPattern.ReplaceAllString(req.Content, "")
	brandHashtags := strings.Join(req.BrandHashtags, " ")

	switch prompt.NormalizePlatform(req.Platform) {
	case prompt.PlatformFacebook:
		fmt.Fprintf(&b, "📣 [Facebook headline about \"%s\"]\n\n", req.ThemeName)
		b.WriteString(stripped + "\n\n")
		fmt.Fprintf(&b, "#%s #%s %s", hashtag(req.BrandName), hashtag(req.ThemeName), brandHashtags)
	case prompt.PlatformInstagram:
		fmt.Fprintf(&b, "✨ [Instagram caption about \"%s\"]\n\n", req.ThemeName)
		b.WriteString(stripped + "\n\n")
		b.WriteString(".\n.\n.\n\n")
		fmt.Fprintf(&b, "#%s #%s #Insta%s %s #FollowForMore",
			hashtag(req.BrandName), hashtag(req.ThemeName), orDefault(req.ThemeCategory, "Life"), brandHashtags)
	default:
		b.WriteString(stripped)
	}

	return b.String(), nil
}

func (p *Provider) AnalyzeKeywords(ctx context.Context, req llm.KeywordRequest) (*llm.KeywordAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &llm.KeywordAnalysis{
		Keywords: []llm.KeywordStat{
			{Keyword: req.BrandName, Volume: 1000, Difficulty: 45, Relevance: 95},
			{Keyword: at(req.Keywords, 0, "marketing"), Volume: 5000, Difficulty: 65, Relevance: 85},
			{Keyword: at(req.Keywords, 1, "content"), Volume: 8000, Difficulty: 70, Relevance: 80},
			{Keyword: "social media marketing", Volume: 12000, Difficulty: 75, Relevance: 75},
			{Keyword: "content automation", Volume: 3000, Difficulty: 50, Relevance: 90},
		},
		Hashtags: []llm.HashtagStat{
			{Hashtag: "#" + hashtag(req.BrandName), Popularity: 85, Relevance: 95},
			{Hashtag: at(req.Hashtags, 0, "#marketing"), Popularity: 95, Relevance: 80},
			{Hashtag: at(req.Hashtags, 1, "#content"), Popularity: 90, Relevance: 85},
			{Hashtag: "#socialmedia", Popularity: 98, Relevance: 75},
			{Hashtag: "#contentcreator", Popularity: 92, Relevance: 90},
		},
		Recommendations: []string{
			"Use the brand's main hashtag in every post",
			"Combine 3-5 popular hashtags with 2-3 brand-specific hashtags",
			"Focus on keywords with medium difficulty and high relevance",
			"Review hashtag trends weekly to keep content current",
		},
	}, nil
}

func (p *Provider) GenerateImage(ctx context.Context, req llm.ImageRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://example.com/generated-images/%s-%d.jpg", req.BrandId, p.now().UnixMilli()), nil
}

// hashtag strips all whitespace so a name can be used as a tag.
func hashtag(name string) string {
	return whitespacePattern.ReplaceAllString(name, "")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func at(values []string, i int, fallback string) string {
	if i < len(values) && values[i] != "" {
		return values[i]
	}
	return fallback
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
