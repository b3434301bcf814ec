package stub

import (
	"context"
	"testing"
	"time"

	"flowa-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyPicksGreetingHelpOrEcho(t *testing.T) {
	p := NewProvider("openai")
	ctx := context.Background()

	greeting, err := p.Reply(ctx, llm.ReplyRequest{BrandName: "Flowa", Message: "Hello there"})
	require.NoError(t, err)
	assert.Equal(t, "Hello! I'm your AI assistant for Flowa. How can I help you today?", greeting)

	help, err := p.Reply(ctx, llm.ReplyRequest{BrandName: "Flowa", Message: "I need HELP"})
	require.NoError(t, err)
	assert.Contains(t, help, "I can help you create content for Flowa.")

	echo, err := p.Reply(ctx, llm.ReplyRequest{BrandName: "Flowa", Message: "Draft a launch plan for our autumn blend"})
	require.NoError(t, err)
	assert.Contains(t, echo, "\"Draft a launch plan for our au...\"")
}

func TestGenerateShapesPerPlatform(t *testing.T) {
	p := NewProvider("anthropic")
	ctx := context.Background()

	cases := map[string]string{
		"facebook":  "#MorningRituals #UsefulTips",
		"Instagram": "#InstaLifestyle",
		"tiktok":    "#FYP",
		"linkedin":  "#ProfessionalDevelopment",
		"x":         "#QuickTips",
		"pinterest": "#SampleContent #MorningRituals",
	}
	for platform, marker := range cases {
		t.Run(platform, func(t *testing.T) {
			out, err := p.Generate(ctx, llm.GenerateRequest{ThemeName: "Morning Rituals", ThemeCategory: "Lifestyle", Platform: platform})
			require.NoError(t, err)
			assert.Contains(t, out, marker)
			assert.Contains(t, out, "Morning Rituals")
		})
	}
}

func TestOptimizeStripsPlaceholders(t *testing.T) {
	p := NewProvider("google")

	out, err := p.Optimize(context.Background(), llm.OptimizeRequest{
		Content:       "Fresh [placeholder] beans",
		Platform:      "facebook",
		BrandName:     "Flowa Coffee",
		BrandHashtags: []string{"#flowacoffee"},
		ThemeName:     "Morning",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "[Optimized for facebook]")
	assert.Contains(t, out, "Fresh  beans")
	assert.NotContains(t, out, "[placeholder]")
	assert.Contains(t, out, "#FlowaCoffee #Morning #flowacoffee")
}

func TestAnalyzeKeywordsFallsBackToDefaults(t *testing.T) {
	res, err := NewProvider("deepseek").AnalyzeKeywords(context.Background(), llm.KeywordRequest{BrandName: "Flowa"})
	require.NoError(t, err)
	require.Len(t, res.Keywords, 5)
	assert.Equal(t, "Flowa", res.Keywords[0].Keyword)
	assert.Equal(t, "marketing", res.Keywords[1].Keyword)
	assert.Equal(t, "#marketing", res.Hashtags[1].Hashtag)
	assert.NotEmpty(t, res.Recommendations)
}

func TestGenerateImageUsesClock(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	p := NewProvider("openai").WithClock(func() time.Time { return fixed })

	url, err := p.GenerateImage(context.Background(), llm.ImageRequest{BrandId: "b-1"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/generated-images/b-1-1700000000000.jpg", url)
}

func TestCancelledContextFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider("openai").Generate(ctx, llm.GenerateRequest{ThemeName: "Morning"})
	assert.ErrorIs(t, err, context.Canceled)
}
