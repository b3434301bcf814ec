package prompt

import (
	"testing"

	"flowa-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestSeedMessage(t *testing.T) {
	brand := &entity.Brand{Name: "Sunrise Bakery", Description: "Artisan bread since 1990.", Tone: "friendly"}

	assert.Equal(t,
		`You are an AI assistant for the brand "Sunrise Bakery". Artisan bread since 1990. Please help create content that matches the brand's tone: friendly.`,
		SeedMessage(brand),
	)
}

func TestSeedMessageDefaultsTone(t *testing.T) {
	msg := SeedMessage(&entity.Brand{Name: "Acme"})

	assert.Contains(t, msg, `"Acme"`)
	assert.Contains(t, msg, "tone: professional.")
}

func TestPlatformGuidanceIsDistinctPerPlatform(t *testing.T) {
	platforms := []string{"facebook", "instagram", "tiktok", "threads", "linkedin", "twitter", ""}
	seen := make(map[string]string)

	for _, p := range platforms {
		g := PlatformGuidance(p)
		for other, guidance := range seen {
			assert.NotEqual(t, guidance, g, "%s and %s share guidance", p, other)
		}
		seen[p] = g
	}
}

func TestPlatformGuidanceFallsBack(t *testing.T) {
	assert.Equal(t, PlatformGuidance(""), PlatformGuidance("myspace"))
	assert.Equal(t, PlatformGuidance("twitter"), PlatformGuidance(" X "))
	assert.Equal(t, PlatformGuidance("facebook"), PlatformGuidance("FaceBook"))
}

func TestGenerationBuilder(t *testing.T) {
	brand := &entity.Brand{
		Name:        "Sunrise Bakery",
		Description: "Artisan bread.",
		Keywords:    []string{"bread", "sourdough"},
		Hashtags:    []string{"#bakery", "#fresh"},
	}
	theme := &entity.Theme{Name: "Morning Tips", Description: "Breakfast ideas", Category: entity.ThemeCategoryKnowledge}
	products := []*entity.Product{
		{Name: "Sourdough", Description: "48h fermentation"},
		{Name: "Croissant", Description: "Butter layers"},
	}

	result := NewGenerationBuilder(brand, theme, products, "Facebook", 2).Build()

	assert.Contains(t, result, `Generate 2 content pieces for the brand "Sunrise Bakery" using the theme "Morning Tips" for facebook.`)
	assert.Contains(t, result, "Brand tone: professional")
	assert.Contains(t, result, "Theme category: knowledge")
	assert.Contains(t, result, "Approximately 500 characters")
	assert.Contains(t, result, "- Sourdough: 48h fermentation\n- Croissant: Butter layers")
	assert.Contains(t, result, "Keywords: bread, sourdough")
	assert.Contains(t, result, "Hashtags: #bakery #fresh")
	assert.Contains(t, result, PlatformGuidance("facebook"))
	assert.Contains(t, result, "Content rules: Be engaging and relevant to the audience.")
}

func TestGenerationBuilderWithoutProducts(t *testing.T) {
	brand := &entity.Brand{Name: "Acme", ContentRules: "No emojis."}
	theme := &entity.Theme{Name: "News", ContentLength: 280}

	result := NewGenerationBuilder(brand, theme, nil, "", 1).Build()

	assert.NotContains(t, result, "Products:")
	assert.Contains(t, result, `using the theme "News".`)
	assert.Contains(t, result, "Theme category: general")
	assert.Contains(t, result, "Approximately 280 characters")
	assert.Contains(t, result, PlatformGuidance(""))
	assert.Contains(t, result, "Content rules: No emojis.")
}
