package prompt

import (
	"fmt"
	"strings"

	"flowa-be/internal/entity"
)

// SeedMessage is the system message every new chat session starts with.
func SeedMessage(brand *entity.Brand) string {
	return fmt.Sprintf(
		"You are an AI assistant for the brand \"%s\". %s Please help create content that matches the brand's tone: %s.",
		brand.Name,
		brand.Description,
		orDefault(brand.Tone, entity.DefaultTone),
	)
}

// GenerationBuilder builds the content generation prompt from brand voice,
// theme metadata, active products and platform guidance.
type GenerationBuilder struct {
	brand    *entity.Brand
	theme    *entity.Theme
	products []*entity.Product
	platform string
	count    int
}

func NewGenerationBuilder(brand *entity.Brand, theme *entity.Theme, products []*entity.Product, platform string, count int) *GenerationBuilder {
	return &GenerationBuilder{
		brand:    brand,
		theme:    theme,
		products: products,
		platform: NormalizePlatform(platform),
		count:    count,
	}
}

func (b *GenerationBuilder) Build() string {
	var prompt strings.Builder

	b.writeTask(&prompt)
	b.writeBrandAndTheme(&prompt)
	b.writeProducts(&prompt)
	b.writeDiscoverability(&prompt)
	b.writeGuidance(&prompt)

	return prompt.String()
}

func (b *GenerationBuilder) writeTask(prompt *strings.Builder) {
	fmt.Fprintf(prompt, "Generate %d content pieces for the brand \"%s\" using the theme \"%s\"", b.count, b.brand.Name, b.theme.Name)
	if b.platform != "" {
		fmt.Fprintf(prompt, " for %s", b.platform)
	}
	prompt.WriteString(".\n\n")
}

func (b *GenerationBuilder) writeBrandAndTheme(prompt *strings.Builder) {
	contentLength := b.theme.ContentLength
	if contentLength <= 0 {
		contentLength = entity.DefaultContentLength
	}

	fmt.Fprintf(prompt, "Brand description: %s\n", b.brand.Description)
	fmt.Fprintf(prompt, "Brand tone: %s\n", orDefault(b.brand.Tone, entity.DefaultTone))
	fmt.Fprintf(prompt, "Theme description: %s\n", b.theme.Description)
	fmt.Fprintf(prompt, "Theme category: %s\n", orDefault(string(b.theme.Category), "general"))
	fmt.Fprintf(prompt, "Content length: Approximately %d characters\n\n", contentLength)
}

func (b *GenerationBuilder) writeProducts(prompt *strings.Builder) {
	if len(b.products) == 0 {
		return
	}

	prompt.WriteString("Products:\n")
	for _, p := range b.products {
		fmt.Fprintf(prompt, "- %s: %s\n", p.Name, p.Description)
	}
	prompt.WriteString("\n")
}

func (b *GenerationBuilder) writeDiscoverability(prompt *strings.Builder) {
	fmt.Fprintf(prompt, "Keywords: %s\n", strings.Join(b.brand.Keywords, ", "))
	fmt.Fprintf(prompt, "Hashtags: %s\n\n", strings.Join(b.brand.Hashtags, " "))
}

func (b *GenerationBuilder) writeGuidance(prompt *strings.Builder) {
	prompt.WriteString(PlatformGuidance(b.platform))
	prompt.WriteString("\n\n")
	fmt.Fprintf(prompt, "Content rules: %s", orDefault(b.brand.ContentRules, "Be engaging and relevant to the audience."))
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
