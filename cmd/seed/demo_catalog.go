package main

import (
	"context"
	"log"
	"time"

	"flowa-be/internal/entity"
	"flowa-be/internal/repository/specification"
	"flowa-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const demoAdminEmail = "admin@flowa.local"

type demoTheme struct {
	Name        string
	Description string
	Category    entity.ThemeCategory
	Style       string
}

var demoThemes = []demoTheme{
	{
		Name:        "Brewing Tips",
		Description: "Practical advice for better coffee at home",
		Category:    entity.ThemeCategoryKnowledge,
		Style:       "educational",
	},
	{
		Name:        "Roastery News",
		Description: "Seasonal releases and shop announcements",
		Category:    entity.ThemeCategoryNews,
		Style:       "informative",
	},
	{
		Name:        "Cafe Life",
		Description: "Behind the counter moments",
		Category:    entity.ThemeCategoryEntertainment,
		Style:       "casual",
	},
}

type demoProduct struct {
	Name           string
	Description    string
	Features       []string
	Benefits       []string
	TargetAudience string
}

var demoProducts = []demoProduct{
	{
		Name:           "House Blend",
		Description:    "Medium roast with chocolate notes",
		Features:       []string{"Single origin beans", "Roasted weekly"},
		Benefits:       []string{"Smooth every morning"},
		TargetAudience: "Home brewers",
	},
	{
		Name:           "Cold Brew Kit",
		Description:    "Everything needed for overnight cold brew",
		Features:       []string{"Reusable filter", "Pre-measured grounds"},
		Benefits:       []string{"Cafe cold brew without the queue"},
		TargetAudience: "Busy professionals",
	},
}

// SeedDemoCatalog creates an admin that owns one demo brand with themes and
// products. It does nothing when the admin already exists.
func SeedDemoCatalog(ctx context.Context, factory unitofwork.RepositoryFactory, password string) error {
	uow := factory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: demoAdminEmail})
	if err != nil {
		return err
	}
	if existing != nil {
		log.Printf("Info: %s already exists, skipping", demoAdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashed := string(hash)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	now := time.Now()
	admin := &entity.User{
		Id:           uuid.New(),
		Name:         "Flowa Admin",
		Email:        demoAdminEmail,
		PasswordHash: &hashed,
		Role:         entity.UserRoleAdmin,
		ApiKeys:      []entity.ApiKey{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uow.UserRepository().Create(ctx, admin); err != nil {
		return err
	}

	brand := &entity.Brand{
		Id:           uuid.New(),
		OwnerId:      admin.Id,
		Name:         "Flowa Coffee",
		Description:  "Neighbourhood roastery",
		Tone:         "friendly",
		Keywords:     []string{"coffee", "roastery", "brewing"},
		Hashtags:     []string{"#flowacoffee", "#coffeetime"},
		ContentRules: "Avoid price claims",
		Images:       []string{},
		PostingSchedule: []entity.PostingSlot{
			{Day: "monday", Time: "09:00"},
			{Day: "thursday", Time: "18:00"},
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uow.BrandRepository().Create(ctx, brand); err != nil {
		return err
	}

	for _, t := range demoThemes {
		if err := uow.ThemeRepository().Create(ctx, &entity.Theme{
			Id:            uuid.New(),
			BrandId:       brand.Id,
			Name:          t.Name,
			Description:   t.Description,
			Category:      t.Category,
			ContentLength: entity.DefaultContentLength,
			Tone:          brand.Tone,
			Style:         t.Style,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}); err != nil {
			return err
		}
	}

	for _, p := range demoProducts {
		if err := uow.ProductRepository().Create(ctx, &entity.Product{
			Id:             uuid.New(),
			BrandId:        brand.Id,
			Name:           p.Name,
			Description:    p.Description,
			Features:       p.Features,
			Benefits:       p.Benefits,
			TargetAudience: p.TargetAudience,
			Images:         []string{},
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}
	log.Printf("Seeded admin %s with brand %q (%d themes, %d products)", admin.Email, brand.Name, len(demoThemes), len(demoProducts))
	return nil
}
