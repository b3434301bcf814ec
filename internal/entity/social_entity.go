package entity

import (
	"time"

	"github.com/google/uuid"
)

var SupportedSocialPlatforms = []string{"facebook", "instagram", "tiktok", "twitter", "linkedin", "threads"}

func IsSupportedSocialPlatform(platform string) bool {
	for _, p := range SupportedSocialPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
	PostStatusFailed    PostStatus = "failed"
)

func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusScheduled, PostStatusPublished, PostStatusFailed:
		return true
	}
	return false
}

type SocialAccount struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	BrandId     *uuid.UUID
	Platform    string
	AccountId   string
	AccountName string
	Token       string
	IsConnected bool
	ConnectedAt time.Time
}

type SocialPost struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	BrandId      uuid.UUID
	ContentId    uuid.UUID
	Platform     string
	Content      string
	Status       PostStatus
	ScheduledFor *time.Time
	PublishedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SocialPostFilter narrows a user's post listing. Empty fields are ignored.
type SocialPostFilter struct {
	BrandId  *uuid.UUID
	Platform string
	Status   PostStatus
}
