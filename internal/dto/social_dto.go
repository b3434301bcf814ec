package dto

import (
	"time"

	"github.com/google/uuid"
)

type ConnectSocialRequest struct {
	Platform    string `json:"platform" validate:"required"`
	BrandId     string `json:"brandId" validate:"omitempty,uuid"`
	AccountName string `json:"accountName"`
}

type SocialAccountResponse struct {
	Id          uuid.UUID  `json:"id"`
	BrandId     *uuid.UUID `json:"brandId,omitempty"`
	Platform    string     `json:"platform"`
	AccountId   string     `json:"accountId"`
	AccountName string     `json:"accountName"`
	IsConnected bool       `json:"isConnected"`
	ConnectedAt time.Time  `json:"connectedAt"`
}

type CreateSocialPostRequest struct {
	ContentId     string     `json:"contentId" validate:"required,uuid"`
	Platforms     []string   `json:"platforms" validate:"required,min=1"`
	ScheduledTime *time.Time `json:"scheduledTime"`
	BrandId       string     `json:"brandId" validate:"required,uuid"`
}

type SocialPostResponse struct {
	Id           uuid.UUID  `json:"id"`
	BrandId      uuid.UUID  `json:"brandId"`
	ContentId    uuid.UUID  `json:"contentId"`
	Platform     string     `json:"platform"`
	Content      string     `json:"content"`
	Status       string     `json:"status"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type SocialPostsResponse struct {
	Posts []SocialPostResponse `json:"posts"`
}

type SocialPostQuery struct {
	BrandId  string `query:"brandId" validate:"omitempty,uuid"`
	Platform string `query:"platform"`
	Status   string `query:"status" validate:"omitempty,oneof=draft scheduled published failed"`
}

type ScheduleItem struct {
	Id            string    `json:"id" validate:"required,uuid"`
	ScheduledTime time.Time `json:"scheduledTime" validate:"required"`
}

type SchedulePostsRequest struct {
	Posts []ScheduleItem `json:"posts" validate:"required,min=1,dive"`
}

type UpdatePostStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft scheduled published failed"`
}
