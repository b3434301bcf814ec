package model

import (
	"time"

	"github.com/google/uuid"
)

type SocialAccount struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_social_account_link"`
	BrandId     *uuid.UUID `gorm:"type:uuid;index"`
	Platform    string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_social_account_link"`
	AccountId   string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_social_account_link"`
	AccountName string     `gorm:"type:varchar(255)"`
	Token       string     `gorm:"type:text"`
	IsConnected bool       `gorm:"not null;default:true"`
	ConnectedAt time.Time  `gorm:"not null"`
}

func (SocialAccount) TableName() string {
	return "social_accounts"
}

type SocialPost struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	BrandId      uuid.UUID `gorm:"type:uuid;not null;index"`
	ContentId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Platform     string    `gorm:"type:varchar(50);not null"`
	Content      string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'draft'"`
	ScheduledFor *time.Time
	PublishedAt  *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (SocialPost) TableName() string {
	return "social_posts"
}
