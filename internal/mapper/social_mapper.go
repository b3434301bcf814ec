package mapper

import (
	"flowa-be/internal/entity"
	"flowa-be/internal/model"
)

type SocialMapper struct{}

func NewSocialMapper() *SocialMapper {
	return &SocialMapper{}
}

func (m *SocialMapper) AccountToEntity(a *model.SocialAccount) *entity.SocialAccount {
	if a == nil {
		return nil
	}
	return &entity.SocialAccount{
		Id:          a.Id,
		UserId:      a.UserId,
		BrandId:     a.BrandId,
		Platform:    a.Platform,
		AccountId:   a.AccountId,
		AccountName: a.AccountName,
		Token:       a.Token,
		IsConnected: a.IsConnected,
		ConnectedAt: a.ConnectedAt,
	}
}

func (m *SocialMapper) AccountToModel(a *entity.SocialAccount) *model.SocialAccount {
	if a == nil {
		return nil
	}
	return &model.SocialAccount{
		Id:          a.Id,
		UserId:      a.UserId,
		BrandId:     a.BrandId,
		Platform:    a.Platform,
		AccountId:   a.AccountId,
		AccountName: a.AccountName,
		Token:       a.Token,
		IsConnected: a.IsConnected,
		ConnectedAt: a.ConnectedAt,
	}
}

func (m *SocialMapper) AccountsToEntities(accounts []*model.SocialAccount) []*entity.SocialAccount {
	out := make([]*entity.SocialAccount, len(accounts))
	for i, a := range accounts {
		out[i] = m.AccountToEntity(a)
	}
	return out
}

func (m *SocialMapper) PostToEntity(p *model.SocialPost) *entity.SocialPost {
	if p == nil {
		return nil
	}
	return &entity.SocialPost{
		Id:           p.Id,
		UserId:       p.UserId,
		BrandId:      p.BrandId,
		ContentId:    p.ContentId,
		Platform:     p.Platform,
		Content:      p.Content,
		Status:       entity.PostStatus(p.Status),
		ScheduledFor: p.ScheduledFor,
		PublishedAt:  p.PublishedAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *SocialMapper) PostToModel(p *entity.SocialPost) *model.SocialPost {
	if p == nil {
		return nil
	}
	return &model.SocialPost{
		Id:           p.Id,
		UserId:       p.UserId,
		BrandId:      p.BrandId,
		ContentId:    p.ContentId,
		Platform:     p.Platform,
		Content:      p.Content,
		Status:       string(p.Status),
		ScheduledFor: p.ScheduledFor,
		PublishedAt:  p.PublishedAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *SocialMapper) PostsToEntities(posts []*model.SocialPost) []*entity.SocialPost {
	out := make([]*entity.SocialPost, len(posts))
	for i, p := range posts {
		out[i] = m.PostToEntity(p)
	}
	return out
}
