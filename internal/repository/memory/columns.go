package memory

import (
	"flowa-be/internal/entity"
)

func userColumns(u *entity.User) record {
	return record{
		"id":         u.Id,
		"email":      u.Email,
		"name":       u.Name,
		"role":       string(u.Role),
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

func brandColumns(b *entity.Brand) record {
	return record{
		"id":         b.Id,
		"owner_id":   b.OwnerId,
		"name":       b.Name,
		"is_active":  b.IsActive,
		"created_at": b.CreatedAt,
		"updated_at": b.UpdatedAt,
	}
}

func themeColumns(t *entity.Theme) record {
	return record{
		"id":         t.Id,
		"brand_id":   t.BrandId,
		"name":       t.Name,
		"category":   string(t.Category),
		"is_active":  t.IsActive,
		"created_at": t.CreatedAt,
		"updated_at": t.UpdatedAt,
	}
}

func productColumns(p *entity.Product) record {
	return record{
		"id":         p.Id,
		"brand_id":   p.BrandId,
		"name":       p.Name,
		"is_active":  p.IsActive,
		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}
}

func sessionColumns(s *entity.ChatSession) record {
	return record{
		"id":         s.Id,
		"user_id":    s.UserId,
		"brand_id":   s.BrandId,
		"title":      s.Title,
		"ai_model":   string(s.AiModel),
		"version":    s.Version,
		"created_at": s.CreatedAt,
		"updated_at": s.UpdatedAt,
	}
}

func messageColumns(m *entity.ChatMessage) record {
	return record{
		"id":              m.Id,
		"chat_session_id": m.ChatSessionId,
		"position":        m.Position,
		"role":            string(m.Role),
		"timestamp":       m.Timestamp,
	}
}

func contentColumns(c *entity.GeneratedContent) record {
	return record{
		"id":              c.Id,
		"chat_session_id": c.ChatSessionId,
		"position":        c.Position,
		"theme_id":        c.ThemeId,
		"platform":        c.Platform,
		"created_at":      c.CreatedAt,
	}
}

func accountColumns(a *entity.SocialAccount) record {
	rec := record{
		"id":           a.Id,
		"user_id":      a.UserId,
		"brand_id":     nil,
		"platform":     a.Platform,
		"account_id":   a.AccountId,
		"is_connected": a.IsConnected,
		"connected_at": a.ConnectedAt,
	}
	if a.BrandId != nil {
		rec["brand_id"] = *a.BrandId
	}
	return rec
}

func postColumns(p *entity.SocialPost) record {
	return record{
		"id":         p.Id,
		"user_id":    p.UserId,
		"brand_id":   p.BrandId,
		"content_id": p.ContentId,
		"platform":   p.Platform,
		"status":     string(p.Status),
		"created_at": p.CreatedAt,
	}
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	return append([]string(nil), values...)
}

func cloneUser(u entity.User) entity.User {
	if u.ApiKeys != nil {
		u.ApiKeys = append([]entity.ApiKey(nil), u.ApiKeys...)
	}
	if u.PasswordHash != nil {
		hash := *u.PasswordHash
		u.PasswordHash = &hash
	}
	return u
}

func cloneBrand(b entity.Brand) entity.Brand {
	b.Keywords = cloneStrings(b.Keywords)
	b.Hashtags = cloneStrings(b.Hashtags)
	b.Images = cloneStrings(b.Images)
	if b.PostingSchedule != nil {
		b.PostingSchedule = append([]entity.PostingSlot(nil), b.PostingSchedule...)
	}
	return b
}

func cloneProduct(p entity.Product) entity.Product {
	p.Features = cloneStrings(p.Features)
	p.Benefits = cloneStrings(p.Benefits)
	p.Images = cloneStrings(p.Images)
	return p
}

// cloneSession drops any loaded log; sessions are stored as header rows.
func cloneSession(s entity.ChatSession) entity.ChatSession {
	s.Messages = nil
	s.GeneratedContent = nil
	return s
}

func cloneAccount(a entity.SocialAccount) entity.SocialAccount {
	if a.BrandId != nil {
		id := *a.BrandId
		a.BrandId = &id
	}
	return a
}

func clonePost(p entity.SocialPost) entity.SocialPost {
	if p.ScheduledFor != nil {
		t := *p.ScheduledFor
		p.ScheduledFor = &t
	}
	if p.PublishedAt != nil {
		t := *p.PublishedAt
		p.PublishedAt = &t
	}
	return p
}

func cloneSettings(s entity.Settings) entity.Settings {
	s.Ai.PromptTemplates = append([]entity.PromptTemplate(nil), s.Ai.PromptTemplates...)
	s.Advanced.WebhookCallbacks = cloneStrings(s.Advanced.WebhookCallbacks)
	if s.Advanced.ProxySettings != nil {
		proxy := *s.Advanced.ProxySettings
		s.Advanced.ProxySettings = &proxy
	}
	if s.UpdatedAt != nil {
		t := *s.UpdatedAt
		s.UpdatedAt = &t
	}
	return s
}
