package memory

import (
	"context"
	"time"

	"flowa-be/internal/entity"
	"flowa-be/internal/repository/contract"
	"flowa-be/internal/repository/specification"

	"github.com/google/uuid"
)

type chatSessionRepository struct {
	uow *UnitOfWork
}

func (r *chatSessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	if session.Id == uuid.Nil {
		session.Id = uuid.New()
	}
	if session.Version == 0 {
		session.Version = 1
	}
	stamp(&session.CreatedAt, &session.UpdatedAt)
	s.sessions.insert(s, log, session.Id, *session)
	return nil
}

func (r *chatSessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	return first(s.sessions.all(), sessionColumns, specs)
}

func (r *chatSessionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	rows, err := query(s.sessions.all(), sessionColumns, specs)
	return pointers(rows), err
}

func (r *chatSessionRepository) SaveVersioned(ctx context.Context, session *entity.ChatSession, expectedVersion int) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions.get(session.Id)
	if !ok || stored.Version != expectedVersion {
		return contract.ErrStaleVersion
	}

	stored.Title = session.Title
	stored.MessageCount = session.MessageCount
	stored.ContentCount = session.ContentCount
	stored.Version = expectedVersion + 1
	stored.UpdatedAt = time.Now()
	s.sessions.replace(log, stored.Id, stored)

	session.Version = stored.Version
	session.UpdatedAt = stored.UpdatedAt
	return nil
}

type chatMessageRepository struct {
	uow *UnitOfWork
}

func (r *chatMessageRepository) CreateBulk(ctx context.Context, messages []*entity.ChatMessage) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	taken := make(map[uuid.UUID]map[int]bool)
	for _, m := range s.messages.all() {
		if taken[m.ChatSessionId] == nil {
			taken[m.ChatSessionId] = make(map[int]bool)
		}
		taken[m.ChatSessionId][m.Position] = true
	}
	for _, m := range messages {
		if taken[m.ChatSessionId][m.Position] {
			return contract.ErrStaleVersion
		}
	}
	for _, m := range messages {
		s.messages.insert(s, log, m.Id, *m)
	}
	return nil
}

func (r *chatMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	rows, err := query(s.messages.all(), messageColumns, specs)
	return pointers(rows), err
}

type generatedContentRepository struct {
	uow *UnitOfWork
}

func (r *generatedContentRepository) CreateBulk(ctx context.Context, contents []*entity.GeneratedContent) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	taken := make(map[uuid.UUID]map[int]bool)
	for _, c := range s.contents.all() {
		if taken[c.ChatSessionId] == nil {
			taken[c.ChatSessionId] = make(map[int]bool)
		}
		taken[c.ChatSessionId][c.Position] = true
	}
	for _, c := range contents {
		if taken[c.ChatSessionId][c.Position] {
			return contract.ErrStaleVersion
		}
	}
	for _, c := range contents {
		s.contents.insert(s, log, c.Id, *c)
	}
	return nil
}

func (r *generatedContentRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GeneratedContent, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	return first(s.contents.all(), contentColumns, specs)
}

func (r *generatedContentRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedContent, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	rows, err := query(s.contents.all(), contentColumns, specs)
	return pointers(rows), err
}
