package service

import (
	"context"
	"errors"
	"strings"

	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/repository/contract"
	"flowa-be/internal/repository/specification"
	"flowa-be/internal/repository/unitofwork"
	"flowa-be/pkg/access"

	"github.com/google/uuid"
)

// gate turns an access outcome into the matching application error.
// A missing resource is reported before ownership is looked at.
func gate(actor access.Actor, found bool, resource string, owners ...uuid.UUID) error {
	switch access.Check(actor, found, owners...) {
	case access.Missing:
		return apperror.NotFound(resource + " not found")
	case access.Denied:
		return apperror.Forbidden("Not authorized to access this " + strings.ToLower(resource))
	}
	return nil
}

func parseID(raw, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.NotFound(resource + " not found")
	}
	return id, nil
}

// activeBrandFor loads an active brand and checks the actor owns it.
func activeBrandFor(ctx context.Context, uow unitofwork.UnitOfWork, actor access.Actor, brandId uuid.UUID) (*entity.Brand, error) {
	brand, err := uow.BrandRepository().FindOne(ctx, specification.ByID{ID: brandId}, specification.ActiveOnly{})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	var owner uuid.UUID
	if brand != nil {
		owner = brand.OwnerId
	}
	if err := gate(actor, brand != nil, "Brand", owner); err != nil {
		return nil, err
	}
	return brand, nil
}

// sessionFor loads a chat session with its brand. The brand may be
// soft-deleted; history stays reachable. Both the session owner and the
// brand owner may act on it.
func sessionFor(ctx context.Context, uow unitofwork.UnitOfWork, actor access.Actor, sessionId uuid.UUID) (*entity.ChatSession, *entity.Brand, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	if session == nil {
		return nil, nil, gate(actor, false, "Chat")
	}

	brand, err := uow.BrandRepository().FindOne(ctx, specification.ByID{ID: session.BrandId})
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	owners := []uuid.UUID{session.UserId}
	if brand != nil {
		owners = append(owners, brand.OwnerId)
	} else {
		brand = &entity.Brand{Id: session.BrandId}
	}
	if err := gate(actor, true, "Chat", owners...); err != nil {
		return nil, nil, err
	}
	return session, brand, nil
}

// storageError maps a failed versioned write to a conflict.
func storageError(err error) error {
	if errors.Is(err, contract.ErrStaleVersion) {
		return apperror.Conflict("Chat was modified concurrently, please retry")
	}
	return apperror.Internal(err)
}
