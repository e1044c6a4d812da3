package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/storage"
)

// SendFriendRequest создаёт заявку от actor к userID.
func (s *Service) SendFriendRequest(ctx context.Context, actor *models.Account, userID string) (*models.FriendRequest, error) {
	const op = "service.friends.SendFriendRequest"

	if userID == actor.ID {
		return nil, fmt.Errorf("%s: %w", op, ErrSelfFriendRequest)
	}

	_, err := s.storage.RequestBetween(ctx, actor.ID, userID)
	if err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrFriendRequestExists)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	to, err := s.storage.AccountByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidRecipient)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if to.Frozen() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidRecipient)
	}

	fr := models.NewFriendRequest(actor.ID, userID, s.now())
	if err := s.storage.CreateFriendRequest(ctx, fr); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrFriendRequestExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return fr, nil
}

// AcceptFriendRequest принимает заявку, адресованную actor, и связывает обоих
// пользователей дружбой.
func (s *Service) AcceptFriendRequest(ctx context.Context, actor *models.Account, requestID string) error {
	const op = "service.friends.AcceptFriendRequest"

	fr, err := s.storage.AcceptFriendRequest(ctx, requestID, actor.ID, s.now())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNoMatch)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.storage.AddFriend(gctx, fr.CreatedBy, fr.SendTo) })
	g.Go(func() error { return s.storage.AddFriend(gctx, fr.SendTo, fr.CreatedBy) })

	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
