package usecase

import (
	"context"
	"errors"

	"workmatch/internal/domain/notification"
	"workmatch/internal/repository"

	"github.com/google/uuid"
)

type NotificationUsecase interface {
	List(ctx context.Context, managerID uuid.UUID) ([]notification.Notification, error)
	MarkRead(ctx context.Context, managerID, notificationID uuid.UUID) error
	UnreadCount(ctx context.Context, managerID uuid.UUID) (int, error)
}

type Notification struct {
	repo repository.NotificationRepository
}

func NewNotificationUsecase(repo repository.NotificationRepository) *Notification {
	return &Notification{repo: repo}
}

func (u *Notification) List(ctx context.Context, managerID uuid.UUID) ([]notification.Notification, error) {
	if managerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.repo.ListByManager(ctx, managerID, notification.ListLimit)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// MarkRead reports ErrNotificationNotFound both for unknown ids and for
// notifications addressed to another manager.
func (u *Notification) MarkRead(ctx context.Context, managerID, notificationID uuid.UUID) error {
	if managerID == uuid.Nil {
		return ErrUnauthorized
	}
	if notificationID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.MarkRead(ctx, notificationID, managerID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Notification) UnreadCount(ctx context.Context, managerID uuid.UUID) (int, error) {
	if managerID == uuid.Nil {
		return 0, ErrUnauthorized
	}
	n, err := u.repo.CountUnread(ctx, managerID)
	if err != nil {
		return 0, ErrInternal
	}
	return n, nil
}
