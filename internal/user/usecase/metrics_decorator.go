package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/poketrade/pokecards/internal/metrics"
	"github.com/poketrade/pokecards/internal/user/domain"
)

// userUseCaseWithMetrics decorates UserUseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	u.metrics.RecordOperation(ctx, "user", operation, status)
	u.metrics.RecordDuration(ctx, "user", operation, time.Since(start), status)
}

// Register records metrics for registration operations.
func (u *userUseCaseWithMetrics) Register(
	ctx context.Context,
	input *domain.RegisterInput,
) (*domain.RegisterOutput, error) {
	start := time.Now()
	output, err := u.next.Register(ctx, input)
	u.record(ctx, "register", start, err)
	return output, err
}

// Login records metrics for login operations.
func (u *userUseCaseWithMetrics) Login(
	ctx context.Context,
	input *domain.LoginInput,
) (*domain.LoginOutput, error) {
	start := time.Now()
	output, err := u.next.Login(ctx, input)
	u.record(ctx, "login", start, err)
	return output, err
}

// GetByID records metrics for user retrieval operations.
func (u *userUseCaseWithMetrics) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetByID(ctx, id)
	u.record(ctx, "get", start, err)
	return user, err
}

// List records metrics for user list operations.
func (u *userUseCaseWithMetrics) List(ctx context.Context) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.List(ctx)
	u.record(ctx, "list", start, err)
	return users, err
}

// Update records metrics for user update operations.
func (u *userUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Update(ctx, id, input)
	u.record(ctx, "update", start, err)
	return user, err
}

// Delete records metrics for user delete operations.
func (u *userUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := u.next.Delete(ctx, id)
	u.record(ctx, "delete", start, err)
	return err
}
