package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/poketrade/pokecards/internal/card/domain"
	"github.com/poketrade/pokecards/internal/metrics"
)

// cardUseCaseWithMetrics decorates CardUseCase with metrics instrumentation.
type cardUseCaseWithMetrics struct {
	next    CardUseCase
	metrics metrics.BusinessMetrics
}

// NewCardUseCaseWithMetrics wraps a CardUseCase with metrics recording.
func NewCardUseCaseWithMetrics(useCase CardUseCase, m metrics.BusinessMetrics) CardUseCase {
	return &cardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *cardUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.metrics.RecordOperation(ctx, "card", operation, status)
	c.metrics.RecordDuration(ctx, "card", operation, time.Since(start), status)
}

// Create records metrics for card creation operations.
func (c *cardUseCaseWithMetrics) Create(
	ctx context.Context,
	input *domain.CreateCardInput,
) (*domain.Card, error) {
	start := time.Now()
	card, err := c.next.Create(ctx, input)
	c.record(ctx, "create", start, err)
	return card, err
}

// GetByID records metrics for card retrieval operations.
func (c *cardUseCaseWithMetrics) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	start := time.Now()
	card, err := c.next.GetByID(ctx, id)
	c.record(ctx, "get", start, err)
	return card, err
}

// List records metrics for card list operations.
func (c *cardUseCaseWithMetrics) List(ctx context.Context) ([]*domain.Card, error) {
	start := time.Now()
	cards, err := c.next.List(ctx)
	c.record(ctx, "list", start, err)
	return cards, err
}

// Update records metrics for card update operations.
func (c *cardUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateCardInput,
) (*domain.Card, error) {
	start := time.Now()
	card, err := c.next.Update(ctx, id, input)
	c.record(ctx, "update", start, err)
	return card, err
}

// Delete records metrics for card delete operations.
func (c *cardUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	start := time.Now()
	card, err := c.next.Delete(ctx, id)
	c.record(ctx, "delete", start, err)
	return card, err
}
