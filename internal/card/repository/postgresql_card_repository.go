// Package repository implements data persistence for Pokémon cards.
//
// Provides PostgreSQL and MySQL implementations with transaction support via
// database.GetTx(). PostgreSQL uses native UUID types, MySQL uses BINARY(16).
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/poketrade/pokecards/internal/card/domain"
	"github.com/poketrade/pokecards/internal/database"
	apperrors "github.com/poketrade/pokecards/internal/errors"
)

const cardColumns = `id, name, pokedex_id, type_id, life_points, size, weight, image_url, created_at, updated_at`

// PostgreSQLCardRepository implements card persistence for PostgreSQL.
type PostgreSQLCardRepository struct {
	db *sql.DB
}

// NewPostgreSQLCardRepository creates a new PostgreSQL card repository.
func NewPostgreSQLCardRepository(db *sql.DB) *PostgreSQLCardRepository {
	return &PostgreSQLCardRepository{db: db}
}

// Create inserts a new card.
func (p *PostgreSQLCardRepository) Create(ctx context.Context, card *domain.Card) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO pokemon_cards (` + cardColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(
		ctx,
		query,
		card.ID,
		card.Name,
		card.PokedexID,
		card.TypeID,
		card.LifePoints,
		card.Size,
		card.Weight,
		card.ImageURL,
		card.CreatedAt,
		card.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create card")
	}
	return nil
}

// GetByID retrieves a card by ID.
func (p *PostgreSQLCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + cardColumns + ` FROM pokemon_cards WHERE id = $1`

	var card domain.Card
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&card.ID,
		&card.Name,
		&card.PokedexID,
		&card.TypeID,
		&card.LifePoints,
		&card.Size,
		&card.Weight,
		&card.ImageURL,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get card")
	}

	return &card, nil
}

// List retrieves all cards ordered by pokedex number.
func (p *PostgreSQLCardRepository) List(ctx context.Context) ([]*domain.Card, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + cardColumns + ` FROM pokemon_cards ORDER BY pokedex_id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list cards")
	}
	defer func() { _ = rows.Close() }()

	var cards []*domain.Card
	for rows.Next() {
		var card domain.Card
		if err := rows.Scan(
			&card.ID,
			&card.Name,
			&card.PokedexID,
			&card.TypeID,
			&card.LifePoints,
			&card.Size,
			&card.Weight,
			&card.ImageURL,
			&card.CreatedAt,
			&card.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan card")
		}
		cards = append(cards, &card)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate cards")
	}

	return cards, nil
}

// Update modifies an existing card. Reports domain.ErrCardNotFound when the
// ID matches no row.
func (p *PostgreSQLCardRepository) Update(ctx context.Context, card *domain.Card) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE pokemon_cards
			  SET name = $1,
			  	  pokedex_id = $2,
				  type_id = $3,
				  life_points = $4,
				  size = $5,
				  weight = $6,
				  image_url = $7,
				  updated_at = $8
			  WHERE id = $9`

	result, err := querier.ExecContext(
		ctx,
		query,
		card.Name,
		card.PokedexID,
		card.TypeID,
		card.LifePoints,
		card.Size,
		card.Weight,
		card.ImageURL,
		card.UpdatedAt,
		card.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update card")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrCardNotFound
	}

	return nil
}

// Delete removes a card by ID. Reports domain.ErrCardNotFound when the ID
// matches no row.
func (p *PostgreSQLCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM pokemon_cards WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete card")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrCardNotFound
	}

	return nil
}
