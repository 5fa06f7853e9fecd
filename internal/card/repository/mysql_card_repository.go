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

// MySQLCardRepository implements card persistence for MySQL.
// UUIDs are stored as BINARY(16).
type MySQLCardRepository struct {
	db *sql.DB
}

// NewMySQLCardRepository creates a new MySQL card repository.
func NewMySQLCardRepository(db *sql.DB) *MySQLCardRepository {
	return &MySQLCardRepository{db: db}
}

// Create inserts a new card.
func (m *MySQLCardRepository) Create(ctx context.Context, card *domain.Card) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO pokemon_cards (` + cardColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := card.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal card id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + cardColumns + ` FROM pokemon_cards WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal card id")
	}

	var (
		card       domain.Card
		cardIDData []byte
	)
	err = querier.QueryRowContext(ctx, query, idBytes).Scan(
		&cardIDData,
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
	if err := card.ID.UnmarshalBinary(cardIDData); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal card id")
	}

	return &card, nil
}

// List retrieves all cards ordered by pokedex number.
func (m *MySQLCardRepository) List(ctx context.Context) ([]*domain.Card, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + cardColumns + ` FROM pokemon_cards ORDER BY pokedex_id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list cards")
	}
	defer func() { _ = rows.Close() }()

	var cards []*domain.Card
	for rows.Next() {
		var (
			card    domain.Card
			idBytes []byte
		)
		if err := rows.Scan(
			&idBytes,
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
		if err := card.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal card id")
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
func (m *MySQLCardRepository) Update(ctx context.Context, card *domain.Card) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE pokemon_cards
			  SET name = ?,
			  	  pokedex_id = ?,
				  type_id = ?,
				  life_points = ?,
				  size = ?,
				  weight = ?,
				  image_url = ?,
				  updated_at = ?
			  WHERE id = ?`

	id, err := card.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal card id")
	}

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
		id,
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
func (m *MySQLCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM pokemon_cards WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal card id")
	}

	result, err := querier.ExecContext(ctx, query, idBytes)
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
