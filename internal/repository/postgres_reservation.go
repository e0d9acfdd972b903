package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-tickets/internal/domain"
)

type PostgresSeatReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatReservationRepository(db *pgxpool.Pool) *PostgresSeatReservationRepository {
	return &PostgresSeatReservationRepository{
		db: db,
	}
}

func (p *PostgresSeatReservationRepository) Create(ctx context.Context, reservation *domain.SeatReservation) error {
	query := `
		INSERT INTO seat_reservations (account_id, seats)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		reservation.AccountID,
		reservation.Seats,
	).Scan(&reservation.ID, &reservation.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return domain.ErrInvalidSeatCount
		}

		return err
	}

	return nil
}

func (p *PostgresSeatReservationRepository) GetByAccountId(
	ctx context.Context,
	accountID int64) ([]domain.SeatReservation, error) {

	query := `
		SELECT id, account_id, seats, created_at
		FROM seat_reservations
		WHERE account_id = $1
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.SeatReservation, 0)

	for rows.Next() {
		var reservation domain.SeatReservation

		err = rows.Scan(
			&reservation.ID,
			&reservation.AccountID,
			&reservation.Seats,
			&reservation.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}
