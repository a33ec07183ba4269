package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/hotelconcierge/internal/catalog"
	"github.com/Domenick1991/hotelconcierge/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `CREATE TABLE IF NOT EXISTS rooms (
	id BIGINT PRIMARY KEY,
	type TEXT NOT NULL,
	price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
	availability TEXT NOT NULL
)`

type PGRoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) *PGRoomRepository {
	return &PGRoomRepository{db: db}
}

func (r *PGRoomRepository) Query(ctx context.Context, tmpl catalog.Template, params catalog.Params) ([]domain.Row, error) {
	if tmpl.IsEmpty() {
		return nil, nil
	}
	args, err := catalog.Bind(tmpl, params)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, tmpl.SQL, args.Positional(tmpl)...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", tmpl.Name, err)
	}
	defer rows.Close()

	result := make([]domain.Row, 0)
	for rows.Next() {
		var (
			row      domain.Row
			roomType string
		)
		if tmpl.Grouped {
			err = rows.Scan(&roomType, &row.Price, &row.Count)
		} else {
			err = rows.Scan(&row.ID, &roomType, &row.Price)
		}
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", tmpl.Name, err)
		}
		row.Type = domain.RoomType(roomType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return catalog.Annotate(tmpl, result), nil
}

func (r *PGRoomRepository) UpdateAvailability(ctx context.Context, roomID int64, status domain.Availability) (int64, error) {
	if _, err := domain.ParseAvailability(string(status)); err != nil {
		return 0, err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	res, err := tx.Exec(ctx, `UPDATE rooms SET availability = $1 WHERE id = $2`, string(status), roomID)
	if err != nil {
		return 0, fmt.Errorf("update room %d: %w", roomID, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

// Seed replaces the whole room table with the given inventory in one transaction.
func (r *PGRoomRepository) Seed(ctx context.Context, rooms []domain.Room) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create rooms table: %w", err)
	}
	if _, err := tx.Exec(ctx, `TRUNCATE rooms`); err != nil {
		return fmt.Errorf("truncate rooms: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"rooms"},
		[]string{"id", "type", "price", "availability"},
		pgx.CopyFromSlice(len(rooms), func(i int) ([]any, error) {
			return []any{rooms[i].ID, string(rooms[i].Type), rooms[i].Price, string(rooms[i].Availability)}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy rooms: %w", err)
	}
	return tx.Commit(ctx)
}

var _ RoomRepository = (*PGRoomRepository)(nil)
