package repository

import (
	"context"
	"encoding/json"
	"errors"

	"granja_glitch/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each Game and Player as one JSONB document row. Row
// locks taken by the transactional reads (SELECT ... FOR UPDATE) make every
// RunTransaction an atomic read-validate-mutate-write cycle.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a store backed by the given pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// RunTransaction executes fn inside a database transaction. Any error from
// fn rolls the whole unit back: no partial writes.
func (s *PostgresStore) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	dbTx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = dbTx.Rollback(ctx) }()

	if err := fn(ctx, &pgTx{tx: dbTx}); err != nil {
		return err
	}
	return dbTx.Commit(ctx)
}

func (s *PostgresStore) GetGame(ctx context.Context, code string) (*domain.Game, error) {
	return scanGame(s.db.QueryRow(ctx, `SELECT doc FROM games WHERE code = $1`, code))
}

func (s *PostgresStore) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	return scanPlayer(s.db.QueryRow(ctx, `SELECT doc FROM players WHERE id = $1`, id))
}

func (s *PostgresStore) PlayersByGame(ctx context.Context, gameCode string) ([]*domain.Player, error) {
	rows, err := s.db.Query(ctx,
		`SELECT doc FROM players WHERE game_code = $1 ORDER BY id`, gameCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPlayers(rows)
}

// pgTx implements Tx over a pgx transaction. Reads lock the rows they touch
// so concurrent transactions on the same documents serialize.
type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) GetGame(ctx context.Context, code string) (*domain.Game, error) {
	return scanGame(t.tx.QueryRow(ctx, `SELECT doc FROM games WHERE code = $1 FOR UPDATE`, code))
}

func (t *pgTx) PutGame(ctx context.Context, g *domain.Game) error {
	doc, err := json.Marshal(g)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO games (code, doc) VALUES ($1, $2)
		ON CONFLICT (code) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`, g.Code, doc)
	return err
}

func (t *pgTx) DeleteGame(ctx context.Context, code string) error {
	_, err := t.tx.Exec(ctx, `DELETE FROM games WHERE code = $1`, code)
	return err
}

func (t *pgTx) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	return scanPlayer(t.tx.QueryRow(ctx, `SELECT doc FROM players WHERE id = $1 FOR UPDATE`, id))
}

func (t *pgTx) PutPlayer(ctx context.Context, p *domain.Player) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO players (id, game_code, doc) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`, p.ID, p.GameCode, doc)
	return err
}

func (t *pgTx) DeletePlayer(ctx context.Context, id string) error {
	_, err := t.tx.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	return err
}

func (t *pgTx) PlayersByGame(ctx context.Context, gameCode string) ([]*domain.Player, error) {
	rows, err := t.tx.Query(ctx,
		`SELECT doc FROM players WHERE game_code = $1 ORDER BY id FOR UPDATE`, gameCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPlayers(rows)
}

func scanGame(row pgx.Row) (*domain.Game, error) {
	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	var g domain.Game
	if err := json.Unmarshal(doc, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	var p domain.Player
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPlayers(rows pgx.Rows) ([]*domain.Player, error) {
	var players []*domain.Player
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var p domain.Player
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, err
		}
		players = append(players, &p)
	}
	return players, rows.Err()
}
