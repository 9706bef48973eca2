package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Jesterhearts/piece-go/internal/config"
	"github.com/Jesterhearts/piece-go/internal/game"
)

// Store is the PostgreSQL-backed card data store. It holds bulk card data
// (names, types, stats, keywords); scripted effects come from the built-in
// registry and are merged by name on load.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewStore connects a card store using the database configuration.
func NewStore(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect card database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping card database: %w", err)
	}

	logger.Info("card store connected",
		zap.Int32("max_conns", cfg.MaxConns),
	)
	return &Store{pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// cardRow mirrors the cards table columns the engine consumes.
type cardRow struct {
	Name      string
	ManaValue int
	Types     string
	Subtypes  string
	Keywords  string
	Colors    string
	Power     *int
	Toughness *int
}

// LoadInto reads every card row and registers the resulting faces into the
// registry. Rows whose names are already registered are skipped: scripted
// definitions win over bulk data.
func (s *Store) LoadInto(ctx context.Context, registry *Registry) (int, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT name, mana_value, types, subtypes, keywords, colors, power, toughness
		FROM cards
		ORDER BY name
	`)
	if err != nil {
		return 0, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	loaded := 0
	for rows.Next() {
		var row cardRow
		if err := rows.Scan(
			&row.Name,
			&row.ManaValue,
			&row.Types,
			&row.Subtypes,
			&row.Keywords,
			&row.Colors,
			&row.Power,
			&row.Toughness,
		); err != nil {
			return loaded, fmt.Errorf("scan card row: %w", err)
		}
		if _, exists := registry.Get(row.Name); exists {
			continue
		}
		registry.Register(row.toFace())
		loaded++
	}
	if err := rows.Err(); err != nil {
		return loaded, fmt.Errorf("iterate cards: %w", err)
	}
	s.logger.Info("loaded card data", zap.Int("cards", loaded))
	return loaded, nil
}

// SaveFace upserts a single face's bulk data.
func (s *Store) SaveFace(ctx context.Context, face game.CardFace) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO cards (name, mana_value, types, subtypes, keywords, colors, power, toughness)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name) DO UPDATE SET
			mana_value = EXCLUDED.mana_value,
			types = EXCLUDED.types,
			subtypes = EXCLUDED.subtypes,
			keywords = EXCLUDED.keywords,
			colors = EXCLUDED.colors,
			power = EXCLUDED.power,
			toughness = EXCLUDED.toughness
	`,
		face.Name,
		face.ManaValue,
		strings.Join(face.Types, ","),
		strings.Join(face.Subtypes, ","),
		strings.Join(face.Keywords, ","),
		strings.Join(face.Colors, ","),
		face.Power,
		face.Toughness,
	)
	if err != nil {
		return fmt.Errorf("save card %q: %w", face.Name, err)
	}
	return nil
}

func (r cardRow) toFace() game.CardFace {
	return game.CardFace{
		Name:      r.Name,
		ManaValue: r.ManaValue,
		Types:     splitList(r.Types),
		Subtypes:  splitList(r.Subtypes),
		Keywords:  splitList(r.Keywords),
		Colors:    splitList(r.Colors),
		Power:     r.Power,
		Toughness: r.Toughness,
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
