package persist

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Impact kinds.
const (
	ImpactHit     = "hit"
	ImpactBurnout = "burnout"
)

// ShotRecord is one journaled volley.
type ShotRecord struct {
	Volley      uuid.UUID
	Tick        uint64
	Weapon      string
	Round       string
	Muzzle      int
	Projectiles int
	Origin      mgl64.Vec3
	Direction   mgl64.Vec3
}

// ImpactRecord is how one projectile of a volley ended.
type ImpactRecord struct {
	Volley    uuid.UUID
	Tick      uint64
	Kind      string // ImpactHit or ImpactBurnout
	Source    string
	Target    string
	Point     mgl64.Vec3
	Damage    float64
	Travel    float64
	TimeAlive float64
}

// Batch is everything collected between two flushes.
type Batch struct {
	Shots   []ShotRecord
	Impacts []ImpactRecord
}

func (b *Batch) Len() int { return len(b.Shots) + len(b.Impacts) }

func (b *Batch) Reset() {
	b.Shots = b.Shots[:0]
	b.Impacts = b.Impacts[:0]
}

// RunSummary aggregates one run's journal.
type RunSummary struct {
	Shots    int
	Hits     int
	Burnouts int
	Damage   float64
}

type JournalRepo struct {
	db *DB
}

func NewJournalRepo(db *DB) *JournalRepo {
	return &JournalRepo{db: db}
}

// StartRun registers a new run and returns its id.
func (r *JournalRepo) StartRun(ctx context.Context, seed int64, loadout string) (uuid.UUID, error) {
	id := uuid.New()
	if _, err := r.db.Pool.Exec(ctx,
		`INSERT INTO runs (id, seed, loadout) VALUES ($1, $2, $3)`,
		id, seed, loadout,
	); err != nil {
		return uuid.Nil, fmt.Errorf("journal start run: %w", err)
	}
	return id, nil
}

// WriteBatch writes a batch in a single transaction. Shots go first so an
// impact never lands without its volley.
func (r *JournalRepo) WriteBatch(ctx context.Context, run uuid.UUID, b Batch) error {
	if b.Len() == 0 {
		return nil
	}
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("journal begin: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, s := range b.Shots {
		batch.Queue(
			`INSERT INTO shots (volley, run_id, tick, weapon, round, muzzle, projectiles,
			                    origin_x, origin_y, origin_z, dir_x, dir_y, dir_z)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			 ON CONFLICT (volley) DO NOTHING`,
			s.Volley, run, int64(s.Tick), s.Weapon, s.Round, s.Muzzle, s.Projectiles,
			s.Origin[0], s.Origin[1], s.Origin[2], s.Direction[0], s.Direction[1], s.Direction[2],
		)
	}
	for _, i := range b.Impacts {
		batch.Queue(
			`INSERT INTO impacts (run_id, volley, tick, kind, source, target,
			                      point_x, point_y, point_z, damage, travel, time_alive)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			run, i.Volley, int64(i.Tick), i.Kind, i.Source, i.Target,
			i.Point[0], i.Point[1], i.Point[2], i.Damage, i.Travel, i.TimeAlive,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("journal insert: %w", err)
	}
	return tx.Commit(ctx)
}

// Summary totals a run's shots and impacts.
func (r *JournalRepo) Summary(ctx context.Context, run uuid.UUID) (RunSummary, error) {
	var s RunSummary
	err := r.db.Pool.QueryRow(ctx,
		`SELECT
		   (SELECT count(*) FROM shots WHERE run_id = $1),
		   count(*) FILTER (WHERE kind = 'hit'),
		   count(*) FILTER (WHERE kind = 'burnout'),
		   coalesce(sum(damage) FILTER (WHERE kind = 'hit'), 0)
		 FROM impacts WHERE run_id = $1`,
		run,
	).Scan(&s.Shots, &s.Hits, &s.Burnouts, &s.Damage)
	if err != nil {
		return RunSummary{}, fmt.Errorf("journal summary: %w", err)
	}
	return s, nil
}
