package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrSolveNotFound is returned when no solve has the requested ID.
var ErrSolveNotFound = errors.New("gocube: solve not found")

// timeLayout keeps a fixed number of fraction digits so stored times sort
// as strings.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Solve is one solver run in the history.
type Solve struct {
	SolveID     string
	CreatedAt   time.Time
	Facelets    string
	Scramble    *string
	Solution    string
	MoveCount   int
	Phase1Moves int
	MaxDepth    int
	DurationMs  int64
	NodesPhase1 int
	NodesPhase2 int
	Notes       *string
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create stores s and its solution moves, and returns the new solve ID.
// SolveID and CreatedAt are filled in when empty.
func (r *SolveRepository) Create(s *Solve) (string, error) {
	if s.SolveID == "" {
		s.SolveID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	s.CreatedAt = s.CreatedAt.UTC()
	moves, err := solutionMoves(s.Solution, s.Phase1Moves)
	if err != nil {
		return "", err
	}
	s.MoveCount = len(moves)

	err = r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO solves (solve_id, created_at, facelets, scramble_text, solution, move_count,
				phase1_moves, max_depth, duration_ms, nodes_phase1, nodes_phase2, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, s.SolveID, s.CreatedAt.Format(timeLayout), s.Facelets, s.Scramble, s.Solution, s.MoveCount,
			s.Phase1Moves, s.MaxDepth, s.DurationMs, s.NodesPhase1, s.NodesPhase2, s.Notes)
		if err != nil {
			return fmt.Errorf("failed to create solve: %w", err)
		}
		return insertMoves(tx, s.SolveID, moves)
	})
	if err != nil {
		return "", err
	}

	return s.SolveID, nil
}

const solveColumns = `solve_id, created_at, facelets, scramble_text, solution, move_count,
	phase1_moves, max_depth, duration_ms, nodes_phase1, nodes_phase2, notes`

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (*Solve, error) {
	var s Solve
	var createdAt string
	err := row.Scan(
		&s.SolveID, &createdAt, &s.Facelets, &s.Scramble, &s.Solution, &s.MoveCount,
		&s.Phase1Moves, &s.MaxDepth, &s.DurationMs, &s.NodesPhase1, &s.NodesPhase2, &s.Notes,
	)
	if err != nil {
		return nil, err
	}
	s.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at %q: %w", createdAt, err)
	}
	return &s, nil
}

// Get retrieves a solve by ID. A unique ID prefix is accepted.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	rows, err := r.db.Query(`
		SELECT `+solveColumns+`
		FROM solves
		WHERE solve_id LIKE ? || '%'
		LIMIT 2
	`, solveID)
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	defer rows.Close()

	var found []*Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		found = append(found, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrSolveNotFound, solveID)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("ambiguous solve ID prefix %q", solveID)
	}
}

// GetLast retrieves the most recent solve.
func (r *SolveRepository) GetLast() (*Solve, error) {
	s, err := scanSolve(r.db.QueryRow(`
		SELECT ` + solveColumns + `
		FROM solves
		ORDER BY created_at DESC
		LIMIT 1
	`))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSolveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}
	return s, nil
}

// List retrieves the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT `+solveColumns+`
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}

	return solves, rows.Err()
}

// Delete deletes a solve and its moves.
func (r *SolveRepository) Delete(solveID string) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM solution_moves WHERE solve_id = ?", solveID); err != nil {
			return fmt.Errorf("failed to delete moves: %w", err)
		}
		res, err := tx.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
		if err != nil {
			return fmt.Errorf("failed to delete solve: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("%w: %s", ErrSolveNotFound, solveID)
		}
		return nil
	})
}

// Stats summarises the stored solves.
type Stats struct {
	Count       int
	AvgMoves    float64
	MinMoves    int
	MaxMoves    int
	AvgDuration time.Duration
}

// Stats returns aggregate figures over all stored solves.
func (r *SolveRepository) Stats() (Stats, error) {
	var st Stats
	var avgMoves, avgMs sql.NullFloat64
	var minMoves, maxMoves sql.NullInt64
	err := r.db.QueryRow(`
		SELECT COUNT(*), AVG(move_count), MIN(move_count), MAX(move_count), AVG(duration_ms)
		FROM solves
	`).Scan(&st.Count, &avgMoves, &minMoves, &maxMoves, &avgMs)
	if err != nil {
		return st, fmt.Errorf("failed to get solve stats: %w", err)
	}
	st.AvgMoves = avgMoves.Float64
	st.MinMoves = int(minMoves.Int64)
	st.MaxMoves = int(maxMoves.Int64)
	st.AvgDuration = time.Duration(avgMs.Float64 * float64(time.Millisecond))
	return st, nil
}

// Short returns the first eight characters of a solve ID.
func Short(solveID string) string {
	if len(solveID) <= 8 {
		return solveID
	}
	return strings.SplitN(solveID, "-", 2)[0]
}
