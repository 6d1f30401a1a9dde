package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/gocube_solver/internal/notation"
	"github.com/SeamusWaldron/gocube_solver/pkg/types"
)

// MoveRecord is one move of a stored solution.
type MoveRecord struct {
	MoveID    int64
	SolveID   string
	MoveIndex int
	Face      string
	Turn      int
	Notation  string
	Phase     int
}

// Move returns the record as a move.
func (m MoveRecord) Move() types.Move {
	return types.Move{Face: types.Face(m.Face), Turn: types.Turn(m.Turn)}
}

// solutionMoves parses a solution and tags the first phase1Moves moves as
// phase 1, the rest as phase 2.
func solutionMoves(solution string, phase1Moves int) ([]MoveRecord, error) {
	moves, err := notation.ParseSequence(solution)
	if err != nil {
		return nil, fmt.Errorf("failed to parse solution: %w", err)
	}
	records := make([]MoveRecord, len(moves))
	for i, m := range moves {
		phase := 2
		if i < phase1Moves {
			phase = 1
		}
		records[i] = MoveRecord{
			MoveIndex: i,
			Face:      string(m.Face),
			Turn:      int(m.Turn),
			Notation:  m.Notation(),
			Phase:     phase,
		}
	}
	return records, nil
}

func insertMoves(tx *sql.Tx, solveID string, moves []MoveRecord) error {
	for _, m := range moves {
		_, err := tx.Exec(`
			INSERT INTO solution_moves (solve_id, move_index, face, turn, notation, phase)
			VALUES (?, ?, ?, ?, ?, ?)
		`, solveID, m.MoveIndex, m.Face, m.Turn, m.Notation, m.Phase)
		if err != nil {
			return fmt.Errorf("failed to create move %d: %w", m.MoveIndex, err)
		}
	}
	return nil
}

// MoveRepository reads stored solution moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// GetBySolve retrieves all moves for a solve in order.
func (r *MoveRepository) GetBySolve(solveID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, solve_id, move_index, face, turn, notation, phase
		FROM solution_moves
		WHERE solve_id = ?
		ORDER BY move_index
	`, solveID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SolveID, &m.MoveIndex, &m.Face, &m.Turn, &m.Notation, &m.Phase)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// CountByPhase returns how many stored moves came from each search phase.
func (r *MoveRepository) CountByPhase(solveID string) (phase1, phase2 int, err error) {
	err = r.db.QueryRow(`
		SELECT
			COALESCE(SUM(CASE WHEN phase = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN phase = 2 THEN 1 ELSE 0 END), 0)
		FROM solution_moves
		WHERE solve_id = ?
	`, solveID).Scan(&phase1, &phase2)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return phase1, phase2, nil
}

// ToMoves converts MoveRecords to moves.
func ToMoves(records []MoveRecord) []types.Move {
	moves := make([]types.Move, len(records))
	for i, r := range records {
		moves[i] = r.Move()
	}
	return moves
}
