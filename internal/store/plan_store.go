package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ctessum/geom"

	"github.com/banshee-data/roadplan/internal/road"
)

// PlanInfo is one row of the saved-plan listing.
type PlanInfo struct {
	PlanID    int64
	Name      string
	UpdatedAt time.Time
}

// SavePlan stores the plan under name, replacing any previous gestures
// saved under that name, and returns the plan's row ID.
func (db *DB) SavePlan(name string, plan *road.Plan) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin save plan: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO plans (name) VALUES (?)
		ON CONFLICT(name) DO UPDATE SET updated_at = CURRENT_TIMESTAMP
	`, name); err != nil {
		return 0, fmt.Errorf("upsert plan %q: %w", name, err)
	}

	var planID int64
	if err := tx.QueryRow(`SELECT plan_id FROM plans WHERE name = ?`, name).Scan(&planID); err != nil {
		return 0, fmt.Errorf("look up plan %q: %w", name, err)
	}

	if _, err := tx.Exec(`DELETE FROM gestures WHERE plan_id = ?`, planID); err != nil {
		return 0, fmt.Errorf("clear gestures of plan %q: %w", name, err)
	}

	for seq, pair := range plan.Pairs() {
		pointsJSON, err := json.Marshal(pointsToPairs(pair.Gesture.Points))
		if err != nil {
			return 0, fmt.Errorf("encode gesture %s points: %w", pair.ID, err)
		}
		var lanesForward, lanesBackward sql.NullInt64
		if ri, ok := pair.Gesture.Intent.(road.RoadIntent); ok {
			lanesForward = sql.NullInt64{Int64: int64(ri.LanesForward), Valid: true}
			lanesBackward = sql.NullInt64{Int64: int64(ri.LanesBackward), Valid: true}
		}
		if _, err := tx.Exec(`
			INSERT INTO gestures (plan_id, gesture_id, seq, points_json, lanes_forward, lanes_backward)
			VALUES (?, ?, ?, ?, ?, ?)
		`, planID, string(pair.ID), seq, string(pointsJSON), lanesForward, lanesBackward); err != nil {
			return 0, fmt.Errorf("insert gesture %s: %w", pair.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit save plan: %w", err)
	}
	return planID, nil
}

// LoadPlan reads the plan saved under name, with gestures in their
// original order.
func (db *DB) LoadPlan(name string) (*road.Plan, error) {
	var planID int64
	err := db.QueryRow(`SELECT plan_id FROM plans WHERE name = ?`, name).Scan(&planID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no plan named %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("look up plan %q: %w", name, err)
	}

	rows, err := db.Query(`
		SELECT gesture_id, points_json, lanes_forward, lanes_backward
		FROM gestures WHERE plan_id = ? ORDER BY seq
	`, planID)
	if err != nil {
		return nil, fmt.Errorf("query gestures of plan %q: %w", name, err)
	}
	defer rows.Close()

	plan := road.NewPlan()
	for rows.Next() {
		var gestureID, pointsJSON string
		var lanesForward, lanesBackward sql.NullInt64
		if err := rows.Scan(&gestureID, &pointsJSON, &lanesForward, &lanesBackward); err != nil {
			return nil, fmt.Errorf("scan gesture row: %w", err)
		}
		var pairs [][2]float64
		if err := json.Unmarshal([]byte(pointsJSON), &pairs); err != nil {
			return nil, fmt.Errorf("decode gesture %s points: %w", gestureID, err)
		}
		g := &road.Gesture{Points: pairsToPoints(pairs)}
		if lanesForward.Valid && lanesBackward.Valid {
			g.Intent = road.RoadIntent{
				LanesForward:  uint8(lanesForward.Int64),
				LanesBackward: uint8(lanesBackward.Int64),
			}
		}
		plan.Put(road.GestureID(gestureID), g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gesture rows: %w", err)
	}
	return plan, nil
}

// ListPlans returns all saved plans, most recently updated first.
func (db *DB) ListPlans() ([]PlanInfo, error) {
	rows, err := db.Query(`SELECT plan_id, name, updated_at FROM plans ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var infos []PlanInfo
	for rows.Next() {
		var info PlanInfo
		if err := rows.Scan(&info.PlanID, &info.Name, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// SaveSnapshot stores the synthesized prototypes of a saved plan and
// returns the snapshot ID. The prototypes are kept as their JSON
// encoding; snapshots are read-only previews, not a round-trip format.
func (db *DB) SaveSnapshot(planID int64, prototypes []road.Prototype) (int64, error) {
	encoded, err := road.EncodePrototypes(prototypes)
	if err != nil {
		return 0, fmt.Errorf("encode prototypes: %w", err)
	}
	result, err := db.Exec(`
		INSERT INTO prototype_snapshots (plan_id, taken_unix_nanos, prototypes_json)
		VALUES (?, ?, ?)
	`, planID, time.Now().UnixNano(), string(encoded))
	if err != nil {
		return 0, fmt.Errorf("insert snapshot: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get snapshot insert ID: %w", err)
	}
	return id, nil
}

// LatestSnapshot returns the JSON of the most recent prototype snapshot
// for a plan, or an error if none exists.
func (db *DB) LatestSnapshot(planID int64) ([]byte, error) {
	var prototypesJSON string
	err := db.QueryRow(`
		SELECT prototypes_json FROM prototype_snapshots
		WHERE plan_id = ? ORDER BY taken_unix_nanos DESC LIMIT 1
	`, planID).Scan(&prototypesJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no snapshot for plan %d", planID)
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	return []byte(prototypesJSON), nil
}

func pointsToPairs(pts []geom.Point) [][2]float64 {
	pairs := make([][2]float64, len(pts))
	for i, pt := range pts {
		pairs[i] = [2]float64{pt.X, pt.Y}
	}
	return pairs
}

func pairsToPoints(pairs [][2]float64) []geom.Point {
	pts := make([]geom.Point, len(pairs))
	for i, xy := range pairs {
		pts[i] = geom.Point{X: xy[0], Y: xy[1]}
	}
	return pts
}
