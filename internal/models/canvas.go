package models

import "time"

// Canvas is a shared document owned by a team.
type Canvas struct {
	ID        string     `db:"id"`
	TeamID    string     `db:"team_id"`
	Title     string     `db:"title"`
	CreatedAt *time.Time `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// TeamOverview aggregates per-team resource counts.
type TeamOverview struct {
	MemberCount int `db:"member_count"`
	CanvasCount int `db:"canvas_count"`
	TokenCount  int `db:"token_count"`
}
