package models

import "time"

// AccessToken is an OAuth credential a provider issued for a team.
type AccessToken struct {
	ID        string     `db:"id"`
	TeamID    string     `db:"team_id"`
	AccountID string     `db:"account_id"`
	Provider  string     `db:"provider"`
	Token     string     `db:"token"`
	CreatedAt *time.Time `db:"created_at"`
}
