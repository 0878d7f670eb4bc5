package models

import "time"

// Account is a user identity from an external provider. Accounts belong to
// many teams through the team_accounts join table.
type Account struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	CreatedAt *time.Time `db:"created_at"`
}
