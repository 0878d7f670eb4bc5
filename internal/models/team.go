package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Team is a tenant: either bound to Slack (SlackTeamID set, domain chosen by
// Slack and immutable) or a personal single-user space (domain self-chosen,
// stored with a "~" prefix).
type Team struct {
	ID          string     `db:"id"`
	Domain      *string    `db:"domain"`
	Name        string     `db:"name"`
	SlackTeamID *string    `db:"slack_team_id"`
	Images      ImageMap   `db:"images"`
	CreatedAt   *time.Time `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// SlackBound reports whether the team is bound to Slack as its identity
// provider.
func (t *Team) SlackBound() bool {
	return t != nil && t.SlackTeamID != nil && *t.SlackTeamID != ""
}

// ImageMap maps an image size key to its URL. Stored as a jsonb column.
type ImageMap map[string]string

func (m ImageMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *ImageMap) Scan(src any) error {
	if src == nil {
		*m = ImageMap{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("images: unsupported scan source")
	}

	return json.Unmarshal(data, m)
}
