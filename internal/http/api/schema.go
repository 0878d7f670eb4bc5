package api

import "time"

type TeamSchema struct {
	TeamID      string            `json:"team_id"`
	Domain      *string           `json:"domain"`
	Name        string            `json:"name"`
	SlackTeamID *string           `json:"slack_team_id,omitempty"`
	Images      map[string]string `json:"images"`
	Members     []TeamMember      `json:"members,omitempty"`
}

type TeamMember struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

type AccessTokenSchema struct {
	TeamID    string     `json:"team_id"`
	Provider  string     `json:"provider"`
	Token     string     `json:"token"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type CanvasSchema struct {
	CanvasID  string     `json:"canvas_id"`
	TeamID    string     `json:"team_id"`
	Title     string     `json:"title"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type OverviewSchema struct {
	TeamID      string `json:"team_id"`
	MemberCount int    `json:"member_count"`
	CanvasCount int    `json:"canvas_count"`
	TokenCount  int    `json:"token_count"`
}

// AccountPayload describes the provider identity of the account performing a
// team creation.
type AccountPayload struct {
	AccountID string `json:"account_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// CreateSlackTeamRequest carries the fields accepted when a team is created
// through the Slack OAuth flow. Anything else Slack returns is dropped at the
// boundary.
type CreateSlackTeamRequest struct {
	Domain      string            `json:"domain"`
	Name        string            `json:"name"`
	SlackTeamID string            `json:"slack_team_id"`
	Icon        map[string]string `json:"icon"`
	AccessToken string            `json:"access_token"`
	Creator     AccountPayload    `json:"creator" validate:"required"`
}

// UpdateDomainRequest is the only mutable surface of a team update: the
// domain. A nil Domain means the field was absent from the request.
type UpdateDomainRequest struct {
	Domain *string `json:"domain"`
}
