package team

import (
	"regexp"
	"strings"

	"github.com/kategengler/api-v2/internal/changeset"
	"github.com/kategengler/api-v2/internal/models"
)

// PersonalTeamName is forced on every personal space regardless of input.
const PersonalTeamName = "Notes"

// DomainPrefix marks self-chosen domains so they never collide with
// Slack-assigned ones.
const DomainPrefix = "~"

const (
	msgDomainImmutable = "can not be changed for Slack teams"
	msgDomainFormat    = "must be between 2 and 36 characters, contain only letters, numbers, and dashes, and be bounded by a letter or number"
)

// Lowercase letters, digits and dashes, 2-36 chars, bounded by a letter or
// digit.
var domainRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,34}[a-z0-9]$`)

// slackBound reports whether the record is, or would become, bound to Slack:
// either the existing team carries a slack_team_id or the candidate change
// sets a non-empty one.
func slackBound(existing *models.Team, candidateSlackID *string) bool {
	if existing.SlackBound() {
		return true
	}
	return candidateSlackID != nil && *candidateSlackID != ""
}

// forbidDomainChangeIfBound rejects a domain change on a Slack-bound record.
// Both creation and update run this same rule; at creation existing is nil
// and there is no prior domain to change, so the rule never fires.
func forbidDomainChangeIfBound(errs *changeset.Errors, existing *models.Team, candidateSlackID *string) {
	if existing == nil {
		return
	}
	if slackBound(existing, candidateSlackID) {
		errs.Add("domain", msgDomainImmutable)
	}
}

// normalizeDomain lowercases a self-chosen domain, checks the format rule and
// prepends the "~" prefix. The empty string maps to a blank error.
func normalizeDomain(errs *changeset.Errors, domain string) string {
	if domain == "" {
		errs.AddBlank("domain")
		return ""
	}

	domain = strings.ToLower(domain)
	if !domainRe.MatchString(domain) {
		errs.Add("domain", msgDomainFormat)
		return ""
	}

	return DomainPrefix + domain
}
