package changeset_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kategengler/api-v2/internal/changeset"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Accumulate(t *testing.T) {
	var errs changeset.Errors

	errs.AddBlank("domain")
	errs.AddBlank("name")
	errs.Add("domain", "has already been taken")

	assert.False(t, errs.Valid())
	assert.Len(t, errs, 3)
	assert.True(t, errs.Has("domain"))
	assert.True(t, errs.Has("name"))
	assert.False(t, errs.Has("slack_team_id"))
}

func TestErrors_DuplicatesCollapse(t *testing.T) {
	var errs changeset.Errors

	errs.AddBlank("domain")
	errs.AddBlank("domain")

	assert.Len(t, errs, 1)
}

func TestErrors_OrNil(t *testing.T) {
	var errs changeset.Errors
	assert.NoError(t, errs.OrNil())

	errs.AddBlank("domain")
	err := errs.OrNil()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "domain can't be blank")
}

func TestAs(t *testing.T) {
	var errs changeset.Errors
	errs.Add("domain", "can not be changed for Slack teams")

	wrapped := fmt.Errorf("team_service.UpdateDomain: %w", errs.OrNil())

	got, ok := changeset.As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, errs, got)

	_, ok = changeset.As(errors.New("plain"))
	assert.False(t, ok)
}
