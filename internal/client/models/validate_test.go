package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/skillsphere/internal/common"
)

func TestValidate_Credentials(t *testing.T) {
	require.NoError(t, Validate(Credentials{Username: "alice", Password: "pw"}))

	err := Validate(Credentials{Username: "alice"})
	require.Error(t, err)
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, map[string]string{"password": "this field is required"}, ve.Fields)
}

func TestValidate_PlanStatus(t *testing.T) {
	require.NoError(t, Validate(StatusInput{Status: StatusCompleted}))

	err := Validate(StatusInput{Status: "DONE"})
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "must be one of: NOT_STARTED, IN_PROGRESS, COMPLETED", ve.Fields["status"])
}

func TestValidate_LearningPlanOptionalStatus(t *testing.T) {
	require.NoError(t, Validate(LearningPlanInput{Title: "Go"}))

	err := Validate(LearningPlanInput{Title: "Go", Duration: -1})
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "duration")
}

func TestValidate_PostFormAttachments(t *testing.T) {
	form := PostForm{
		Title:   "t",
		Content: "c",
		Files:   []Attachment{{FileName: "a.png", Content: strings.NewReader("x")}, {}},
	}
	err := Validate(form)
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "this field is required", ve.Fields["files[1].filename"])
}

func TestValidate_AdminPlanPrice(t *testing.T) {
	err := Validate(PlanInput{Name: "Pro", Description: "all", Price: -5})
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "must be greater than or equal to 0", ve.Fields["price"])
}
