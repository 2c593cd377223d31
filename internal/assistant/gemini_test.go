package assistant

import (
	"testing"

	"brandbear/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToContents(t *testing.T) {
	history := []model.Message{
		{Role: model.RoleAssistant, Text: WelcomeMessage},
		{Role: model.RoleUser, Text: "something classic"},
		{Role: model.RoleAssistant, Text: "Try the blazer."},
	}

	contents, err := toContents(history, "and shoes?")

	require.NoError(t, err)
	require.Len(t, contents, 4)

	expected := []struct {
		role string
		text string
	}{
		{"model", WelcomeMessage},
		{"user", "something classic"},
		{"model", "Try the blazer."},
		{"user", "and shoes?"},
	}
	for i, e := range expected {
		assert.Equal(t, e.role, string(contents[i].Role), "turn %d role", i)
		require.Len(t, contents[i].Parts, 1)
		assert.Equal(t, e.text, contents[i].Parts[0].Text, "turn %d text", i)
	}
}

func TestToContents_RejectsUnknownRole(t *testing.T) {
	contents, err := toContents([]model.Message{{Role: "system", Text: "x"}}, "hi")

	require.Error(t, err)
	assert.Nil(t, contents)
	assert.Contains(t, err.Error(), "unknown role")
}
