package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
)

func TestReadPrompts(t *testing.T) {
	src := `
- type: feature
  subType: breakdown
  content: |
    Generate features for {{name}}
- type: story
  content: Write user stories
`
	prompts, err := readPrompts(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, prompts, 2)
	assert.Equal(t, "feature", prompts[0].PromptType)
	assert.Equal(t, "breakdown", prompts[0].SubType)
	assert.Equal(t, "Generate features for {{name}}\n", prompts[0].Content)
	assert.Empty(t, prompts[1].SubType)
}

func TestReadPrompts_Invalid(t *testing.T) {
	_, err := readPrompts(strings.NewReader("- type: feature\n"))
	assert.EqualError(t, err, "entry 0: type and content are required")

	_, err = readPrompts(strings.NewReader("type: [unclosed"))
	assert.Error(t, err)
}

func TestPrintPrompts(t *testing.T) {
	var buf bytes.Buffer
	updated := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	err := printPrompts(&buf, []domain.Prompt{
		{ID: "p-1", PromptType: "feature", SubType: "breakdown", UpdatedAt: updated},
		{ID: "p-2", OwnerID: "u-1", PromptType: "story", UpdatedAt: updated},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "global")
	assert.Contains(t, lines[2], "owner")
	assert.Contains(t, lines[1], "2026-03-01 09:30")
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{{"migrate"}, {"sweep"}, {"prompts", "seed"}, {"prompts", "list"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	sweep, _, err := root.Find([]string{"sweep"})
	require.NoError(t, err)
	assert.NotNil(t, sweep.Flags().Lookup("once"))
}
