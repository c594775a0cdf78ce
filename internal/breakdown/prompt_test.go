package breakdown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/planner-backend/config"
)

func TestPrompt(t *testing.T) {
	app := Prompt(Request{
		Kind:             KindApplication,
		EntityName:       "Todo",
		ShortDescription: "A simple todo app for tasks",
		Specs:            "Allows users to add tasks",
		KnownBreakdown:   "Reminders",
	})
	assert.Contains(t, app, "application named: Todo.")
	assert.Contains(t, app, "brief description of the app: A simple todo app for tasks.")
	assert.Contains(t, app, "already knows that they want: Reminders.")
	assert.Contains(t, app, "Database integrations should not be a feature")

	feat := Prompt(Request{Kind: KindFeature, EntityName: "Todo", Type: "Backend", Specs: "REST", KnownBreakdown: "Auth"})
	assert.Contains(t, feat, "Type of features needed: Backend\n")
	assert.Contains(t, feat, "High-level specifications: REST\n")
	assert.Contains(t, feat, "Specific feature requirements: Auth\n")
}

func TestDecodeDrafts(t *testing.T) {
	drafts, err := decodeDrafts(`{}`)
	require.NoError(t, err)
	assert.NotNil(t, drafts)

	_, err = decodeDrafts("  ")
	assert.EqualError(t, err, "empty generator response")
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrGeneratorDisabled)
}

func TestNew(t *testing.T) {
	cfg := &config.Config{Breakdown: config.BreakdownConfig{Provider: config.ProviderOpenAI, RPS: 1, Burst: 1}}

	gen, err := New(context.Background(), cfg, nil, zap.NewNop())
	require.NoError(t, err)
	_, err = gen.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrGeneratorDisabled, "missing key degrades to disabled")

	cfg.Breakdown.OpenAIKey = "sk"
	gen, err = New(context.Background(), cfg, nil, zap.NewNop())
	require.NoError(t, err)
	inst, ok := gen.(*Instrumented)
	require.True(t, ok)
	assert.IsType(t, &RateLimited{}, inst.next)

	_, rdb := newRedis(t)
	gen, err = New(context.Background(), cfg, rdb, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &Cached{}, gen.(*Instrumented).next)
}
