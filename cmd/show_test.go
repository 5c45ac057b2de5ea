package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mutant.dev/pkg/mutant/internal/model"
	"mutant.dev/pkg/mutant/internal/session"
)

func TestNormalizeRefID(t *testing.T) {
	assert.Equal(t, "m1", normalizeRefID("m1"))
	assert.Equal(t, "m1", normalizeRefID("@m1"))
}

func TestShowRunE_FindsSurvivor(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	store, err := session.New()
	require.NoError(t, err)

	run := m.Run{
		Outcomes: []m.Outcome{
			{
				Mutation: m.Mutation{RefID: "m1", File: "a.py", Operator: "arithmetic", Original: "+", Replacement: "-"},
				Result:   m.Survived,
			},
		},
	}
	require.NoError(t, store.Save(m.SessionState{SessionID: "default", Run: run}))

	showSession = "default"

	cmd := newShowCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"m1"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"ref_id": "m1"`)
}
