package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "tictactoe", cmd.Use)

	for _, name := range []string{"play", "rules"} {
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Equal(t, "config.yml", configFlag.DefValue)

	logLevelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, logLevelFlag)
	assert.Empty(t, logLevelFlag.DefValue)
}

func TestRulesCommand(t *testing.T) {
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"rules"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "GAME RULES")
	assert.Contains(t, out.String(), "the game is a draw")
}

func TestPlayCommand(t *testing.T) {
	// Given: an in-memory setup and a scripted game X wins
	t.Setenv("STORAGE", "memory")

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader("1\n0 0\n1 0\n1 1\n2 0\n2 2\nn\n"))
	cmd.SetArgs([]string{"play", "--config", filepath.Join(t.TempDir(), "missing.yml")})

	// When: the play command runs
	err := cmd.ExecuteContext(context.Background())

	// Then: the game is played to the end
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Congratulations! Player X wins!")
	assert.Contains(t, out.String(), "Thanks for playing! Goodbye!")
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger("info", buf)

	logger.Debug("hidden")
	logger.Info("shown", "component", "test")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "test", entry["component"])
}
