package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoglobals // test binary path is set in TestMain
var testBinaryPath string

// TestMain builds the CLI binary once for the entire package and reuses it.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "deck-test-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1) //nolint:gocritic // Mkdir failed, nothing to cleanup
	}
	defer os.RemoveAll(dir)

	bin := filepath.Join(dir, "deck-test")
	cmd := exec.Command("go", "build", "-o", bin, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build test binary: %v\nOutput: %s\n", err, string(out))
		os.Exit(1) //nolint:gocritic // Binary failed, nothing to cleanup
	}
	testBinaryPath = bin

	code := m.Run()
	os.Exit(code)
}

// newCmd runs the binary with an isolated HOME and no DECK_* overrides.
func newCmd(t *testing.T, home string, args ...string) *exec.Cmd {
	t.Helper()
	if testBinaryPath == "" {
		t.Fatalf("test binary not built")
	}
	cmd := exec.Command(testBinaryPath, args...)
	env := []string{"HOME=" + home}
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "DECK_") || strings.HasPrefix(kv, "HOME=") {
			continue
		}
		env = append(env, kv)
	}
	cmd.Env = env
	return cmd
}

func stdout(t *testing.T, cmd *exec.Cmd) string {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	require.NoError(t, cmd.Run(), "stderr: %s", errOut.String())
	return out.String()
}

func TestCLI_HelpOutput(t *testing.T) {
	home := t.TempDir()

	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "root help",
			args:     []string{"--help"},
			contains: []string{"deck", "DECK_FILE", "#slide-N", "export", "outline", "list", "theme", "--at", "--no-backdrop", "--config"},
		},
		{
			name:     "outline help",
			args:     []string{"outline", "--help"},
			contains: []string{"slide titles", "--json", "--verbose"},
		},
		{
			name:     "theme help",
			args:     []string{"theme", "--help"},
			contains: []string{"show", "toggle", "set"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := newCmd(t, home, tt.args...).CombinedOutput()
			require.NoError(t, err)
			for _, expected := range tt.contains {
				assert.Contains(t, string(output), expected)
			}
		})
	}
}

func TestCLI_Version(t *testing.T) {
	out := stdout(t, newCmd(t, t.TempDir(), "--version"))
	assert.Contains(t, out, "dev")
	assert.Contains(t, out, "commit: none")
}

func TestCLI_OutlineDefaultDeck(t *testing.T) {
	out := stdout(t, newCmd(t, t.TempDir(), "outline"))
	assert.Contains(t, out, "Vibe Coding")
	assert.Contains(t, out, " 1  Vibe Coding")
	assert.Contains(t, out, " 5  The Arena  [countdown]")
	assert.Contains(t, out, " 6  Just Build")
	assert.NotContains(t, out, "\x1b[", "piped output is plain")
}

func TestCLI_OutlineJSON(t *testing.T) {
	out := stdout(t, newCmd(t, t.TempDir(), "outline", "--json"))

	var entries []outlineEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 6)
	assert.Equal(t, "#slide-3", entries[2].Fragment)
	assert.Equal(t, "The Mental Stack", entries[2].Title)
	assert.True(t, entries[4].Countdown)
	assert.False(t, entries[0].Countdown)
}

func TestCLI_OutlineCustomDeck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: Lightning Talk
slides:
  - title: Hello
    elements:
      - text: "# Hello"
  - elements:
      - role: fade
        text: untitled
`), 0o600))

	out := stdout(t, newCmd(t, dir, "outline", path+"#slide-2"))
	assert.Contains(t, out, "Lightning Talk")
	assert.Contains(t, out, " 1  Hello")
	assert.Contains(t, out, " 2  Slide 2")
}

func TestCLI_ErrorHandling(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.deck.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("title: x\nslides: []\n"), 0o600))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"empty deck", []string{"outline", bad}, "deck has no slides"},
		{"missing deck", []string{"outline", filepath.Join(dir, "nope.deck.yaml")}, "no such file"},
		{"invalid theme", []string{"theme", "set", "sepia"}, "invalid theme"},
		{"too many args", []string{"outline", "a", "b"}, "accepts at most 1 arg"},
		{"no terminal", []string{}, "interactive terminal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := newCmd(t, dir, tt.args...).CombinedOutput()
			require.Error(t, err)
			assert.Contains(t, string(output), tt.want)
		})
	}
}

func TestCLI_List(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules"), 0o755))
	for _, name := range []string{"a.deck.yaml", "sub/b.deck.yml", "notes.txt", "node_modules/c.deck.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("title: x\n"), 0o600))
	}

	out := stdout(t, newCmd(t, root, "list", root))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		filepath.Join(root, "a.deck.yaml"),
		filepath.Join(root, "sub", "b.deck.yml"),
	}, lines)

	empty := t.TempDir()
	assert.Equal(t, "No deck files found\n", stdout(t, newCmd(t, empty, "list", empty)))
	assert.Equal(t, "[]\n", stdout(t, newCmd(t, empty, "list", "--json", empty)))
}

func TestCLI_Export(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "guide.pdf")

	msg := stdout(t, newCmd(t, dir, "export", out))
	assert.Contains(t, msg, "Guide written to "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestCLI_ThemeShowToggleSet(t *testing.T) {
	home := t.TempDir()

	assert.Equal(t, "dark\n", stdout(t, newCmd(t, home, "theme", "show")))
	assert.Equal(t, "Theme set to light\n", stdout(t, newCmd(t, home, "theme", "toggle")))
	assert.Equal(t, "light\n", stdout(t, newCmd(t, home, "theme", "show")))

	state, err := os.ReadFile(filepath.Join(home, ".config", "deck", "state.json"))
	require.NoError(t, err)
	assert.Contains(t, string(state), `"theme": "light"`)

	assert.Equal(t, "Theme set to dark\n", stdout(t, newCmd(t, home, "theme", "set", "dark")))
	assert.Equal(t, "dark\n", stdout(t, newCmd(t, home, "theme", "show")))
}

func TestCLI_ConfigFromEnv(t *testing.T) {
	home := t.TempDir()
	cmd := newCmd(t, home, "theme", "show")
	cmd.Env = append(cmd.Env, "DECK_LOG__LEVEL=loud")

	output, err := cmd.CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(output), "invalid config")
}

func TestNormalizeAt(t *testing.T) {
	assert.Equal(t, "#slide-3", normalizeAt("3"))
	assert.Equal(t, "#slide-3", normalizeAt("slide-3"))
	assert.Equal(t, "#slide-3", normalizeAt("#slide-3"))
	assert.Empty(t, normalizeAt(""))
}
