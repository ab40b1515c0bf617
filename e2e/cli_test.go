package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gspiers/buzzbingo/internal/api"
	"github.com/gspiers/buzzbingo/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath  string
	serverURL   string
	sessionFile string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "bbingo-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/bbingo")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath:  binaryPath,
		serverURL:   serverURL,
		sessionFile: filepath.Join(t.TempDir(), "session"),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--session-file", r.sessionFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	// Load the phrase pool
	projectRoot := findProjectRoot(t)
	err = app.PoolService.LoadFromFile(context.Background(), filepath.Join(projectRoot, "data/buzzwords.txt"))
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		SessionController: app.SessionController,
		HubManager:        app.HubManager,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type sessionStateResponse struct {
	ID           string     `json:"id"`
	Phase        string     `json:"phase"`
	Phrases      [][]string `json:"phrases"`
	Marks        [][]bool   `json:"marks"`
	WinningLines []struct {
		Kind  string `json:"kind"`
		Index int    `json:"index"`
	} `json:"winning_lines"`
}

func parseState(t *testing.T, output string) sessionStateResponse {
	t.Helper()

	var state sessionStateResponse
	require.NoError(t, json.Unmarshal([]byte(output), &state), "output: %s", output)
	return state
}

func TestCLIFullSession(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Health check
	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, `"status": "ok"`)

	// Start a session
	output, err = cli.run("new")
	require.NoError(t, err, "output: %s", output)
	state := parseState(t, output)
	require.NotEmpty(t, state.ID)
	assert.Equal(t, "idle", state.Phase)
	assert.Len(t, state.Phrases, 5)
	assert.Equal(t, "FREE", state.Phrases[2][2])

	// Session ID was remembered
	data, err := os.ReadFile(cli.sessionFile)
	require.NoError(t, err)
	assert.Equal(t, state.ID, strings.TrimSpace(string(data)))

	// Show works without arguments
	output, err = cli.run("show")
	require.NoError(t, err, "output: %s", output)
	assert.Equal(t, state.ID, parseState(t, output).ID)

	// Toggle a tile
	output, err = cli.run("toggle", "0", "0")
	require.NoError(t, err, "output: %s", output)
	assert.True(t, parseState(t, output).Marks[0][0])

	// Complete the first row
	for col := 1; col < 5; col++ {
		output, err = cli.run("toggle", "0", strconv.Itoa(col))
		require.NoError(t, err, "output: %s", output)
	}
	state = parseState(t, output)
	assert.Equal(t, "celebrating", state.Phase)
	require.Len(t, state.WinningLines, 1)
	assert.Equal(t, "row", state.WinningLines[0].Kind)
	assert.Equal(t, 0, state.WinningLines[0].Index)

	// Dismiss the celebration
	output, err = cli.run("dismiss")
	require.NoError(t, err, "output: %s", output)
	state = parseState(t, output)
	assert.Equal(t, "acknowledged", state.Phase)
	assert.Len(t, state.WinningLines, 1)

	// Reset marks
	output, err = cli.run("reset")
	require.NoError(t, err, "output: %s", output)
	state = parseState(t, output)
	assert.Equal(t, "idle", state.Phase)
	assert.Empty(t, state.WinningLines)
	assert.False(t, state.Marks[0][0])

	// Regenerate the board
	output, err = cli.run("board")
	require.NoError(t, err, "output: %s", output)
	assert.Equal(t, "idle", parseState(t, output).Phase)

	// Drop the session
	output, err = cli.run("drop")
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "Session deleted")

	_, err = os.Stat(cli.sessionFile)
	assert.True(t, os.IsNotExist(err), "session file should be removed")

	// Commands now fail without a session
	output, err = cli.run("show")
	assert.Error(t, err, "output: %s", output)
}

func TestCLIToggleValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("new")
	require.NoError(t, err, "output: %s", output)

	// Out-of-range positions are rejected by the server
	output, err = cli.run("toggle", "5", "0")
	assert.Error(t, err, "output: %s", output)

	// Non-numeric arguments are rejected client-side
	output, err = cli.run("toggle", "a", "b")
	assert.Error(t, err, "output: %s", output)
}
