package e2e

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcResponse struct {
	ID     int             `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func TestSmokeMCPOverStdio(t *testing.T) {
	dataDir := t.TempDir()
	binaryPath := buildBinary(t)

	session := startServer(t, binaryPath, dataDir)

	session.send(t, 1, "initialize", map[string]any{
		"protocolVersion": "2024-11-05",
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "smoke", "version": "0"},
	})
	initialized := session.receive(t, 1)
	assert.Contains(t, string(initialized.Result), "maxential-thinking-server")

	session.send(t, 2, "tools/list", map[string]any{})
	var listed struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(session.receive(t, 2).Result, &listed))
	assert.Len(t, listed.Tools, 20)

	session.send(t, 3, "tools/call", map[string]any{
		"name":      "think",
		"arguments": map[string]any{"thought": "smoke over stdio"},
	})
	var called struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	}
	require.NoError(t, json.Unmarshal(session.receive(t, 3).Result, &called))
	require.Len(t, called.Content, 1)
	assert.False(t, called.IsError)
	assert.Contains(t, called.Content[0].Text, "\"thoughtNumber\": 1")

	session.close(t)

	stdout, stderr, err := runMaxential(t, binaryPath, dataDir, "sessions", "list", "--json")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "\"thoughtCount\": 1")
}

func TestSmokeVersion(t *testing.T) {
	binaryPath := buildBinary(t)

	stdout, stderr, err := runMaxential(t, binaryPath, t.TempDir(), "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "2.3.0", strings.TrimSpace(stdout))
}

type serverSession struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	lines  chan string
	stderr *bytes.Buffer
}

func startServer(t *testing.T, binaryPath, dataDir string) *serverSession {
	t.Helper()

	cmd := exec.Command(binaryPath, "serve")
	cmd.Env = testEnv(dataDir)

	stdin, err := cmd.StdinPipe()
	require.NoError(t, err)
	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	require.NoError(t, cmd.Start())

	lines := make(chan string, 16)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	s := &serverSession{cmd: cmd, stdin: stdin, lines: lines, stderr: &stderr}
	t.Cleanup(func() {
		if s.cmd.ProcessState == nil {
			_ = s.cmd.Process.Kill()
			_ = s.cmd.Wait()
		}
	})
	return s
}

func (s *serverSession) send(t *testing.T, id int, method string, params any) {
	t.Helper()

	raw, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)
	_, err = fmt.Fprintf(s.stdin, "%s\n", raw)
	require.NoError(t, err)
}

func (s *serverSession) receive(t *testing.T, id int) rpcResponse {
	t.Helper()

	timeout := time.After(10 * time.Second)
	for {
		select {
		case line, ok := <-s.lines:
			require.True(t, ok, "server closed stdout, stderr: %s", s.stderr.String())

			var resp rpcResponse
			if err := json.Unmarshal([]byte(line), &resp); err != nil || resp.ID != id {
				continue
			}
			require.Nil(t, resp.Error, "rpc error for id %d", id)
			return resp
		case <-timeout:
			t.Fatalf("no response for id %d, stderr: %s", id, s.stderr.String())
		}
	}
}

// close ends the session the way a client does: by closing stdin.
func (s *serverSession) close(t *testing.T) {
	t.Helper()

	require.NoError(t, s.stdin.Close())

	done := make(chan error, 1)
	go func() { done <- s.cmd.Wait() }()
	select {
	case err := <-done:
		require.NoError(t, err, "stderr: %s", s.stderr.String())
		assert.Contains(t, s.stderr.String(), "MAXential Thinking MCP Server v2.3.0 running on stdio")
	case <-time.After(10 * time.Second):
		t.Fatalf("server did not exit after stdin closed, stderr: %s", s.stderr.String())
	}
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "maxential-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/maxential")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build maxential binary: %s", string(output))
	return binaryPath
}

func runMaxential(t *testing.T, binaryPath, dataDir string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = testEnv(dataDir)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func testEnv(dataDir string) []string {
	return append(os.Environ(),
		"HOME="+dataDir,
		"MAXENTIAL_DB_PATH="+filepath.Join(dataDir, "thinking.db"),
		"MAXENTIAL_LOG_FILE="+filepath.Join(dataDir, "maxential.log"),
		"DISABLE_THOUGHT_LOGGING=true",
	)
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
