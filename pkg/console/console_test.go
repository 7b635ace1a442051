package console

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type recordingHandler struct {
	calls []Command
	err   error
}

func (h *recordingHandler) Scan(_ context.Context, cmd ScanCmd) error {
	h.calls = append(h.calls, cmd)
	return h.err
}

func (h *recordingHandler) Find(_ context.Context, cmd FindCmd) error {
	h.calls = append(h.calls, cmd)
	return h.err
}

func (h *recordingHandler) List(_ context.Context, cmd ListCmd) error {
	h.calls = append(h.calls, cmd)
	return h.err
}

func (h *recordingHandler) Recover(_ context.Context, cmd RecoverCmd) error {
	h.calls = append(h.calls, cmd)
	return h.err
}

func (h *recordingHandler) Man(cmd ManCmd) error {
	h.calls = append(h.calls, cmd)
	return h.err
}

func runConsole(t *testing.T, h Handler, input string, opts ...Option) string {
	t.Helper()
	var out bytes.Buffer
	opts = append([]Option{WithIO(strings.NewReader(input), &out), WithBannerPicker(func(int) int { return 0 })}, opts...)
	c := New(h, "FRECE v1.2.3", opts...)
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestRunDispatchesUntilExit(t *testing.T) {
	h := &recordingHandler{}
	out := runConsole(t, h, "scan /data txt\nfind /data notes.md\nlist /data\nrecover /data /out --ext jpg\nman scan\nexit\nscan /ignored\n")

	assert.Equal(t, []Command{
		ScanCmd{Path: "/data", Extension: "txt"},
		FindCmd{Path: "/data", Name: "notes.md"},
		ListCmd{Path: "/data"},
		RecoverCmd{Source: "/data", Destination: "/out", Extension: "jpg"},
		ManCmd{Topic: "scan"},
	}, h.calls)
	assert.Contains(t, out, "Welcome to FRECE v1.2.3")
	assert.Contains(t, out, "File Recovery Tool")
	assert.Contains(t, out, Prompt)
	assert.NotContains(t, out, "Exiting interactive mode.")
}

func TestRunContinuesAfterErrors(t *testing.T) {
	h := &recordingHandler{err: errors.New(errors.ErrDirectoryNotFound, "directory not found: /nope")}
	out := runConsole(t, h, "bogus\nscan /nope\nman\n--version\n")

	assert.Contains(t, out, "Error: ")
	assert.Contains(t, out, "invalid command: bogus")
	assert.Contains(t, out, "directory not found: /nope")
	assert.Contains(t, out, "missing command name for 'man'")
	assert.Contains(t, out, "FRECE v1.2.3\n")
	assert.Len(t, h.calls, 1)
}

func TestRunEOFExits(t *testing.T) {
	out := runConsole(t, &recordingHandler{}, "")
	assert.Contains(t, out, "Exiting interactive mode.")
}

func TestRunHelp(t *testing.T) {
	out := runConsole(t, &recordingHandler{}, "--help\n")
	assert.Contains(t, out, "FRECE - File Recovery Console")
	assert.Contains(t, out, "recover <src> [dest]")
}

func TestRunSecondBanner(t *testing.T) {
	out := runConsole(t, &recordingHandler{}, "exit\n", WithBannerPicker(func(n int) int { return n - 1 }))
	assert.Contains(t, out, "File Recovery Console.")
}

func TestRunCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	c := New(&recordingHandler{}, "FRECE v1", WithIO(pr, &out))

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- c.Run(ctx) }()
	cancel()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("console did not stop after cancellation")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"scan /tmp", ScanCmd{Path: "/tmp"}},
		{"SCAN /tmp .JPG", ScanCmd{Path: "/tmp", Extension: ".JPG"}},
		{`scan "/my docs" txt`, ScanCmd{Path: "/my docs", Extension: "txt"}},
		{`scan '/a b'`, ScanCmd{Path: "/a b"}},
		{`scan /a\ b`, ScanCmd{Path: "/a b"}},
		{"find ~ report.pdf", FindCmd{Path: "~", Name: "report.pdf"}},
		{"list desktop", ListCmd{Path: "desktop"}},
		{"recover /src", RecoverCmd{Source: "/src"}},
		{"recover /src --ext=txt", RecoverCmd{Source: "/src", Extension: "txt"}},
		{"man recover", ManCmd{Topic: "recover"}},
		{"--help", HelpCmd{}},
		{"help", HelpCmd{}},
		{"--version", VersionCmd{}},
		{"exit", ExitCmd{}},
		{"quit", ExitCmd{}},
		{"   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, line := range []string{
		"scan",
		"scan a b c",
		"find /tmp",
		"list",
		"recover",
		"recover a b c",
		"recover a --ext",
		"man",
		"man a b",
		"rm -rf /",
		`scan "/unterminated`,
		`scan /trailing\`,
	} {
		t.Run(line, func(t *testing.T) {
			_, err := Parse(line)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidCommand), "got %v", err)
		})
	}
}
