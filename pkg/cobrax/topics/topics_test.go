package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"dry-run.txt":          {Data: []byte("Information about dry-run mode")},
		"recover.md":           {Data: []byte("# recover\n\nCopy files into a destination tree.")},
		"config.txxt":          {Data: []byte("Configuration Guide\n==================")},
		"ignore.json":          {Data: []byte("This should be ignored")},
		"option-verbose.txt":   {Data: []byte("Verbose help")},
		"advanced/plugins.txt": {Data: []byte("Plugin help")},
	}
}

func TestLoadDefaultExtensions(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.Load())

	tests := []struct {
		name    string
		exists  bool
		content string
	}{
		{"dry-run", true, "Information about dry-run mode"},
		{"recover", true, "# recover\n\nCopy files into a destination tree."},
		{"config", false, ""},
		{"ignore", false, ""},
		{"plugins", true, "Plugin help"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.name)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.content, topic.Content)
			}
		})
	}
}

func TestLoadCustomExtensions(t *testing.T) {
	tm := NewWithOptions(testFS(), Options{Extensions: []string{".txxt"}})
	require.NoError(t, tm.Load())
	assert.Equal(t, []string{"config"}, tm.ListTopics())
}

func TestGetTopicFlagStyle(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.Load())

	tests := []struct {
		input  string
		want   string
		exists bool
	}{
		{"dry-run", "dry-run", true},
		{"--dry-run", "dry-run", true},
		{"verbose", "option-verbose", true},
		{"--verbose", "option-verbose", true},
		{"-v", "", false},
		{"nonexistent", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.want, topic.Name)
			}
		})
	}
}

func TestListTopicsSorted(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.Load())
	assert.Equal(t, []string{"dry-run", "option-verbose", "plugins", "recover"}, tm.ListTopics())
}

func TestNilAndEmptyFS(t *testing.T) {
	tm := New(nil)
	require.NoError(t, tm.Load())
	assert.Empty(t, tm.ListTopics())

	tm = New(fstest.MapFS{})
	require.NoError(t, tm.Load())
	assert.Empty(t, tm.ListTopics())
}

func TestWriteManual(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.Load())

	var buf bytes.Buffer
	assert.True(t, tm.WriteManual(&buf, "recover"))
	assert.Contains(t, buf.String(), "Manual for 'recover':")
	assert.Contains(t, buf.String(), "Copy files into a destination tree.")

	buf.Reset()
	assert.False(t, tm.WriteManual(&buf, "format-disk"))
	assert.Equal(t, "Manual for 'format-disk':\n"+NotFoundMessage+"\n", buf.String())
}

func TestGlamourRendererPassesThroughText(t *testing.T) {
	r := &GlamourRenderer{Style: "notty"}
	assert.Equal(t, "plain", r.Render("plain", ".txt"))

	out := r.Render("# Title\n\nBody text", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Body text")
}

func newTestRoot() *cobra.Command {
	root := &cobra.Command{Use: "testapp", Short: "Test application"}
	root.AddCommand(&cobra.Command{
		Use:   "scan",
		Short: "Scan something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})
	return root
}

func execute(t *testing.T, root *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestInitializeInstallsHelp(t *testing.T) {
	root := newTestRoot()
	tm, err := Initialize(root, testFS())
	require.NoError(t, err)
	require.NotNil(t, tm)

	helpCmd, _, err := root.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help [command or topic]", helpCmd.Use)
}

func TestHelpCommandShowsTopic(t *testing.T) {
	root := newTestRoot()
	_, err := Initialize(root, testFS())
	require.NoError(t, err)

	out := execute(t, root, "help", "dry-run")
	assert.Equal(t, "Information about dry-run mode\n", out)
}

func TestHelpCommandListsTopics(t *testing.T) {
	root := newTestRoot()
	_, err := Initialize(root, testFS())
	require.NoError(t, err)

	out := execute(t, root, "help", "topics")
	assert.Contains(t, out, "General topics:")
	assert.Contains(t, out, "  --verbose")
	assert.True(t, strings.HasSuffix(out, "Use 'testapp help <topic>' to read about a specific topic.\n"))
}

func TestHelpCommandFallsBackToCommandHelp(t *testing.T) {
	root := newTestRoot()
	_, err := Initialize(root, testFS())
	require.NoError(t, err)

	out := execute(t, root, "help", "scan")
	assert.Contains(t, out, "Scan something")
}
