package helpdoc

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/helpdoc/pkg/document"
	"github.com/arthur-debert/helpdoc/pkg/errors"
	"github.com/arthur-debert/helpdoc/pkg/testutil"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	bold  = "\x1b[1m"
	reset = "\x1b[0m"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCmd(t *testing.T) {
	testutil.NewTestEnvironment(t)

	tests := []struct {
		name  string
		args  []string
		input string
		want  string
	}{
		{
			name:  "plain mode",
			args:  []string{"render", "--mode", "plain"},
			input: "<p>Hello <b>world</b></p>",
			want:  "Hello world\n",
		},
		{
			name:  "ansi mode",
			args:  []string{"render", "--mode", "ansi"},
			input: "<p>Hello <b>world</b></p>",
			want:  "Hello " + bold + "world" + reset + "\n",
		},
		{
			name:  "auto mode on a pipe keeps layout without escapes",
			args:  []string{"render"},
			input: "<ul><li>one</li><li>two</li></ul>",
			want:  "  * one\n  * two\n",
		},
		{
			name:  "plain mode keeps list items apart",
			args:  []string{"render", "--mode", "plain"},
			input: "<ul><li>first item</li><li>second item</li></ul>",
			want:  "  * first item\n  * second item\n",
		},
		{
			name:  "plain mode spaces paragraphs",
			args:  []string{"render", "--mode", "plain"},
			input: "<p>one</p><p>two</p>",
			want:  "one\n\n\ntwo\n",
		},
		{
			name:  "examples with decorations are hidden",
			args:  []string{"render", "--mode", "ansi"},
			input: "<p>shown</p><examples><h2>Example</h2><p><b>aws</b> s3 ls</p></examples>",
			want:  "shown\n",
		},
		{
			name:  "width wraps paragraphs",
			args:  []string{"render", "--mode", "plain", "--width", "9"},
			input: "<p>one two three</p>",
			want:  "one two\nthree\n",
		},
		{
			name:  "examples are hidden",
			args:  []string{"render", "--mode", "plain"},
			input: "<p>shown</p><examples><p>hidden</p></examples>",
			want:  "shown\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.input, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderCmd_File(t *testing.T) {
	testutil.NewTestEnvironment(t)

	path := testutil.CreateFile(t, t.TempDir(), "doc.xml", "<p>from a file</p>")

	got, err := execute(t, "", "render", "--mode", "plain", path)
	require.NoError(t, err)
	assert.Equal(t, "from a file\n", got)
}

func TestRenderCmd_Errors(t *testing.T) {
	testutil.NewTestEnvironment(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "", "render", filepath.Join(t.TempDir(), "missing.xml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	})

	t.Run("italic tag", func(t *testing.T) {
		_, err := execute(t, "<p><i>x</i></p>", "render", "--mode", "ansi")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUndefinedOperation))
	})

	t.Run("malformed markup", func(t *testing.T) {
		_, err := execute(t, "<p>open", "render")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
	})

	t.Run("bad mode", func(t *testing.T) {
		_, err := execute(t, "<p>x</p>", "render", "--mode", "sparkly")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestRenderCmd_ConfigFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteConfig("config.toml", "mode = \"ansi\"\n")

	got, err := execute(t, "<p><b>x</b></p>", "render")
	require.NoError(t, err)
	assert.Equal(t, bold+"x"+reset+"\n", got)

	// Flags win over the file
	got, err = execute(t, "<p><b>x</b></p>", "render", "--mode", "plain")
	require.NoError(t, err)
	assert.Equal(t, "x\n", got)
}

func TestDumpCmd(t *testing.T) {
	testutil.NewTestEnvironment(t)

	input := "<ul><li>one</li></ul>"

	t.Run("yaml", func(t *testing.T) {
		got, err := execute(t, input, "dump", "--mode", "ansi")
		require.NoError(t, err)

		var dump dumpDocument
		require.NoError(t, yaml.Unmarshal([]byte(got), &dump))
		require.NotEmpty(t, dump.Paragraphs)

		var item *document.ParagraphData
		for i := range dump.Paragraphs {
			if dump.Paragraphs[i].Text != "" {
				item = &dump.Paragraphs[i]
				break
			}
		}
		require.NotNil(t, item)
		assert.Equal(t, "  * one", item.Text)
		assert.Equal(t, item.InitialIndent+1, item.SubsequentIndent)
	})

	t.Run("toml", func(t *testing.T) {
		got, err := execute(t, input, "dump", "--mode", "ansi", "--format", "toml")
		require.NoError(t, err)

		var dump dumpDocument
		require.NoError(t, toml.Unmarshal([]byte(got), &dump))
		require.NotEmpty(t, dump.Paragraphs)
		assert.Contains(t, got, "text = '  * one'")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, input, "dump", "--format", "json")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestGenConfigCmd(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	t.Run("stdout", func(t *testing.T) {
		got, err := execute(t, "", "genconfig", "--stdout")
		require.NoError(t, err)
		assert.Contains(t, got, "mode = 'auto'")
		assert.Contains(t, got, "indent_width = 4")
	})

	t.Run("writes once", func(t *testing.T) {
		path := env.ConfigPath("config.toml")

		got, err := execute(t, "", "genconfig")
		require.NoError(t, err)
		assert.Contains(t, got, path)
		assert.FileExists(t, path)

		_, err = execute(t, "", "genconfig")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))

		_, err = execute(t, "", "genconfig", "--force")
		require.NoError(t, err)
	})
}

func TestVersionCmd(t *testing.T) {
	testutil.NewTestEnvironment(t)

	got, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, got, "helpdoc version")
}

func TestRootCmd_NoCommand(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, err := execute(t, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), MsgErrNoCommand)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestHelpTopics(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("HELPDOC_TOPICS", "topics")

	t.Run("listing", func(t *testing.T) {
		got, err := execute(t, "", "help", "topics")
		require.NoError(t, err)
		assert.Contains(t, got, "markup")
		assert.Contains(t, got, "modes")
		assert.Contains(t, got, "config")
	})

	t.Run("markup topic is rendered", func(t *testing.T) {
		got, err := execute(t, "", "help", "markup")
		require.NoError(t, err)
		assert.Contains(t, got, "Help markup")
		assert.Contains(t, got, "  * <p> starts a paragraph.")
		assert.NotContains(t, got, "<code>")
	})

	t.Run("plain topic", func(t *testing.T) {
		got, err := execute(t, "", "help", "modes")
		require.NoError(t, err)
		assert.Contains(t, got, "Output modes")
	})
}
