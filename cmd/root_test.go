package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vincit.fi/photo-report/api/apitype"
	"vincit.fi/photo-report/common/testimage"
	"vincit.fi/photo-report/common/util"
)

func run(t *testing.T, session string, args ...string) (string, error) {
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--session", session}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	session := filepath.Join(dir, "session.json")
	first := testimage.WriteJpeg(t, dir, "first.jpg", 40, 30, "2019:09:29 17:12:17")
	second := testimage.WritePng(t, dir, "second.png", 30, 40)

	t.Run("add", func(t *testing.T) {
		out, err := run(t, session, "add", first, second, first)

		a.Nil(err)
		a.Equal("Added 2 images, 2 in total\n", out)
		_, statErr := os.Stat(session)
		a.Nil(statErr)
	})

	t.Run("set-time and show", func(t *testing.T) {
		_, err := run(t, session, "set-time", second, "year", "110")
		a.Nil(err)

		out, err := run(t, session, "show", second)
		a.Nil(err)
		a.Contains(out, "file_path:      "+second+"\n")
		a.Contains(out, "year:           110\n")
		a.Contains(out, "use_image_time: false\n")
	})

	t.Run("set-time with unknown field", func(t *testing.T) {
		_, err := run(t, session, "set-time", second, "week", "1")
		a.ErrorIs(err, apitype.ErrInvalidField)
	})

	t.Run("use-image-time and resolve", func(t *testing.T) {
		_, err := run(t, session, "use-image-time", first, "true")
		a.Nil(err)

		out, err := run(t, session, "resolve", first)
		a.Nil(err)
		a.Equal("108年09月29日17時12分17秒\n", out)
	})

	t.Run("resolve with tags", func(t *testing.T) {
		out, err := run(t, session, "resolve", first, "--tags")
		a.Nil(err)
		a.Contains(out, "DateTimeOriginal: 2019:09:29 17:12:17\n")
	})

	t.Run("rotate with invalid value", func(t *testing.T) {
		_, err := run(t, session, "rotate", first, "maybe")
		a.ErrorIs(err, apitype.ErrInvalidField)
	})

	t.Run("move and list", func(t *testing.T) {
		_, err := run(t, session, "move", "1", "0")
		a.Nil(err)

		out, err := run(t, session, "list")
		a.Nil(err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if a.Equal(2, len(lines)) {
			a.Equal("0\t"+second+"\t110年月日時分秒", lines[0])
			a.Equal("1\t"+first+"\t108年09月29日17時12分17秒", lines[1])
		}
	})

	t.Run("move out of range", func(t *testing.T) {
		_, err := run(t, session, "move", "0", "5")
		a.ErrorIs(err, apitype.ErrOutOfRange)
	})

	t.Run("report", func(t *testing.T) {
		out, err := run(t, session, "report", filepath.Join(dir, "report.docx"), "--title", "工程照片")
		a.Nil(err)
		a.Equal("Wrote 1 pages to "+filepath.Join(dir, "report.docx")+"\n", out)
	})

	t.Run("preview", func(t *testing.T) {
		out, err := run(t, session, "preview", second, filepath.Join(dir, "preview.png"), "--width", "15", "--height", "15")
		a.Nil(err)
		a.Contains(out, "Wrote 11x15 preview")
	})

	t.Run("export and import", func(t *testing.T) {
		exported := filepath.Join(dir, "export.json")
		_, err := run(t, session, "export", exported)
		require.Nil(t, err)

		other := filepath.Join(dir, "other.json")
		out, err := run(t, other, "import", exported)
		a.Nil(err)
		a.Equal("Imported 2 images from "+exported+"\n", out)

		out, err = run(t, other, "list")
		a.Nil(err)
		a.True(strings.HasPrefix(out, "0\t"+second))
	})

	t.Run("remove", func(t *testing.T) {
		_, err := run(t, session, "remove", second)
		a.Nil(err)

		_, err = run(t, session, "show", second)
		a.ErrorIs(err, apitype.ErrKeyNotFound)
	})

	t.Run("invalid import leaves session untouched", func(t *testing.T) {
		invalid := filepath.Join(dir, "invalid.json")
		require.Nil(t, os.WriteFile(invalid, []byte(`[{"time": {}}]`), 0644))

		_, err := run(t, session, "import", invalid)
		a.ErrorIs(err, apitype.ErrImportFormat)

		out, err := run(t, session, "list")
		a.Nil(err)
		a.Contains(out, first)
	})
}

func TestOptions(t *testing.T) {
	a := assert.New(t)

	t.Run("Invalid log level", func(t *testing.T) {
		_, err := run(t, filepath.Join(t.TempDir(), "session.json"), "--log-level", "LOUD", "list")
		a.NotNil(err)
	})

	t.Run("Session from config file", func(t *testing.T) {
		dir := t.TempDir()
		config := filepath.Join(dir, "config.yaml")
		session := filepath.Join(dir, "from-config.json")
		require.Nil(t, os.WriteFile(config, []byte("session: "+session+"\n"), 0644))

		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{"--config", config, "add", "a.jpg"})

		a.Nil(root.Execute())
		_, err := os.Stat(session)
		a.Nil(err)
	})

	t.Run("Environment overrides config", func(t *testing.T) {
		dir := t.TempDir()
		config := filepath.Join(dir, "config.yaml")
		session := filepath.Join(dir, "from-env.json")
		require.Nil(t, os.WriteFile(config, []byte("session: "+filepath.Join(dir, "from-config.json")+"\n"), 0644))
		t.Setenv(util.EnvSessionFile, session)

		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{"--config", config, "add", "a.jpg"})

		a.Nil(root.Execute())
		_, err := os.Stat(session)
		a.Nil(err)
	})

	t.Run("Missing config file", func(t *testing.T) {
		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "list"})

		a.ErrorIs(root.Execute(), apitype.ErrIO)
	})
}
