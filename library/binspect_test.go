package binspect

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDumper(t *testing.T) {
	t.Run("nil output is invalid", func(t *testing.T) {
		_, err := NewDumper(Config{})
		assert.Error(t, err)
	})

	t.Run("valid config", func(t *testing.T) {
		d, err := NewDumper(Config{Output: bytes.NewBuffer(nil)})
		require.NoError(t, err)
		assert.NotNil(t, d)
	})
}

func TestDumper_Run(t *testing.T) {
	t.Run("no arguments writes nothing", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		d, err := NewDumper(Config{Output: out})
		require.NoError(t, err)

		err = d.Run(nil)
		require.Error(t, err)

		var missing ErrMissingArgument
		assert.ErrorAs(t, err, &missing)
		assert.Empty(t, out.String())
	})

	t.Run("path that doesn't exist writes nothing", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		d, err := NewDumper(Config{Output: out})
		require.NoError(t, err)

		err = d.Run([]string{filepath.Join(t.TempDir(), "nope.bin")})
		require.Error(t, err)

		var notFound ErrPathNotFound
		assert.ErrorAs(t, err, &notFound)
		assert.Empty(t, out.String())
	})

	t.Run("directory target is a handled error", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		d, err := NewDumper(Config{Output: out})
		require.NoError(t, err)

		err = d.Run([]string{t.TempDir()})
		require.Error(t, err)

		var notAFile ErrNotAFile
		assert.ErrorAs(t, err, &notAFile)
		assert.Empty(t, out.String())
	})

	t.Run("successful run reports path then bytes", func(t *testing.T) {
		content := []byte{0xca, 0xfe, 0xba, 0xbe, 0x00, 0x01}
		path := filepath.Join(t.TempDir(), "data.bin")
		require.NoError(t, os.WriteFile(path, content, 0644))

		resolved, err := filepath.EvalSymlinks(path)
		require.NoError(t, err)

		out := bytes.NewBuffer(nil)
		d, err := NewDumper(Config{Output: out})
		require.NoError(t, err)

		require.NoError(t, d.Run([]string{path}))

		expected := fmt.Sprintf("%q\n", resolved) + spew.Sdump(content)
		assert.Equal(t, expected, out.String())
	})

	t.Run("symlink argument reports the target's contents", func(t *testing.T) {
		content := []byte("linked bytes")
		tmp := t.TempDir()
		target := filepath.Join(tmp, "target.bin")
		require.NoError(t, os.WriteFile(target, content, 0644))

		link := filepath.Join(tmp, "link.bin")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("unable to create symlink: %v", err)
		}

		resolved, err := filepath.EvalSymlinks(target)
		require.NoError(t, err)

		out := bytes.NewBuffer(nil)
		d, err := NewDumper(Config{Output: out})
		require.NoError(t, err)

		require.NoError(t, d.Run([]string{link}))

		expected := fmt.Sprintf("%q\n", resolved) + spew.Sdump(content)
		assert.Equal(t, expected, out.String())
	})
}
