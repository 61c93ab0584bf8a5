package ruleset_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/ruleset"
)

func mustCompile(t *testing.T, name string, fields ...string) ruleset.Schema {
	t.Helper()
	def := ruleset.SchemaDefinition{Name: name}
	for _, f := range fields {
		def.Fields = append(def.Fields, ruleset.FieldDefinition{Name: f, Required: true})
	}
	s, err := ruleset.Compile(def)
	require.NoError(t, err)
	return s
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("registers and looks up schemas", func(t *testing.T) {
		reg := ruleset.NewRegistry()
		require.NoError(t, reg.Register(mustCompile(t, "b", "x"), mustCompile(t, "a", "y")))

		assert.Equal(t, 2, reg.Len())
		assert.Equal(t, []string{"a", "b"}, reg.Names())

		s, ok := reg.Get("a")
		require.True(t, ok)
		assert.Equal(t, "a", s.Name)

		_, err := reg.Lookup("missing")
		assert.ErrorIs(t, err, ruleset.ErrSchemaNotFound)
	})

	t.Run("rejects duplicates atomically", func(t *testing.T) {
		reg := ruleset.NewRegistry()
		require.NoError(t, reg.Register(mustCompile(t, "a")))

		err := reg.Register(mustCompile(t, "c"), mustCompile(t, "a"))
		assert.ErrorIs(t, err, ruleset.ErrDuplicateSchema)
		_, ok := reg.Get("c")
		assert.False(t, ok)

		err = reg.Register(mustCompile(t, "d"), mustCompile(t, "d"))
		assert.ErrorIs(t, err, ruleset.ErrDuplicateSchema)
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("rejects unnamed schemas", func(t *testing.T) {
		reg := ruleset.NewRegistry()
		assert.ErrorIs(t, reg.Register(ruleset.Schema{}), ruleset.ErrMissingName)
	})

	t.Run("zero value registry is usable", func(t *testing.T) {
		var reg ruleset.Registry
		require.NoError(t, reg.Register(mustCompile(t, "a")))
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		reg := ruleset.NewRegistry()
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				_ = reg.Register(mustCompile(t, fmt.Sprintf("s%d", i)))
			}(i)
			go func() {
				defer wg.Done()
				_ = reg.Names()
			}()
		}
		wg.Wait()
		assert.Equal(t, 20, reg.Len())
	})
}

func TestRegistry_LoadFS(t *testing.T) {
	t.Parallel()

	t.Run("loads yaml and json files recursively", func(t *testing.T) {
		reg := ruleset.NewRegistry()
		require.NoError(t, reg.LoadFS(context.Background(), os.DirFS("testdata/rules")))
		assert.Equal(t, []string{"contact", "signup"}, reg.Names())

		signup, err := reg.Lookup("signup")
		require.NoError(t, err)
		errs := signup.Validate(map[string]any{"username": "Bad Name", "email": "gopher@example.com"})
		require.NotNil(t, errs)
		assert.Equal(t, []string{"username"}, errs.Fields())
		assert.Equal(t, []string{"Only lowercase letters, digits and underscores"}, []string(errs.Get("username")))

		contact, err := reg.Lookup("contact")
		require.NoError(t, err)
		errs = contact.Validate(map[string]any{"subject": "Hi", "message": "short"})
		require.NotNil(t, errs)
		assert.Equal(t, []string{"Tell us a bit more"}, []string(errs.Get("message")))
	})

	t.Run("reports the failing file", func(t *testing.T) {
		fsys := fstest.MapFS{
			"ok.yaml":  {Data: []byte("schemas:\n  - name: ok\n")},
			"bad.json": {Data: []byte(`{"schemas":[{"name":"bad","fields":[{"name":"x","minLength":-1}]}]}`)},
		}
		reg := ruleset.NewRegistry()
		err := reg.LoadFS(context.Background(), fsys)
		require.Error(t, err)
		assert.ErrorIs(t, err, ruleset.ErrInvalidLength)
		assert.Contains(t, err.Error(), "bad.json")
	})

	t.Run("rejects schemas duplicated across files", func(t *testing.T) {
		fsys := fstest.MapFS{
			"a.yaml": {Data: []byte("schemas:\n  - name: same\n")},
			"b.yaml": {Data: []byte("schemas:\n  - name: same\n")},
		}
		err := ruleset.NewRegistry().LoadFS(context.Background(), fsys)
		assert.ErrorIs(t, err, ruleset.ErrDuplicateSchema)
	})

	t.Run("uses the given parsers only", func(t *testing.T) {
		fsys := fstest.MapFS{
			"a.yaml": {Data: []byte("schemas:\n  - name: a\n")},
			"b.json": {Data: []byte(`{"schemas":[{"name":"b"}]}`)},
		}
		reg := ruleset.NewRegistry()
		require.NoError(t, reg.LoadFS(context.Background(), fsys, ruleset.NewJSONParser()))
		assert.Equal(t, []string{"b"}, reg.Names())
	})

	t.Run("stops when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := ruleset.NewRegistry().LoadFS(ctx, fstest.MapFS{"a.yaml": {Data: []byte("schemas: []")}})
		assert.ErrorIs(t, err, ruleset.ErrParseCancelled)
	})
}

func TestRegistry_LoadFile(t *testing.T) {
	t.Parallel()

	t.Run("loads openapi documents with an explicit parser", func(t *testing.T) {
		reg := ruleset.NewRegistry()
		require.NoError(t, reg.LoadFile(context.Background(), "testdata/openapi.yaml", ruleset.NewOpenAPIParser()))
		assert.Equal(t, []string{"Profile"}, reg.Names())
	})

	t.Run("chooses a parser from the extension", func(t *testing.T) {
		reg := ruleset.NewRegistry()
		require.NoError(t, reg.LoadFile(context.Background(), "testdata/rules/signup.yaml", nil))
		assert.Equal(t, []string{"signup"}, reg.Names())
	})

	t.Run("fails for missing files", func(t *testing.T) {
		err := ruleset.NewRegistry().LoadFile(context.Background(), "testdata/nope.yaml", nil)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("fails for unsupported extensions", func(t *testing.T) {
		err := ruleset.NewRegistry().LoadFile(context.Background(), "testdata/rules/README.txt", nil)
		assert.ErrorIs(t, err, ruleset.ErrUnsupportedFormat)
	})
}
