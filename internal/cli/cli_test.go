package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/library-id/internal/isbn"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := RootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestRootCmdStructure(t *testing.T) {
	root := RootCmd("test")

	want := map[string]bool{"generate": false, "format": false, "validate": false, "convert": false}
	for _, sub := range root.Commands() {
		name := strings.Fields(sub.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
			assert.NotEmpty(t, sub.Short, name)
		}
	}
	for name, found := range want {
		assert.True(t, found, "%s not registered", name)
	}
}

func TestGenerate(t *testing.T) {
	out, _, err := run(t, "generate", "--count", "20")
	require.NoError(t, err)
	ids := lines(out)
	require.Len(t, ids, 20)
	for _, id := range ids {
		assert.Len(t, id, isbn.Length13)
		assert.NoError(t, isbn.Validate(id))
	}

	out, _, err = run(t, "generate", "-t", "isbn10", "-n", "5", "--hyphenate")
	require.NoError(t, err)
	for _, id := range lines(out) {
		assert.Len(t, id, isbn.Length10+3)
		assert.NoError(t, isbn.Validate(id))
	}
}

func TestGenerate_Seed(t *testing.T) {
	a, _, err := run(t, "generate", "-n", "3", "--seed", "42")
	require.NoError(t, err)
	b, _, err := run(t, "generate", "-n", "3", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_BadFlags(t *testing.T) {
	_, _, err := run(t, "generate", "--count", "0")
	assert.ErrorContains(t, err, "--count")

	_, _, err = run(t, "generate", "--type", "ean8")
	assert.ErrorContains(t, err, "unknown --type")

	_, _, err = run(t, "generate", "extra")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	out, _, err := run(t, "format", "9780306406157", "0306406152", "12345")
	require.NoError(t, err)
	assert.Equal(t, []string{"978-0-306-40615-7", "0-306-40615-2", "12345"}, lines(out))

	_, _, err = run(t, "format")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, _, err := run(t, "validate", "978-0-306-40615-7", "080442957X")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "VALID")
	assert.Contains(t, got[0], "isbn13")
	assert.Contains(t, got[1], "0-804-42957-X")

	out, _, err = run(t, "validate", "9780306406157", "9780306406158", "12345")
	assert.ErrorContains(t, err, "2 of 3 identifiers invalid")
	got = lines(out)
	require.Len(t, got, 3)
	assert.True(t, strings.HasPrefix(got[0], "VALID"))
	assert.True(t, strings.HasPrefix(got[1], "INVALID"))
	assert.True(t, strings.HasPrefix(got[2], "INVALID"))
}

func TestConvert(t *testing.T) {
	out, _, err := run(t, "convert", "0306406152", "9780306406157")
	require.NoError(t, err)
	assert.Equal(t, []string{"9780306406157", "0306406152"}, lines(out))

	out, _, err = run(t, "convert", "--to", "isbn13", "--hyphenate", "080442957X")
	require.NoError(t, err)
	assert.Equal(t, "978-0-804-42957-3", strings.TrimSpace(out))

	_, _, err = run(t, "convert", "9791000000008")
	assert.ErrorIs(t, err, isbn.ErrNotConvertible)

	_, _, err = run(t, "convert", "--to", "uuid", "0306406152")
	assert.ErrorContains(t, err, "unknown target")
}
