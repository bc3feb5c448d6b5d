package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const markup = `<html><body><h1>Example Domain</h1>` +
	`<p><a href="https://www.iana.org/domains/example">More information...</a></p></body></html>`

func TestRunDumpsStdin(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(options{}, strings.NewReader("<h1>Example Domain</h1>"), &out))
	require.Equal(t, "<root>\n  <h1>\n    \"Example Domain\"\n", out.String())
}

func TestRunQueriesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(markup), 0600))

	var out bytes.Buffer

	require.NoError(t, run(options{file: path, query: "p > a"}, nil, &out))
	require.Equal(t, "<a href=\"https://www.iana.org/domains/example\">\n  \"More information...\"\n", out.String())
}

func TestRunMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.html")

	err := run(options{file: path}, nil, &bytes.Buffer{})

	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)))
	require.Contains(t, err.Error(), "reading "+path)
}

func TestRunInvalidQuery(t *testing.T) {
	err := run(options{query: "a >"}, strings.NewReader(markup), &bytes.Buffer{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid query")
}
