package e2e_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmdArgs := append([]string{"run", "../../main.go"}, args...)
	cmd := exec.Command("go", cmdArgs...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// TestEndToEnd_ComplexNestedStructures runs the CLI against a document with
// every value kind and checks the exact formatted output.
func TestEndToEnd_ComplexNestedStructures(t *testing.T) {
	tempDir := t.TempDir()

	jsonContent := `{
		"users": [
			{"name": "Alice", "roles": ["admin", "user"], "active": true},
			{"name": "Bob", "roles": [], "active": false}
		],
		"config": {
			"timeout_seconds": 30,
			"rate": 0.5,
			"fallback": null
		},
		"empty": {}
	}`

	jsonFile := filepath.Join(tempDir, "complex.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(jsonContent), 0644))

	outputFile := filepath.Join(tempDir, "complex_pretty.json")

	_, stderr, err := runCLI(t, "", "-i", jsonFile, "-o", outputFile)
	require.NoError(t, err, "CLI command failed: %s", stderr)

	formatted, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	want := `{
  "config": {
    "fallback": null,
    "rate": 0.5,
    "timeout_seconds": 30
  },
  "empty": {
  },
  "users": [
    {
      "active": true,
      "name": "Alice",
      "roles": [
        "admin",
        "user"
      ]
    },
    {
      "active": false,
      "name": "Bob",
      "roles": [
      ]
    }
  ]
}
`
	assert.Equal(t, want, string(formatted))
}

// TestEndToEnd_Stdin pipes a document through stdin and reads stdout.
func TestEndToEnd_Stdin(t *testing.T) {
	stdout, stderr, err := runCLI(t, `{"b": 1, "a": 2}`)
	require.NoError(t, err, "CLI command failed: %s", stderr)

	want := `{
  "a": 2,
  "b": 1
}
`
	assert.Equal(t, want, stdout)
}

// TestEndToEnd_Idempotent re-formats already formatted output and expects
// an identical result.
func TestEndToEnd_Idempotent(t *testing.T) {
	input := `{"z":[1,2,{"y":"x\ttab"}],"a":{"nested":true}}`

	first, stderr, err := runCLI(t, input)
	require.NoError(t, err, "CLI command failed: %s", stderr)

	second, stderr, err := runCLI(t, first)
	require.NoError(t, err, "CLI command failed: %s", stderr)

	assert.Equal(t, first, second)
}

// TestEndToEnd_IndentFlag checks that --indent widens each level.
func TestEndToEnd_IndentFlag(t *testing.T) {
	stdout, stderr, err := runCLI(t, `{"a": [1]}`, "-n", "4")
	require.NoError(t, err, "CLI command failed: %s", stderr)

	want := `{
    "a": [
        1
    ]
}
`
	assert.Equal(t, want, stdout)
}

// TestEndToEnd_SampleFile formats the checked-in sample and sanity-checks
// sorted keys in the output.
func TestEndToEnd_SampleFile(t *testing.T) {
	stdout, stderr, err := runCLI(t, "", "-i", "../../testdata/samples/sample.json")
	require.NoError(t, err, "CLI command failed: %s", stderr)

	assert.True(t, strings.HasPrefix(stdout, "{\n"))
	assert.True(t, strings.HasSuffix(stdout, "}\n"))
	// Keys print in sorted order regardless of their order in the file.
	assert.Less(t, strings.Index(stdout, `"config"`), strings.Index(stdout, `"users"`))
}

// TestEndToEnd_Errors checks that malformed input fails with a non-zero
// exit and a user-facing message.
func TestEndToEnd_Errors(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		wantStderr string
	}{
		{name: "invalid literal", stdin: `{"ok": tru3}`, wantStderr: "JSON parsing error"},
		{name: "root not object", stdin: `[1, 2]`, wantStderr: "JSON parsing error"},
		{name: "trailing garbage", stdin: `{"a": 1} extra`, wantStderr: "JSON parsing error"},
		{name: "bare value", stdin: `@`, wantStderr: "JSON parsing error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := runCLI(t, tt.stdin)
			require.Error(t, err)
			assert.Contains(t, stderr, tt.wantStderr)
		})
	}
}

// TestEndToEnd_Version prints the version banner.
func TestEndToEnd_Version(t *testing.T) {
	stdout, stderr, err := runCLI(t, "", "--version")
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.Contains(t, stdout, "jsonpretty version")
}
