package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestValidateAcceptsGoodTour(t *testing.T) {
	path := writeTour(t, searchTour)

	out, _, err := runRoot(t, "validate", path)
	require.NoError(t, err)
	require.Contains(t, out, path+": 1 marks")
}

func TestValidateReportsEveryBadFile(t *testing.T) {
	good := writeTour(t, searchTour)
	noMarks := writeTour(t, "version: \"1.0.0\"\nname: Empty\n")
	badYAML := writeTour(t, "marks: [\n")

	out, errOut, err := runRoot(t, "validate", good, noMarks, badYAML)
	require.EqualError(t, err, "2 of 3 tour files invalid")
	require.Contains(t, out, good)
	require.Contains(t, errOut, noMarks)
	require.Contains(t, errOut, badYAML)
	require.Contains(t, errOut, "marks")
}

func TestValidateChecksTargets(t *testing.T) {
	path := writeTour(t, searchTour)

	_, _, err := runRoot(t, "validate", "--targets", "inbox,status", path)
	require.Error(t, err)

	_, _, err = runRoot(t, "validate", "--demo", path)
	require.NoError(t, err)
}

func TestValidateJSONOutput(t *testing.T) {
	path := writeTour(t, `version: "one"
name: Broken
marks:
  - target: search
    order: 0
`)

	_, errOut, err := runRoot(t, "validate", "--json", path)
	require.Error(t, err)
	line, _, _ := strings.Cut(errOut, "\n")
	entry := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	require.Equal(t, "invalid tour", entry["msg"])
	require.Equal(t, "version", entry["field"])
	require.Equal(t, path, entry["file"])
}

func TestValidateNeedsAPath(t *testing.T) {
	_, _, err := runRoot(t, "validate")
	require.Error(t, err)
}
