package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const winterExport = `"Winter Warmers"
Start Date,End Date,Cost,Budget
1/1/2024,3/31/2024,"$4,500.00","$10,000.00"
Buyer Volume
Date,Sales,Units,Trips,Buyers,Cost
2024-01-01,300,30,20,10,100
2024-01-02,200,20,12,9,100
`

func writeExport(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(t.Context())
	return stdout.String(), err
}

func TestParseKeepsGoingPastUnreadableFile(t *testing.T) {
	good := writeExport(t, "winter.csv", winterExport)
	missing := filepath.Join(t.TempDir(), "missing.csv")

	out, err := run(t, "parse", missing, good)
	require.NoError(t, err)

	var files []parsedFile
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	require.Len(t, files, 2)

	assert.Equal(t, "missing.csv", files[0].File)
	assert.Contains(t, files[0].Error, "read")
	assert.Nil(t, files[0].Campaign)

	assert.Equal(t, "winter.csv", files[1].File)
	assert.Empty(t, files[1].Error)
	require.NotNil(t, files[1].Campaign)
	assert.Equal(t, "Winter Warmers", files[1].Campaign.Name)
	assert.Len(t, files[1].Campaign.Daily, 2)
}

func TestParseNothingLoaded(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.csv")

	out, err := run(t, "parse", missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no campaign could be loaded")

	var files []parsedFile
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	require.Len(t, files, 1)
	assert.NotEmpty(t, files[0].Error)
}

func TestPacingSkipsUnreadableFile(t *testing.T) {
	good := writeExport(t, "winter.csv", winterExport)
	missing := filepath.Join(t.TempDir(), "missing.csv")

	out, err := run(t, "--now", "2024-02-15", "pacing", good, missing)
	require.NoError(t, err)

	var byID map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &byID))
	require.Len(t, byID, 1)
	require.Contains(t, byID, "winter.csv")
	assert.Equal(t, 45.0, byID["winter.csv"]["days_elapsed"])
	assert.Equal(t, 90.0, byID["winter.csv"]["total_campaign_days"])
}

func TestInvalidNow(t *testing.T) {
	good := writeExport(t, "winter.csv", winterExport)

	_, err := run(t, "--now", "15/02/2024", "pacing", good)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--now")
}
