package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdir/internal/config"
	"staffdir/pkg/metadata"
)

const rosterYAML = `
- name: Ada Lovelace
  role: Instructor
  website: https://ada.example.edu
  pronouns: she/her
  office-hours:
    - when: Mon 10-11
      where: Room 101
- name: Alan Turing
  role: TA
  photo: alan.jpg
- name: Grace Hopper
  role: TA
`

// execute runs the command tree in-process and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}

func writeRoster(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "staff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rosterYAML), 0644))

	return path
}

func TestRender_JSON(t *testing.T) {
	out, err := execute(t, "render", writeRoster(t))
	require.NoError(t, err)

	var nodes []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &nodes))
	require.Len(t, nodes, 5)

	assert.Equal(t, "heading", nodes[0]["type"])
	assert.Equal(t, "div", nodes[1]["type"])
	assert.Equal(t, "staff-person-card-no-photo", nodes[1]["class"])
}

func TestRender_HTMLToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site", "staff.html")

	_, err := execute(t, "render", writeRoster(t), "--format", "html", "--out", out, "--check-schema", "--sign")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"Instructor", "TAs"}, doc.Find("h2").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	}))
	assert.Equal(t, 1, doc.Find(".staff-person-photo img").Length())

	ok, err := metadata.Verify(string(data))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRender_Errors(t *testing.T) {
	_, err := execute(t, "render", writeRoster(t), "--format", "pdf")
	require.Error(t, err)

	_, err = execute(t, "render", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = execute(t, "render")
	require.Error(t, err)
}

func TestPreview(t *testing.T) {
	out, err := execute(t, "preview", writeRoster(t), "--width", "60")
	require.NoError(t, err)

	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "TAs")

	_, err = execute(t, "preview", writeRoster(t), "--width", "10")
	require.Error(t, err)
}

func TestPreview_WidthFromConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "staffdir.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
preview:
  width: 50
pages:
  - name: staff
    data: staff.yaml
    output: staff.md
`), 0644))

	maxWidth := func(out string) int {
		widest := 0
		for _, line := range strings.Split(out, "\n") {
			widest = max(widest, lipgloss.Width(line))
		}

		return widest
	}

	out, err := execute(t, "preview", writeRoster(t), "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 50, maxWidth(out))

	out, err = execute(t, "preview", writeRoster(t), "--config", cfgPath, "--width", "70")
	require.NoError(t, err)
	assert.Equal(t, 70, maxWidth(out))

	_, err = execute(t, "preview", writeRoster(t), "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestInitBuildVerify(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "staffdir.yaml")

	out, err := execute(t, "init", "--out", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	_, err = execute(t, "init", "--out", cfgPath)
	require.ErrorIs(t, err, errConfigExists)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "staff.yaml"), []byte(rosterYAML), 0644))

	out, err = execute(t, "build", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "written")

	out, err = execute(t, "build", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged")

	page := filepath.Join(dir, "build", "staff.md")

	out, err = execute(t, "verify", page)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "OK"))

	content, err := os.ReadFile(page)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(page, bytes.Replace(content, []byte("Ada"), []byte("Eve"), 1), 0644))

	out, err = execute(t, "verify", page)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL")
}

func TestBuild_MissingConfig(t *testing.T) {
	_, err := execute(t, "build", "--config", filepath.Join(t.TempDir(), config.DefaultPath))
	require.Error(t, err)
}

func TestDescribe(t *testing.T) {
	out, err := execute(t, "describe")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Staff Directive",
		"directives": [{
			"name": "staff",
			"doc": "Staff directive presents a listing of staff information based on a YAML file",
			"arg": {"type": "string", "required": true},
			"options": {}
		}]
	}`, out)

	out, err = execute(t, "describe", "--schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"definitions"`)
}
