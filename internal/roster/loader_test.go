package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdir/internal/models"
)

// Helper to create a temp roster file.
func createTempRosterFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

const sampleRosterYAML = `
- name: Ada Lovelace
  role: Instructor
  website: https://ada.example
  email: ada@example.edu
  office-hours:
    - when: Mondays 10-11am
      where: Room 101
      link: https://zoom.example/ada
    - Thursdays by appointment
    - 42
- name: Alan Turing
  role: Tutor
  photo: images/alan.jpg
- name: Unassigned Person
`

func TestLoad_YAML(t *testing.T) {
	path := createTempRosterFile(t, "staff.yml", sampleRosterYAML)

	people, err := Load(path)
	require.NoError(t, err)
	require.Len(t, people, 3)

	ada := people[0]
	assert.Equal(t, "Ada Lovelace", ada.Name)
	require.Len(t, ada.OfficeHours, 3)
	assert.Equal(t, models.ScheduledHours{
		When:  "Mondays 10-11am",
		Where: "Room 101",
		Link:  "https://zoom.example/ada",
	}, ada.OfficeHours[0])
	assert.Equal(t, models.LegacyHours{Text: "Thursdays by appointment"}, ada.OfficeHours[1])
	assert.Equal(t, models.InvalidHours{}, ada.OfficeHours[2])

	assert.Equal(t, "images/alan.jpg", people[1].Photo)
	assert.Equal(t, models.DefaultRole, people[2].RoleOrDefault())
}

func TestLoad_JSON(t *testing.T) {
	path := createTempRosterFile(t, "staff.json",
		`[{"name": "B", "role": "Teaching Assistant", "office-hours": ["Fri"]}]`)

	people, err := Load(path)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "Teaching Assistant", people[0].Role)
	assert.Equal(t, []models.OfficeHours{models.LegacyHours{Text: "Fri"}}, people[0].OfficeHours)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/staff.yml")
	require.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "mapping root", input: "name: A\n", wantErr: ErrNotSequence},
		{name: "scalar entry", input: "- just a string\n", wantErr: ErrRecordNotMapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("- name: [}"))
	require.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	people, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestFromMaps(t *testing.T) {
	people := FromMaps([]map[string]any{{"name": "A"}, {"name": "B", "role": "Tutor"}})

	require.Len(t, people, 2)
	assert.Equal(t, "Staff", people[0].RoleOrDefault())
	assert.Equal(t, "Tutor", people[1].RoleOrDefault())
}
