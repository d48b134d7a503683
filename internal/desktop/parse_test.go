package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const firefoxDesktop = `[Desktop Entry]
Version=1.0
Name=Firefox
Name=Ignored Duplicate
Comment=Browse the World Wide Web
Exec=firefox %u
Terminal=false
Path=/opt/firefox
Actions=new-window;new-private-window;

[Desktop Action new-window]
Name=Open a New Window
Exec=firefox --new-window %u

[Desktop Action new-private-window]
Name=Open a New Private Window
Exec=firefox --private-window %u
`

func TestParseBaseEntry(t *testing.T) {
	e, err := Parse(firefoxDesktop, nil)
	require.NoError(t, err)

	assert.Equal(t, "Firefox", e.Name)
	assert.Equal(t, "firefox", e.Command)
	assert.Equal(t, "Browse the World Wide Web", e.Description)
	assert.False(t, e.IsTerminal)
	assert.Equal(t, "/opt/firefox", e.WorkingDirectory)
	assert.Equal(t, []string{"new-window", "new-private-window", ""}, e.Actions)
	assert.Zero(t, e.MatchScore)
	assert.Zero(t, e.LaunchCount)
}

func TestParseAction(t *testing.T) {
	e, err := Parse(firefoxDesktop, &Action{Name: "new-private-window", From: "Firefox"})
	require.NoError(t, err)

	assert.Equal(t, "Firefox (Open a New Private Window)", e.Name)
	assert.Equal(t, "firefox --private-window", e.Command)
	assert.Empty(t, e.Description)
	assert.Empty(t, e.WorkingDirectory)
	assert.Nil(t, e.Actions)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		action   *Action
		want     error
	}{
		{
			name:     "empty action",
			contents: firefoxDesktop,
			action:   &Action{Name: "", From: "Firefox"},
			want:     ErrEmptyAction,
		},
		{
			name:     "no exec",
			contents: "[Desktop Entry]\nName=Nothing\nComment=No command here\n",
			want:     ErrNoCommand,
		},
		{
			name:     "no section header",
			contents: "Name=Orphan\nExec=orphan\n",
			want:     ErrNoCommand,
		},
		{
			name:     "exec outside section",
			contents: "[Desktop Entry]\nName=Split\n[Desktop Action other]\nExec=other\n",
			want:     ErrNoCommand,
		},
		{
			name:     "missing action section",
			contents: firefoxDesktop,
			action:   &Action{Name: "does-not-exist", From: "Firefox"},
			want:     ErrNoCommand,
		},
		{
			name:     "hidden",
			contents: "[Desktop Entry]\nName=Hidden\nExec=hidden\nNoDisplay=true\n",
			want:     ErrHidden,
		},
		{
			name:     "hidden case insensitive before exec",
			contents: "[Desktop Entry]\nNoDisplay=TRUE\nName=Hidden\nTerminal=true\nExec=hidden\n",
			want:     ErrHidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.contents, tt.action)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseNoDisplayAfterSectionEnds(t *testing.T) {
	contents := "[Desktop Entry]\nName=Shown\nExec=shown\n[Desktop Action x]\nNoDisplay=true\n"
	e, err := Parse(contents, nil)
	require.NoError(t, err)
	assert.Equal(t, "Shown", e.Name)
}

func TestParseNoDisplayFalse(t *testing.T) {
	e, err := Parse("[Desktop Entry]\nNoDisplay=false\nExec=app\n", nil)
	require.NoError(t, err)
	assert.Equal(t, UnknownName, e.Name)
}

func TestParseTerminal(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"True", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			e, err := Parse("[Desktop Entry]\nExec=htop\nTerminal="+tt.value+"\n", nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.IsTerminal)
		})
	}
}

func TestParseRepeatedKeyPrefix(t *testing.T) {
	e, err := Parse("[Desktop Entry]\nName=Name=Foo\nExec=Exec=foo\nTerminal=Terminal=true\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "Foo", e.Name)
	assert.Equal(t, "foo", e.Command)
	assert.True(t, e.IsTerminal)
}

func TestParseCRLF(t *testing.T) {
	e, err := Parse("[Desktop Entry]\r\nName=Dos\r\nExec=dos %f\r\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "Dos", e.Name)
	assert.Equal(t, "dos", e.Command)
}

func TestStripFieldCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"firefox %u", "firefox"},
		{"vlc %U %f", "vlc %f"},
		{"gimp-2.10 %U", "gimp-2.10"},
		{"%F app", " app"},
		{"app --icon=%i --name %c", "app --icon= --name %c"},
		{"plain", "plain"},
		{"percent %% literal", "percent %% literal"},
		{"app %x", "app %x"},
		{"app  %k", "app "},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFieldCode(tt.in))
		})
	}
}

func TestParseAll(t *testing.T) {
	entries, err := ParseAll(firefoxDesktop)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Firefox (Open a New Window)", entries[0].Name)
	assert.Equal(t, "Firefox (Open a New Private Window)", entries[1].Name)
	assert.Equal(t, "Firefox", entries[2].Name)
}

func TestParseAllHiddenBase(t *testing.T) {
	_, err := ParseAll("[Desktop Entry]\nExec=x\nNoDisplay=true\nActions=a;\n[Desktop Action a]\nExec=y\n")
	assert.ErrorIs(t, err, ErrHidden)
}

func TestCorrectedScore(t *testing.T) {
	tests := []struct {
		name  string
		score int
		count uint64
		want  int64
	}{
		{"no history", 10, 0, 10},
		{"no history negative", -3, 0, -3},
		{"history without match", 0, 5, 5},
		{"history negative match", -2, 7, 7},
		{"history boost", 3, 4, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{MatchScore: tt.score, LaunchCount: tt.count}
			assert.Equal(t, tt.want, e.CorrectedScore())
		})
	}
}
