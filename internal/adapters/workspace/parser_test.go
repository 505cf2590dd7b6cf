package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tfroot/internal/adapters/workspace"
	"go.trai.ch/tfroot/internal/core/domain"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestParseWorkfold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fixture string
		want    *domain.Workspace
	}{
		{
			fixture: "workfold_basic.txt",
			want: &domain.Workspace{
				Name:       "build-ws",
				Owner:      `CORP\dev`,
				Collection: "https://dev.azure.com/corp/",
				Mappings: []domain.Mapping{
					{ServerPath: "$/Product/Main", LocalPath: "/home/dev/product"},
					{ServerPath: "$/Product/Tools", LocalPath: "/home/dev/tools"},
					{ServerPath: "$/Product/Main/bin", Cloaked: true},
				},
			},
		},
		{
			fixture: "workfold_windows.txt",
			want: &domain.Workspace{
				Name:       "DESKTOP-01",
				Owner:      "Jane Doe",
				Collection: "http://tfs:8080/tfs/DefaultCollection",
				Mappings: []domain.Mapping{
					{ServerPath: "$/Legacy", LocalPath: `C:\work\legacy`},
				},
			},
		},
		{
			fixture: "workfold_crlf.txt",
			want: &domain.Workspace{
				Name:       "crlf",
				Owner:      "me",
				Collection: "http://tfs/",
				Mappings:   []domain.Mapping{{ServerPath: "$/A", LocalPath: "/a"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			t.Parallel()
			got, err := workspace.ParseWorkfold(readFixture(t, tt.fixture))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWorkfold_Errors(t *testing.T) {
	t.Parallel()

	_, err := workspace.ParseWorkfold(" $/A: /a\n")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWorkspaceParseFailed.Error())

	_, err = workspace.ParseWorkfold("Workspace : ws (me)\n $/A /a\n")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWorkspaceParseFailed.Error())
}

func TestIsNoWorkspace(t *testing.T) {
	t.Parallel()

	assert.True(t, workspace.IsNoWorkspace("Unable to determine the workspace. You may be able to correct this by running 'tf workspaces -collection:url'."))
	assert.True(t, workspace.IsNoWorkspace("The workspace could not be determined from the current directory."))
	assert.True(t, workspace.IsNoWorkspace("There is no working folder mapping for /tmp/x."))
	assert.False(t, workspace.IsNoWorkspace("Workspace : ws (me)"))
	assert.False(t, workspace.IsNoWorkspace("TF30063: You are not authorized to access the server."))
}
