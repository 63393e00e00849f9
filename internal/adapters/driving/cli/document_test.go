package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brixlabs/brix-cli/internal/core/domain"
)

func TestDocumentCmd_Use(t *testing.T) {
	assert.Equal(t, "document", documentCmd.Use)
	assert.Contains(t, documentCmd.Aliases, "doc")
}

func TestDocumentCmd_HasSubcommands(t *testing.T) {
	commands := documentCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "stage")
	assert.Contains(t, commandNames, "unstage")
	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "delete")
	assert.Contains(t, commandNames, "visibility")
	assert.Contains(t, commandNames, "download")
}

func TestDocumentStageCmd_StagesFile(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { documentStageType = "" }()

	path := filepath.Join(t.TempDir(), "floorplan.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	out, err := execute(t, "document", "stage", path, "--type", "floor_plan")

	require.NoError(t, err)
	assert.Contains(t, out, "Staged floorplan.pdf as floor_plan")

	draft := svcs.wizard.Draft()
	require.Len(t, draft.Documents, 1)
	assert.Equal(t, domain.DocumentTypeFloorPlan, draft.Documents[0].DocumentType)
}

func TestDocumentStageCmd_MissingFile(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "document", "stage", filepath.Join(t.TempDir(), "gone.pdf"))

	assert.Error(t, err)
}

func TestDocumentUnstageCmd_RemovesStagedFile(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()

	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg"), 0o600))
	doc, err := svcs.wizard.StageDocument(context.Background(), path, domain.DocumentTypePhoto)
	require.NoError(t, err)

	out, runErr := execute(t, "document", "unstage", doc.LocalID)

	require.NoError(t, runErr)
	assert.Contains(t, out, "Unstaged.")
	assert.Empty(t, svcs.wizard.Draft().Documents)
}

func TestDocumentListCmd_RequiresProjectFlag(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { documentProjectID = "" }()

	_, err := execute(t, "document", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--project is required")
}

func TestDocumentListCmd_PrintsDocuments(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { documentProjectID = "" }()

	svcs.documents.docs = []domain.ProjectDocument{
		{
			ID:           "doc-1",
			FileName:     "floorplan.pdf",
			DocumentType: domain.DocumentTypeFloorPlan,
			Visibility:   domain.VisibilityShared,
		},
	}

	out, err := execute(t, "document", "list", "--project", "proj-1")

	require.NoError(t, err)
	assert.Contains(t, out, "doc-1")
	assert.Contains(t, out, "floorplan.pdf")
	assert.Contains(t, out, "shared")
}

func TestDocumentDeleteCmd(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "document", "delete", "doc-1")

	require.NoError(t, err)
	assert.Contains(t, out, "Deleted.")
	assert.Equal(t, []string{"doc-1"}, svcs.documents.deleted)
}

func TestDocumentVisibilityCmd_RejectsUnknownValue(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "document", "visibility", "doc-1", "public")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "visibility must be private or shared")
}

func TestDocumentVisibilityCmd_SetsVisibility(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "document", "visibility", "doc-1", "shared")

	require.NoError(t, err)
	assert.Contains(t, out, "Visibility set to shared.")
	assert.Equal(t, domain.VisibilityShared, svcs.documents.visibility["doc-1"])
}

func TestDocumentDownloadCmd_WritesFile(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { documentDownloadOut = "" }()

	svcs.documents.content = []byte("file body")
	out := filepath.Join(t.TempDir(), "saved.pdf")

	output, err := execute(t, "document", "download", "doc-1", "--out", out)

	require.NoError(t, err)
	assert.Contains(t, output, "Saved 9 bytes")

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("file body"), content)
}
