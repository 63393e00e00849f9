package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/brixlabs/brix-cli/internal/core/domain"
)

var documentCmd = &cobra.Command{
	Use:     "document",
	Aliases: []string{"doc"},
	Short:   "Manage intake and project documents",
	Long: `Stage local files onto the draft, and manage documents on a
created project.

Staged files are uploaded when the project is submitted; uploads happen
in two phases (slot request, binary transfer, confirmation) so a failed
transfer never leaves a half-registered document.

Examples:
  brix document stage floorplan.pdf --type floor_plan
  brix document list --project proj-123
  brix document visibility doc-456 shared`,
}

var documentStageCmd = &cobra.Command{
	Use:   "stage [file]",
	Short: "Stage a local file onto the draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentStage,
}

var documentUnstageCmd = &cobra.Command{
	Use:   "unstage [local-id]",
	Short: "Remove a staged file from the draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentUnstage,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a project's confirmed documents",
	RunE:  runDocumentList,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [document-id]",
	Short: "Delete a project document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

var documentVisibilityCmd = &cobra.Command{
	Use:   "visibility [document-id] [private|shared]",
	Short: "Set who can see a document",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocumentVisibility,
}

var documentDownloadCmd = &cobra.Command{
	Use:   "download [document-id]",
	Short: "Download a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDownload,
}

// Flags.
var (
	documentStageType   string
	documentProjectID   string
	documentDownloadOut string
)

func init() {
	documentStageCmd.Flags().StringVar(
		&documentStageType, "type", "", "Document type: floor_plan, photo, survey, planning_permission, other")
	documentListCmd.Flags().StringVar(&documentProjectID, "project", "", "Project ID (required)")
	documentDownloadCmd.Flags().StringVar(&documentDownloadOut, "out", "", "Output path (defaults to the document id)")

	documentCmd.AddCommand(documentStageCmd)
	documentCmd.AddCommand(documentUnstageCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	documentCmd.AddCommand(documentVisibilityCmd)
	documentCmd.AddCommand(documentDownloadCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentStage(cmd *cobra.Command, args []string) error {
	if wizardService == nil {
		return errors.New("wizard service not configured")
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	docType := domain.DocumentType(documentStageType)
	if documentStageType == "" {
		docType = domain.DocumentTypeOther
	}

	doc, err := wizardService.StageDocument(cmd.Context(), path, docType)
	if err != nil {
		return fmt.Errorf("stage document: %w", err)
	}

	cmd.Printf("Staged %s as %s (%s)\n", doc.FileName, doc.DocumentType, doc.LocalID)
	return nil
}

func runDocumentUnstage(cmd *cobra.Command, args []string) error {
	if wizardService == nil {
		return errors.New("wizard service not configured")
	}

	if err := wizardService.UnstageDocument(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("unstage document: %w", err)
	}
	cmd.Println("Unstaged.")
	return nil
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentManager == nil {
		return errors.New("document service not configured")
	}
	if documentProjectID == "" {
		return errors.New("--project is required")
	}

	docs, err := documentManager.List(cmd.Context(), documentProjectID)
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents.")
		return nil
	}

	for _, doc := range docs {
		cmd.Printf("%s  %-30s %-20s %s\n", doc.ID, doc.FileName, doc.DocumentType, doc.Visibility)
	}
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if documentManager == nil {
		return errors.New("document service not configured")
	}

	if err := documentManager.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	cmd.Println("Deleted.")
	return nil
}

func runDocumentVisibility(cmd *cobra.Command, args []string) error {
	if documentManager == nil {
		return errors.New("document service not configured")
	}

	visibility := domain.DocumentVisibility(args[1])
	if visibility != domain.VisibilityPrivate && visibility != domain.VisibilityShared {
		return fmt.Errorf("visibility must be private or shared, got %q", args[1])
	}

	if err := documentManager.SetVisibility(cmd.Context(), args[0], visibility); err != nil {
		return fmt.Errorf("set visibility: %w", err)
	}
	cmd.Printf("Visibility set to %s.\n", visibility)
	return nil
}

func runDocumentDownload(cmd *cobra.Command, args []string) error {
	if documentManager == nil {
		return errors.New("document service not configured")
	}

	content, err := documentManager.Download(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("download document: %w", err)
	}

	out := documentDownloadOut
	if out == "" {
		out = args[0]
	}
	if err := os.WriteFile(out, content, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	cmd.Printf("Saved %d bytes to %s.\n", len(content), out)
	return nil
}
