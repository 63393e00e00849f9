package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brixlabs/brix-cli/internal/core/domain"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Drive the project intake wizard",
	Long: `Step through the project intake wizard non-interactively.

Each set-* command writes through to the local draft immediately, so a
half-finished intake survives process exit. "next" is gated on the
current step being valid; "back" never revalidates.

Examples:
  brix project set-address --line1 "123 Test Street" --city London --postcode "SW1A 1AA"
  brix project next
  brix project set-type loft_conversion
  brix project status
  brix project submit`,
}

var projectStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the draft and wizard position",
	RunE:  runProjectStatus,
}

var projectSetAddressCmd = &cobra.Command{
	Use:   "set-address",
	Short: "Set the property address",
	RunE:  runProjectSetAddress,
}

var projectSetAssessmentCmd = &cobra.Command{
	Use:   "set-assessment",
	Short: "Set the property assessment (assessed flow)",
	RunE:  runProjectSetAssessment,
}

var projectSetTypeCmd = &cobra.Command{
	Use:   "set-type [project-type]",
	Short: "Set the project type",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectSetType,
}

var projectSetRequirementsCmd = &cobra.Command{
	Use:   "set-requirements",
	Short: "Set the project requirements",
	RunE:  runProjectSetRequirements,
}

var projectNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Advance to the next wizard step",
	RunE:  runProjectNext,
}

var projectBackCmd = &cobra.Command{
	Use:   "back",
	Short: "Return to the previous wizard step",
	RunE:  runProjectBack,
}

var projectSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Create the project and upload staged documents",
	RunE:  runProjectSubmit,
}

// Flags for the address step.
var (
	addrLine1    string
	addrLine2    string
	addrCity     string
	addrPostcode string
	addrCountry  string
)

// Flags for the assessment step.
var (
	assessAge       string
	assessCondition string
	assessAccess    string
)

// Flags for the requirements step.
var (
	reqDescription string
	reqDimensions  string
	reqMaterials   []string
	reqTimeline    string
	reqBudgetMin   float64
	reqBudgetMax   float64
	reqSpecial     []string
)

func init() {
	projectSetAddressCmd.Flags().StringVar(&addrLine1, "line1", "", "First address line (required)")
	projectSetAddressCmd.Flags().StringVar(&addrLine2, "line2", "", "Second address line")
	projectSetAddressCmd.Flags().StringVar(&addrCity, "city", "", "Town or city (required)")
	projectSetAddressCmd.Flags().StringVar(&addrPostcode, "postcode", "", "Postcode (required)")
	projectSetAddressCmd.Flags().StringVar(&addrCountry, "country", "", "Country code")

	projectSetAssessmentCmd.Flags().StringVar(&assessAge, "age", "", "Property age band, e.g. victorian")
	projectSetAssessmentCmd.Flags().StringVar(&assessCondition, "condition", "", "Overall condition")
	projectSetAssessmentCmd.Flags().StringVar(&assessAccess, "access-notes", "", "Access constraints for builders")

	projectSetRequirementsCmd.Flags().StringVar(&reqDescription, "description", "", "What the project should achieve (required)")
	projectSetRequirementsCmd.Flags().StringVar(&reqDimensions, "dimensions", "", "Affected space, e.g. \"4m x 6m\"")
	projectSetRequirementsCmd.Flags().StringSliceVar(&reqMaterials, "materials", nil, "Preferred materials (comma-separated)")
	projectSetRequirementsCmd.Flags().StringVar(&reqTimeline, "timeline", "", "Desired completion window")
	projectSetRequirementsCmd.Flags().Float64Var(&reqBudgetMin, "budget-min", 0, "Budget lower bound")
	projectSetRequirementsCmd.Flags().Float64Var(&reqBudgetMax, "budget-max", 0, "Budget upper bound")
	projectSetRequirementsCmd.Flags().StringSliceVar(&reqSpecial, "special", nil, "Special requirements (comma-separated)")

	projectCmd.AddCommand(projectStatusCmd)
	projectCmd.AddCommand(projectSetAddressCmd)
	projectCmd.AddCommand(projectSetAssessmentCmd)
	projectCmd.AddCommand(projectSetTypeCmd)
	projectCmd.AddCommand(projectSetRequirementsCmd)
	projectCmd.AddCommand(projectNextCmd)
	projectCmd.AddCommand(projectBackCmd)
	projectCmd.AddCommand(projectSubmitCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectStatus(cmd *cobra.Command, _ []string) error {
	if wizardService == nil {
		return errors.New("wizard service not configured")
	}

	index, step := wizardService.Current()
	draft := wizardService.Draft()

	cmd.Printf("Flow:     %s\n", draft.Flow)
	cmd.Printf("Step:     %d (%s)\n", index+1, step)
	if wizardService.CanAdvance() {
		cmd.Println("Status:   ready to advance")
	} else {
		cmd.Println("Status:   step incomplete")
	}

	if draft.HasAddress() {
		cmd.Printf("Address:  %s, %s %s\n",
			draft.PropertyAddress.Line1, draft.PropertyAddress.City, draft.PropertyAddress.Postcode)
	}
	if draft.ProjectType != "" {
		cmd.Printf("Type:     %s\n", draft.ProjectType)
	}
	if draft.Requirements.Description != "" {
		cmd.Printf("Vision:   %s\n", draft.Requirements.Description)
	}
	if len(draft.Documents) > 0 {
		cmd.Printf("Staged documents (%d):\n", len(draft.Documents))
		for _, doc := range draft.Documents {
			cmd.Printf("  %s  %s (%s)\n", doc.LocalID, doc.FileName, doc.DocumentType)
		}
	}
	return nil
}

func runProjectSetAddress(cmd *cobra.Command, _ []string) error {
	if wizardService == nil {
		return errors.New("wizard service not configured")
	}

	addr := domain.PropertyAddress{
		Line1:    strings.TrimSpace(addrLine1),
		Line2:    strings.TrimSpace(addrLine2),
		City:     strings.TrimSpace(addrCity),
		Postcode: strings.TrimSpace(addrPostcode),
		Country:  strings.TrimSpace(addrCountry),
	}

	if err := wizardService.SetAddress(context.Background(), addr); err != nil {
		return fmt.Errorf("set address: %w", err)
	}
	cmd.Println("Address saved.")
	return nil
}

func runProjectSetAssessment(cmd *cobra.Command, _ []string) error {
	if wizardService == nil {
		return errors.New("wizard service not configured")
	}

	assessment := domain.PropertyAssessment{
		PropertyAge: strings.TrimSpace(assessAge),
		Condition:   strings.TrimSpace(assessCondition),
		AccessNotes: strings.TrimSpace(assessAccess),
	}

	if err := wizardService.SetAssessment(context.Background(), assessment); err != nil {
		return fmt.Errorf("set assessment: %w", err)
	}
	cmd.Println("Assessment saved.")
	return nil
}

func runProjectSetType(cmd *cobra.Command, args []string) error {
	if wizardService == nil {
		return errors.New("wizard service not configured")
	}

	if err := wizardService.SetProjectType(context.Background(), strings.TrimSpace(args[0])); err != nil {
		return fmt.Errorf("set project type: %w", err)
	}
	cmd.Println("Project type saved.")
	return nil
}

func runProjectSetRequirements(cmd *cobra.Command, _ []string) error {
	if wizardService == nil {
		return errors.New("wizard service not configured")
	}

	req := domain.ProjectRequirements{
		Description:         strings.TrimSpace(reqDescription),
		Dimensions:          strings.TrimSpace(reqDimensions),
		Materials:           reqMaterials,
		Timeline:            strings.TrimSpace(reqTimeline),
		SpecialRequirements: reqSpecial,
	}
	if reqBudgetMin > 0 || reqBudgetMax > 0 {
		req.Budget = &domain.BudgetRange{Min: reqBudgetMin, Max: reqBudgetMax}
	}

	if err := wizardService.SetRequirements(context.Background(), req); err != nil {
		return fmt.Errorf("set requirements: %w", err)
	}
	cmd.Println("Requirements saved.")
	return nil
}

func runProjectNext(cmd *cobra.Command, _ []string) error {
	if wizardService == nil {
		return errors.New("wizard service not configured")
	}

	if err := wizardService.Next(); err != nil {
		if errors.Is(err, domain.ErrStepBlocked) {
			_, step := wizardService.Current()
			return fmt.Errorf("step %q is incomplete: %w", step, err)
		}
		return err
	}

	index, step := wizardService.Current()
	cmd.Printf("Now at step %d (%s).\n", index+1, step)
	return nil
}

func runProjectBack(cmd *cobra.Command, _ []string) error {
	if wizardService == nil {
		return errors.New("wizard service not configured")
	}

	if err := wizardService.Back(); err != nil {
		return err
	}

	index, step := wizardService.Current()
	cmd.Printf("Now at step %d (%s).\n", index+1, step)
	return nil
}

func runProjectSubmit(cmd *cobra.Command, _ []string) error {
	if wizardService == nil {
		return errors.New("wizard service not configured")
	}

	cmd.Println("Submitting project...")
	result, err := wizardService.Submit(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotAtReview) {
			index, step := wizardService.Current()
			return fmt.Errorf("at step %d (%s): %w", index+1, step, err)
		}
		return fmt.Errorf("submit: %w", err)
	}

	cmd.Printf("Project created: %s\n", result.Project.ID)
	cmd.Printf("Documents uploaded: %d\n", len(result.Uploaded))
	for _, name := range result.FailedUploads {
		cmd.Printf("Upload failed (skipped): %s\n", name)
	}
	cmd.Println("\nNext: brix questionnaire run --project " + result.Project.ID)
	return nil
}
