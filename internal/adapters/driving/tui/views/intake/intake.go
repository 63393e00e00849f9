// Package intake implements the step-by-step project intake view.
package intake

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brixlabs/brix-cli/internal/adapters/driving/tui/components/input"
	"github.com/brixlabs/brix-cli/internal/adapters/driving/tui/keymap"
	"github.com/brixlabs/brix-cli/internal/adapters/driving/tui/messages"
	"github.com/brixlabs/brix-cli/internal/adapters/driving/tui/styles"
	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
)

// View is the intake wizard form. It renders the current step's fields,
// writes them through to the draft on advance, and performs the terminal
// submission from the review step.
type View struct {
	styles *styles.Styles
	keys   *keymap.KeyMap
	wizard driving.WizardController
	ctx    context.Context

	fields []*input.Field
	focus  int

	index int
	step  domain.WizardStep

	submitting bool
	result     *driving.SubmissionResult
	err        error

	width  int
	height int
}

// NewView creates the intake view and loads the current wizard position.
func NewView(s *styles.Styles, wizard driving.WizardController) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles: s,
		keys:   keymap.DefaultKeyMap(),
		wizard: wizard,
		ctx:    context.Background(),
	}
	v.Reload()
	return v
}

// WithContext sets the context used for wizard writes.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	if len(v.fields) > 0 {
		return v.fields[v.focus].Focus()
	}
	return nil
}

// Reload rebuilds the form fields from the wizard's current step and draft.
func (v *View) Reload() {
	v.index, v.step = v.wizard.Current()
	draft := v.wizard.Draft()
	v.fields = v.buildFields(draft)
	v.focus = 0
	if len(v.fields) > 0 {
		v.fields[0].Focus()
	}
}

// buildFields returns the form fields for the current step, prefilled
// from the draft.
func (v *View) buildFields(draft domain.ProjectDraft) []*input.Field {
	field := func(label, placeholder, value string) *input.Field {
		f := input.NewField(v.styles, label, placeholder)
		f.SetValue(value)
		return f
	}

	switch v.step {
	case domain.StepAddress:
		a := draft.PropertyAddress
		return []*input.Field{
			field("Address line 1", "12 High Street", a.Line1),
			field("Address line 2", "", a.Line2),
			field("City", "London", a.City),
			field("Postcode", "SW1A 1AA", a.Postcode),
			field("Country", "GB", a.Country),
		}

	case domain.StepAssessment:
		var assessment domain.PropertyAssessment
		if draft.Assessment != nil {
			assessment = *draft.Assessment
		}
		return []*input.Field{
			field("Property age", "victorian", assessment.PropertyAge),
			field("Condition", "good", assessment.Condition),
			field("Access notes", "", assessment.AccessNotes),
		}

	case domain.StepProjectType:
		return []*input.Field{
			field("Project type", "loft_conversion", draft.ProjectType),
		}

	case domain.StepRequirements:
		r := draft.Requirements
		budgetMin, budgetMax := "", ""
		if r.Budget != nil {
			budgetMin = strconv.FormatFloat(r.Budget.Min, 'f', -1, 64)
			budgetMax = strconv.FormatFloat(r.Budget.Max, 'f', -1, 64)
		}
		return []*input.Field{
			field("Description", "What do you want built?", r.Description),
			field("Dimensions", "4m x 6m", r.Dimensions),
			field("Materials (comma separated)", "oak, slate", strings.Join(r.Materials, ", ")),
			field("Timeline", "3 months", r.Timeline),
			field("Budget min", "20000", budgetMin),
			field("Budget max", "35000", budgetMax),
		}

	default:
		// Documents and review render without form fields.
		return nil
	}
}

// Update handles messages.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.SubmissionCompleted:
		v.submitting = false
		v.result = msg.Result
		v.err = msg.Err
		return v, nil
	}

	return v.updateFocused(msg)
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.submitting {
		return v, nil
	}

	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keys.NextField):
		v.cycleFocus(1)
		return v, nil

	case keymap.Matches(keyStr, v.keys.PrevField):
		v.cycleFocus(-1)
		return v, nil

	case keymap.Matches(keyStr, v.keys.Back):
		v.err = nil
		v.saveStep()
		if err := v.wizard.Back(); err != nil {
			// At the first step there is nowhere to go.
			return v, nil
		}
		v.Reload()
		return v, nil

	case keymap.Matches(keyStr, v.keys.Next):
		v.err = nil
		if v.step == domain.StepReview {
			v.submitting = true
			return v, v.submitCmd()
		}
		if err := v.saveStep(); err != nil {
			v.err = err
			return v, nil
		}
		if err := v.wizard.Next(); err != nil {
			v.err = err
			return v, nil
		}
		v.Reload()
		return v, nil
	}

	return v.updateFocused(msg)
}

// updateFocused forwards a message to the focused field.
func (v *View) updateFocused(msg tea.Msg) (*View, tea.Cmd) {
	if len(v.fields) == 0 {
		return v, nil
	}
	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

func (v *View) cycleFocus(delta int) {
	if len(v.fields) < 2 {
		return
	}
	v.fields[v.focus].Blur()
	v.focus = (v.focus + delta + len(v.fields)) % len(v.fields)
	v.fields[v.focus].Focus()
}

// saveStep writes the current step's fields through to the draft.
// Steps without fields save nothing.
func (v *View) saveStep() error {
	value := func(i int) string {
		return strings.TrimSpace(v.fields[i].Value())
	}

	switch v.step {
	case domain.StepAddress:
		return v.wizard.SetAddress(v.ctx, domain.PropertyAddress{
			Line1:    value(0),
			Line2:    value(1),
			City:     value(2),
			Postcode: value(3),
			Country:  value(4),
		})

	case domain.StepAssessment:
		return v.wizard.SetAssessment(v.ctx, domain.PropertyAssessment{
			PropertyAge: value(0),
			Condition:   value(1),
			AccessNotes: value(2),
		})

	case domain.StepProjectType:
		return v.wizard.SetProjectType(v.ctx, value(0))

	case domain.StepRequirements:
		req := domain.ProjectRequirements{
			Description: value(0),
			Dimensions:  value(1),
			Materials:   splitList(value(2)),
			Timeline:    value(3),
		}
		low, lowErr := strconv.ParseFloat(value(4), 64)
		high, highErr := strconv.ParseFloat(value(5), 64)
		if lowErr == nil && highErr == nil {
			req.Budget = &domain.BudgetRange{Min: low, Max: high}
		}
		return v.wizard.SetRequirements(v.ctx, req)
	}

	return nil
}

// splitList parses a comma-separated field into trimmed entries.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// submitCmd performs the terminal submission asynchronously.
func (v *View) submitCmd() tea.Cmd {
	wizard, ctx := v.wizard, v.ctx
	return func() tea.Msg {
		result, err := wizard.Submit(ctx)
		return messages.SubmissionCompleted{Result: result, Err: err}
	}
}

// View renders the intake step.
func (v *View) View() string {
	if v.result != nil {
		return v.viewSubmitted()
	}

	var b strings.Builder

	draft := v.wizard.Draft()
	b.WriteString(v.styles.Title.Render("Brix Project Intake"))
	b.WriteString("\n")
	b.WriteString(v.styles.StepBar.Render(fmt.Sprintf(
		"Step %d/%d · %s", v.index+1, draft.Flow.StepCount(), stepTitle(v.step))))
	b.WriteString("\n\n")

	switch v.step {
	case domain.StepDocuments:
		b.WriteString(v.viewDocuments(draft))
	case domain.StepReview:
		b.WriteString(v.viewReview(draft))
	default:
		for i, f := range v.fields {
			b.WriteString(f.View())
			if i < len(v.fields)-1 {
				b.WriteString("\n")
			}
		}
	}

	if v.submitting {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Warning.Render("Submitting..."))
	}
	if v.err != nil {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Error.Render("! " + errText(v.err)))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render(v.helpLine()))
	return b.String()
}

func (v *View) viewDocuments(draft domain.ProjectDraft) string {
	var b strings.Builder
	if len(draft.Documents) == 0 {
		b.WriteString(v.styles.Muted.Render("No documents staged."))
	} else {
		for _, doc := range draft.Documents {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				v.styles.Normal.Render(doc.FileName),
				v.styles.Muted.Render(string(doc.DocumentType))))
		}
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(
		"Stage files with 'brix document stage <path>' or drop them in the watch directory."))
	return b.String()
}

func (v *View) viewReview(draft domain.ProjectDraft) string {
	var b strings.Builder
	line := func(label, value string) {
		if value == "" {
			value = "-"
		}
		b.WriteString(fmt.Sprintf("  %s %s\n",
			v.styles.FieldLabel.Render(label+":"), v.styles.Normal.Render(value)))
	}

	line("Address", fmt.Sprintf("%s, %s %s",
		draft.PropertyAddress.Line1, draft.PropertyAddress.City, draft.PropertyAddress.Postcode))
	if draft.Assessment != nil {
		line("Assessment", fmt.Sprintf("%s, %s",
			draft.Assessment.PropertyAge, draft.Assessment.Condition))
	}
	line("Project type", draft.ProjectType)
	line("Vision", draft.Requirements.Description)
	if draft.Requirements.Budget != nil {
		line("Budget", fmt.Sprintf("%.0f - %.0f",
			draft.Requirements.Budget.Min, draft.Requirements.Budget.Max))
	}
	line("Documents", strconv.Itoa(len(draft.Documents)))

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Press enter to submit your project."))
	return b.String()
}

func (v *View) viewSubmitted() string {
	var b strings.Builder
	b.WriteString(v.styles.Success.Render("Project created"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n",
		v.styles.FieldLabel.Render("Project ID:"), v.result.Project.ID))
	b.WriteString(fmt.Sprintf("  %s %d\n",
		v.styles.FieldLabel.Render("Documents uploaded:"), len(v.result.Uploaded)))
	for _, name := range v.result.FailedUploads {
		b.WriteString("  " + v.styles.Warning.Render("upload failed: "+name) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf(
		"Next: brix questionnaire run --project %s", v.result.Project.ID)))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("ctrl+c to quit"))
	return b.String()
}

func (v *View) helpLine() string {
	if v.step == domain.StepReview {
		return "[enter] submit  [esc] back  [ctrl+c] quit"
	}
	if len(v.fields) > 1 {
		return "[tab] next field  [enter] next step  [esc] back  [ctrl+c] quit"
	}
	return "[enter] next step  [esc] back  [ctrl+c] quit"
}

// stepTitle returns the display title for a wizard step.
func stepTitle(step domain.WizardStep) string {
	switch step {
	case domain.StepAddress:
		return "Property address"
	case domain.StepAssessment:
		return "Property assessment"
	case domain.StepProjectType:
		return "Project type"
	case domain.StepRequirements:
		return "Requirements"
	case domain.StepDocuments:
		return "Documents"
	case domain.StepReview:
		return "Review & submit"
	default:
		return string(step)
	}
}

// errText maps wizard errors to user-facing text.
func errText(err error) string {
	if errors.Is(err, domain.ErrStepBlocked) {
		return "this step is incomplete"
	}
	return err.Error()
}

// Step returns the step the view currently renders (for testing).
func (v *View) Step() domain.WizardStep {
	return v.step
}

// Err returns the last error shown (for testing).
func (v *View) Err() error {
	return v.err
}

// Result returns the submission result, if any (for testing).
func (v *View) Result() *driving.SubmissionResult {
	return v.result
}

// SetDimensions sets the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	for _, f := range v.fields {
		f.SetWidth(width / 2)
	}
}
