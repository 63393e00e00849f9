// Package progress implements the Scope-of-Work generation progress view.
package progress

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brixlabs/brix-cli/internal/adapters/driving/tui/messages"
	"github.com/brixlabs/brix-cli/internal/adapters/driving/tui/styles"
	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
)

// View renders live tracking of one generation job. It consumes update
// snapshots from a tracking handle and shows the terminal outcome.
type View struct {
	styles  *styles.Styles
	tracker driving.GenerationTracker
	ctx     context.Context

	projectID string
	sowID     string

	handle driving.TrackHandle

	spinner  spinner.Model
	bar      progress.Model
	last     *driving.TrackUpdate
	artifact *domain.ScopeOfWork
	err      error
	finished bool

	width  int
	height int
}

// NewView creates the generation progress view for one job.
func NewView(s *styles.Styles, tracker driving.GenerationTracker, projectID, sowID string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	bar := progress.New(progress.WithDefaultGradient())

	return &View{
		styles:    s,
		tracker:   tracker,
		ctx:       context.Background(),
		projectID: projectID,
		sowID:     sowID,
		spinner:   sp,
		bar:       bar,
	}
}

// WithContext sets the context governing the tracking run.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts tracking and the spinner.
func (v *View) Init() tea.Cmd {
	v.handle = v.tracker.Start(v.ctx, v.projectID, v.sowID)
	return tea.Batch(v.spinner.Tick, v.waitForUpdate())
}

// waitForUpdate blocks on the next tracking snapshot. When the update
// channel closes it resolves the terminal result instead.
func (v *View) waitForUpdate() tea.Cmd {
	handle := v.handle
	return func() tea.Msg {
		update, ok := <-handle.Updates()
		if !ok {
			<-handle.Done()
			artifact, err := handle.Result()
			return messages.GenerationFinished{Artifact: artifact, Err: err}
		}
		return messages.GenerationProgressed{Update: update}
	}
}

// Cancel stops tracking. Safe to call at any point.
func (v *View) Cancel() {
	if v.handle != nil {
		v.handle.Cancel()
	}
}

// Update handles messages.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case progress.FrameMsg:
		model, cmd := v.bar.Update(msg)
		if bar, ok := model.(progress.Model); ok {
			v.bar = bar
		}
		return v, cmd

	case messages.GenerationProgressed:
		update := msg.Update
		v.last = &update
		return v, tea.Batch(v.bar.SetPercent(update.Progress/100), v.waitForUpdate())

	case messages.GenerationFinished:
		v.finished = true
		v.artifact = msg.Artifact
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// View renders the tracking state.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Generating your Scope of Work"))
	b.WriteString("\n\n")

	switch {
	case v.finished && v.err != nil:
		b.WriteString(v.styles.Error.Render("! " + v.err.Error()))

	case v.finished:
		b.WriteString(v.styles.Success.Render("Done: " + v.artifact.Title))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf(
			"View it with: brix sow show %s --project %s", v.sowID, v.projectID)))

	case v.last == nil:
		b.WriteString(v.spinner.View())
		b.WriteString(v.styles.Muted.Render(" starting..."))

	case v.last.Reconnecting:
		b.WriteString(v.spinner.View())
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf(
			" connection lost, retrying (attempt %d)", v.last.Attempt)))

	default:
		b.WriteString(v.bar.View())
		b.WriteString("\n\n")
		b.WriteString(v.spinner.View())
		b.WriteString(v.styles.Normal.Render(" " + v.last.Stage))
		if v.last.TimeRemaining != "" {
			b.WriteString(v.styles.Muted.Render("  (" + v.last.TimeRemaining + ")"))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[ctrl+c] quit"))
	return b.String()
}

// Finished reports whether tracking reached a terminal state (for testing).
func (v *View) Finished() bool {
	return v.finished
}

// Err returns the terminal error, if any (for testing).
func (v *View) Err() error {
	return v.err
}

// Artifact returns the fetched artifact, if any (for testing).
func (v *View) Artifact() *domain.ScopeOfWork {
	return v.artifact
}

// SetDimensions sets the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth > 0 {
		v.bar.Width = barWidth
	}
}
