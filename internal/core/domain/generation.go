package domain

import (
	"fmt"
	"time"
)

// GenerationStatus is the server-reported state of a generation job.
type GenerationStatus string

// Generation job states.
const (
	GenerationStatusGenerating GenerationStatus = "generating"
	GenerationStatusCompleted  GenerationStatus = "completed"
	GenerationStatusFailed     GenerationStatus = "failed"
)

// GenerationJob is a read-through cache of a server-side asynchronous
// Scope-of-Work generation task. Progress is monotonically non-decreasing
// while the job is generating. The client never mutates it locally.
type GenerationJob struct {
	// SowID identifies the job and the artifact it produces.
	SowID string

	// ProjectID links the job to its project.
	ProjectID string

	// Status is the server-reported state.
	Status GenerationStatus

	// Progress is the server's completion estimate in [0,100].
	Progress float64

	// EstimatedCompletion is the server's predicted finish time.
	EstimatedCompletion time.Time
}

// SowSection is one section of a generated Scope of Work.
type SowSection struct {
	Title   string
	Content string
}

// ScopeOfWork is the generated artifact fetched after a job completes.
type ScopeOfWork struct {
	// ID matches the SowID of the job that produced it.
	ID string

	// ProjectID links the artifact to its project.
	ProjectID string

	// Title is the document title.
	Title string

	// Summary is the one-paragraph overview.
	Summary string

	// Sections are the document body.
	Sections []SowSection

	// GeneratedAt is when the server finished the artifact.
	GeneratedAt time.Time
}

// generationStage pairs a progress threshold with a display message.
type generationStage struct {
	threshold float64
	message   string
}

// generationStages is ordered by ascending threshold. StageFor scans for
// the highest threshold at or below the current progress. Presentational
// only; never feeds back into tracking state.
var generationStages = []generationStage{
	{0, "Reviewing your project details"},
	{20, "Analysing questionnaire answers"},
	{40, "Drafting scope sections"},
	{60, "Estimating costs and timelines"},
	{80, "Formatting the document"},
	{95, "Finalising your Scope of Work"},
}

// StageFor derives the human-readable stage for a progress value.
func StageFor(progress float64) string {
	msg := generationStages[0].message
	for _, s := range generationStages {
		if progress >= s.threshold {
			msg = s.message
		}
	}
	return msg
}

// TimeRemainingText formats the time until the estimated completion.
// Values at or below one minute (including clock skew producing negative
// durations) clamp to "less than a minute".
func TimeRemainingText(estimated, now time.Time) string {
	remaining := estimated.Sub(now)
	if remaining <= time.Minute {
		return "less than a minute"
	}
	if remaining < time.Hour {
		mins := int(remaining.Round(time.Minute) / time.Minute)
		return fmt.Sprintf("about %d minutes", mins)
	}
	hours := int(remaining.Round(time.Hour) / time.Hour)
	if hours == 1 {
		return "about 1 hour"
	}
	return fmt.Sprintf("about %d hours", hours)
}
