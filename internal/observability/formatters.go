// Package observability provides formatted output and logging for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-recommender/internal/recommend"
	"github.com/jonathan/job-recommender/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintRecommendations outputs ranked jobs. With explain set, each job also
// lists its per-factor scores.
func (p *Printer) PrintRecommendations(result *recommend.Result, explain bool) {
	if result == nil {
		return
	}

	title := "RECOMMENDED JOBS"
	if result.Fallback {
		title = fmt.Sprintf("RECENT JOBS (%s)", result.FallbackReason)
	}

	if len(result.Jobs) == 0 {
		p.printBox(title, "No active jobs found")
		return
	}

	var sb strings.Builder
	if len(result.Scores) > 0 {
		for i, s := range result.Scores {
			writeJobLine(&sb, i+1, &s.Job)
			sb.WriteString(fmt.Sprintf("    Score: %.2f\n", s.Score))
			for _, reason := range s.Reasons {
				sb.WriteString(fmt.Sprintf("    • %s\n", reason))
			}
			if explain {
				for _, f := range s.Factors {
					sb.WriteString(fmt.Sprintf("    %-9s %.2f × %.2f\n", f.Factor, f.Score, f.Weight))
				}
			}
			if i < len(result.Scores)-1 {
				sb.WriteString("\n")
			}
		}
	} else {
		for i := range result.Jobs {
			writeJobLine(&sb, i+1, &result.Jobs[i])
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

func writeJobLine(sb *strings.Builder, rank int, job *types.JobPosting) {
	sb.WriteString(fmt.Sprintf("#%d  %s", rank, job.Title))
	if name := job.CompanyName(); name != "" {
		sb.WriteString(fmt.Sprintf(" @ %s", name))
	}
	sb.WriteString("\n")
	if loc := job.LocationText(); loc != "" || job.IsRemote() {
		if job.IsRemote() {
			loc = strings.TrimSpace(loc + " (remote)")
		}
		sb.WriteString(fmt.Sprintf("    %s\n", loc))
	}
}

// PrintProfile outputs the profile derived from a user's resume.
func (p *Printer) PrintProfile(profile *types.UserProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Level:     %s\n", profile.PreferredLevel))
	if profile.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", profile.Location))
	}
	if len(profile.PreferredIndustries) > 0 {
		sb.WriteString(fmt.Sprintf("Industries: %s\n", strings.Join(profile.PreferredIndustries, ", ")))
	}
	writeList(&sb, "Skills", profile.Skills, maxItemsToShow)

	p.printBox("USER PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInsights outputs career insights for a user.
func (p *Printer) PrintInsights(in *recommend.Insights) {
	if in == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Level:      %s (%.1f years)\n", in.Level, in.TotalYears))
	if len(in.Industries) > 0 {
		sb.WriteString(fmt.Sprintf("Industries: %s\n", strings.Join(in.Industries, ", ")))
	}
	sb.WriteString("\n")
	writeList(&sb, "Level advice", in.LevelAdvice, len(in.LevelAdvice))
	writeList(&sb, "Industry advice", in.IndustryAdvice, len(in.IndustryAdvice))
	writeList(&sb, "In-demand skills", in.TopMarketSkills, maxItemsToShow)
	writeList(&sb, "Skills to learn", in.MissingMarketSkills, maxItemsToShow)

	p.printBox("CAREER INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTopSkills outputs the most requested skills with their rank.
func (p *Printer) PrintTopSkills(skills []string) {
	if len(skills) == 0 {
		p.printBox("TOP SKILLS", "No skills found in active jobs")
		return
	}

	var sb strings.Builder
	for i, skill := range skills {
		sb.WriteString(fmt.Sprintf("%2d. %s\n", i+1, skill))
	}
	p.printBox("TOP SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, label string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > count {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-count))
	}
	sb.WriteString("\n")
}
