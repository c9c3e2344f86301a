// Package observability provides logging setup and formatted CLI output.
package observability

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jonathan/profile-site/internal/profile"
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func visibility(visible bool) string {
	if visible {
		return ""
	}
	return " (hidden)"
}

// PrintProfile outputs a human-readable summary of a profile tree.
func (p *Printer) PrintProfile(pr *profile.Profile) {
	if pr == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", pr.Title))
	sb.WriteString(fmt.Sprintf("ID:       %s\n", pr.ID))
	sb.WriteString(fmt.Sprintf("Active:   %t\n", pr.Active))
	if !pr.LastModified.IsZero() {
		sb.WriteString(fmt.Sprintf("Modified: %s\n", pr.LastModified.Format("2006-01-02 15:04")))
	}
	if pr.Config != nil {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", pr.Config.FullName))
		sb.WriteString(fmt.Sprintf("Job:      %s\n", pr.Config.JobTitle))
	}
	sb.WriteString("\n")

	sorted := profile.Sorted(*pr)
	if len(sorted.Sections) > 0 {
		sb.WriteString("Sections:\n")
		for _, s := range sorted.Sections {
			sb.WriteString(fmt.Sprintf("  %d. %s [%s]%s\n", s.SortOrder, s.Name, s.Kind, visibility(s.Visible)))
		}
		sb.WriteString("\n")
	}

	if len(sorted.Companies) > 0 {
		sb.WriteString("Experience:\n")
		for _, c := range sorted.Companies {
			sb.WriteString(fmt.Sprintf("  • %s (%d projects)%s\n", c.Name, len(c.Projects), visibility(c.Visible)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Key roles: %d  Skill categories: %d  Educations: %d  Certifications: %d",
		len(pr.KeyRoles), len(pr.SkillCategories), len(pr.Educations), len(pr.Certifications)))

	p.printBox("PROFILE", sb.String())
}

// PrintProfileList outputs the profile summaries, marking the active one.
func (p *Printer) PrintProfileList(list []profile.Summary) {
	if len(list) == 0 {
		p.printBox("PROFILES", "No profiles yet.")
		return
	}

	var sb strings.Builder
	for i, s := range list {
		marker := " "
		if s.Active {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %s  %s\n", marker, s.ID, s.Title))
		if i == len(list)-1 {
			sb.WriteString(fmt.Sprintf("\n%d profiles, * = active", len(list)))
		}
	}
	p.printBox("PROFILES", sb.String())
}

// PrintChanges outputs what a reconciliation inserted, updated and deleted.
func (p *Printer) PrintChanges(ch *profile.Changes) {
	if ch == nil {
		return
	}

	var sb strings.Builder
	for _, section := range []struct {
		label  string
		counts map[profile.Kind]int
	}{
		{"Inserted", ch.Inserted},
		{"Updated", ch.Updated},
		{"Deleted", ch.Deleted},
	} {
		if len(section.counts) == 0 {
			continue
		}
		kinds := make([]string, 0, len(section.counts))
		for k := range section.counts {
			kinds = append(kinds, string(k))
		}
		slices.Sort(kinds)
		sb.WriteString(section.label + ":\n")
		for _, k := range kinds {
			sb.WriteString(fmt.Sprintf("  %-16s %d\n", k, section.counts[profile.Kind(k)]))
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("No changes.")
	}

	p.printBox("SAVE SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDetectedSkills outputs tech stack names not yet in the skill catalog.
func (p *Printer) PrintDetectedSkills(names []string) {
	if len(names) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Uncatalogued tech stacks: %d\n\n", len(names)))
	count := min(len(names), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", names[i]))
	}
	if len(names) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
	}

	p.printBox("DETECTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}
