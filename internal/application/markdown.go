package application

import (
	"fmt"
	"strings"

	"starfolio/internal/domain"
)

// RenderMarkdown renders a panel as a markdown document. The tab only
// applies to the writings panel; an unknown tab shows the default shelf.
func RenderMarkdown(p domain.Portfolio, view domain.ViewID, tab string) string {
	var b strings.Builder
	switch PanelFor(view.String()) {
	case domain.ViewProjects:
		renderProjects(&b, p)
	case domain.ViewTechnical:
		renderTechnical(&b, p)
	case domain.ViewWritings:
		renderWritings(&b, p, tab)
	default:
		renderHome(&b, p)
	}
	return b.String()
}

func renderHome(b *strings.Builder, p domain.Portfolio) {
	prof := p.Profile
	fmt.Fprintf(b, "# %s\n\n", prof.Name)
	roles := append([]string{}, prof.Roles...)
	if prof.Affiliation != "" {
		roles = append(roles, prof.Affiliation)
	}
	if len(roles) > 0 {
		fmt.Fprintf(b, "%s\n\n", strings.Join(roles, " · "))
	}

	fmt.Fprintf(b, "## about\n\n%s\n\n", prof.About)

	if len(prof.Skills) > 0 {
		b.WriteString("## skills\n\n")
		for _, s := range prof.Skills {
			fmt.Fprintf(b, "- %s\n", s.Name)
		}
		b.WriteString("\n")
	}

	if prof.ResumeURL != "" {
		fmt.Fprintf(b, "[Download CV](%s)\n\n", prof.ResumeURL)
	}

	if len(prof.Links) > 0 {
		links := make([]string, len(prof.Links))
		for i, l := range prof.Links {
			links[i] = fmt.Sprintf("[%s](%s)", l.Label, l.URL)
		}
		fmt.Fprintf(b, "%s\n", strings.Join(links, " · "))
	}
}

func renderProjects(b *strings.Builder, p domain.Portfolio) {
	fmt.Fprintf(b, "# %s\n\n%s\n\n", domain.ViewProjects.Title(), p.ProjectsIntro)
	for _, pr := range p.Projects {
		fmt.Fprintf(b, "## %s\n\n", pr.Title)
		if pr.Status != "" {
			fmt.Fprintf(b, "*%s*\n\n", pr.Status)
		}
		fmt.Fprintf(b, "%s\n\n", pr.Description)
		if len(pr.Tags) > 0 {
			tags := make([]string, len(pr.Tags))
			for i, t := range pr.Tags {
				tags[i] = "`" + t + "`"
			}
			fmt.Fprintf(b, "%s\n\n", strings.Join(tags, " "))
		}
		if pr.Link != "" && pr.Link != "#" {
			fmt.Fprintf(b, "[view project](%s)\n\n", pr.Link)
		}
	}
	if p.Placeholder != "" {
		fmt.Fprintf(b, "---\n\n%s\n", p.Placeholder)
	}
}

func renderTechnical(b *strings.Builder, p domain.Portfolio) {
	fmt.Fprintf(b, "# %s\n\n%s\n\n", domain.ViewTechnical.Title(), p.TechnicalIntro)
	for _, t := range p.Technical {
		fmt.Fprintf(b, "## %s\n\n", t.Title)
		if t.Subtitle != "" {
			fmt.Fprintf(b, "_%s_\n\n", t.Subtitle)
		}
		if t.ComingSoon {
			fmt.Fprintf(b, "%s\n\n", domain.ComingSoon)
		}
	}
	if p.TechnicalNote != "" {
		fmt.Fprintf(b, "> **note:** %s\n", p.TechnicalNote)
	}
}

func renderWritings(b *strings.Builder, p domain.Portfolio, tab string) {
	fmt.Fprintf(b, "# %s\n\n%s\n\n", domain.ViewWritings.Title(), p.WritingsIntro)

	shelf, ok := p.Shelf(tab)
	if !ok {
		shelf, _ = p.Shelf(DefaultTab)
	}

	titles := make([]string, 0, len(p.Shelves))
	for _, s := range p.Shelves {
		if s.Key == shelf.Key {
			titles = append(titles, "**"+s.Title+"**")
		} else {
			titles = append(titles, s.Title)
		}
	}
	fmt.Fprintf(b, "%s\n\n", strings.Join(titles, " | "))

	if shelf.Intro != "" {
		fmt.Fprintf(b, "%s\n\n", shelf.Intro)
	}
	for _, topic := range shelf.Topics {
		fmt.Fprintf(b, "### %s\n\n%s\n\n", topic, domain.ComingSoon)
	}
}
