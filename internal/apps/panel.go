package apps

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kmacinski/folio/internal/content"
	"github.com/kmacinski/folio/internal/ui"
	"github.com/kmacinski/folio/internal/window"
)

// Panel is a read-only, scrollable view of one section of the portfolio
type Panel struct {
	window.Base
	kind     Kind
	doc      *content.Document
	viewport viewport.Model
	width    int
	rendered string
}

// NewPanel creates a content panel
func NewPanel(k Kind, doc *content.Document, styles ui.Styles) *Panel {
	return &Panel{
		Base:     window.NewBase(string(k), styles),
		kind:     k,
		doc:      doc,
		viewport: viewport.New(0, 0),
	}
}

// SetDocument replaces the document and re-renders on the next view
func (p *Panel) SetDocument(doc *content.Document) {
	p.doc = doc
	p.width = 0
	p.rendered = ""
}

// Update scrolls the panel
func (p *Panel) Update(msg tea.Msg) (window.Body, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the visible part of the panel
func (p *Panel) View(width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	if width != p.width {
		p.width = width
		p.rendered = p.render(width)
		p.viewport.SetContent(p.rendered)
	}
	p.viewport.Width = width
	p.viewport.Height = height
	return p.viewport.View()
}

// Text returns the panel as plain text
func (p *Panel) Text() string {
	text := p.rendered
	if text == "" {
		text = p.render(80)
	}
	lines := strings.Split(ansi.Strip(text), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func (p *Panel) render(width int) string {
	if p.doc == nil {
		return ""
	}
	switch p.kind {
	case About:
		return p.renderAbout(width)
	case Projects:
		return p.renderProjects(width)
	case Experience:
		return p.renderExperience(width)
	case Skills:
		return p.renderSkills(width)
	case Resume:
		return markdown(p.doc.Resume, width)
	case Contact:
		return p.renderContact(width)
	default:
		return ""
	}
}

func (p *Panel) renderAbout(width int) string {
	s := p.Styles()
	var b strings.Builder
	b.WriteString(markdown(p.doc.About, width))
	if len(p.doc.Interests) > 0 {
		b.WriteString("\n")
		b.WriteString(s.Heading.Render("Interests"))
		b.WriteString("\n")
		tags := make([]string, len(p.doc.Interests))
		for i, interest := range p.doc.Interests {
			tags[i] = s.Tag.Render("#" + interest)
		}
		b.WriteString(wrap(strings.Join(tags, "  "), width))
	}
	return b.String()
}

func (p *Panel) renderProjects(width int) string {
	s := p.Styles()
	var blocks []string
	for _, pr := range p.doc.Projects {
		lines := []string{s.Heading.Render(pr.Name), wrap(pr.Description, width)}
		if len(pr.Tags) > 0 {
			lines = append(lines, s.Tag.Render(strings.Join(pr.Tags, " · ")))
		}
		if pr.URL != "" {
			lines = append(lines, s.Muted.Render(pr.URL))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func (p *Panel) renderExperience(width int) string {
	s := p.Styles()
	var blocks []string
	for _, r := range p.doc.Experience {
		blocks = append(blocks, strings.Join([]string{
			s.Heading.Render(r.Title),
			s.Bold.Render(r.Company) + s.Muted.Render(" · "+r.Period),
			wrap(r.Summary, width),
		}, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func (p *Panel) renderSkills(width int) string {
	s := p.Styles()
	var blocks []string
	for _, g := range p.doc.Skills {
		blocks = append(blocks, s.Heading.Render(g.Category)+"\n"+
			wrap(s.Tag.Render(strings.Join(g.Items, " · ")), width))
	}
	return strings.Join(blocks, "\n\n")
}

func (p *Panel) renderContact(width int) string {
	s := p.Styles()
	lines := []string{s.Heading.Render("Get in Touch"), ""}
	for _, l := range p.doc.Contact {
		lines = append(lines, fmt.Sprintf("%s %s", s.Bold.Width(10).Render(l.Label), l.URL))
	}
	if p.doc.URL != "" {
		lines = append(lines, "", s.Muted.Render(p.doc.URL))
	}
	return wrap(strings.Join(lines, "\n"), width)
}

// markdown renders md with glamour, falling back to the raw text
func markdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(10, width-4)),
	)
	if err != nil {
		return wrap(md, width)
	}
	out, err := r.Render(md)
	if err != nil {
		return wrap(md, width)
	}
	return strings.Trim(out, "\n")
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
