package apps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmacinski/folio/internal/content"
	"github.com/kmacinski/folio/internal/keys"
	"github.com/kmacinski/folio/internal/ui"
	"github.com/kmacinski/folio/internal/window"
)

const (
	finderColumns = 2
	finderHeader  = 3 // heading, tagline, blank
)

type finderItem struct {
	kind     Kind
	title    string
	subtitle string
}

var finderItems = []finderItem{
	{About, "About", "Learn more about me"},
	{Projects, "Projects", "View my work"},
	{Experience, "Experience", "My career journey"},
	{Contact, "Contact", "Get in touch"},
}

// FinderBody is the launcher grid
type FinderBody struct {
	window.Base
	doc    *content.Document
	cursor int
	width  int
	height int
	launch Launcher
}

// NewFinder creates a finder body
func NewFinder(doc *content.Document, styles ui.Styles, launch Launcher) *FinderBody {
	return &FinderBody{
		Base:   window.NewBase(string(Finder), styles),
		doc:    doc,
		launch: launch,
	}
}

// SetDocument replaces the document
func (f *FinderBody) SetDocument(doc *content.Document) {
	f.doc = doc
}

// Cursor returns the highlighted item index
func (f *FinderBody) Cursor() int {
	return f.cursor
}

// Update handles grid navigation and clicks
func (f *FinderBody) Update(msg tea.Msg) (window.Body, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return f, nil
		}
		if i := f.itemAt(msg.X, msg.Y); i >= 0 {
			f.cursor = i
			return f, f.launch(finderItems[i].kind)
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Left):
			f.move(-1)
		case key.Matches(msg, keys.DefaultKeyMap.Right):
			f.move(1)
		case key.Matches(msg, keys.DefaultKeyMap.Up):
			f.move(-finderColumns)
		case key.Matches(msg, keys.DefaultKeyMap.Down):
			f.move(finderColumns)
		case key.Matches(msg, keys.DefaultKeyMap.Enter):
			return f, f.launch(finderItems[f.cursor].kind)
		}
	}
	return f, nil
}

func (f *FinderBody) move(delta int) {
	next := f.cursor + delta
	if next >= 0 && next < len(finderItems) {
		f.cursor = next
	}
}

// cardSize returns the cell size of one grid card for the last view size
func (f *FinderBody) cardSize() (int, int) {
	rows := (len(finderItems) + finderColumns - 1) / finderColumns
	return f.width / finderColumns, max(0, f.height-finderHeader) / rows
}

// itemAt returns the item under a body-local cell, or -1
func (f *FinderBody) itemAt(x, y int) int {
	cw, ch := f.cardSize()
	if cw <= 0 || ch <= 0 {
		return -1
	}
	y -= finderHeader
	if x < 0 || y < 0 {
		return -1
	}
	col, row := x/cw, y/ch
	if col >= finderColumns {
		return -1
	}
	i := row*finderColumns + col
	if i >= len(finderItems) {
		return -1
	}
	return i
}

// View renders the header and the card grid
func (f *FinderBody) View(width, height int) string {
	f.width, f.height = width, height
	s := f.Styles()

	tagline := ""
	if f.doc != nil {
		tagline = f.doc.Tagline
	}
	header := s.Heading.Render("Welcome") + "\n" + s.Muted.Render(tagline) + "\n"

	cw, ch := f.cardSize()
	if cw < 6 || ch < 3 {
		return header
	}

	var rows []string
	for start := 0; start < len(finderItems); start += finderColumns {
		var cards []string
		for i := start; i < start+finderColumns && i < len(finderItems); i++ {
			cards = append(cards, f.renderCard(i, cw, ch))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return header + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (f *FinderBody) renderCard(i, w, h int) string {
	s := f.Styles()
	item := finderItems[i]
	style := s.Card
	if i == f.cursor && f.Focused() {
		style = style.BorderForeground(s.Tag.GetForeground())
	}
	text := s.Bold.Render(item.title) + "\n" + s.Muted.Render(item.subtitle)
	return style.Width(w - 2).Height(h - 2).MaxHeight(h).Render(text)
}

// Text lists the launcher entries
func (f *FinderBody) Text() string {
	lines := make([]string, len(finderItems))
	for i, item := range finderItems {
		lines[i] = item.title + " - " + item.subtitle
	}
	return strings.Join(lines, "\n")
}
