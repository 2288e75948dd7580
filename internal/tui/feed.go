// Package tui renders the annotated headline feed over SSH.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"headline-lens/internal/domain"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FeedReader loads annotated headlines for display.
type FeedReader interface {
	Feed(ctx context.Context, marketsOnly bool, limit int) ([]domain.AnnotatedHeadline, error)
}

type feedLoadedMsg struct {
	headlines []domain.AnnotatedHeadline
	err       error
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	timeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	sourceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	entityStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	topicStyles = map[domain.TopicLabel]lipgloss.Style{
		domain.TopicMarketsUp:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		domain.TopicMarketsDown: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		domain.TopicMacro:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		domain.TopicEarnings:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		domain.TopicCommodities: lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		domain.TopicNews:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}

	impactStyles = map[domain.ImpactLabel]lipgloss.Style{
		domain.ImpactMarketMoving:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201")),
		domain.ImpactHigh:          lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		domain.ImpactAnalystSignal: lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
	}
)

var feedKeys = struct {
	Up, Down, MarketsOnly, Refresh, Quit key.Binding
}{
	Up:          key.NewBinding(key.WithKeys("up", "k")),
	Down:        key.NewBinding(key.WithKeys("down", "j")),
	MarketsOnly: key.NewBinding(key.WithKeys("m")),
	Refresh:     key.NewBinding(key.WithKeys("r")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

// FeedModel is the root bubbletea model for the SSH feed viewer.
type FeedModel struct {
	feed FeedReader

	headlines     []domain.AnnotatedHeadline
	selectedIndex int
	scrollOffset  int
	marketsOnly   bool
	loading       bool
	err           error

	width  int
	height int
	limit  int
}

func NewFeedModel(feed FeedReader) *FeedModel {
	return &FeedModel{
		feed:    feed,
		loading: true,
		width:   100,
		height:  30,
		limit:   50,
	}
}

func (m *FeedModel) SetSize(width, height int) {
	if width > 0 {
		m.width = width
	}
	if height > 0 {
		m.height = height
	}
}

func (m *FeedModel) Init() tea.Cmd {
	return m.loadFeed()
}

func (m *FeedModel) loadFeed() tea.Cmd {
	marketsOnly := m.marketsOnly
	limit := m.limit
	feed := m.feed
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		headlines, err := feed.Feed(ctx, marketsOnly, limit)
		return feedLoadedMsg{headlines: headlines, err: err}
	}
}

func (m *FeedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case feedLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.headlines = msg.headlines
			if m.selectedIndex >= len(m.headlines) {
				m.selectedIndex = 0
				m.scrollOffset = 0
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, feedKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, feedKeys.Up):
			if m.selectedIndex > 0 {
				m.selectedIndex--
				if m.selectedIndex < m.scrollOffset {
					m.scrollOffset = m.selectedIndex
				}
			}
		case key.Matches(msg, feedKeys.Down):
			if m.selectedIndex < len(m.headlines)-1 {
				m.selectedIndex++
				visible := m.visibleRows()
				if m.selectedIndex >= m.scrollOffset+visible {
					m.scrollOffset = m.selectedIndex - visible + 1
				}
			}
		case key.Matches(msg, feedKeys.MarketsOnly):
			m.marketsOnly = !m.marketsOnly
			m.selectedIndex = 0
			m.scrollOffset = 0
			m.loading = true
			return m, m.loadFeed()
		case key.Matches(msg, feedKeys.Refresh):
			m.loading = true
			return m, m.loadFeed()
		}
	}
	return m, nil
}

func (m *FeedModel) visibleRows() int {
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *FeedModel) View() string {
	var b strings.Builder

	title := "headline-lens"
	mode := "all headlines"
	if m.marketsOnly {
		mode = "markets only"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(fmt.Sprintf("[%s]", mode)))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(mutedStyle.Render("Loading feed..."))
	case m.err != nil:
		b.WriteString(errStyle.Render("feed error: " + m.err.Error()))
	case len(m.headlines) == 0:
		b.WriteString(mutedStyle.Render("No headlines"))
	default:
		visible := m.visibleRows()
		end := m.scrollOffset + visible
		if end > len(m.headlines) {
			end = len(m.headlines)
		}
		for i := m.scrollOffset; i < end; i++ {
			line := m.renderHeadline(m.headlines[i])
			if i == m.selectedIndex {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("j/k: navigate • m: markets only • r: refresh • q: quit"))
	return b.String()
}

func (m *FeedModel) renderHeadline(h domain.AnnotatedHeadline) string {
	var parts []string

	if !h.Headline.PublishedAt.IsZero() {
		parts = append(parts, timeStyle.Render(h.Headline.PublishedAt.Format("15:04")))
	}
	if badge := renderBadges(h.Annotation); badge != "" {
		parts = append(parts, badge)
	}
	parts = append(parts, renderSegments(h.Annotation.Segments, h.Headline.Text))
	if h.Headline.Source != "" {
		parts = append(parts, sourceStyle.Render("("+h.Headline.Source+")"))
	}

	return strings.Join(parts, " ")
}

func renderBadges(ann domain.Annotation) string {
	var badges []string
	if style, ok := topicStyles[ann.Topic]; ok && ann.Topic != "" {
		badges = append(badges, style.Render("["+string(ann.Topic)+"]"))
	}
	if style, ok := impactStyles[ann.Impact]; ok && ann.Impact != domain.ImpactNone {
		badges = append(badges, style.Render("["+string(ann.Impact)+"]"))
	}
	return strings.Join(badges, " ")
}

// renderSegments styles the linked spans and leaves plain text alone.
func renderSegments(segments []domain.Segment, fallback string) string {
	if len(segments) == 0 {
		return fallback
	}
	var b strings.Builder
	for _, seg := range segments {
		if seg.Symbol != "" {
			b.WriteString(entityStyle.Render(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
