package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"headline-lens/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
)

type stubFeed struct {
	all     []domain.AnnotatedHeadline
	markets []domain.AnnotatedHeadline
	err     error
	calls   int
}

func (s *stubFeed) Feed(_ context.Context, marketsOnly bool, _ int) ([]domain.AnnotatedHeadline, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if marketsOnly {
		return s.markets, nil
	}
	return s.all, nil
}

func annotated(id int64, text string, keep bool) domain.AnnotatedHeadline {
	return domain.AnnotatedHeadline{
		Headline: domain.Headline{ID: id, Text: text, PublishedAt: time.Now()},
		Annotation: domain.Annotation{
			Relevance: domain.RelevanceDecision{Keep: keep},
			Topic:     domain.TopicNews,
			Segments:  []domain.Segment{{Text: text}},
		},
	}
}

func loadedModel(t *testing.T, feed *stubFeed) *FeedModel {
	t.Helper()
	m := NewFeedModel(feed)
	msg := m.loadFeed()()
	updated, _ := m.Update(msg)
	return updated.(*FeedModel)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFeedModelLoads(t *testing.T) {
	feed := &stubFeed{all: []domain.AnnotatedHeadline{
		annotated(1, "Fed signals rate cut", true),
		annotated(2, "Celebrity gossip roundup", false),
	}}
	m := loadedModel(t, feed)

	if m.loading {
		t.Fatal("expected loading to clear after feed message")
	}
	if len(m.headlines) != 2 {
		t.Fatalf("expected 2 headlines, got %d", len(m.headlines))
	}
	view := m.View()
	if !strings.Contains(view, "Fed signals rate cut") {
		t.Fatalf("view missing headline: %s", view)
	}
}

func TestFeedModelNavigation(t *testing.T) {
	feed := &stubFeed{all: []domain.AnnotatedHeadline{
		annotated(1, "first", true),
		annotated(2, "second", true),
		annotated(3, "third", true),
	}}
	m := loadedModel(t, feed)

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(*FeedModel)
	if m.selectedIndex != 1 {
		t.Fatalf("expected index 1 after j, got %d", m.selectedIndex)
	}

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(*FeedModel)
	if m.selectedIndex != 0 {
		t.Fatalf("expected index 0 after k, got %d", m.selectedIndex)
	}

	// k at the top stays put
	updated, _ = m.Update(keyMsg("k"))
	m = updated.(*FeedModel)
	if m.selectedIndex != 0 {
		t.Fatalf("expected index 0 at top, got %d", m.selectedIndex)
	}
}

func TestFeedModelMarketsOnlyToggle(t *testing.T) {
	feed := &stubFeed{
		all: []domain.AnnotatedHeadline{
			annotated(1, "Fed signals rate cut", true),
			annotated(2, "Celebrity gossip roundup", false),
		},
		markets: []domain.AnnotatedHeadline{
			annotated(1, "Fed signals rate cut", true),
		},
	}
	m := loadedModel(t, feed)

	updated, cmd := m.Update(keyMsg("m"))
	m = updated.(*FeedModel)
	if !m.marketsOnly {
		t.Fatal("expected markets-only mode after m")
	}
	if cmd == nil {
		t.Fatal("expected reload command after toggle")
	}

	updated, _ = m.Update(cmd())
	m = updated.(*FeedModel)
	if len(m.headlines) != 1 {
		t.Fatalf("expected 1 headline in markets-only mode, got %d", len(m.headlines))
	}
	if !strings.Contains(m.View(), "markets only") {
		t.Fatal("expected markets-only mode in header")
	}
}

func TestFeedModelRefresh(t *testing.T) {
	feed := &stubFeed{all: []domain.AnnotatedHeadline{annotated(1, "first", true)}}
	m := loadedModel(t, feed)

	before := feed.calls
	_, cmd := m.Update(keyMsg("r"))
	if cmd == nil {
		t.Fatal("expected reload command after r")
	}
	cmd()
	if feed.calls != before+1 {
		t.Fatalf("expected one more feed call, got %d", feed.calls-before)
	}
}

func TestFeedModelQuit(t *testing.T) {
	m := loadedModel(t, &stubFeed{})

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected QuitMsg from quit key")
	}
}

func TestFeedModelError(t *testing.T) {
	feed := &stubFeed{err: errors.New("db down")}
	m := loadedModel(t, feed)

	if !strings.Contains(m.View(), "feed error") {
		t.Fatalf("expected error in view: %s", m.View())
	}
}

func TestRenderSegmentsFallback(t *testing.T) {
	if got := renderSegments(nil, "plain text"); got != "plain text" {
		t.Fatalf("expected fallback text, got %q", got)
	}
}
