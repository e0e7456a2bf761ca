package ecosystem

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/cloudquest/internal/curriculum"
	"github.com/abhisek/cloudquest/internal/i18n"
	"github.com/abhisek/cloudquest/internal/nav"
	"github.com/abhisek/cloudquest/internal/notify"
	"github.com/abhisek/cloudquest/internal/xp"
)

func newScreen() *EcosystemScreen {
	p := i18n.New("en")
	ctrl := nav.New(curriculum.Default(), xp.NewEngine(notify.NewChannel()), p)
	ctrl.GoEcosystem()
	return New(ctrl, p)
}

func TestListsEveryResource(t *testing.T) {
	s := newScreen()
	want := 0
	for _, cat := range curriculum.Default().Resources() {
		want += len(cat.Items)
	}
	if len(s.entries) != want {
		t.Fatalf("got %d entries, want %d", len(s.entries), want)
	}
}

func TestNavigationClamps(t *testing.T) {
	s := newScreen()
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 0 {
		t.Fatalf("selection moved above the first entry: %d", s.selected)
	}
	for i := 0; i < 50; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.selected != len(s.entries)-1 {
		t.Fatalf("selection = %d, want last entry", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: 'g', Text: "g"})
	if s.selected != 0 {
		t.Fatalf("g should jump to the top, got %d", s.selected)
	}
}

func TestSelectedEntryShowsURL(t *testing.T) {
	s := newScreen()
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	r, ok := s.Selected()
	if !ok {
		t.Fatal("expected a selection")
	}
	out := ansi.Strip(s.View(120, 40))
	if !strings.Contains(out, r.URL) {
		t.Errorf("selected resource URL %q not rendered", r.URL)
	}
}

func TestViewScrollsToSelection(t *testing.T) {
	s := newScreen()
	for i := 0; i < len(s.entries)-1; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	r, _ := s.Selected()
	out := ansi.Strip(s.View(100, 12))
	if !strings.Contains(out, r.URL) {
		t.Errorf("last resource not visible in a short viewport:\n%s", out)
	}
}
