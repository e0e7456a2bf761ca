package dashboard

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cloudquest/internal/ui/theme"
)

// MascotVariant selects which Cloudy art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // no progress yet
	MascotHappy                            // some topics done
	MascotCelebrating                      // a module is complete
)

const mascotIdle = `   .--.
.-(    ).
(___.__)_)
  z z z`

const mascotHappy = `   .--.
.-( ^‿^ ).
(___.__)_)`

const mascotCelebrating = ` ✦ .--.  ✦
.-( ★‿★ ).
(___.__)_)
  ✦    ✦`

// RenderMascot returns the art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.TextDim

	switch v {
	case MascotHappy:
		art = mascotHappy
		fg = theme.Text
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
