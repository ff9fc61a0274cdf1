package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/gmatize/gmatize/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ███╗   ███╗ █████╗ ████████╗██╗███████╗███████╗
 ██╔════╝ ████╗ ████║██╔══██╗╚══██╔══╝██║╚══███╔╝██╔════╝
 ██║  ███╗██╔████╔██║███████║   ██║   ██║  ███╔╝ █████╗
 ██║   ██║██║╚██╔╝██║██╔══██║   ██║   ██║ ███╔╝  ██╔══╝
 ╚██████╔╝██║ ╚═╝ ██║██║  ██║   ██║   ██║███████╗███████╗
  ╚═════╝ ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝╚══════╝╚══════╝`

const bannerCompact = "G M A T I Z E"

// RenderBanner returns the GMATIZE banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 60 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 60 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
