package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/contextlens/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██████╗ ███╗   ██╗████████╗███████╗██╗  ██╗████████╗██╗     ███████╗███╗   ██╗███████╗
 ██╔════╝██╔═══██╗████╗  ██║╚══██╔══╝██╔════╝╚██╗██╔╝╚══██╔══╝██║     ██╔════╝████╗  ██║██╔════╝
 ██║     ██║   ██║██╔██╗ ██║   ██║   █████╗   ╚███╔╝    ██║   ██║     █████╗  ██╔██╗ ██║███████╗
 ██║     ██║   ██║██║╚██╗██║   ██║   ██╔══╝   ██╔██╗    ██║   ██║     ██╔══╝  ██║╚██╗██║╚════██║
 ╚██████╗╚██████╔╝██║ ╚████║   ██║   ███████╗██╔╝ ██╗   ██║   ███████╗███████╗██║ ╚████║███████║
  ╚═════╝ ╚═════╝ ╚═╝  ╚═══╝   ╚═╝   ╚══════╝╚═╝  ╚═╝   ╚═╝   ╚══════╝╚══════╝╚═╝  ╚═══╝╚══════╝`

const bannerCompact = "C O N T E X T L E N S"

// RenderBanner returns the CONTEXTLENS banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the full art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 100 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
