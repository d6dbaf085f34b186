package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlcoach/internal/ui/theme"
)

const bannerArt = `
 ███████╗ ██████╗ ██╗          ██████╗ ██████╗  █████╗  ██████╗██╗  ██╗
 ██╔════╝██╔═══██╗██║         ██╔════╝██╔═══██╗██╔══██╗██╔════╝██║  ██║
 ███████╗██║   ██║██║         ██║     ██║   ██║███████║██║     ███████║
 ╚════██║██║▄▄ ██║██║         ██║     ██║   ██║██╔══██║██║     ██╔══██║
 ███████║╚██████╔╝███████╗    ╚██████╗╚██████╔╝██║  ██║╚██████╗██║  ██║
 ╚══════╝ ╚══▀▀═╝ ╚══════╝     ╚═════╝ ╚═════╝ ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "S Q L   C O A C H"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 74

// RenderBanner returns the SQL COACH banner styled in the primary color.
// Narrow terminals get the compact form.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
