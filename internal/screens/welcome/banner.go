package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/meera/nclexprep/internal/ui/theme"
)

const bannerArt = `
 ███╗   ██╗ ██████╗██╗     ███████╗██╗  ██╗
 ████╗  ██║██╔════╝██║     ██╔════╝╚██╗██╔╝
 ██╔██╗ ██║██║     ██║     █████╗   ╚███╔╝
 ██║╚██╗██║██║     ██║     ██╔══╝   ██╔██╗
 ██║ ╚████║╚██████╗███████╗███████╗██╔╝ ██╗
 ╚═╝  ╚═══╝ ╚═════╝╚══════╝╚══════╝╚═╝  ╚═╝
                P R E P`

const bannerCompact = "N C L E X   P R E P"

// RenderBanner returns the NCLEX PREP banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 48 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 48 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
