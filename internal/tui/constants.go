package tui

import "time"

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	// Modal Dimensions - Standard margins for modal dialogs
	ModalWidthMarginNarrow = 10 // Narrow horizontal margin for focused modals (m.width - 10)
	ModalHeightMarginSmall = 2  // Small vertical margin (m.height - 2)
	ModalHeightMarginMed   = 4  // Medium vertical margin (m.height - 4)

	// Viewport Padding and Borders
	ViewportBorderWidth       = 2 // Width consumed by borders
	ViewportPaddingHorizontal = 4 // Horizontal padding (left + right)

	// Modal Content Calculations
	ModalOverheadLines   = 6 // Title (2) + padding (2) + border (2)
	ModalOverheadMinimal = 4 // Border + title for minimal modals
	ModalFooterLines     = 2 // Footer + blank line

	// Main layout rows outside the editor pane
	MenuBarHeight   = 1
	TabBarHeight    = 1
	StatusBarHeight = 1

	// Dialog width
	DialogWidth = 60

	// Recent files modal
	RecentModalWidth  = 80
	RecentModalHeight = 20

	// Tab bar
	MaxTabLabelWidth = 24

	// Editor pane
	LineNumberWidth = 5 // "9999 " gutter
	PageOverlap     = 1 // lines kept visible when paging

	// Status bar
	MaxStatusMessageLength = 100
)

// DefaultMessageTimeout clears status messages after this long
const DefaultMessageTimeout = 5 * time.Second
