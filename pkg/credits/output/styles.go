package output

import "github.com/charmbracelet/lipgloss"

// Color constants using ANSI 256-color palette.
// These provide a consistent color scheme across all formatters.
const (
	// ColorPrimary is used for primary elements like headers (bright blue).
	ColorPrimary = lipgloss.Color("39")

	// ColorIngestion is used for Batch Data Pipeline values (orange).
	ColorIngestion = lipgloss.Color("208")

	// ColorIndexing is used for Unstructured Data Processed values (cyan).
	ColorIndexing = lipgloss.Color("45")

	// ColorSuccess is used for positive status indicators (green).
	ColorSuccess = lipgloss.Color("42")

	// ColorWarning is used for medium severity alerts (orange/yellow).
	ColorWarning = lipgloss.Color("214")

	// ColorDanger is used for high severity alerts (red).
	ColorDanger = lipgloss.Color("196")

	// ColorMuted is used for less important or secondary text (gray).
	ColorMuted = lipgloss.Color("245")
)

// Box styles for containing grouped content.
var (
	// HeaderBox is the style for the header section containing org info.
	HeaderBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1).
			MarginBottom(1)

	// FooterBox is the style for the footer section containing totals.
	FooterBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1).
			MarginTop(1)
)

// Text styles for various content types.
var (
	// TitleStyle is used for major section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// LabelStyle is used for field labels (e.g., "Org:", "Period:").
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ValueStyle is used for field values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	// IngestionStyle is used for ingestion meter values.
	IngestionStyle = lipgloss.NewStyle().
			Foreground(ColorIngestion)

	// IndexingStyle is used for indexing meter values.
	IndexingStyle = lipgloss.NewStyle().
			Foreground(ColorIndexing)

	// CreditsStyle is used for credit totals.
	CreditsStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// HighStyle is used for high severity alert text.
	HighStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	// MediumStyle is used for medium severity alert text.
	MediumStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// LowStyle is used for low severity alert text.
	LowStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// MutedStyle is used for less important text.
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Table styles for tabular data display.
var (
	// TableHeaderStyle is used for table column headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorMuted).
				PaddingRight(2)
)
