package tui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	TextStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	DimTextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	SpinnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	CategoryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	TimestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingLeft(2)
	ItemStyle      = lipgloss.NewStyle().PaddingLeft(2)
	SelectedStyle  = lipgloss.NewStyle().PaddingLeft(0).Foreground(lipgloss.Color("3"))
	UserTurnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	FooterStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
