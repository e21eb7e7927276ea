package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background          tcell.Color
	Foreground          tcell.Color
	HeaderBg            tcell.Color
	HeaderFg            tcell.Color
	TitleActiveFg       tcell.Color
	TitleInactiveFg     tcell.Color
	HiddenFg            tcell.Color
	SelectionBg         tcell.Color
	SelectionFg         tcell.Color
	InactiveSelectionBg tcell.Color
	DirectoryFg         tcell.Color
	SymlinkFg           tcell.Color
	FileFg              tcell.Color
	SeparatorFg         tcell.Color
	YankedFg            tcell.Color
	FooterBg            tcell.Color
	FooterFg            tcell.Color
	FlashBg             tcell.Color
	FlashFg             tcell.Color
	ErrorFg             tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:          tcell.ColorDefault,
		Foreground:          tcell.ColorDefault,
		HeaderBg:            tcell.ColorDefault,
		HeaderFg:            tcell.ColorDefault,
		TitleActiveFg:       tcell.Color33,
		TitleInactiveFg:     tcell.ColorLightSlateGray,
		HiddenFg:            tcell.ColorLightSlateGray,
		SelectionBg:         tcell.Color33,
		SelectionFg:         tcell.ColorWhite,
		InactiveSelectionBg: tcell.Color238,
		DirectoryFg:         tcell.Color33,
		SymlinkFg:           tcell.Color51,
		FileFg:              tcell.ColorDefault,
		SeparatorFg:         tcell.Color240,
		YankedFg:            tcell.Color114,
		FooterBg:            tcell.ColorDefault,
		FooterFg:            tcell.ColorDefault,
		FlashBg:             tcell.ColorGreen,
		FlashFg:             tcell.ColorBlack,
		ErrorFg:             tcell.ColorRed,
	}
}
