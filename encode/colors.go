package encode

import (
	"fmt"

	"github.com/fatih/color"
)

// Colors maps rendering roles to sprintf-style colorizers.
type Colors struct {
	Name    func(format string, a ...any) string
	Data    func(format string, a ...any) string
	Insert  func(format string, a ...any) string
	Delete  func(format string, a ...any) string
	Replace func(format string, a ...any) string
}

// NewColors returns the default ANSI palette.
func NewColors() *Colors {
	return &Colors{
		Name:    color.RGB(128, 168, 196).SprintfFunc(),
		Data:    color.RGB(8, 196, 16).SprintfFunc(),
		Insert:  color.GreenString,
		Delete:  color.RedString,
		Replace: color.YellowString,
	}
}

// PlainColors returns a palette that emits no escape codes.
func PlainColors() *Colors {
	return &Colors{
		Name:    fmt.Sprintf,
		Data:    fmt.Sprintf,
		Insert:  fmt.Sprintf,
		Delete:  fmt.Sprintf,
		Replace: fmt.Sprintf,
	}
}
