package color

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
)

type Color interface {
	Paint(string) string
	Paintf(string, ...interface{}) string
	Name() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction("%s", text)
}

func (c *colorStruct) Paintf(text string, args ...interface{}) string {
	return c.colorFunction(text, args...)
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Blank = &colorStruct{
	name:          "blank",
	colorFunction: color.New(color.FgHiBlack).SprintfFunc(),
}

var Red = &colorStruct{
	name:          "red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Yellow = &colorStruct{
	name:          "yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Blue = &colorStruct{
	name:          "blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

var Magenta = &colorStruct{
	name:          "magenta",
	colorFunction: color.New(color.FgHiMagenta).SprintfFunc(),
}

var White = &colorStruct{
	name:          "white",
	colorFunction: color.New(color.FgHiWhite, color.Bold).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// pips is indexed by pip value.
var pips = []Color{Blank, Red, Yellow, Green, Blue, Magenta, White}

func ForPip(pip int) (Color, error) {
	if pip < 0 || pip >= len(pips) {
		return nil, fmt.Errorf("no color for pip '%d'", pip)
	}
	return pips[pip], nil
}

// PaintPip renders a pip value in its color, or plain when out of range.
func PaintPip(pip int) string {
	c, err := ForPip(pip)
	if err != nil {
		return strconv.Itoa(pip)
	}
	return c.Paint(strconv.Itoa(pip))
}

// Disable turns painting off, e.g. for tests and non-terminal writers.
func Disable() {
	color.NoColor = true
}
