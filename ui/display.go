package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/domino/domino/tile/color"
)

// Delay paces console output so a round can be followed by eye.
var Delay = 500 * time.Millisecond

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Printlns(lines []string) {
	Println(strings.Join(lines, "\n"))
}

func Println(args ...interface{}) {
	fmt.Fprintln(color.Stdout, args...)
	time.Sleep(Delay)
}

// Print writes preformatted text such as msg.Message output.
func Print(text string) {
	fmt.Fprint(color.Stdout, text)
	time.Sleep(Delay)
}
