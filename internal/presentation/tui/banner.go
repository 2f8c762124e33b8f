package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{" _                                              ", "#818cf8"},
	{"| |__   __ _ _ __   __ _ _ __ ___   __ _ _ __   ", "#a78bfa"},
	{"| '_ \\ / _` | '_ \\ / _` | '_ ` _ \\ / _` | '_ \\  ", "#c084fc"},
	{"| | | | (_| | | | | (_| | | | | | | (_| | | | | ", "#e879f9"},
	{"|_| |_|\\__,_|_| |_|\\__, |_| |_| |_|\\__,_|_| |_| ", "#f472b6"},
	{"                   |___/                        ", "#fb7185"},
}

// PrintBanner writes the ASCII art title followed by the version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, out.String(line.text).Foreground(out.Color(line.color)))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  "+version).Faint())
	}
	fmt.Fprintln(w)
}
