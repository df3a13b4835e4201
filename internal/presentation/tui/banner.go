package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	" _                    _",
	"| |_ ___   __ _  __ _| | ___ _ __",
	"| __/ _ \\ / _` |/ _` | |/ _ \\ '__|",
	"| || (_) | (_| | (_| | |  __/ |",
	" \\__\\___/ \\__, |\\__, |_|\\___|_|",
	"          |___/ |___/",
}

var bannerColors = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6", "#fb7185"}

// PrintBanner writes the toggler banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.NewOutput(w).ColorProfile()

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, p.String(line).Foreground(p.Color(bannerColors[i])))
	}
	fmt.Fprintln(w, p.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
