package display

import (
	"fmt"
	"os"
	"strings"
)

// PrintBanner prints the ASCII art banner; styled as a header when colors
// are enabled.
func PrintBanner(st Styler) {
	banner := `       _ _            _
   ___| (_)_ __   ___| |__  _ __ ___  _ __
  / __| | | '_ \ / __| '_ \| '__/ _ \| '_ \
 | (__| | | |_) | (__| | | | | | (_) | | | |
  \___|_|_| .__/ \___|_| |_|_|  \___/|_| |_|
          |_|
`
	fmt.Fprintln(os.Stdout, st.Render(StyleHeader, banner))
}

// PrintHeader prints a 60-column boxed section header, matching the batch
// phase banners (encoding options, batch start, summary).
func PrintHeader(st Styler, text string) {
	rule := strings.Repeat("=", 60)
	pad := (60 - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, st.Render(StyleHeader, rule))
	fmt.Fprintln(os.Stdout, st.Render(StyleHeader, strings.Repeat(" ", pad)+text))
	fmt.Fprintln(os.Stdout, st.Render(StyleHeader, rule))
	fmt.Fprintln(os.Stdout)
}
