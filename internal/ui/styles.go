package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

var l2Style = pterm.NewStyle(pterm.FgCyan, pterm.Bold)

// PrintL2Title prints a sub-section heading.
func PrintL2Title(format string, a ...interface{}) {
	l2Style.Println(fmt.Sprintf("# %s   ", fmt.Sprintf(format, a...)))
}

// PrintCountTitle prints a sub-section heading followed by a gray count,
// e.g. "# Invalid Rows (3)".
func PrintCountTitle(title string, count int) {
	l2Style.Print("# " + title)
	pterm.Println(pterm.Gray(fmt.Sprintf(" (%d)", count)))
}

func Separator() {
	pterm.Println(pterm.Gray("────────────────────────────────────────"))
}
