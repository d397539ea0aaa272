package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Sprint color functions for building styled strings.
var (
	Bold        = color.New(color.Bold).SprintFunc()
	Dim         = color.New(color.Faint).SprintFunc()
	Cyan        = color.New(color.FgCyan).SprintFunc()
	Green       = color.New(color.FgGreen).SprintFunc()
	Red         = color.New(color.FgRed).SprintFunc()
	Yellow      = color.New(color.FgYellow).SprintFunc()
	Magenta     = color.New(color.FgMagenta).SprintFunc()
	BoldCyan    = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldGreen   = color.New(color.Bold, color.FgGreen).SprintFunc()
	BoldRed     = color.New(color.Bold, color.FgRed).SprintFunc()
	BoldYellow  = color.New(color.Bold, color.FgYellow).SprintFunc()
	BoldMagenta = color.New(color.Bold, color.FgMagenta).SprintFunc()
	BoldWhite   = color.New(color.Bold, color.FgWhite).SprintFunc()
)

// PrintLogo renders the colored makespan logo to stderr.
func PrintLogo() {
	w := os.Stderr
	frame := color.New(color.FgCyan)
	bars := color.New(color.FgYellow)
	brand := color.New(color.Bold, color.FgMagenta)
	tag := color.New(color.Faint)

	fmt.Fprintln(w)
	frame.Fprintln(w, "   +---------------------------+")
	bars.Fprintln(w, "   |  ▇▇▇▇▇▇▇▇▇▇  ▇▇▇▇         |")
	bars.Fprintln(w, "   |  ▇▇▇▇  ▇▇▇▇▇▇▇▇▇▇▇▇▇      |")
	frame.Fprintln(w, "   |===========================|")
	brand.Fprintln(w, "   |  M  A  K  E  S  P  A  N   |")
	frame.Fprintln(w, "   +---------------------------+")
	tag.Fprintf(w, "   %s Workflow scheduling onto K machines\n", Dim("⏱"))
	fmt.Fprintln(w)
}

// machineColors is a palette of distinct bold colors for differentiating
// machines in timeline output.
var machineColors = []func(a ...interface{}) string{
	BoldMagenta,
	BoldCyan,
	BoldYellow,
	BoldGreen,
	color.New(color.Bold, color.FgHiBlue).SprintFunc(),
	color.New(color.Bold, color.FgHiRed).SprintFunc(),
}

// MachineColor returns the palette color function for a machine index.
func MachineColor(machine int) func(a ...interface{}) string {
	if machine < 0 {
		machine = 0
	}
	return machineColors[machine%len(machineColors)]
}

// MachinePrefix returns a colored [M<n>] prefix string for a machine.
func MachinePrefix(machine int) string {
	c := MachineColor(machine)
	return Dim("[") + c(fmt.Sprintf("M%d", machine)) + Dim("]")
}
