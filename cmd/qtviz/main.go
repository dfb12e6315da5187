// qtviz — interactive quadtree explorer.
//
// Run: go run ./cmd/qtviz/
package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/quadkit/internal/vizui"
)

func main() {
	m, err := vizui.NewModel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
