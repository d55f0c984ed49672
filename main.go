package main

import (
	"flag"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	seed := flag.Int64("seed", 0, "piece sequence seed (0 = time based)")
	flag.Parse()
	EnableDebugLogging(*debug)
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	DebugLogf("tetromaster start debug=%v seed=%d", *debug, *seed)
	program := tea.NewProgram(NewModel(*seed), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		DebugLogf("program error: %v", err)
		os.Exit(1)
	}
}
