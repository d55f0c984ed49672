package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dhavalhparikh/TetroMaster/engine"
)

type Theme struct {
	Name        string
	BorderColor lipgloss.Color
	TextColor   lipgloss.Color
	AccentColor lipgloss.Color
	PieceColors []lipgloss.Color
}

var themes = []Theme{
	{
		Name:        "Classic Arcade",
		BorderColor: lipgloss.Color("15"),
		TextColor:   lipgloss.Color("250"),
		AccentColor: lipgloss.Color("226"),
		PieceColors: []lipgloss.Color{"51", "226", "93", "46", "196", "21", "208"},
	},
	{
		Name:        "Amber Terminal",
		BorderColor: lipgloss.Color("214"),
		TextColor:   lipgloss.Color("223"),
		AccentColor: lipgloss.Color("208"),
		PieceColors: []lipgloss.Color{"220", "214", "222", "208", "215", "216", "223"},
	},
	{
		Name:        "Ocean Neon",
		BorderColor: lipgloss.Color("33"),
		TextColor:   lipgloss.Color("159"),
		AccentColor: lipgloss.Color("39"),
		PieceColors: []lipgloss.Color{"45", "39", "51", "44", "50", "75", "81"},
	},
	{
		Name:        "Forest CRT",
		BorderColor: lipgloss.Color("22"),
		TextColor:   lipgloss.Color("120"),
		AccentColor: lipgloss.Color("34"),
		PieceColors: []lipgloss.Color{"47", "64", "77", "48", "71", "35", "106"},
	},
	{
		Name:        "Mono Matrix",
		BorderColor: lipgloss.Color("250"),
		TextColor:   lipgloss.Color("245"),
		AccentColor: lipgloss.Color("82"),
		PieceColors: []lipgloss.Color{"236", "239", "242", "245", "248", "251", "254"},
	},
	{
		Name:        "Volcanic",
		BorderColor: lipgloss.Color("203"),
		TextColor:   lipgloss.Color("223"),
		AccentColor: lipgloss.Color("214"),
		PieceColors: []lipgloss.Color{"52", "88", "124", "160", "196", "202", "208"},
	},
}

func themeIndexByName(name string) int {
	for i, theme := range themes {
		if theme.Name == name {
			return i
		}
	}
	return -1
}

func pieceColor(theme Theme, kind engine.Kind) lipgloss.Color {
	if kind == engine.KindNone {
		return theme.TextColor
	}
	return theme.PieceColors[(int(kind)-1)%len(theme.PieceColors)]
}

func viewMenu(m Model) string {
	theme := themes[m.themeIndex]
	content := renderMenu("TETROMASTER", menuItems(m), m.menuIndex, "Enter to select, Q to quit", theme)
	return center(m.width, m.height, content)
}

func viewThemes(m Model) string {
	theme := themes[m.themeIndex]
	items := make([]string, 0, len(themes))
	for _, t := range themes {
		items = append(items, t.Name)
	}
	preview := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle(theme).Render("Theme Preview"),
		renderPreviewPieceGrid(theme),
	)
	menu := renderMenu("Themes", items, m.themeIndex, "Enter to apply, Esc to back", theme)
	content := lipgloss.JoinVertical(lipgloss.Left, preview, "", menu)
	return center(m.width, m.height, content)
}

func renderPreviewPieceGrid(theme Theme) string {
	rowTop := renderPreviewPieceRow(theme, engine.Kinds[:4])
	rowBottom := renderPreviewPieceRow(theme, engine.Kinds[4:])
	return lipgloss.JoinVertical(lipgloss.Left, rowTop, rowBottom)
}

func renderPreviewPieceRow(theme Theme, kinds []engine.Kind) string {
	items := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		piece := lipgloss.NewStyle().MarginRight(1).Render(renderMiniPiece(kind, theme, 1))
		items = append(items, piece)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func viewConfig(m Model) string {
	theme := themes[m.themeIndex]
	items := make([]string, 0, len(configItems))
	for i, item := range configItems {
		state := "OFF"
		switch i {
		case 0:
			if m.config.Ghost {
				state = "ON"
			}
			items = append(items, fmt.Sprintf("%s: %s", item, state))
		case 1:
			if m.config.Animations {
				state = "ON"
			}
			items = append(items, fmt.Sprintf("%s: %s", item, state))
		case 2:
			items = append(items, fmt.Sprintf("%s: %dx", item, clampScale(m.config.Scale)))
		}
	}
	content := renderMenu("Config", items, m.configIndex, "Enter to toggle, Left/Right to adjust, Esc to back", theme)
	return center(m.width, m.height, content)
}

func viewGame(m Model) string {
	theme := themes[m.themeIndex]
	scale := clampScale(m.config.Scale)
	minWidth, minHeight := minGameSize(scale)
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		message := fmt.Sprintf("Terminal too small. Need at least %dx%d. Current %dx%d.", minWidth, minHeight, m.width, m.height)
		return center(m.width, m.height, message)
	}
	snap := m.game.Snapshot()
	board := renderBoard(snap, theme, scale, m.flashRows, m.flashStart, m.flashUntil)
	readyLabel := ""
	if m.startCount > 0 {
		if m.startCount > 1 {
			readyLabel = "READY"
		} else {
			readyLabel = "GO"
		}
	}
	info := renderInfo(snap, theme, m.lastEvent, m.lastDelta, readyLabel)
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, info)
	if m.width < minWidth+24 {
		content = lipgloss.JoinVertical(lipgloss.Left, board, info)
	}
	if m.isTopOutAnimating() {
		shake := ((time.Now().UnixNano() / int64(18*time.Millisecond)) % 2)
		if shake == 0 {
			content = lipgloss.NewStyle().PaddingLeft(1).Render(content)
		}
	}
	return center(m.width, m.height, content)
}

func renderBoard(snap engine.Snapshot, theme Theme, scale int, flashRows []int, flashStart, flashUntil time.Time) string {
	border := lipgloss.NewStyle().Foreground(theme.BorderColor)
	cellEmpty := lipgloss.NewStyle()
	cellText := strings.Repeat(" ", cellWidth(scale))
	grid := snap.Board
	ghost := make(map[engine.Point]struct{}, len(snap.Ghost))
	for _, p := range snap.Ghost {
		if p.Y >= 0 && p.Y < engine.BoardHeight && grid[p.Y][p.X] == engine.KindNone {
			ghost[p] = struct{}{}
		}
	}
	for _, p := range snap.Active {
		if p.Y >= 0 && p.Y < engine.BoardHeight {
			grid[p.Y][p.X] = snap.ActiveKind
		}
	}
	now := time.Now()
	flashActive := !flashUntil.IsZero() && now.Before(flashUntil)
	flashMap := map[int]struct{}{}
	if flashActive {
		for _, row := range flashRows {
			flashMap[row] = struct{}{}
		}
	}
	whiteStyle := lipgloss.NewStyle().Background(lipgloss.Color("15"))
	breakColumns := brokenColumns(now, flashStart, flashUntil)
	var b strings.Builder
	b.WriteString(border.Render("+" + strings.Repeat("-", engine.BoardWidth*cellWidth(scale)) + "+"))
	b.WriteString("\n")
	for y := 0; y < engine.BoardHeight; y++ {
		for repeat := 0; repeat < scale; repeat++ {
			b.WriteString(border.Render("|"))
			for x := 0; x < engine.BoardWidth; x++ {
				if _, flashRow := flashMap[y]; flashRow {
					if x < breakColumns {
						b.WriteString(cellEmpty.Render(cellText))
					} else {
						b.WriteString(whiteStyle.Render(cellText))
					}
					continue
				}
				val := grid[y][x]
				if val == engine.KindNone {
					if _, ok := ghost[engine.Point{X: x, Y: y}]; ok {
						color := pieceColor(theme, snap.ActiveKind)
						ghostText := strings.Repeat(".", cellWidth(scale))
						b.WriteString(lipgloss.NewStyle().Foreground(color).Faint(true).Render(ghostText))
					} else {
						b.WriteString(cellEmpty.Render(cellText))
					}
					continue
				}
				style := lipgloss.NewStyle().Background(pieceColor(theme, val))
				b.WriteString(style.Render(cellText))
			}
			b.WriteString(border.Render("|"))
			b.WriteString("\n")
		}
	}
	b.WriteString(border.Render("+" + strings.Repeat("-", engine.BoardWidth*cellWidth(scale)) + "+"))
	return b.String()
}

func brokenColumns(now, start, until time.Time) int {
	if start.IsZero() || until.IsZero() || !until.After(start) {
		return 0
	}
	elapsed := now.Sub(start)
	if elapsed <= 0 {
		return 0
	}
	duration := until.Sub(start)
	if elapsed >= duration {
		return engine.BoardWidth
	}
	progress := float64(elapsed) / float64(duration)
	if progress <= 0.35 {
		return 0
	}
	breakProgress := (progress - 0.35) / 0.65
	columns := int(breakProgress*float64(engine.BoardWidth)) + 1
	if columns < 0 {
		return 0
	}
	if columns > engine.BoardWidth {
		return engine.BoardWidth
	}
	return columns
}

func renderInfo(snap engine.Snapshot, theme Theme, lastEvent string, lastDelta int, readyLabel string) string {
	var b strings.Builder
	pad := lipgloss.NewStyle().PaddingLeft(2)
	if readyLabel != "" {
		b.WriteString(pad.Render(highlightStyle(theme).Render(readyLabel)))
		b.WriteString("\n\n")
	}
	b.WriteString(pad.Render(titleStyle(theme).Render("Next")))
	b.WriteString("\n")
	b.WriteString(pad.Render(renderMiniPiece(snap.Next, theme, 1)))
	b.WriteString("\n\n")
	b.WriteString(pad.Render(titleStyle(theme).Render("Hold")))
	b.WriteString("\n")
	if snap.Hold != engine.KindNone {
		b.WriteString(pad.Render(renderMiniPiece(snap.Hold, theme, 1)))
	} else {
		b.WriteString(pad.Render("(empty)"))
	}
	b.WriteString("\n\n")
	b.WriteString(pad.Render(fmt.Sprintf("Mode:  %s", snap.Mode)))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Score: %d", snap.Score)))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Lines: %d", snap.Lines)))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Level: %d", snap.Level)))
	b.WriteString("\n\n")
	if lastEvent != "" || lastDelta > 0 {
		label := lastEvent
		if label == "" {
			label = "POINTS"
		}
		b.WriteString(pad.Render(highlightStyle(theme).Render(label)))
		b.WriteString("\n")
		b.WriteString(pad.Render(highlightStyle(theme).Render(fmt.Sprintf("+%d", lastDelta))))
		b.WriteString("\n\n")
	}
	if snap.Combo > 1 {
		b.WriteString(pad.Render(highlightStyle(theme).Render(fmt.Sprintf("Combo x%d", snap.Combo))))
		b.WriteString("\n")
	}
	if snap.BackToBack {
		b.WriteString(pad.Render(highlightStyle(theme).Render("Back-to-Back")))
		b.WriteString("\n")
	}
	if snap.Combo > 1 || snap.BackToBack {
		b.WriteString("\n")
	}
	keys := []string{
		"Arrows/HJKL: move",
		"Z/X or Up: rotate",
		"Space: hard drop",
		"C: hold",
		"G: ghost",
		"P: pause",
		"Q: menu",
	}
	for _, line := range keys {
		b.WriteString(pad.Render(helpStyle(theme).Render(line)))
		b.WriteString("\n")
	}
	if snap.Phase == engine.PhasePaused {
		b.WriteString("\n")
		b.WriteString(pad.Render(highlightStyle(theme).Render("Paused")))
	}
	if snap.Phase == engine.PhaseGameOver {
		b.WriteString("\n")
		b.WriteString(pad.Render(highlightStyle(theme).Render("GAME OVER")))
		b.WriteString("\n")
		b.WriteString(pad.Render(helpStyle(theme).Render("R: restart, Enter: menu")))
	}
	return b.String()
}

func renderMiniPiece(kind engine.Kind, theme Theme, scale int) string {
	if kind == engine.KindNone {
		return "(none)"
	}
	shape := engine.SpawnShape(kind)
	cellEmpty := lipgloss.NewStyle()
	cellText := strings.Repeat(" ", cellWidth(scale))
	filled := lipgloss.NewStyle().Background(pieceColor(theme, kind))
	var b strings.Builder
	for y := 0; y < shape.Size(); y++ {
		for repeat := 0; repeat < scale; repeat++ {
			for x := 0; x < shape.Size(); x++ {
				if shape[y][x] {
					b.WriteString(filled.Render(cellText))
				} else {
					b.WriteString(cellEmpty.Render(cellText))
				}
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func minGameSize(scale int) (int, int) {
	width := engine.BoardWidth*cellWidth(scale) + 4
	height := engine.BoardHeight*scale + 4
	return width, height
}

func titleStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func highlightStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func helpStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.TextColor)
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func clampScale(value int) int {
	if value < 1 {
		return 1
	}
	if value > 3 {
		return 3
	}
	return value
}

func cellWidth(scale int) int {
	if scale < 1 {
		scale = 1
	}
	return 2 * scale
}

func renderMenu(title string, items []string, selected int, footer string, theme Theme) string {
	maxWidth := lipgloss.Width(title)
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, item)
		if width := lipgloss.Width(item); width > maxWidth {
			maxWidth = width
		}
	}
	if width := lipgloss.Width(footer); width > maxWidth {
		maxWidth = width
	}
	lineStyle := lipgloss.NewStyle().Width(maxWidth).Align(lipgloss.Center)
	var b strings.Builder
	b.WriteString(lineStyle.Render(titleStyle(theme).Render(title)))
	b.WriteString("\n\n")
	for i, line := range lines {
		if i == selected {
			b.WriteString(lineStyle.Render(highlightStyle(theme).Render(line)))
			b.WriteString("\n")
			continue
		}
		b.WriteString(lineStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lineStyle.Render(helpStyle(theme).Render(footer)))
	return b.String()
}
