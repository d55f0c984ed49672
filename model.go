package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dhavalhparikh/TetroMaster/engine"
)

type Screen int

const (
	screenMenu Screen = iota
	screenGame
	screenThemes
	screenConfig
)

type tickMsg struct{}
type lineClearTickMsg struct{}
type countdownTickMsg struct{}
type topOutTickMsg struct{}

const (
	lineClearFlashDuration    = 140 * time.Millisecond
	lineClearBigFlashDuration = 160 * time.Millisecond
	topOutFlashDuration       = 240 * time.Millisecond
)

type Model struct {
	screen       Screen
	width        int
	height       int
	menuIndex    int
	configIndex  int
	themeIndex   int
	config       Config
	game         *engine.Game
	flashRows    []int
	flashStart   time.Time
	flashUntil   time.Time
	lastDelta    int
	lastEvent    string
	lastEventTil time.Time
	startCount   int
	topOutTil    time.Time
}

func NewModel(seed int64) Model {
	config, _ := loadConfig()
	index := themeIndexByName(config.Theme)
	if index < 0 {
		index = 0
		config.Theme = themes[index].Name
	}
	game := engine.NewGame(modeFromName(config.Mode), seed)
	if !config.Ghost {
		game.ToggleGhost()
	}
	return Model{
		screen:     screenMenu,
		config:     config,
		themeIndex: index,
		game:       game,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.screen == screenGame && m.game.Phase() == engine.PhaseRunning {
			if m.startCount > 0 {
				return m, nil
			}
			m.updateFlash()
			if m.isLineClearAnimating() {
				return m, tickCmd(m.game.FallInterval())
			}
			result := m.game.Tick()
			if result.GameOver {
				return m, m.startTopOutEffect()
			}
			cmds := []tea.Cmd{tickCmd(m.game.FallInterval())}
			if result.Locked {
				if animCmd := m.applyLockResult(result); animCmd != nil {
					cmds = append(cmds, animCmd)
				}
			}
			return m, tea.Batch(cmds...)
		}
		if m.screen == screenGame && m.game.Phase() == engine.PhasePaused {
			return m, tickCmd(m.game.FallInterval())
		}
		return m, nil
	case countdownTickMsg:
		if m.screen != screenGame || m.game.Phase() != engine.PhaseRunning {
			return m, nil
		}
		if m.startCount <= 0 {
			return m, tickCmd(m.game.FallInterval())
		}
		m.startCount--
		if m.startCount > 0 {
			return m, countdownTickCmd()
		}
		return m, tickCmd(m.game.FallInterval())
	case lineClearTickMsg:
		if m.screen != screenGame {
			return m, nil
		}
		m.updateFlash()
		if m.isLineClearAnimating() {
			return m, lineClearTickCmd()
		}
		return m, nil
	case topOutTickMsg:
		if m.screen != screenGame || m.topOutTil.IsZero() {
			return m, nil
		}
		m.updateFlash()
		if m.isTopOutAnimating() {
			return m, topOutTickCmd()
		}
		m.topOutTil = time.Time{}
		m.game.ConfirmGameOver()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+=", "ctrl++":
			m.adjustScale(1)
			return m, nil
		case "ctrl+-", "ctrl+_":
			m.adjustScale(-1)
			return m, nil
		}
		switch m.screen {
		case screenMenu:
			return m, m.updateMenu(msg)
		case screenGame:
			return m, m.updateGame(msg)
		case screenThemes:
			return m, m.updateThemes(msg)
		case screenConfig:
			return m, m.updateConfig(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case screenMenu:
		return viewMenu(m)
	case screenGame:
		return viewGame(m)
	case screenThemes:
		return viewThemes(m)
	case screenConfig:
		return viewConfig(m)
	default:
		return ""
	}
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return tickMsg{} })
}

func lineClearTickCmd() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(time.Time) tea.Msg { return lineClearTickMsg{} })
}

func countdownTickCmd() tea.Cmd {
	return tea.Tick(380*time.Millisecond, func(time.Time) tea.Msg { return countdownTickMsg{} })
}

func topOutTickCmd() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(time.Time) tea.Msg { return topOutTickMsg{} })
}

func menuItems(m Model) []string {
	return []string{
		"Start Game",
		"Mode: " + m.game.Mode().String(),
		"Themes",
		"Config",
		"Quit",
	}
}

var configItems = []string{
	"Ghost Piece",
	"Line Clear Animation",
	"Game Scale",
}

func (m *Model) adjustScale(delta int) {
	minScale := 1
	maxScale := 3
	newScale := m.config.Scale + delta
	if newScale < minScale {
		newScale = minScale
	}
	if newScale > maxScale {
		newScale = maxScale
	}
	if newScale != m.config.Scale {
		m.config.Scale = newScale
		_ = saveConfig(m.config)
	}
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems(*m))-1 {
			m.menuIndex++
		}
	case "enter":
		switch m.menuIndex {
		case 0:
			m.game.Reset()
			m.game.Start()
			m.startCount = 2
			m.flashRows = nil
			m.flashStart = time.Time{}
			m.flashUntil = time.Time{}
			m.lastEvent = ""
			m.lastDelta = 0
			m.screen = screenGame
			return countdownTickCmd()
		case 1:
			m.game.Reset()
			m.game.ToggleMode()
			m.config.Mode = m.game.Mode().String()
			_ = saveConfig(m.config)
		case 2:
			m.screen = screenThemes
		case 3:
			m.screen = screenConfig
		case 4:
			return tea.Quit
		}
	case "q", "esc":
		return tea.Quit
	}
	return nil
}

func (m *Model) updateGame(msg tea.KeyMsg) tea.Cmd {
	if m.startCount > 0 || m.isLineClearAnimating() || m.isTopOutAnimating() {
		switch msg.String() {
		case "q", "esc":
			m.screen = screenMenu
		}
		return nil
	}

	if m.game.Phase() == engine.PhaseGameOver {
		switch msg.String() {
		case "r":
			m.game.Reset()
			m.game.Start()
			m.startCount = 2
			return countdownTickCmd()
		case "enter", "q", "esc":
			m.screen = screenMenu
		}
		return nil
	}

	switch msg.String() {
	case "left", "h":
		m.game.MoveLeft()
	case "right", "l":
		m.game.MoveRight()
	case "down", "j":
		result := m.game.SoftDrop()
		return m.handleLock(result)
	case " ":
		result := m.game.HardDrop()
		return m.handleLock(result)
	case "up", "x":
		m.game.RotateClockwise()
	case "z":
		m.game.RotateCounterClockwise()
	case "c":
		m.game.Hold()
		if m.game.Over() {
			return m.startTopOutEffect()
		}
	case "g":
		m.game.ToggleGhost()
		m.config.Ghost = !m.config.Ghost
		_ = saveConfig(m.config)
	case "p":
		m.game.TogglePause()
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) handleLock(result engine.LockResult) tea.Cmd {
	if !result.Locked {
		return nil
	}
	animCmd := m.applyLockResult(result)
	if result.GameOver {
		topOutCmd := m.startTopOutEffect()
		if animCmd != nil {
			return tea.Batch(animCmd, topOutCmd)
		}
		return topOutCmd
	}
	return animCmd
}

func (m *Model) updateThemes(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.themeIndex > 0 {
			m.themeIndex--
		}
	case "down", "j":
		if m.themeIndex < len(themes)-1 {
			m.themeIndex++
		}
	case "enter":
		m.config.Theme = themes[m.themeIndex].Name
		_ = saveConfig(m.config)
		m.screen = screenMenu
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) updateConfig(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.configIndex > 0 {
			m.configIndex--
		}
	case "down", "j":
		if m.configIndex < len(configItems)-1 {
			m.configIndex++
		}
	case "enter":
		switch m.configIndex {
		case 0:
			m.game.ToggleGhost()
			m.config.Ghost = !m.config.Ghost
			_ = saveConfig(m.config)
		case 1:
			m.config.Animations = !m.config.Animations
			if !m.config.Animations {
				m.flashRows = nil
				m.flashStart = time.Time{}
				m.flashUntil = time.Time{}
			}
			_ = saveConfig(m.config)
		case 2:
			m.adjustScale(1)
		}
	case "left", "h":
		if m.configIndex == 2 {
			m.adjustScale(-1)
		}
	case "right", "l":
		if m.configIndex == 2 {
			m.adjustScale(1)
		}
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) applyLockResult(result engine.LockResult) tea.Cmd {
	var animCmd tea.Cmd
	if len(result.ClearedRows) > 0 && m.config.Animations {
		m.flashRows = append([]int{}, result.ClearedRows...)
		flash := lineClearFlashDuration
		if result.TSpin || result.Cleared >= 4 {
			flash = lineClearBigFlashDuration
		}
		m.flashStart = time.Now()
		m.flashUntil = m.flashStart.Add(flash)
		animCmd = lineClearTickCmd()
	}
	if result.Cleared > 0 && result.ScoreDelta > 0 {
		m.lastDelta = result.ScoreDelta
		m.lastEvent = result.Label
		duration := 900 * time.Millisecond
		if result.TSpin || result.Cleared >= 4 {
			duration = 1400 * time.Millisecond
		}
		m.lastEventTil = time.Now().Add(duration)
	}
	return animCmd
}

func (m *Model) updateFlash() {
	if !m.flashUntil.IsZero() && time.Now().After(m.flashUntil) {
		m.flashRows = nil
		m.flashStart = time.Time{}
		m.flashUntil = time.Time{}
	}
	if !m.lastEventTil.IsZero() && time.Now().After(m.lastEventTil) {
		m.lastEvent = ""
		m.lastDelta = 0
		m.lastEventTil = time.Time{}
	}
	if !m.topOutTil.IsZero() && time.Now().After(m.topOutTil) {
		m.topOutTil = time.Time{}
	}
}

func (m *Model) isLineClearAnimating() bool {
	return !m.flashUntil.IsZero() && time.Now().Before(m.flashUntil)
}

func (m *Model) isTopOutAnimating() bool {
	return !m.topOutTil.IsZero() && time.Now().Before(m.topOutTil)
}

func (m *Model) startTopOutEffect() tea.Cmd {
	m.flashRows = make([]int, engine.BoardHeight)
	for i := 0; i < engine.BoardHeight; i++ {
		m.flashRows[i] = i
	}
	m.flashStart = time.Now()
	m.flashUntil = m.flashStart.Add(topOutFlashDuration)
	m.topOutTil = m.flashUntil
	return topOutTickCmd()
}
