package engine

import (
	"math/rand"
	"time"
)

// Mode selects the rule set for a game. Classic plays with plain
// rotation and a uniform randomizer; Modern adds SRS wall kicks, 7-bag
// sequencing, T-spins, combos and back-to-back bonuses.
type Mode int

const (
	ModeClassic Mode = iota
	ModeModern
)

func (m Mode) String() string {
	if m == ModeClassic {
		return "Classic"
	}
	return "Modern"
}

// Phase is the game state machine position.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	// PhaseGameOverPending is the grace state between a failed spawn and
	// the final game over; the presentation layer advances past it with
	// ConfirmGameOver once its top-out effect has played.
	PhaseGameOverPending
	PhaseGameOver
)

// LockResult reports what a lock did: how many rows cleared and which,
// the points awarded by the lock (drop points included), the scoring
// label, and the streak state after the lock.
type LockResult struct {
	Locked      bool
	Cleared     int
	ClearedRows []int
	ScoreDelta  int
	Label       string
	TSpin       bool
	Combo       int
	BackToBack  bool
	GameOver    bool
}

// Game owns all rule state. It is not safe for concurrent use; drive it
// from a single event loop.
type Game struct {
	board  *Board
	rng    *rand.Rand
	seed   int64
	mode   Mode
	phase  Phase
	random Randomizer

	current  Kind
	shape    Shape
	x        int
	y        int
	rotation int
	// kicked is true while the active piece's latest movement was a
	// rotation that needed a wall kick; any other movement clears it.
	kicked bool

	next     Kind
	hold     Kind
	holdUsed bool

	score      int
	lines      int
	level      int
	combo      int
	backToBack bool
	lastLabel  string
	showGhost  bool
}

// NewGame creates a game in PhaseNotStarted. All randomness derives from
// seed, so identical seeds replay identical piece sequences.
func NewGame(mode Mode, seed int64) *Game {
	g := &Game{
		board:     NewBoard(),
		seed:      seed,
		mode:      mode,
		level:     1,
		showGhost: true,
	}
	g.resetRandom()
	return g
}

func (g *Game) resetRandom() {
	g.rng = rand.New(rand.NewSource(g.seed))
	if g.mode == ModeModern {
		g.random = NewBagRandomizer(g.rng)
	} else {
		g.random = NewUniformRandomizer(g.rng)
	}
}

// Start deals the first pieces and begins play. No-op unless the game is
// in PhaseNotStarted.
func (g *Game) Start() {
	if g.phase != PhaseNotStarted {
		return
	}
	g.current = g.random.Next()
	g.next = g.random.Next()
	g.spawn(g.current)
	if g.phase != PhaseGameOverPending {
		g.phase = PhaseRunning
	}
}

// Reset returns every piece of state, the board and the randomizer to
// their initial values and re-enters PhaseNotStarted.
func (g *Game) Reset() {
	g.board.Reset()
	g.resetRandom()
	g.phase = PhaseNotStarted
	g.current = KindNone
	g.shape = nil
	g.next = KindNone
	g.hold = KindNone
	g.holdUsed = false
	g.x, g.y, g.rotation = 0, 0, 0
	g.kicked = false
	g.score, g.lines, g.combo = 0, 0, 0
	g.level = 1
	g.backToBack = false
	g.lastLabel = ""
}

// ToggleMode switches between Classic and Modern. Only allowed while no
// game is in progress.
func (g *Game) ToggleMode() {
	if g.phase != PhaseNotStarted && g.phase != PhaseGameOver {
		return
	}
	if g.mode == ModeClassic {
		g.mode = ModeModern
	} else {
		g.mode = ModeClassic
	}
	g.resetRandom()
}

// TogglePause suspends or resumes play. Unavailable before the first
// spawn and after game over.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhaseRunning
	}
}

// ToggleGhost flips ghost-piece visibility. Presentation state only, so
// it is allowed in any phase.
func (g *Game) ToggleGhost() {
	g.showGhost = !g.showGhost
}

// ConfirmGameOver advances the grace state to the final game over.
func (g *Game) ConfirmGameOver() {
	if g.phase == PhaseGameOverPending {
		g.phase = PhaseGameOver
	}
}

// MoveLeft shifts the active piece one column left if the spot is free.
func (g *Game) MoveLeft() bool { return g.shift(-1) }

// MoveRight shifts the active piece one column right if the spot is free.
func (g *Game) MoveRight() bool { return g.shift(1) }

func (g *Game) shift(dx int) bool {
	if g.phase != PhaseRunning {
		return false
	}
	if !g.board.IsValidPlacement(g.shape, g.x+dx, g.y) {
		return false
	}
	g.x += dx
	g.kicked = false
	return true
}

// RotateClockwise rotates the active piece a quarter turn clockwise,
// kicking in Modern mode. Rejection leaves the piece untouched.
func (g *Game) RotateClockwise() bool { return g.rotate(Clockwise) }

// RotateCounterClockwise rotates the active piece a quarter turn
// counter-clockwise.
func (g *Game) RotateCounterClockwise() bool { return g.rotate(CounterClockwise) }

func (g *Game) rotate(dir RotationDir) bool {
	if g.phase != PhaseRunning {
		return false
	}
	result, ok := ResolveRotation(g.board, g.mode, g.current, g.shape, g.x, g.y, g.rotation, dir)
	if !ok {
		return false
	}
	g.shape = result.Shape
	g.x = result.X
	g.y = result.Y
	g.rotation = result.State
	g.kicked = result.UsedKick
	return true
}

// Tick advances the fall by one row, locking the piece when it cannot
// descend.
func (g *Game) Tick() LockResult {
	if g.phase != PhaseRunning {
		return LockResult{}
	}
	if g.descend() {
		return LockResult{}
	}
	return g.lock(0)
}

// SoftDrop is a manual downward step worth one point; at the floor it
// locks the piece like a tick.
func (g *Game) SoftDrop() LockResult {
	if g.phase != PhaseRunning {
		return LockResult{}
	}
	if g.descend() {
		g.score += softDropPoint
		return LockResult{ScoreDelta: softDropPoint}
	}
	return g.lock(0)
}

// HardDrop sends the piece straight to its resting position, worth two
// points per row descended, then locks it.
func (g *Game) HardDrop() LockResult {
	if g.phase != PhaseRunning {
		return LockResult{}
	}
	distance := 0
	for g.descend() {
		distance++
	}
	dropPoints := distance * hardDropPerRow
	g.score += dropPoints
	return g.lock(dropPoints)
}

func (g *Game) descend() bool {
	if !g.board.IsValidPlacement(g.shape, g.x, g.y+1) {
		return false
	}
	g.y++
	g.kicked = false
	return true
}

// Hold stashes the active piece, swapping with any previously held one.
// Usable once per spawn.
func (g *Game) Hold() {
	if g.phase != PhaseRunning || g.holdUsed {
		return
	}
	if g.hold == KindNone {
		g.hold = g.current
		g.current = g.next
		g.next = g.random.Next()
	} else {
		g.hold, g.current = g.current, g.hold
	}
	g.spawn(g.current)
	g.holdUsed = true
}

// lock stamps the active piece, scores the result, clears full rows and
// spawns the next piece. The board mutation is immediate; ClearedRows is
// reported so the presentation layer can flash the vanished rows.
func (g *Game) lock(dropPoints int) LockResult {
	// The corner test reads the board as it exists before the stamp.
	tSpin := g.mode == ModeModern &&
		g.current == KindT &&
		g.kicked &&
		IsTSpinPosition(g.board, g.x+1, g.y+1)

	g.board.Lock(g.shape, g.current, g.x, g.y)
	rows := g.board.FullRows()
	cleared := len(rows)

	result := LockResult{
		Locked:      true,
		Cleared:     cleared,
		ClearedRows: rows,
		ScoreDelta:  dropPoints,
	}

	if cleared > 0 {
		streak := 0
		wasBackToBack := false
		if g.mode == ModeModern {
			streak = g.combo
			g.combo++
			wasBackToBack = g.backToBack
			g.backToBack = clearQualifiesBackToBack(cleared, tSpin)
		}
		points := LockPoints(cleared, g.level, tSpin, wasBackToBack, streak)
		g.score += points
		g.lines += cleared
		g.level = LevelForLines(g.lines)
		g.lastLabel = ClearLabel(cleared, tSpin)
		result.ScoreDelta += points
		result.Label = g.lastLabel
		result.TSpin = tSpin
	} else {
		g.combo = 0
		g.backToBack = false
	}
	result.Combo = g.combo
	result.BackToBack = g.backToBack

	g.board.ClearRows(rows)

	g.current = g.next
	g.next = g.random.Next()
	g.holdUsed = false
	g.spawn(g.current)
	result.GameOver = g.phase == PhaseGameOverPending
	return result
}

func (g *Game) spawn(kind Kind) {
	g.shape = SpawnShape(kind)
	g.x = (BoardWidth - g.shape.Size()) / 2
	g.y = 0
	g.rotation = 0
	g.kicked = false
	if !g.board.IsValidPlacement(g.shape, g.x, g.y) {
		g.phase = PhaseGameOverPending
	}
}

// GhostY returns the row the active piece would rest on if dropped now.
// Pure query; the piece is not moved.
func (g *Game) GhostY() int {
	y := g.y
	for g.board.IsValidPlacement(g.shape, g.x, y+1) {
		y++
	}
	return y
}

// FallInterval is the current automatic drop period.
func (g *Game) FallInterval() time.Duration {
	return FallIntervalForLevel(g.level)
}

func (g *Game) Phase() Phase { return g.phase }
func (g *Game) Mode() Mode   { return g.mode }

// Over reports whether the game has topped out (pending or confirmed).
func (g *Game) Over() bool {
	return g.phase == PhaseGameOverPending || g.phase == PhaseGameOver
}

// Snapshot is the observable state the presentation layer renders from.
type Snapshot struct {
	Board        [][]Cell
	ActiveKind   Kind
	Active       []Point
	Ghost        []Point
	Next         Kind
	Hold         Kind
	Score        int
	Lines        int
	Level        int
	Combo        int
	BackToBack   bool
	Mode         Mode
	Phase        Phase
	ShowGhost    bool
	LastLabel    string
	FallInterval time.Duration
}

// Snapshot copies the current observable state. Safe to call in any
// phase; the active and ghost cell lists are empty while no piece is in
// play.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Board:        g.board.Grid(),
		ActiveKind:   g.current,
		Next:         g.next,
		Hold:         g.hold,
		Score:        g.score,
		Lines:        g.lines,
		Level:        g.level,
		Combo:        g.combo,
		BackToBack:   g.backToBack,
		Mode:         g.mode,
		Phase:        g.phase,
		ShowGhost:    g.showGhost,
		LastLabel:    g.lastLabel,
		FallInterval: g.FallInterval(),
	}
	if g.shape == nil || g.phase == PhaseNotStarted {
		return snap
	}
	snap.Active = g.shape.Cells(g.x, g.y)
	if g.showGhost {
		if ghostY := g.GhostY(); ghostY > g.y {
			snap.Ghost = g.shape.Cells(g.x, ghostY)
		}
	}
	return snap
}
