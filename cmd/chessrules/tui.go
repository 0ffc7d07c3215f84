package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

// Palette
var (
	styleLight     = tcell.StyleDefault.Background(tcell.ColorTan).Foreground(tcell.ColorBlack)
	styleDark      = tcell.StyleDefault.Background(tcell.ColorSaddleBrown).Foreground(tcell.ColorBlack)
	styleHighlight = tcell.StyleDefault.Background(tcell.ColorDarkSeaGreen).Foreground(tcell.ColorBlack)
	styleSelected  = tcell.StyleDefault.Background(tcell.ColorGold).Foreground(tcell.ColorBlack)
	styleChecked   = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorBlack)
	styleText      = tcell.StyleDefault
)

// matchSaver archives finished matches.
type matchSaver interface {
	SaveMatch(rec *storage.MatchRecord) (string, error)
}

// session is one interactive terminal game. The board is drawn from the
// top-left corner so that screen cells map straight onto squares.
type session struct {
	screen tcell.Screen
	game   *game.Game
	square *config.SquareConfig
	log    *zap.Logger
	saver  matchSaver

	started  time.Time
	paused   bool
	pressed  bool
	archived bool
	message  string
}

// runInteractive opens the terminal and plays until the user quits.
func runInteractive(cfg *config.Config, logger *zap.Logger) error {
	g, err := game.New(
		game.WithLogger(logger),
		game.WithBoardSize(cfg.BoardSize),
		game.WithLayout(cfg.Layout.ChessLayout()),
	)
	if err != nil {
		return err
	}

	store, err := openArchive(cfg)
	if err != nil {
		return err
	}
	var saver matchSaver
	if store != nil {
		defer store.Close()
		saver = store
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	return newSession(screen, g, cfg.Square, logger, saver).run()
}

func newSession(screen tcell.Screen, g *game.Game, sq *config.SquareConfig, logger *zap.Logger, saver matchSaver) *session {
	return &session{
		screen:  screen,
		game:    g,
		square:  sq,
		log:     logger,
		saver:   saver,
		started: time.Now(),
	}
}

// run is the event loop. It returns when the user quits or the screen is
// finalized.
func (s *session) run() error {
	s.draw()
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			if s.handleKey(ev) {
				s.archive()
				return nil
			}
		case *tcell.EventMouse:
			s.handleMouse(ev)
		}
		s.draw()
	}
}

// handleKey applies a key press. It reports whether the user asked to quit.
func (s *session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		s.paused = !s.paused
		if s.paused {
			s.game.ClearSelection()
		}
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case 'r', 'R':
		s.restart()
	}
	return false
}

// handleMouse acts on a primary-button press. Held buttons and releases
// are ignored so that one click is one square of input.
func (s *session) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	click := down && !s.pressed
	s.pressed = down
	if !click || s.paused {
		return
	}
	s.click(ev.Position())
}

func (s *session) click(x, y int) {
	n := s.game.Board().Size()
	sq, ok := game.SquareFromPoint(x, y, s.square.Width, s.square.Height, n)
	if !ok {
		return
	}

	s.message = ""
	switch s.game.HandleSquare(sq) {
	case game.Moved, game.Captured:
		if s.game.Update() {
			s.archive()
		}
	}
}

func (s *session) restart() {
	s.archive()
	if err := s.game.Restart(); err != nil {
		s.message = err.Error()
		s.log.Error("restart failed", zap.Error(err))
		return
	}
	s.started = time.Now()
	s.paused = false
	s.archived = false
	s.message = "new game"
}

// archive saves a finished match once. Unfinished matches are not kept.
func (s *session) archive() {
	if s.saver == nil || s.archived || !s.game.IsGameOver() {
		return
	}
	s.archived = true
	id, err := s.saver.SaveMatch(storage.NewMatchRecord(s.game, "", s.started))
	if err != nil {
		s.message = "archive failed: " + err.Error()
		s.log.Error("archive failed", zap.Error(err))
		return
	}
	s.log.Info("match archived", zap.String("id", id))
}

func (s *session) draw() {
	s.screen.Clear()
	snap := s.game.Snapshot()
	w, h := s.square.Width, s.square.Height

	highlights := chess.NewSquareSet(snap.Highlights...)
	for r := 0; r < snap.BoardSize; r++ {
		for f := 0; f < snap.BoardSize; f++ {
			style := styleLight
			if (r+f)%2 == 1 {
				style = styleDark
			}
			if highlights.Has(chess.Sq(r, f)) {
				style = styleHighlight
			}
			s.fill(f*w, r*h, w, h, style)
		}
	}

	for _, p := range snap.Pieces {
		x, y := p.Square.File*w, p.Square.Rank*h
		style := styleLight
		if (p.Square.Rank+p.Square.File)%2 == 1 {
			style = styleDark
		}
		switch {
		case p.Checked:
			style = styleChecked
		case p.Selected:
			style = styleSelected
		}
		s.fill(x, y, w, h, style)
		s.screen.SetContent(x+w/2, y+h/2, rune(output.Glyph(p.Kind, p.Colour)), nil, style)
	}

	s.text(0, snap.BoardSize*h, s.status(snap))
	if s.message != "" {
		s.text(0, snap.BoardSize*h+1, s.message)
	}
	s.screen.Show()
}

func (s *session) status(snap game.Snapshot) string {
	switch {
	case snap.GameOver:
		return fmt.Sprintf("Checkmate, %s wins. r: new game  q: quit", snap.Winner)
	case s.paused:
		return "Paused. Esc: resume  r: restart  q: quit"
	case snap.Checked:
		return snap.ToMove + " to move, check!"
	default:
		return snap.ToMove + " to move"
	}
}

func (s *session) fill(x, y, w, h int, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.screen.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}
}

func (s *session) text(x, y int, msg string) {
	for i, r := range []rune(msg) {
		s.screen.SetContent(x+i, y, r, nil, styleText)
	}
}
