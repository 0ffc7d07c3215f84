// Package game is the turn controller. It sequences turn-start rule
// computations, turns square input into selection, moves and captures, and
// hands the turn over. A Game is single-threaded: callers must not use one
// Game from several goroutines.
package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Outcome is the effect of one square of input.
type Outcome int

const (
	Ignored Outcome = iota
	Selected
	Deselected
	Moved
	Captured
)

var outcomeNames = []string{"ignored", "selected", "deselected", "moved", "captured"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Game owns the board, both players and the turn state.
type Game struct {
	board  *chess.Board
	rules  *engine.Rules
	log    *zap.Logger
	size   int
	layout chess.Layout

	players [2]*Player
	current int
	over    bool
	winner  chess.Colour
	status  engine.TurnStatus

	highlight chess.SquareSet
	history   []MoveRecord
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used by the game and its rules.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.log = logger
		}
	}
}

// WithBoardSize sets the board dimension.
func WithBoardSize(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.size = n
		}
	}
}

// WithLayout sets the starting back rank.
func WithLayout(layout chess.Layout) Option {
	return func(g *Game) {
		g.layout = layout
	}
}

func newGame(opts []Option) *Game {
	g := &Game{
		log:    zap.NewNop(),
		size:   chess.DefaultBoardSize,
		layout: chess.StandardLayout(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.rules = engine.New(g.log)
	return g
}

// New creates a match in the starting position with white to move.
func New(opts ...Option) (*Game, error) {
	g := newGame(opts)
	if err := g.Restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewFromBoard creates a match from an arranged position. Players are built
// from the board registry by colour and toMove starts.
func NewFromBoard(b *chess.Board, toMove chess.Colour, opts ...Option) (*Game, error) {
	g := newGame(opts)
	g.board = b
	g.size = b.Size()

	var ids [2][]string
	for p := range b.All() {
		ids[p.Colour] = append(ids[p.Colour], p.ID)
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		g.players[c] = newPlayer(b, c, ids[c])
		if g.players[c].KingID == "" {
			return nil, fmt.Errorf("%s has no king: %w", c, errors.ErrInvalidConfig)
		}
	}
	g.current = int(toMove)
	g.startTurn()
	return g, nil
}

// Restart discards every piece and rebuilds the starting position.
func (g *Game) Restart() error {
	b := chess.NewBoard(g.size)
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		ids, err := b.Setup(g.layout, c)
		if err != nil {
			return errors.Wrapf(err, "setting up %s", c)
		}
		g.players[c] = newPlayer(b, c, ids)
		if g.players[c].KingID == "" {
			return fmt.Errorf("%s layout has no king: %w", c, errors.ErrInvalidConfig)
		}
	}
	g.board = b
	g.current = int(chess.White)
	g.over = false
	g.history = nil
	g.highlight = nil
	g.startTurn()
	g.log.Info("match started", zap.Int("board_size", g.size))
	return nil
}

// Board returns the board. Callers must treat it as read-only.
func (g *Game) Board() *chess.Board {
	return g.board
}

// Current returns the player to move.
func (g *Game) Current() *Player {
	return g.players[g.current]
}

// Opponent returns the player waiting to move.
func (g *Game) Opponent() *Player {
	return g.players[1-g.current]
}

// Player returns the player of the given colour.
func (g *Game) Player(c chess.Colour) *Player {
	return g.players[c]
}

// IsGameOver reports whether the match ended in checkmate.
func (g *Game) IsGameOver() bool {
	return g.over
}

// Winner returns the winning colour once the game is over.
func (g *Game) Winner() (chess.Colour, bool) {
	return g.winner, g.over
}

// Status returns the turn-start status of the side to move.
func (g *Game) Status() engine.TurnStatus {
	return g.status
}

// LegalMoves returns the legal destinations of a piece of the side to move.
// Pieces of the waiting side have no legal moves.
func (g *Game) LegalMoves(id string) chess.SquareSet {
	p, ok := g.board.Piece(id)
	if !ok || !g.Current().Owns(id) {
		return chess.SquareSet{}
	}
	return g.rules.LegalMoves(g.board, p).Clone()
}

// startTurn runs pins, king safety and check defenses for the side to move
// and decides checkmate.
func (g *Game) startTurn() {
	pl := g.Current()
	pl.PlayableMovesInCheck = 0
	king, ok := g.board.Piece(pl.KingID)
	if !ok {
		return
	}

	g.status = g.rules.StartTurn(g.board, king, pl.Pieces)
	pl.PlayableMovesInCheck = g.status.Playable
	if g.status.Checkmate() {
		g.over = true
		g.winner = g.Opponent().Colour
		g.log.Info("game over", zap.Stringer("winner", g.winner))
	}
	g.log.Debug("turn started",
		zap.Stringer("player", pl.Colour),
		zap.Bool("checked", g.status.Checked),
		zap.Int("playable", pl.PlayableMovesInCheck))
}

// Update hands the turn over once the player to move has completed a move.
// It reports whether the match has ended.
func (g *Game) Update() bool {
	if g.over {
		return true
	}
	if g.Current().TurnComplete {
		_ = g.ChangeTurn()
	}
	return g.over
}

// ChangeTurn passes the move to the other player. The finished player's
// per-turn state is revoked only after the new turn has started.
func (g *Game) ChangeTurn() error {
	if g.over {
		return errors.ErrGameOver
	}
	prev := g.Current()
	prev.clearSelection()
	prev.TurnComplete = false

	g.current = 1 - g.current
	g.startTurn()
	g.highlight = nil
	engine.RevokeTurn(g.board, prev.Pieces)
	return nil
}

// HandleSquare applies one square of input for the player to move. Clicking
// an own piece selects it, clicking it again deselects, clicking another own
// piece switches the selection, and clicking a legal empty or enemy square
// moves or captures. Everything else leaves the state unchanged.
func (g *Game) HandleSquare(sq chess.Square) Outcome {
	if g.over || !g.board.InBounds(sq) {
		return Ignored
	}
	pl := g.Current()
	if pl.TurnComplete {
		return Ignored
	}
	id, _ := g.board.OccupantID(sq)

	switch {
	case pl.Selected && id == "":
		if g.move(pl, sq) {
			return Moved
		}
	case pl.Selected && id == pl.SelectedID:
		pl.clearSelection()
		g.highlight = nil
		return Deselected
	case pl.Selected && pl.Owns(id):
		g.selectPiece(pl, id)
		return Selected
	case pl.Selected:
		if g.capture(pl, sq, id) {
			return Captured
		}
	case pl.Owns(id):
		g.selectPiece(pl, id)
		return Selected
	}
	return Ignored
}

// ClearSelection drops the current player's selection.
func (g *Game) ClearSelection() {
	g.Current().clearSelection()
	g.highlight = nil
}

// Play selects the piece on from and moves it to to, then hands the turn
// over. It reports whether the move was made; on failure the selection is
// cleared and the position is unchanged.
func (g *Game) Play(from, to chess.Square) bool {
	if g.HandleSquare(from) != Selected {
		return false
	}
	switch g.HandleSquare(to) {
	case Moved, Captured:
		g.Update()
		return true
	}
	g.ClearSelection()
	return false
}

func (g *Game) selectPiece(pl *Player, id string) {
	p, _ := g.board.Piece(id)
	pl.Selected = true
	pl.SelectedID = id
	g.highlight = g.rules.LegalMoves(g.board, p).Clone()
}

func (g *Game) capture(pl *Player, sq chess.Square, targetID string) bool {
	p, _ := g.board.Piece(pl.SelectedID)
	if !g.rules.LegalMoves(g.board, p).Has(sq) {
		return false
	}
	target, ok := g.board.Piece(targetID)
	if !ok || target.Colour == p.Colour {
		return false
	}

	g.board.Remove(targetID)
	g.Opponent().removePiece(targetID)
	g.log.Debug("captured", zap.String("by", p.ID), zap.String("piece", targetID))
	return g.commit(pl, p, sq, targetID)
}

func (g *Game) move(pl *Player, sq chess.Square) bool {
	p, _ := g.board.Piece(pl.SelectedID)
	if !g.rules.LegalMoves(g.board, p).Has(sq) {
		return false
	}
	return g.commit(pl, p, sq, "")
}

// commit relocates a piece to a legal destination and applies castling and
// promotion side effects.
func (g *Game) commit(pl *Player, p *chess.Piece, dest chess.Square, captured string) bool {
	from := p.Square
	castling := p.IsKing() && p.CastleMoves.Has(dest)
	if err := g.board.Relocate(p.ID, dest); err != nil {
		g.log.Error("relocate failed", zap.String("piece", p.ID), zap.Error(err))
		return false
	}
	p.HasMoved = true
	p.Invalidate()

	rec := MoveRecord{
		Ply:      len(g.history) + 1,
		PieceID:  p.ID,
		Kind:     p.Kind.String(),
		Colour:   p.Colour.String(),
		From:     from,
		To:       dest,
		Captured: captured,
	}

	if castling {
		res, err := g.rules.ExecuteCastle(g.board, p, from)
		if err != nil {
			g.log.Error("castle failed", zap.String("king", p.ID), zap.Error(err))
		} else {
			rec.CastleRook = res.RookID
		}
	}

	if engine.NeedsPromotion(g.board, p) {
		queen, err := g.rules.Promote(g.board, p)
		if err != nil {
			g.log.Error("promotion failed", zap.String("pawn", p.ID), zap.Error(err))
		} else {
			pl.removePiece(p.ID)
			pl.Pieces = append(pl.Pieces, queen.ID)
			rec.Promoted = queen.ID
		}
	}

	g.history = append(g.history, rec)
	pl.clearSelection()
	pl.TurnComplete = true
	g.highlight = nil
	g.log.Debug("moved",
		zap.String("piece", p.ID),
		zap.Stringer("from", from),
		zap.Stringer("to", dest))
	return true
}

// History returns the completed moves in order.
func (g *Game) History() []MoveRecord {
	out := make([]MoveRecord, len(g.history))
	copy(out, g.history)
	return out
}
