// Package uci implements the Universal Chess Interface protocol loop on
// top of a search.Engine. None of the search or evaluation logic lives
// here — this package only translates UCI text commands into Engine
// calls and Engine results back into UCI text.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/persist"
	"github.com/corvidchess/corvid/internal/search"
)

// EngineName and EngineAuthor answer the "uci" handshake.
const (
	EngineName   = "Corvid"
	EngineAuthor = "Corvid Contributors"
)

const (
	defaultHashMiB = 64
	minHashMiB     = 1
	maxHashMiB     = 4096
)

// UCI drives the read-eval-print loop against stdin/stdout.
type UCI struct {
	engine   *search.Engine
	position *board.Position

	// positionHashes records every position played so far in the current
	// game, oldest first, current position last — fed to the engine for
	// in-search repetition detection.
	positionHashes []uint64

	hashMiB int
	store   *persist.Store

	searching  bool
	searchDone chan struct{}
}

// persistWarmUpMinDepth is the shallowest cached entry worth restoring on
// startup (see persist.Store.WarmUp).
const persistWarmUpMinDepth = 6

// New creates a UCI handler wrapping eng.
func New(eng *search.Engine) *UCI {
	pos := board.NewPosition()
	return &UCI{
		engine:         eng,
		position:       pos,
		positionHashes: []uint64{pos.Hash},
		hashMiB:        defaultHashMiB,
	}
}

// Run reads commands from stdin until "quit" or EOF.
func (u *UCI) Run() {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			if len(args) > 0 && args[0] == "bench" {
				u.handleBench()
				continue
			}
			u.handleGo(args)
		case "stop":
			u.handleStop()
		case "quit":
			u.handleStop()
			if u.store != nil {
				u.store.Close()
			}
			return
		case "setoption":
			u.handleSetOption(args)
		case "d":
			fmt.Println(u.position.String())
		}
	}
}

func (u *UCI) handleUCI() {
	fmt.Printf("id name %s\n", EngineName)
	fmt.Printf("id author %s\n", EngineAuthor)
	fmt.Println()
	fmt.Printf("option name Hash type spin default %d min %d max %d\n", defaultHashMiB, minHashMiB, maxHashMiB)
	fmt.Println("option name PersistPath type string default <empty>")
	fmt.Println("uciok")
}

func (u *UCI) handleNewGame() {
	u.engine.NewGame()
	u.position = board.NewPosition()
	u.positionHashes = []uint64{u.position.Hash}
}

// handlePosition parses "position [startpos|fen <fen>] [moves ...]".
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var moveStart int
	switch args[0] {
	case "startpos":
		u.position = board.NewPosition()
		moveStart = 1
	case "fen":
		fenEnd := len(args)
		for i := 1; i < len(args); i++ {
			if args[i] == "moves" {
				fenEnd = i
				break
			}
		}
		pos, err := board.ParseFEN(strings.Join(args[1:fenEnd], " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string invalid fen: %v\n", err)
			return
		}
		u.position = pos
		moveStart = fenEnd
	default:
		return
	}

	for i := moveStart; i < len(args); i++ {
		if args[i] == "moves" {
			moveStart = i + 1
			break
		}
	}

	u.positionHashes = []uint64{u.position.Hash}
	for _, moveStr := range args[moveStart:] {
		mv := u.parseMove(moveStr)
		if mv == board.NoMove {
			fmt.Fprintf(os.Stderr, "info string invalid move: %s\n", moveStr)
			return
		}
		u.position.MakeMove(mv)
		u.position.UpdateCheckers()
		u.positionHashes = append(u.positionHashes, u.position.Hash)
	}
}

// parseMove translates long algebraic notation ("e2e4", "e7e8q") into a
// board.Move by matching it against the current position's legal moves.
// Castling ("e1g1") matches directly since the board package represents
// castling as an ordinary king move with a castling flag, not as
// "king-takes-rook" — there is no further translation for this engine to
// perform at the UCI boundary.
func (u *UCI) parseMove(s string) board.Move {
	if len(s) < 4 {
		return board.NoMove
	}
	from, err1 := board.ParseSquare(s[0:2])
	to, err2 := board.ParseSquare(s[2:4])
	if err1 != nil || err2 != nil {
		return board.NoMove
	}

	var promo board.PieceType
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = board.Queen
		case 'r':
			promo = board.Rook
		case 'b':
			promo = board.Bishop
		case 'n':
			promo = board.Knight
		}
	}

	for _, mv := range u.position.LegalMoves() {
		if mv.From() != from || mv.To() != to {
			continue
		}
		if promo != 0 {
			if mv.IsPromotion() && mv.Promotion() == promo {
				return mv
			}
			continue
		}
		if !mv.IsPromotion() {
			return mv
		}
	}
	return board.NoMove
}

// goOptions holds parsed "go" arguments before conversion to search.Limits.
type goOptions struct {
	Depth     int
	Nodes     uint64
	MoveTime  time.Duration
	Infinite  bool
	WTime     time.Duration
	BTime     time.Duration
	WInc      time.Duration
	BInc      time.Duration
	MovesToGo int
}

func parseGoOptions(args []string) goOptions {
	var o goOptions
	atoi := func(s string) int { n, _ := strconv.Atoi(s); return n }
	ms := func(s string) time.Duration { return time.Duration(atoi(s)) * time.Millisecond }

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				o.Depth = atoi(args[i+1])
				i++
			}
		case "nodes":
			if i+1 < len(args) {
				n, _ := strconv.ParseUint(args[i+1], 10, 64)
				o.Nodes = n
				i++
			}
		case "movetime":
			if i+1 < len(args) {
				o.MoveTime = ms(args[i+1])
				i++
			}
		case "infinite":
			o.Infinite = true
		case "wtime":
			if i+1 < len(args) {
				o.WTime = ms(args[i+1])
				i++
			}
		case "btime":
			if i+1 < len(args) {
				o.BTime = ms(args[i+1])
				i++
			}
		case "winc":
			if i+1 < len(args) {
				o.WInc = ms(args[i+1])
				i++
			}
		case "binc":
			if i+1 < len(args) {
				o.BInc = ms(args[i+1])
				i++
			}
		case "movestogo":
			if i+1 < len(args) {
				o.MovesToGo = atoi(args[i+1])
				i++
			}
		}
	}
	return o
}

func (o goOptions) toLimits() search.Limits {
	return search.Limits{
		Depth:     o.Depth,
		Nodes:     o.Nodes,
		MoveTime:  o.MoveTime,
		Infinite:  o.Infinite,
		WhiteTime: o.WTime,
		BlackTime: o.BTime,
		WhiteInc:  o.WInc,
		BlackInc:  o.BInc,
		MovesToGo: o.MovesToGo,
	}
}

func (u *UCI) handleGo(args []string) {
	limits := parseGoOptions(args).toLimits()
	pos := u.position.Copy()
	history := append([]uint64(nil), u.positionHashes...)

	u.searching = true
	u.searchDone = make(chan struct{})

	go func() {
		defer close(u.searchDone)

		best, _ := u.engine.Search(pos, history, limits, u.sendInfo)
		u.searching = false

		if u.store != nil {
			lineHashes := append([]uint64(nil), history...)
			walk := pos.Copy()
			lineHashes = append(lineHashes, walk.Hash)
			if best != board.NoMove {
				walk.MakeMove(best)
				lineHashes = append(lineHashes, walk.Hash)
			}
			if err := u.store.CheckpointLine(u.engine.Probe, lineHashes); err != nil {
				fmt.Fprintf(os.Stderr, "info string checkpoint failed: %v\n", err)
			}
		}

		if best == board.NoMove {
			legal := u.position.LegalMoves()
			if len(legal) > 0 {
				fmt.Printf("bestmove %s\n", legal[0].String())
			} else {
				fmt.Println("bestmove 0000")
			}
			return
		}
		fmt.Printf("bestmove %s\n", best.String())
	}()
}

func (u *UCI) sendInfo(info search.Info) {
	var parts []string
	parts = append(parts, fmt.Sprintf("depth %d", info.Depth))
	if info.SelDepth > 0 {
		parts = append(parts, fmt.Sprintf("seldepth %d", info.SelDepth))
	}

	switch {
	case info.Score >= search.MateIn:
		mateIn := (search.Mate - info.Score + 1) / 2
		parts = append(parts, fmt.Sprintf("score mate %d", mateIn))
	case info.Score <= -search.MateIn:
		mateIn := -(search.Mate + info.Score + 1) / 2
		parts = append(parts, fmt.Sprintf("score mate %d", mateIn))
	default:
		parts = append(parts, fmt.Sprintf("score cp %d", info.Score))
	}

	parts = append(parts, fmt.Sprintf("nodes %d", info.Nodes))
	parts = append(parts, fmt.Sprintf("time %d", info.Elapsed.Milliseconds()))
	if info.Elapsed > 0 {
		nps := uint64(float64(info.Nodes) / info.Elapsed.Seconds())
		parts = append(parts, fmt.Sprintf("nps %d", nps))
	}
	parts = append(parts, fmt.Sprintf("hashfull %d", info.HashFull))

	if len(info.PV) > 0 {
		pvStrs := make([]string, len(info.PV))
		for i, mv := range info.PV {
			pvStrs[i] = mv.String()
		}
		parts = append(parts, "pv "+strings.Join(pvStrs, " "))
	}

	fmt.Printf("info %s\n", strings.Join(parts, " "))
}

func (u *UCI) handleStop() {
	if u.searching {
		u.engine.StopSearch()
		<-u.searchDone
	}
}

func (u *UCI) handleSetOption(args []string) {
	var name, value string
	readingName, readingValue := false, false

	for _, a := range args {
		switch a {
		case "name":
			readingName, readingValue = true, false
		case "value":
			readingName, readingValue = false, true
		default:
			switch {
			case readingName:
				if name != "" {
					name += " "
				}
				name += a
			case readingValue:
				if value != "" {
					value += " "
				}
				value += a
			}
		}
	}

	switch strings.ToLower(name) {
	case "hash":
		mib, err := strconv.Atoi(value)
		if err != nil {
			return
		}
		if mib < minHashMiB {
			mib = minHashMiB
		}
		if mib > maxHashMiB {
			mib = maxHashMiB
		}
		u.hashMiB = mib
		u.engine.Resize(mib)
	case "persistpath":
		if value == "" {
			return
		}
		store, err := persist.Open(value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string failed to open persist path %s: %v\n", value, err)
			return
		}
		if u.store != nil {
			u.store.Close()
		}
		u.store = store
		if err := u.store.WarmUp(u.engine.Table(), persistWarmUpMinDepth); err != nil {
			fmt.Fprintf(os.Stderr, "info string warm-up from %s failed: %v\n", value, err)
		}
	}
}

// handleBench runs a short fixed-depth search over a small built-in suite
// of positions and reports aggregate nodes/time/nps, mirroring the
// "go bench" entry point of the Rust original this engine's search was
// distilled from.
func (u *UCI) handleBench() {
	const benchDepth = 10
	positions := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	var totalNodes uint64
	start := time.Now()

	for _, fen := range positions {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			continue
		}
		limits := search.Limits{Depth: benchDepth}
		var lastNodes uint64
		u.engine.Search(pos, []uint64{pos.Hash}, limits, func(info search.Info) {
			lastNodes = info.Nodes
		})
		totalNodes += lastNodes
	}

	elapsed := time.Since(start)
	fmt.Printf("Nodes: %d\n", totalNodes)
	fmt.Printf("Time: %v\n", elapsed)
	if elapsed > 0 {
		fmt.Printf("NPS: %.0f\n", float64(totalNodes)/elapsed.Seconds())
	}
}
