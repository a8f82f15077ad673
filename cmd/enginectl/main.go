// Command enginectl is a UCI-subset line dispatcher over the engine core.
// It knows only uci, isready, ucinewgame, position, go, movereport and
// quit; anything else is echoed back as an "info string" and ignored,
// matching the reference implementation's tolerant command loop.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chesscore/engine"
	"chesscore/position"
)

func main() {
	depthFlag := flag.Int("depth", engine.MaxDepth, "search depth in plies")
	qsDepthFlag := flag.Int("qsdepth", engine.DefaultQSDepth, "quiescence extension in plies")
	moveTimeFlag := flag.Int("movetime", engine.DefaultAllowedTimeMs, "soft search time budget in milliseconds")
	debugFlag := flag.Bool("debug", false, "log board state after every applied move")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *debugFlag {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
	log.Logger = logger

	dispatchLoop(*depthFlag, *qsDepthFlag, *moveTimeFlag)
}

func dispatchLoop(depth, qsDepth, moveTimeMs int) {
	eng := engine.NewEngine()
	board := eng.SetStartingPosition()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name chesscore")
			fmt.Println("id author student")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			eng = engine.NewEngine()
			board = eng.SetStartingPosition()
		case "position":
			board = handlePosition(eng, tokens, log.Logger)
		case "go":
			d, qs, ms := parseGoTokens(tokens, depth, qsDepth, moveTimeMs)
			best := eng.FindBestMove(board, int8(d), int8(qs), ms)
			log.Info().Int("depth", d).Int("qsdepth", qs).Str("bestmove", best).Msg("search complete")
			fmt.Println("bestmove", best)
		case "movereport":
			printMoveReport(eng, board)
		case "quit":
			return
		default:
			fmt.Println("info string unknown command", tokens[0])
		}
	}
}

func handlePosition(eng *engine.Engine, tokens []string, logger zerolog.Logger) position.BoardState {
	board := eng.SetStartingPosition()
	idx := 1
	if idx < len(tokens) && tokens[idx] != "startpos" {
		fmt.Println("info string only startpos is supported")
		return board
	}
	idx++
	if idx < len(tokens) && tokens[idx] == "moves" {
		for _, mv := range tokens[idx+1:] {
			board = eng.ApplyMove(board, mv)
			logger.Debug().Str("move", mv).Str("board", "\n"+eng.RenderBoard(board)).Msg("applied move")
		}
	}
	return board
}

func parseGoTokens(tokens []string, defaultDepth, defaultQSDepth, defaultMoveTimeMs int) (depth, qsDepth, moveTimeMs int) {
	depth, qsDepth, moveTimeMs = defaultDepth, defaultQSDepth, defaultMoveTimeMs
	for i := 1; i < len(tokens); i++ {
		switch strings.ToLower(tokens[i]) {
		case "depth":
			if i+1 < len(tokens) {
				if v, err := strconv.Atoi(tokens[i+1]); err == nil {
					depth = v
				}
				i++
			}
		case "qsdepth":
			if i+1 < len(tokens) {
				if v, err := strconv.Atoi(tokens[i+1]); err == nil {
					qsDepth = v
				}
				i++
			}
		case "movetime":
			if i+1 < len(tokens) {
				if v, err := strconv.Atoi(tokens[i+1]); err == nil {
					moveTimeMs = v
				}
				i++
			}
		}
	}
	return
}

func printMoveReport(eng *engine.Engine, board position.BoardState) {
	for _, entry := range eng.MoveReport(board) {
		if !entry.HasChild {
			fmt.Printf("%-6s (unsearched)\n", entry.Move)
			continue
		}
		fmt.Printf("%-6s status=%-12v score=%-6d depth=%-3d moves=%-3d best=%s\n",
			entry.Move, entry.Status, entry.Score, entry.EvalDepth, entry.MoveCount, entry.BestReply)
	}
}
