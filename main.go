package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/crossfill/config"
	"github.com/domino14/crossfill/filler"
	"github.com/domino14/crossfill/lexicon"
)

var errAttemptFailed = errors.New("fill attempt failed")

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "try (or an empty line) - run one fill attempt on a fresh grid\n")
	io.WriteString(w, "auto - keep attempting until solved or max-attempts runs out\n")
	io.WriteString(w, "show - print the grid of the last attempt\n")
	io.WriteString(w, "check - validate a solved grid against the word list\n")
	io.WriteString(w, "exit - quit\n")
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

type session struct {
	cfg      *config.Config
	lex      *lexicon.Lexicon
	gridText string
	rng      filler.Randomizer
	puzzle   *filler.Puzzle
	solved   bool
}

// attempt builds a fresh puzzle and runs one fill attempt over it. Old
// attempts are discarded whole; nothing carries over but the randomizer.
func (s *session) attempt() error {
	puz, err := filler.NewPuzzle(s.gridText, s.lex, s.rng)
	if err != nil {
		return err
	}
	puz.SetMaxSteps(s.cfg.MaxSteps)
	s.puzzle = puz
	s.solved = puz.Solve(s.cfg.RefreshRate)
	if !s.solved {
		log.Info().Int("steps", puz.Steps()).Msg("attempt failed, try again")
		return errAttemptFailed
	}
	log.Info().Int("steps", puz.Steps()).Msg("solved")
	fmt.Println(puz.Render())
	return nil
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	lex, err := lexicon.LoadLexicon(cfg.WordListPath)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	gridText, err := os.ReadFile(cfg.PuzzlePath)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	log.Info().Str("lexicon", lex.Name()).Int("words", lex.WordCount()).
		Msg("loaded word list")

	sess := &session{
		cfg:      cfg,
		lex:      lex,
		gridText: string(gridText),
		rng:      filler.NewRandomizer(cfg.RandomSeed),
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:      "\033[31mcrossfill>\033[0m ",
		HistoryFile: "/tmp/crossfill_readline.tmp",
		EOFPrompt:   "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "bye" || line == "exit":
			return
		case line == "help":
			usage(l.Stderr())
		case line == "" || line == "try":
			if err := sess.attempt(); err != nil && err != errAttemptFailed {
				log.Err(err).Msg("")
			}
		case line == "auto":
			err := retry.Do(sess.attempt,
				retry.Attempts(uint(sess.cfg.MaxAttempts)),
				retry.Delay(0),
				retry.LastErrorOnly(true),
			)
			if err != nil {
				log.Err(err).Msg("out of attempts")
			}
		case line == "show":
			if sess.puzzle == nil {
				showMessage("no attempt yet", l.Stderr())
				continue
			}
			fmt.Println(sess.puzzle.Render())
		case line == "check":
			if sess.puzzle == nil || !sess.solved {
				showMessage("nothing solved yet", l.Stderr())
				continue
			}
			if bad := sess.puzzle.Check(); len(bad) > 0 {
				showMessage("words not in the list: "+strings.Join(bad, " "), l.Stderr())
			} else {
				showMessage("all words check out", l.Stderr())
			}
		default:
			log.Debug().Msgf("you said: %v", strconv.Quote(line))
		}
	}
}
