// main.go
//
// Word hunt command line. One binary, mode picked by flags:
//
//	wordhunt -board "cat ats tss"   solve a given board
//	wordhunt -seed 42               generate the board for a seed, then solve
//	wordhunt -daily                 solve today's shared board
//	wordhunt -fill 100              stock the board bank with accepted boards
//	wordhunt                        hunt for one acceptable board and report it
//
// Dictionary resolution: -dict flag, then WORDS_FILE, then the embedded
// fallback list. Results go to stdout; logs go through zerolog.
package main

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"math/big"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordhunt/assets"
	"github.com/robalobadob/wordhunt/internal/bank"
	"github.com/robalobadob/wordhunt/internal/board"
	"github.com/robalobadob/wordhunt/internal/daily"
	"github.com/robalobadob/wordhunt/internal/game"
	"github.com/robalobadob/wordhunt/internal/solver"
	"github.com/robalobadob/wordhunt/internal/words"
	"os"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var (
		dictPath  = flag.String("dict", "", "word list file, one word per line")
		boardText = flag.String("board", "", "solve this board instead of generating one")
		seed      = flag.Int64("seed", 0, "generate the board for this seed and solve it")
		dailyMode = flag.Bool("daily", false, "solve today's shared board")
		fillCount = flag.Int("fill", 0, "generate this many accepted boards into the bank")
		dbPath    = flag.String("db", getEnv("BANK_DB", "./data/bank.db"), "board bank database")
		minScore  = flag.Int("min-score", getEnvInt("MIN_SCORE", game.DefaultMinScore), "board acceptance threshold")
		parallel  = flag.Bool("parallel", false, "solve with one worker per start cell")
	)
	flag.Parse()

	// -seed 0 is a valid seed, so mode selection needs presence, not value.
	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	dict := loadDictionary(*dictPath)
	s := solver.New(dict, solver.DefaultConfig())

	switch {
	case *boardText != "":
		b, err := board.Parse(*boardText)
		if err != nil {
			log.Fatal().Err(err).Msg("bad board")
		}
		solveAndPrint(s, b, *parallel)

	case seedSet:
		solveAndPrint(s, board.Generate(*seed), *parallel)

	case *dailyMode:
		now := time.Now()
		dseed := daily.Seed(now, getEnv("DAILY_SALT", "wordhunt"))
		log.Info().Str("date", daily.DateKey(now)).Int64("seed", dseed).Msg("daily board")
		solveAndPrint(s, board.Generate(dseed), *parallel)

	case *fillCount > 0:
		if err := fillBank(dict, *dbPath, *fillCount, *minScore); err != nil {
			log.Fatal().Err(err).Msg("bank fill failed")
		}

	default:
		huntOnce(dict, *minScore)
	}
}

// solveAndPrint runs one search and writes the outcome to stdout.
func solveAndPrint(s *solver.Solver, b board.Board, parallel bool) {
	started := time.Now()
	var (
		res solver.Result
		err error
	)
	if parallel {
		res, err = s.SolveParallel(b)
	} else {
		res, err = s.Solve(b)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("solve failed")
	}
	log.Debug().Dur("took", time.Since(started)).Msg("solved")

	for _, row := range b.Rows() {
		fmt.Println(row)
	}
	fmt.Printf("\n%d words, %d points\n", len(res.Words), res.Score)
	for _, w := range res.Words {
		fmt.Println(w)
	}
}

// huntOnce runs the generate/solve/accept loop once and reports the board.
func huntOnce(dict *words.Dictionary, minScore int) {
	cfg := game.DefaultConfig()
	cfg.MinScore = minScore
	g, err := game.New("local", dict, cfg)
	if err != nil {
		log.Fatal().Err(err).Int("min_score", minScore).
			Msg("no acceptable board; try a bigger word list or a lower -min-score")
	}
	for _, row := range g.Board.Rows() {
		fmt.Println(row)
	}
	fmt.Printf("\nseed %d: %d words, %d points\n", g.Seed, len(g.Words), g.MaxScore)
}

// fillBank tops the bank up with count boards that clear minScore.
func fillBank(dict *words.Dictionary, dbPath string, count, minScore int) error {
	db, err := openDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		return err
	}

	st := bank.NewStore(db)
	ctx := context.Background()
	stored, err := st.Count(ctx)
	if err != nil {
		return err
	}

	workers := runtime.NumCPU()
	if workers > count {
		workers = count
	}
	log.Info().Int("target", count).Int("workers", workers).Int("stored", stored).
		Msg("filling board bank")

	var added int64
	g, workCtx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			s := solver.New(dict, solver.DefaultConfig())
			for atomic.LoadInt64(&added) < int64(count) {
				if err := workCtx.Err(); err != nil {
					return err
				}
				seed := randomSeed()
				b := board.Generate(seed)
				res, err := s.Solve(b)
				if err != nil {
					return err
				}
				if res.Score <= minScore {
					continue
				}
				if err := st.Insert(workCtx, bank.Entry{
					Seed:      seed,
					Board:     b.String(),
					WordCount: len(res.Words),
					MaxScore:  res.Score,
				}); err != nil {
					return err
				}
				n := atomic.AddInt64(&added, 1)
				log.Info().Int64("seed", seed).Int("score", res.Score).
					Int64("accepted", n).Msg("board banked")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total, err := st.Count(ctx)
	if err != nil {
		return err
	}
	log.Info().Int("stored", total).Msg("board bank filled")
	return nil
}

// loadDictionary resolves the word list: -dict flag, then WORDS_FILE, then
// the embedded fallback. Loading failures are fatal.
func loadDictionary(path string) *words.Dictionary {
	if path == "" {
		path = os.Getenv("WORDS_FILE")
	}
	if path != "" {
		d, err := words.Load(path)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load word list")
		}
		log.Info().Str("file", path).Int("words", d.Len()).Msg("dictionary loaded")
		return d
	}

	list, err := assets.WordList()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read embedded word list")
	}
	d, err := words.FromList(list)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().Int("words", d.Len()).Msg("dictionary loaded (embedded fallback)")
	return d
}

// randomSeed draws a non-negative seed from crypto/rand.
func randomSeed() int64 {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(1<<62))
	return nBig.Int64()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" { return v }
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
