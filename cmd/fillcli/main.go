package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"crossfilled.com/fill"
	"crossfilled.com/fill/internal/loader"
)

func main() {
	structureFile := flag.String("structure", "", "The file describing the grid structure")
	wordsFile := flag.String("words", "", "The file to load words from")
	output := flag.String("output", "", "Optional PNG file to save the solved grid to")
	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the solver")
	parallel := flag.Int("parallel", 1, "Number of workers for the first branching level")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *structureFile == "" || *wordsFile == "" {
		log.Fatal().Msg("both -structure and -words are required")
	}

	slots, err := loader.StructureFile(*structureFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", *structureFile).Msg("loading structure")
	}

	words, err := loadWordsWithProgress(*wordsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", *wordsFile).Msg("loading words")
	}
	log.Info().Int("slots", len(slots)).Int("words", len(words)).Msg("puzzle loaded")

	puzzle, err := fill.NewPuzzle(slots)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid puzzle structure")
	}

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating profile file")
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating memory profile file")
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("starting CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	solver := fill.NewSolver(puzzle, words)
	start := time.Now()

	var assignment fill.Assignment
	var solved bool
	if *parallel > 1 {
		assignment, solved = solver.SolveParallel(ctx, *parallel)
	} else {
		assignment, solved = solver.Solve(ctx)
	}

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}

	if !solved {
		if ctx.Err() != nil {
			log.Error().Dur("after", time.Since(start)).Msg("gave up: timeout reached")
			os.Exit(1)
		}
		fmt.Println("No solution.")
		return
	}

	log.Info().Dur("took", time.Since(start)).Msg("solved")
	fmt.Println(fill.RenderGrid(puzzle, assignment).Repr())

	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal().Err(err).Str("file", *output).Msg("creating output image")
		}
		defer f.Close()
		if err := fill.RenderGrid(puzzle, assignment).WritePNG(f); err != nil {
			log.Fatal().Err(err).Msg("writing output image")
		}
		log.Info().Str("file", *output).Msg("image saved")
	}
}

func loadWordsWithProgress(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}

	bar := progressbar.DefaultBytes(st.Size(), "loading words")
	defer bar.Finish()
	return loader.Words(io.TeeReader(f, bar))
}
