// Command otbench replays JSON-Lines fixture scenarios against the ot
// package and reports pass/fail for each suite.
//
// Usage:
//
//	otbench -fixtures ./testdata/fixtures -suite all
//	otbench -fixtures ./testdata/fixtures -suite transform -v
package main

import (
	"flag"
	"os"
	"path/filepath"

	ot "github.com/otkernel/optext"
	"github.com/otkernel/optext/internal/fixture"
	"github.com/otkernel/optext/internal/obslog"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	fixturesDir := flag.String("fixtures", "./testdata/fixtures", "directory containing apply.jsonl, compose.jsonl, transform.jsonl")
	suite := flag.String("suite", "all", "suite to run: apply, compose, transform, or all")
	verbose := flag.Bool("v", false, "log every case, not just failures")
	flag.Parse()

	obslog.Init()
	defer obslog.Sync()

	runID := uuid.New().String()
	log := obslog.WithRun(runID)
	log.Info("starting run", zap.String("suite", *suite), zap.String("fixtures", *fixturesDir))

	failures := 0

	if *suite == "apply" || *suite == "all" {
		failures += runApply(log, *fixturesDir, *verbose)
	}
	if *suite == "compose" || *suite == "all" {
		failures += runCompose(log, *fixturesDir, *verbose)
	}
	if *suite == "transform" || *suite == "all" {
		failures += runTransform(log, *fixturesDir, *verbose)
	}

	if failures > 0 {
		log.Error("run finished with failures", zap.Int("failures", failures))
		os.Exit(1)
	}
	log.Info("run finished", zap.Int("failures", 0))
}

func runApply(log *zap.Logger, dir string, verbose bool) int {
	cases, err := fixture.LoadApplyFixtures(filepath.Join(dir, "apply.jsonl"))
	if err != nil {
		log.Error("loading apply fixtures", zap.Error(err))
		return 1
	}

	failures := 0
	for _, c := range cases {
		result, err := c.Op.Apply(c.Doc)
		switch {
		case c.ExpectErr != "":
			if err == nil {
				log.Error("apply case expected an error but succeeded", zap.String("case", c.Name))
				failures++
				continue
			}
		case err != nil:
			log.Error("apply case failed", zap.String("case", c.Name), zap.Error(err))
			failures++
			continue
		case result != c.Expect:
			log.Error("apply case mismatch", zap.String("case", c.Name), zap.String("got", result), zap.String("want", c.Expect))
			failures++
			continue
		}
		if verbose {
			log.Info("apply case passed", zap.String("case", c.Name))
		}
	}
	return failures
}

func runCompose(log *zap.Logger, dir string, verbose bool) int {
	cases, err := fixture.LoadComposeFixtures(filepath.Join(dir, "compose.jsonl"))
	if err != nil {
		log.Error("loading compose fixtures", zap.Error(err))
		return 1
	}

	failures := 0
	for _, c := range cases {
		result, err := c.A.Compose(c.B).Apply(c.Doc)
		if err != nil {
			log.Error("compose case failed", zap.String("case", c.Name), zap.Error(err))
			failures++
			continue
		}
		if result != c.Expect {
			log.Error("compose case mismatch", zap.String("case", c.Name), zap.String("got", result), zap.String("want", c.Expect))
			failures++
			continue
		}
		if verbose {
			log.Info("compose case passed", zap.String("case", c.Name))
		}
	}
	return failures
}

func runTransform(log *zap.Logger, dir string, verbose bool) int {
	cases, err := fixture.LoadTransformFixtures(filepath.Join(dir, "transform.jsonl"))
	if err != nil {
		log.Error("loading transform fixtures", zap.Error(err))
		return 1
	}

	failures := 0
	for _, c := range cases {
		aPrime := c.A.Transform(c.B, ot.SideLeft)
		bPrime := c.B.Transform(c.A, ot.SideRight)

		// A transform result can omit a trailing Retain, so apply it
		// sequentially onto the other side's document rather than
		// composing the two operations together.
		afterA, errA := c.A.Apply(c.Doc)
		afterB, errB := c.B.Apply(c.Doc)
		if errA != nil || errB != nil {
			log.Error("transform case base operation failed to apply", zap.String("case", c.Name), zap.Error(errA), zap.Error(errB))
			failures++
			continue
		}

		left, errL := bPrime.Apply(afterA)
		right, errR := aPrime.Apply(afterB)

		if errL != nil || errR != nil {
			log.Error("transform case failed to converge", zap.String("case", c.Name), zap.Error(errL), zap.Error(errR))
			failures++
			continue
		}
		if left != right {
			log.Error("transform case diverged", zap.String("case", c.Name),
				zap.String("via_a_then_bprime", left), zap.String("via_b_then_aprime", right))
			failures++
			continue
		}
		if verbose {
			log.Info("transform case converged", zap.String("case", c.Name), zap.String("result", left))
		}
	}
	return failures
}
