package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rookpath/gridgraph"
	"github.com/katalvlaran/rookpath/render"
	"github.com/katalvlaran/rookpath/simplepath"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	rootCmd := createRootCommand(ctx, input, version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rookpath [-d] [-s [-p]] <m> <n>",
		Short: "Find every path from (0,0) to (m,n) on a grid that visits each point at most once.",
		Long: "Find every path from (0,0) to (m,n) on the (m+1)×(n+1) grid of points that moves\n" +
			"up, down, left or right and never visits a point twice, then print how many there are.",
		Args:    gridArgs(input),
		RunE:    newRunCommand(ctx, input),
		Version: version,
	}
	input.jobs = 1
	rootCmd.Flags().BoolVarP(&input.debug, "debug", "d", false, "print debug information")
	rootCmd.Flags().BoolVarP(&input.solutions, "solutions", "s", false, "print solutions")
	rootCmd.Flags().BoolVarP(&input.paths, "paths", "p", false, "print paths with solutions")
	rootCmd.Flags().BoolVarP(&input.lengths, "lengths", "l", false, "print how many solutions have each length")
	rootCmd.Flags().IntVarP(&input.jobs, "jobs", "j", input.jobs, "workers used when only counting")
	rootCmd.Flags().Var(&input.format, "format", "path format for -p: "+strings.Join(render.Formats(), ", "))
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	return rootCmd
}

// gridArgs checks for exactly the two trailing extents and stores them.
func gridArgs(input *Input) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(2)(cmd, args); err != nil {
			return err
		}
		m, err := parseExtent("m", args[0])
		if err != nil {
			return err
		}
		n, err := parseExtent("n", args[1])
		if err != nil {
			return err
		}
		input.m, input.n = m, n

		return nil
	}
}

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		// arguments are valid from here on; errors are not usage errors
		cmd.SilenceUsage = true

		logger := newLogger(cmd.ErrOrStderr(), input.debug)
		g, err := gridgraph.NewGridGraph(input.m, input.n)
		if err != nil {
			return err
		}
		logger.WithFields(log.Fields{"m": input.m, "n": input.n, "cells": g.CellCount()}).Debug("starting search")

		out := bufio.NewWriter(cmd.OutOrStdout())
		defer out.Flush()

		opts := []simplepath.Option{
			simplepath.WithContext(ctx),
			simplepath.WithLogger(logger),
		}

		var count int
		if input.solutions || input.lengths {
			count, err = printSolutions(out, g, input, opts)
		} else {
			count, err = countSolutions(ctx, g, input.jobs, opts)
		}
		if err != nil {
			return err
		}

		if err := render.Summary(out, count); err != nil {
			return err
		}

		return errors.Wrap(out.Flush(), "flush output")
	}
}

// printSolutions streams every path through the requested printers and
// returns how many there were.
func printSolutions(w io.Writer, g *gridgraph.GridGraph, input *Input, opts []simplepath.Option) (int, error) {
	r := render.NewRenderer(g)
	hist := render.NewLengthHistogram()

	err := simplepath.Walk(g, func(p simplepath.Path) error {
		hist.Add(p)
		if !input.solutions {
			return nil
		}
		if input.paths {
			if err := render.WriteEdges(w, p, input.Format()); err != nil {
				return err
			}
		}
		if err := r.Diagram(w, p); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)

		return err
	}, opts...)
	if err != nil {
		return 0, err
	}

	if input.lengths {
		if err := hist.Write(w); err != nil {
			return 0, err
		}
	}

	return hist.Total(), nil
}

func countSolutions(ctx context.Context, g *gridgraph.GridGraph, jobs int, opts []simplepath.Option) (int, error) {
	if jobs == 1 {
		return simplepath.Count(g, opts...)
	}

	return simplepath.CountParallel(ctx, g, jobs, opts...)
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}
