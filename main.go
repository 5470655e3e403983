// /home/krylon/go/src/github.com/blicero/movierental/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 23:05:52 krylon>

package main

import (
	"fmt"
	"os"

	"github.com/blicero/movierental/common"
	"github.com/blicero/movierental/database"
	"github.com/blicero/movierental/objects"
	"github.com/blicero/movierental/shell"
	"github.com/blicero/movierental/tree"
	"github.com/spf13/cobra"
)

var (
	baseDir string
	debug   bool
	workers int
)

func main() {
	var root = &cobra.Command{
		Use:     "movierental",
		Short:   "Keep track of the movies we rent out",
		Version: common.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if baseDir != "" {
				if err := common.SetBaseDir(baseDir); err != nil {
					return err
				}
			}

			if err := common.InitApp(); err != nil {
				return fmt.Errorf("Cannot initialize application environment: %w", err)
			}

			if debug {
				common.Debug = true
			}

			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&baseDir, "basedir", "", "Directory for the log file and settings")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Log more verbosely")

	var shellCmd = &cobra.Command{
		Use:   "shell",
		Short: "Manage the catalog interactively",
		Args:  cobra.NoArgs,
		RunE:  runShell,
	}

	var importCmd = &cobra.Command{
		Use:   "import DIR...",
		Short: "Scan directories for video files and list the movies found",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runImport,
	}

	importCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of folders to scan in parallel (0 = number of CPUs)")

	root.AddCommand(shellCmd, importCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
} // func main()

func runShell(cmd *cobra.Command, args []string) error {
	var (
		err error
		db  *database.Database
		sh  *shell.Shell
		reg = objects.NewRegistry()
	)

	if db, err = database.Open(common.DbPath); err != nil {
		return fmt.Errorf("Cannot open database %s: %w", common.DbPath, err)
	}

	defer db.Close() // nolint: errcheck

	if sh, err = shell.New(reg, db, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("Cannot create shell: %w", err)
	}

	sh.Prompt = "movierental> "
	return sh.Run(cmd.InOrStdin())
} // func runShell(cmd *cobra.Command, args []string) error

func runImport(cmd *cobra.Command, args []string) error {
	var (
		err     error
		scanner *tree.Scanner
		reg     = objects.NewRegistry()
	)

	if scanner, err = tree.NewScanner(reg, workers); err != nil {
		return fmt.Errorf("Cannot create Scanner: %w", err)
	}

	for _, m := range scanner.Scan(args...) {
		fmt.Fprintln(cmd.OutOrStdout(), m)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d movies\n", reg.Count())
	return nil
} // func runImport(cmd *cobra.Command, args []string) error
