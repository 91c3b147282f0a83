// /home/krylon/go/src/github.com/blicero/minimaws/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-25 20:41:07 krylon>

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/blicero/minimaws/common"
	"github.com/blicero/minimaws/common/path"
	"github.com/blicero/minimaws/database"
	"github.com/blicero/minimaws/ingest"
	"github.com/blicero/minimaws/verbs"
	"github.com/blicero/minimaws/web"
	"github.com/hashicorp/logutils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   common.AppName,
	Short: "Browse and query the machine catalog of an emulator",
	Version: fmt.Sprintf("%s built on %s",
		common.Version,
		common.BuildStamp.Format(common.TimestampFormat)),
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error

		if err = viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
			return err
		} else if err = viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		if basedir := viper.GetString("basedir"); basedir != common.BaseDir() {
			if err = common.SetBaseDir(basedir); err != nil {
				return err
			}
		} else if err = common.InitApp(); err != nil {
			return err
		}

		var level = logutils.LogLevel(viper.GetString("loglevel"))
		for dom := range common.PackageLevels {
			common.PackageLevels[dom] = level
		}

		return nil
	},
	SilenceUsage: true,
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Rebuild the database from the emulator's catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var (
			err        error
			db         *database.Database
			loader     *ingest.Loader
			exe, _     = cmd.Flags().GetString("executable")
			file, _    = cmd.Flags().GetString("file")
			swpaths, _ = cmd.Flags().GetStringArray("softwarepath")
		)

		if db, err = database.Open(common.Path(path.Database)); err != nil {
			return err
		}

		defer db.Close() // nolint: errcheck

		if loader, err = ingest.New(db); err != nil {
			return err
		}

		return loader.Load(exe, file, swpaths)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web interface",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		var (
			err  error
			srv  *web.Server
			addr = fmt.Sprintf("%s:%d",
				viper.GetString("host"),
				viper.GetInt("port"))
		)

		if srv, err = web.Create(addr); err != nil {
			return err
		}

		go srv.ListenAndServe()

		var sigq = make(chan os.Signal, 2)
		signal.Notify(sigq, os.Interrupt, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM)

		var sig = <-sigq
		fmt.Fprintf(
			os.Stderr,
			"Received signal %s, quitting.\n",
			sig)

		return srv.Close()
	},
}

// withRunner opens the database read-only and hands a query Runner to fn.
func withRunner(fn func(r *verbs.Runner) error) error {
	var (
		err error
		db  *database.Database
		r   *verbs.Runner
	)

	if db, err = database.OpenRead(common.Path(path.Database)); err != nil {
		return err
	}

	defer db.Close() // nolint: errcheck

	if r, err = verbs.New(db); err != nil {
		return err
	}

	return fn(r)
} // func withRunner(fn func(r *verbs.Runner) error) error

// optPattern returns the single optional glob argument, or "" to match
// everything.
func optPattern(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
} // func optPattern(args []string) string

var listFullCmd = &cobra.Command{
	Use:   "listfull [pattern]",
	Short: "List machines matching a glob pattern with their descriptions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withRunner(func(r *verbs.Runner) error {
			return r.ListFull(optPattern(args))
		})
	},
}

var listSourceCmd = &cobra.Command{
	Use:   "listsource [pattern]",
	Short: "List machines matching a glob pattern with their source files",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withRunner(func(r *verbs.Runner) error {
			return r.ListSource(optPattern(args))
		})
	},
}

var listClonesCmd = &cobra.Command{
	Use:   "listclones [pattern]",
	Short: "List clones among the machines matching a glob pattern",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withRunner(func(r *verbs.Runner) error {
			return r.ListClones(optPattern(args))
		})
	},
}

var listBrothersCmd = &cobra.Command{
	Use:   "listbrothers [pattern]",
	Short: "List machines sharing a source file with a matching machine",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withRunner(func(r *verbs.Runner) error {
			return r.ListBrothers(optPattern(args))
		})
	},
}

var listAffectedCmd = &cobra.Command{
	Use:   "listaffected pattern...",
	Short: "List machines built from the given source files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withRunner(func(r *verbs.Runner) error {
			return r.ListAffected(args...)
		})
	},
}

var romIdentCmd = &cobra.Command{
	Use:   "romident path...",
	Short: "Identify ROM dumps by their digests",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withRunner(func(r *verbs.Runner) error {
			return r.RomIdent(args...)
		})
	},
}

func init() {
	rootCmd.PersistentFlags().String("basedir", common.BaseDir(),
		"Path for application-specific files")
	rootCmd.PersistentFlags().String("database", viper.GetString("database"),
		"Path of the catalog database; bare names live in the base directory")
	rootCmd.PersistentFlags().String("loglevel", viper.GetString("loglevel"),
		"Minimum level for log messages to be logged")

	loadCmd.Flags().String("executable", "", "Emulator binary to run with -listxml")
	loadCmd.Flags().String("file", "", "Previously captured catalog file")
	loadCmd.Flags().StringArray("softwarepath", nil, "Directory to scan for software list files (repeatable)")

	serveCmd.Flags().String("host", viper.GetString("host"), "Address for the web server to listen on")
	serveCmd.Flags().Int("port", viper.GetInt("port"), "Port for the web server to listen on")

	rootCmd.AddCommand(
		loadCmd,
		serveCmd,
		listFullCmd,
		listSourceCmd,
		listClonesCmd,
		listBrothersCmd,
		listAffectedCmd,
		romIdentCmd,
	)
} // func init()

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
} // func main()
