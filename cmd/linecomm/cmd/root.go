// Copyright © 2018 One Concern

package cmd

import (
	"log"
	"os"

	"github.com/oneconcern/linecomm/pkg/dlogger"
	"github.com/oneconcern/linecomm/pkg/engine"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// inputFs is the file system inputs are read from (patched over during test)
var inputFs = afero.NewOsFs()

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "linecomm [flags] FILE1 FILE2",
	Short: "Compare two sorted files line by line",
	Long: `Compare sorted files FILE1 and FILE2 line by line.

With no options, produce three-column output. Column one contains lines unique to FILE1,
column two contains lines unique to FILE2, and column three contains lines common to both files.

Each column is offset by one delimiter for every visible column before it.

When FILE1 or FILE2 (but not both) is -, read the standard input.

Inputs must be sorted: unsorted inputs are not detected and yield a meaningless classification.

Defaults for the output delimiter, format, color, buffer size and log level may be set in a
linecomm.yaml config file (in ., $HOME/.linecomm or /etc/linecomm, or the file named by
$LINECOMM_CONFIG) or with LINECOMM_* environment variables.
`,
	Example: `  linecomm sorted1.txt sorted2.txt
  linecomm -12 sorted1.txt sorted2.txt          # lines in both files only
  sort users.txt | linecomm -3 - known.txt      # lines only in either input
  linecomm -i --total -d ',' old.txt new.txt`,
	Args: func(cmd *cobra.Command, args []string) error {
		if linecommFlags.root.printConfig {
			return cobra.MaximumNArgs(2)(cmd, args)
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		config, configFile, err := newConfig(cmd)
		if err != nil {
			wrapFatalln("failed to load configuration", err)
			return
		}

		if linecommFlags.root.printConfig {
			o, e := yaml.Marshal(config)
			if e != nil {
				wrapFatalln("serialize config to yaml", e)
				return
			}
			_, _ = cmd.OutOrStdout().Write(o)
			return
		}

		logger, err := dlogger.GetLogger(config.LogLevel)
		if err != nil {
			wrapFatalln("failed to set up logger", err)
			return
		}
		defer func() { _ = logger.Sync() }()
		if configFile != "" {
			logger.Debug("using config file", zap.String("config", configFile))
		}

		out := cmd.OutOrStdout()
		var (
			fd     uintptr
			isFile bool
		)
		if f, ok := out.(*os.File); ok {
			fd, isFile = f.Fd(), true
		}

		runConfig, err := config.engineConfig(&linecommFlags, args, fd, isFile)
		if err != nil {
			syncFatalln(logger, "invalid flags", err)
			return
		}

		_, err = engine.Run(runConfig, out,
			engine.WithFs(inputFs),
			engine.WithStdin(cmd.InOrStdin()),
			engine.WithLogger(logger),
		)
		if engine.IsBrokenPipe(err) {
			logger.Debug("output closed early", zap.Error(err))
			return
		}
		if err != nil {
			syncFatalln(logger, "comparison failed", err)
			return
		}
	},
}

// Execute the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// cobra already reported the error
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("linecomm: ")

	info := NewVersionInfo()
	rootCmd.Version = info.Version
	rootCmd.SetVersionTemplate(info.String())

	addColumnFlags(rootCmd)
	addInsensitiveFlag(rootCmd)
	addNormalizeFlag(rootCmd)
	addDelimiterFlag(rootCmd)
	addZeroTerminatedFlag(rootCmd)
	addTotalFlag(rootCmd)
	addFormatFlag(rootCmd)
	addColorFlag(rootCmd)
	addBufferSizeFlag(rootCmd)
	addPrintConfigFlag(rootCmd)
	addLogLevel(rootCmd)

	rootCmd.Flags().SortFlags = false
}
