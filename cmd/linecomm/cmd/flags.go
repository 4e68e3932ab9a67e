// Copyright © 2018 One Concern

package cmd

import (
	"strings"

	"github.com/oneconcern/linecomm/pkg/dlogger"
	"github.com/oneconcern/linecomm/pkg/format"
	"github.com/spf13/cobra"
)

type flagsT struct {
	columns struct {
		hideFirst  bool
		hideSecond bool
		hideBoth   bool
	}
	compare struct {
		insensitive bool
		normalize   bool
	}
	output struct {
		delimiter      string
		format         string
		color          string
		total          bool
		zeroTerminated bool
	}
	input struct {
		bufferSize string
	}
	root struct {
		logLevel    string
		printConfig bool
	}
}

var linecommFlags = flagsT{}

func addColumnFlags(cmd *cobra.Command) []string {
	cmd.Flags().BoolVarP(&linecommFlags.columns.hideFirst, "hide-first", "1", false, "Suppress printing of column 1 (lines only in FILE1)")
	cmd.Flags().BoolVarP(&linecommFlags.columns.hideSecond, "hide-second", "2", false, "Suppress printing of column 2 (lines only in FILE2)")
	cmd.Flags().BoolVarP(&linecommFlags.columns.hideBoth, "hide-both", "3", false, "Suppress printing of column 3 (lines in both files)")
	return []string{"hide-first", "hide-second", "hide-both"}
}

func addInsensitiveFlag(cmd *cobra.Command) string {
	insensitive := "ignore-case"
	cmd.Flags().BoolVarP(&linecommFlags.compare.insensitive, insensitive, "i", false, "Case-insensitive comparison of lines")
	return insensitive
}

func addNormalizeFlag(cmd *cobra.Command) string {
	normalize := "normalize"
	cmd.Flags().BoolVar(&linecommFlags.compare.normalize, normalize, false, "Compare lines after Unicode NFC normalization")
	return normalize
}

func addDelimiterFlag(cmd *cobra.Command) string {
	delimiter := "output-delimiter"
	cmd.Flags().StringVarP(&linecommFlags.output.delimiter, delimiter, "d", format.DefaultDelimiter, "Separate columns with this string")
	return delimiter
}

func addFormatFlag(cmd *cobra.Command) string {
	f := "format"
	cmd.Flags().StringVar(&linecommFlags.output.format, f, string(format.Text), "Output format: text or jsonl")
	return f
}

func addColorFlag(cmd *cobra.Command) string {
	c := "color"
	cmd.Flags().StringVar(&linecommFlags.output.color, c, string(format.ColorNever), "Colorize columns 2 and 3: auto, always or never")
	return c
}

func addTotalFlag(cmd *cobra.Command) string {
	total := "total"
	cmd.Flags().BoolVar(&linecommFlags.output.total, total, false, "Output a summary line with the count of lines in each column")
	return total
}

func addZeroTerminatedFlag(cmd *cobra.Command) string {
	zero := "zero-terminated"
	cmd.Flags().BoolVarP(&linecommFlags.output.zeroTerminated, zero, "z", false, "Line delimiter is NUL, not newline")
	return zero
}

func addBufferSizeFlag(cmd *cobra.Command) string {
	bufferSize := "buffer-size"
	cmd.Flags().StringVar(&linecommFlags.input.bufferSize, bufferSize, "64KiB", "Size of the read buffer for each input (e.g. 256KiB, 1MiB)")
	return bufferSize
}

func addLogLevel(cmd *cobra.Command) string {
	loglevel := "loglevel"
	cmd.PersistentFlags().StringVar(&linecommFlags.root.logLevel, loglevel, dlogger.LogLevelInfo,
		"The logging level. Levels by increasing order of verbosity: "+strings.Join(dlogger.Levels, ", "))
	return loglevel
}

func addPrintConfigFlag(cmd *cobra.Command) string {
	printConfig := "print-config"
	cmd.Flags().BoolVar(&linecommFlags.root.printConfig, printConfig, false, "Print the effective configuration as YAML and exit")
	return printConfig
}
