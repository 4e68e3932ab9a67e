package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	stdout string
	stderr string
	fatals []string
	err    error
}

func setupInputs(t *testing.T) {
	fs := afero.NewMemMapFs()
	for name, content := range map[string]string{
		"file1.txt": "apple\nbanana\ncherry\n",
		"file2.txt": "banana\ncherry\ndate\n",
		"upper.txt": "Apple\n",
		"lower.txt": "apple\n",
		"zero1.txt": "a\x00b\x00",
		"zero2.txt": "b\x00c\x00",
	} {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
	saved := inputFs
	inputFs = fs
	t.Cleanup(func() { inputFs = saved })
}

func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)
}

func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	return execute(t, "", stdin, args...)
}

func runWithConfig(t *testing.T, configFile string, args ...string) cliResult {
	return execute(t, configFile, "", args...)
}

func execute(t *testing.T, configFile, stdin string, args ...string) cliResult {
	resetFlags()
	// config files found on the machine running the tests must not interfere
	savedPaths := configPaths
	configPaths = []string{t.TempDir()}
	defer func() { configPaths = savedPaths }()
	t.Setenv(configEnv, configFile)

	var res cliResult
	savedFatalf := logFatalf
	logFatalf = func(format string, v ...interface{}) {
		res.fatals = append(res.fatals, fmt.Sprintf(format, v...))
	}
	defer func() { logFatalf = savedFatalf }()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	res.err = rootCmd.Execute()
	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}

func TestCompareFiles(t *testing.T) {
	setupInputs(t)

	res := runCLI(t, "", "file1.txt", "file2.txt")
	require.NoError(t, res.err)
	require.Empty(t, res.fatals)
	assert.Equal(t, "apple\n\t\tbanana\n\t\tcherry\n\tdate\n", res.stdout)
}

func TestSuppressColumns(t *testing.T) {
	setupInputs(t)

	for _, tc := range []struct {
		args     []string
		expected string
	}{
		{args: []string{"-1"}, expected: "\tbanana\n\tcherry\ndate\n"},
		{args: []string{"-2"}, expected: "apple\n\tbanana\n\tcherry\n"},
		{args: []string{"-3"}, expected: "apple\n\tdate\n"},
		{args: []string{"-12"}, expected: "banana\ncherry\n"},
		{args: []string{"-1", "-3"}, expected: "date\n"},
		{args: []string{"-123"}, expected: ""},
		{args: []string{"--hide-second", "--hide-both"}, expected: "apple\n"},
	} {
		fixture := tc
		t.Run(strings.Join(fixture.args, " "), func(t *testing.T) {
			res := runCLI(t, "", append(fixture.args, "file1.txt", "file2.txt")...)
			require.NoError(t, res.err)
			require.Empty(t, res.fatals)
			assert.Equal(t, fixture.expected, res.stdout)
		})
	}
}

func TestCaseInsensitive(t *testing.T) {
	setupInputs(t)

	res := runCLI(t, "", "-1", "-i", "upper.txt", "lower.txt")
	require.NoError(t, res.err)
	require.Empty(t, res.fatals)
	assert.Equal(t, "\tApple\n", res.stdout)

	res = runCLI(t, "", "-12", "-i", "upper.txt", "lower.txt")
	require.NoError(t, res.err)
	assert.Equal(t, "Apple\n", res.stdout)

	res = runCLI(t, "", "upper.txt", "lower.txt")
	require.NoError(t, res.err)
	assert.Equal(t, "Apple\n\tapple\n", res.stdout)
}

func TestDelimiterAndTotal(t *testing.T) {
	setupInputs(t)

	res := runCLI(t, "", "--output-delimiter", "|", "--total", "file1.txt", "file2.txt")
	require.NoError(t, res.err)
	assert.Equal(t, "apple\n||banana\n||cherry\n|date\n1|1|2|total\n", res.stdout)

	res = runCLI(t, "", "-d", ", ", "-3", "file1.txt", "file2.txt")
	require.NoError(t, res.err)
	assert.Equal(t, "apple\n, date\n", res.stdout)
}

func TestStdinInput(t *testing.T) {
	setupInputs(t)

	res := runCLI(t, "banana\nfig\n", "file1.txt", "-")
	require.NoError(t, res.err)
	require.Empty(t, res.fatals)
	assert.Equal(t, "apple\n\t\tbanana\ncherry\n\tfig\n", res.stdout)
}

func TestBothStdin(t *testing.T) {
	setupInputs(t)

	res := runCLI(t, "a\n", "-", "-")
	require.NoError(t, res.err)
	require.Len(t, res.fatals, 1)
	assert.Contains(t, res.fatals[0], `both input files cannot be STDIN ("-")`)
	assert.Empty(t, res.stdout)
}

func TestMissingFile(t *testing.T) {
	setupInputs(t)

	res := runCLI(t, "", "file1.txt", "nowhere.txt")
	require.NoError(t, res.err)
	require.Len(t, res.fatals, 1)
	assert.Contains(t, res.fatals[0], "cannot open input")
	assert.Contains(t, res.fatals[0], "nowhere.txt")
	assert.Empty(t, res.stdout)
}

func TestArguments(t *testing.T) {
	setupInputs(t)

	res := runCLI(t, "", "file1.txt")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "accepts 2 arg(s), received 1")
	assert.Empty(t, res.stdout)

	res = runCLI(t, "", "file1.txt", "file2.txt", "file3.txt")
	require.Error(t, res.err)

	res = runCLI(t, "", "--buffer-size", "lots", "file1.txt", "file2.txt")
	require.NoError(t, res.err)
	require.Len(t, res.fatals, 1)
	assert.Contains(t, res.fatals[0], "invalid buffer size")

	res = runCLI(t, "", "--format", "xml", "file1.txt", "file2.txt")
	require.NoError(t, res.err)
	require.Len(t, res.fatals, 1)
	assert.Contains(t, res.fatals[0], "invalid output format")

	res = runCLI(t, "", "--loglevel", "chatty", "file1.txt", "file2.txt")
	require.NoError(t, res.err)
	require.Len(t, res.fatals, 1)
	assert.Contains(t, res.fatals[0], "failed to set up logger")
}

func TestFormats(t *testing.T) {
	setupInputs(t)

	res := runCLI(t, "", "--format", "jsonl", "-3", "file1.txt", "file2.txt")
	require.NoError(t, res.err)
	require.Empty(t, res.fatals)
	assert.Equal(t,
		`{"column":1,"kind":"only-first","text":"apple"}`+"\n"+
			`{"column":2,"kind":"only-second","text":"date"}`+"\n",
		res.stdout)

	res = runCLI(t, "", "-z", "zero1.txt", "zero2.txt")
	require.NoError(t, res.err)
	assert.Equal(t, "a\x00\t\tb\x00\tc\x00", res.stdout)

	res = runCLI(t, "", "--color", "always", "-12", "file1.txt", "file2.txt")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "\x1b[32m")

	// not a terminal
	res = runCLI(t, "", "--color", "auto", "-12", "file1.txt", "file2.txt")
	require.NoError(t, res.err)
	assert.Equal(t, "banana\ncherry\n", res.stdout)
}

func TestConfigFile(t *testing.T) {
	setupInputs(t)

	dir := t.TempDir()
	configFile := filepath.Join(dir, "linecomm.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("delimiter: \";\"\nformat: text\nloglevel: error\n"), 0600))

	res := runWithConfig(t, configFile, "file1.txt", "file2.txt")
	require.NoError(t, res.err)
	require.Empty(t, res.fatals)
	assert.Equal(t, "apple\n;;banana\n;;cherry\n;date\n", res.stdout)

	// flags override the config file
	res = runWithConfig(t, configFile, "-d", ":", "file1.txt", "file2.txt")
	require.NoError(t, res.err)
	assert.Equal(t, "apple\n::banana\n::cherry\n:date\n", res.stdout)

	// environment overrides the config file
	t.Setenv("LINECOMM_DELIMITER", "+")
	res = runWithConfig(t, configFile, "file1.txt", "file2.txt")
	require.NoError(t, res.err)
	assert.Equal(t, "apple\n++banana\n++cherry\n+date\n", res.stdout)

	res = runWithConfig(t, filepath.Join(dir, "missing.yaml"), "file1.txt", "file2.txt")
	require.Len(t, res.fatals, 1)
	assert.Contains(t, res.fatals[0], "failed to load configuration")
}

func TestPrintConfig(t *testing.T) {
	setupInputs(t)

	res := runCLI(t, "", "--print-config", "--format", "jsonl")
	require.NoError(t, res.err)
	require.Empty(t, res.fatals)
	assert.Contains(t, res.stdout, "format: jsonl")
	assert.Contains(t, res.stdout, "buffer-size: 64KiB")
	assert.Contains(t, res.stdout, "loglevel: info")
}

func TestVersion(t *testing.T) {
	res := runCLI(t, "", "--version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Version: dev")
}
