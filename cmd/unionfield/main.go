package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	unionfieldinternal "github.com/eliduvid/unionfield/internal/unionfield"
)

var Version = "dev"

var (
	tagsFlag    = pflag.StringP("tags", "b", "", "comma-separated build tags")
	testsFlag   = pflag.BoolP("tests", "t", false, "include tests")
	outFlag     = pflag.StringP("output", "o", "unionfield_gen.go", "output file name")
	colorFlag   = pflag.StringP("color", "c", "auto", "colorize (auto|always|never)")
	versionFlag = pflag.BoolP("version", "v", false, "print version and exit")
)

func init() {
	unionfieldinternal.Version = Version
}

func main() {
	pflag.Parse()

	if *versionFlag {
		fmt.Println("unionfield", Version)
		return
	}

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	color := false
	switch *colorFlag {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		fmt.Fprintln(os.Stderr, "invalid --color value:", *colorFlag)
		os.Exit(1)
	}

	outs, err := unionfieldinternal.Main(context.Background(), wd, os.Environ(), *tagsFlag, *testsFlag, *outFlag, pflag.Args())
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}

	for out, code := range outs {
		if err := os.WriteFile(out, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var rePos = regexp.MustCompile(`(?m)^\S+?\.go:\d+(:\d+)?:`)

// colorize adds ANSI color codes to the message.
func colorize(message string) string {
	const (
		bold  = "\033[1m"
		reset = "\033[0m"
	)
	m := []byte(message)
	m = rePos.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(bold + string(b) + reset)
	})
	return string(m)
}
