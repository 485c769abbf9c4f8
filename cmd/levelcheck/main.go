// Command levelcheck loads a levelset and reports every exit without a way
// back and every unpaired door.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/automoto/notmarioland/assets"
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/leveldata"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("levelcheck", flag.ContinueOnError)
	flags.SetOutput(stderr)
	dir := flags.String("levels", "", "Levelset directory (empty = bundled demo)")
	verbose := flags.Bool("v", false, "List every level and its exits")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	var ls *leveldata.Levelset
	var err error
	if *dir == "" {
		ls, err = assets.LoadDemo()
	} else {
		ls, err = leveldata.LoadLevelset(os.DirFS(*dir), ".")
	}
	if err != nil {
		fmt.Fprintf(stderr, "load: %v\n", err)
		return 1
	}

	if *verbose {
		describe(stdout, ls)
	}

	err = ls.Validate()
	if err == nil {
		fmt.Fprintf(stdout, "%s: %d levels ok\n", ls.Name, len(ls.Levels))
		return 0
	}

	problems := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		problems = joined.Unwrap()
	}
	for _, p := range problems {
		var ge *leveldata.GraphError
		if errors.As(p, &ge) {
			fmt.Fprintf(stdout, "%s -> %s: %s\n", levelName(ls, ge.From), levelName(ls, ge.To), p)
			continue
		}
		fmt.Fprintln(stdout, p)
	}
	fmt.Fprintf(stdout, "%s: %d problems\n", ls.Name, len(problems))
	return 1
}

func levelName(ls *leveldata.Levelset, i int) string {
	if raw := ls.Level(i); raw != nil {
		return raw.Name
	}
	return fmt.Sprintf("#%d", i)
}

func describe(w io.Writer, ls *leveldata.Levelset) {
	for i, raw := range ls.Levels {
		fmt.Fprintf(w, "%d %s (%dx%d)", i, raw.Name, raw.Width(), raw.Height())
		for _, d := range gamemath.Directions {
			if to, ok := raw.Exit(d); ok {
				fmt.Fprintf(w, " %s=%s", d, levelName(ls, to))
			}
		}
		for _, door := range raw.Doors {
			fmt.Fprintf(w, " door=%s", levelName(ls, door.Index))
		}
		fmt.Fprintln(w)
	}
}
