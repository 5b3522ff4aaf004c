package main

import (
	"fmt"
	"io"
	"strconv"
)

type dumpOptions struct {
	path     string
	steps    int
	delta    int
	hasDelta bool
}

func parseDumpArgs(args []string) (dumpOptions, error) {
	opts := dumpOptions{steps: 3}

	// Parse arguments
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-steps", "--steps", "-delta", "--delta":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s needs a value", arg)
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return opts, fmt.Errorf("invalid %s value %q: %w", arg, args[i+1], err)
			}
			i++
			if arg == "-steps" || arg == "--steps" {
				if n < 0 {
					return opts, fmt.Errorf("steps must not be negative, got %d", n)
				}
				opts.steps = n
			} else {
				opts.delta, opts.hasDelta = n, true
			}
		default:
			if opts.path != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.path = arg
		}
	}

	if opts.path == "" {
		return opts, fmt.Errorf("dump needs a scenario file")
	}
	return opts, nil
}

// runDump implements the dump subcommand.
func runDump(w io.Writer, args []string) error {
	opts, err := parseDumpArgs(args)
	if err != nil {
		return err
	}
	s, err := loadScene(opts.path)
	if err != nil {
		return err
	}
	return dump(w, s, opts)
}

func dump(w io.Writer, s *scene, opts dumpOptions) error {
	delta := opts.delta
	if !opts.hasDelta {
		delta = s.viewportMain()
	}

	for step := 0; ; step++ {
		if err := writeStep(w, s, step); err != nil {
			return err
		}
		if step == opts.steps {
			return nil
		}
		s.grid.ScrollBy(delta)
		if err := s.layout(); err != nil {
			return err
		}
	}
}

func writeStep(w io.Writer, s *scene, step int) error {
	res := s.res
	if _, err := fmt.Fprintf(w, "step %d: %s\n", step, status(res)); err != nil {
		return err
	}
	for _, p := range res.Placements {
		mark := ""
		if p.Retained {
			mark = " retained"
		}
		if _, err := fmt.Fprintf(w, "  item %d row %d col %d at (%d,%d) %dx%d%s\n",
			p.Index, p.Row, p.Column, p.Rect.X, p.Rect.Y, p.Rect.Width, p.Rect.Height, mark); err != nil {
			return err
		}
	}
	return nil
}
