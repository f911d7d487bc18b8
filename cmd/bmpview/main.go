// Command bmpview shows a bitmap with one of a fixed set of filters.
//
// Usage:
//
//	bmpview [image.bmp]
//
// Commands are read from standard input, one per line:
//
//	g, s, r, b, e   grayscale, sepia, reflect, blur, edges
//	o               original image
//	sepia, edges... a filter by name
//	f <path>        open another image
//	theme dark|light
//	q               quit
//
// After every command the current view is written to $BMPVIEW_OUTPUT
// (default bmpview.png) and the window title and frame size are printed,
// separated by a tab.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/bmpview"
	"github.com/gogpu/bmpview/internal/image"
	"github.com/gogpu/bmpview/viewer"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [image]\n", os.Args[0])
	}
	flag.Parse()

	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bmpview:", err)
		os.Exit(2)
	}
	bmpview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.logLevel,
	})))

	if err := run(cfg, flag.Args(), os.Stdin, os.Stdout); err != nil {
		bmpview.Logger().Error("bmpview failed", "err", err)
		os.Exit(1)
	}
}

// errUsage is returned for bad command line arguments.
var errUsage = errors.New("usage: bmpview [image]")

// run drives one session. It returns nil on quit or end of input, and an
// error only for conditions the process cannot continue from.
func run(cfg config, args []string, in io.Reader, out io.Writer) error {
	if len(args) > 1 {
		return errUsage
	}

	v := viewer.New(
		viewer.WithRenderer(&image.FileRenderer{Path: cfg.output}),
		viewer.WithTheme(cfg.theme),
		viewer.WithWorkers(cfg.workers),
	)
	defer v.Close()

	if len(args) == 1 {
		if err := load(v, args[0]); err != nil {
			return err
		}
	}
	if err := present(v, out); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		quit, err := handleLine(v, sc.Text(), out)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if err := present(v, out); err != nil {
			return err
		}
	}
	return sc.Err()
}

// handleLine applies one command line.
func handleLine(v *viewer.Viewer, line string, out io.Writer) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	if strings.EqualFold(cmd, "theme") {
		switch strings.ToLower(arg) {
		case "dark":
			v.SetTheme(viewer.ThemeDark)
		case "light":
			v.SetTheme(viewer.ThemeLight)
		default:
			fmt.Fprintln(out, "theme: want dark or light")
		}
		return false, nil
	}

	if utf8.RuneCountInString(cmd) != 1 {
		kind, ok := bmpview.ParseKind(line)
		if !ok {
			fmt.Fprintf(out, "unknown command %q\n", cmd)
			return false, nil
		}
		return false, v.Select(kind)
	}
	key, _ := utf8.DecodeRuneInString(cmd)

	action, err := v.HandleKey(key)
	if err != nil {
		return false, err
	}
	switch action {
	case viewer.ActionQuit:
		return true, nil
	case viewer.ActionOpen:
		if arg == "" {
			fmt.Fprintln(out, "f: missing path")
			return false, nil
		}
		return false, load(v, arg)
	}
	return false, nil
}

// load opens path in v. A bad file is reported and the session goes on;
// anything else, such as bmpview.ErrAllocation, is fatal.
func load(v *viewer.Viewer, path string) error {
	err := v.Load(path)
	if errors.Is(err, bmpview.ErrImageLoad) {
		// Already logged by the viewer; the previous view stays.
		return nil
	}
	return err
}

// present renders the current frame and prints the title and the size a
// window needs to show it unscaled.
func present(v *viewer.Viewer, out io.Writer) error {
	if err := v.Render(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	w, h := v.Size()
	bmpview.Logger().Debug("frame presented", "path", v.Path(), "title", v.Title())
	_, err := fmt.Fprintf(out, "%s\t%dx%d\n", v.Title(), w, h)
	return err
}
