// Command uvc-util lists UVC cameras and reads or changes their controls.
// Options run in command-line order, so a selection applies to the actions
// that follow it.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	uvc "github.com/kevmo314/uvc-util"
	"github.com/kevmo314/uvc-util/internal/config"
)

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr, uvc.Enumerate))
}

func run(exe string, argv []string, stdout, stderr io.Writer, enumerate enumerator) int {
	if len(argv) == 0 {
		usage(stdout, exe)
		return 0
	}

	args, err := parseArgs(argv)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: Unrecognized option: %v\n", err)
		usage(stderr, exe)
		return exitInvalid
	}

	cfg, err := config.LoadConfig(args.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitInvalid
	}
	slog.SetDefault(slog.New(cfg.Handler(stderr, args.has(actionDebug))))

	return newRunner(exe, stdout, stderr, cfg, enumerate).run(args.actions)
}
