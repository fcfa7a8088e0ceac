package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
)

type options struct {
	Server  ServerCmd  `command:"server" description:"run the web server"`
	TUI     TUICmd     `command:"tui" description:"run the terminal front-end"`
	Presets PresetsCmd `command:"presets" description:"list built-in palettes"`
}

var revision = "unknown"

func main() {
	var opts options
	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		if errors.As(err, &flagsErr) {
			fmt.Printf("%v\n", err)
			os.Exit(1)
		}
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

// setupLogs configures the logger. Debug mode adds caller info, out replaces stdout when set.
func setupLogs(debug bool, out io.Writer) {
	logOpts := []log.Option{log.Msec}
	if out != nil {
		logOpts = append(logOpts, log.Out(out), log.Err(out))
	}
	if debug {
		logOpts = append(logOpts, log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	log.Setup(logOpts...)
}

// validateBaseURL checks the base URL starts with a slash and strips the trailing one.
func validateBaseURL(baseURL string) (string, error) {
	if baseURL == "" {
		return "", nil
	}
	if !strings.HasPrefix(baseURL, "/") {
		return "", fmt.Errorf("base URL must start with /, got %q", baseURL)
	}
	return strings.TrimRight(baseURL, "/"), nil
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
