package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const prompt = "todo> "

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	historyLimit := flag.Int("history", 100, "number of undo steps to keep, 0 keeps all")
	flag.Parse()

	if err := InitLogger(*debug); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}

	if err := session(*historyLimit); err != nil {
		os.Exit(1)
	}
}

// session owns the logger until it returns, so the final sync happens before
// main decides on the exit code.
func session(historyLimit int) (err error) {
	defer Logger.Sync()

	app := NewApp(os.Stdout, Logger, historyLimit)

	if isatty.IsTerminal(os.Stdin.Fd()) {
		err = interactive(app)
	} else {
		err = batch(app, os.Stdin)
	}

	if err != nil {
		Logger.Error("session ended with error", zap.Error(err))
	}

	return err
}

func interactive(app *App) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				return nil
			}
			return errors.Wrap(err, "read prompt")
		}

		line.AppendHistory(input)

		quit, err := app.Exec(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}

		if quit {
			return nil
		}
	}
}

func batch(app *App, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := app.Exec(scanner.Text())
		if err != nil {
			Logger.Warn("command failed", zap.String("line", scanner.Text()), zap.Error(err))
			continue
		}

		if quit {
			return nil
		}
	}

	return errors.Wrap(scanner.Err(), "read input")
}
