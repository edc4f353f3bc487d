package main

import (
	"errors"
	"fmt"
	"os"

	"gwc/internal/config"
	"gwc/internal/driver"
	"gwc/internal/logger"
	"gwc/internal/model"
	"gwc/internal/tui"

	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      model.RepoOwner,
		Repository: model.RepoName,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not check for updates: %v\n", err)
		return
	}

	if res.Outdated {
		fmt.Printf("A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Printf("Download it from https://github.com/%s/%s/releases\n", model.RepoOwner, model.RepoName)
	} else {
		fmt.Printf("You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	opts, err := config.Parse("gwc", os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if opts.Version {
		fmt.Printf("gwc version %s\n", model.Version)
		return
	}

	if opts.Update {
		checkUpdate(model.Version)
		return
	}

	log, err := logger.New(opts.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	env := driver.Env{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Log:    log,
	}

	if opts.Interactive {
		if err := tui.Run(opts.Inputs, opts.Display, env); err != nil {
			fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	run := driver.Run
	if opts.JSON {
		run = driver.RunJSON
	}

	// Per-input failures are already reported on stderr and do not change
	// the exit status.
	if _, err := run(opts, env); err != nil {
		log.Debug("run finished with failures", "error", err)
	}
}
