package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	// DATABASE_URL may come from a local .env file.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:     "careeriq",
		Short:   "Score a career vault and rank the missions that would strengthen it",
		Version: version,

		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newScoreCmd(), newProfilesCmd())

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
