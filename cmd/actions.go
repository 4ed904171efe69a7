package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"go.dedis.ch/shamirecon/storage"
)

// -----------------------------------------------------------------------------
// Solver CMD Prompt

var actionOpts = []string{
	"🔑 Reconstruct a secret from a share file",
	"📜 Show session results",
	"🍃 Exit",
}

var actions = map[string]func(*Solver) error{
	actionOpts[0]: solveShareFile,
	actionOpts[1]: showResults,
	actionOpts[2]: exitSolver,
}

func performActions(solver *Solver) {
	var action string
	for {
		prompt := &survey.Select{
			Message: "What do you want to do ?",
			Options: actionOpts,
		}

		err := survey.AskOne(prompt, &action)
		if err != nil {
			printError(err)
			return
		}

		method := actions[action]
		err = method(solver)
		if err != nil {
			printError(err)
		}
	}
}

func printError(err error) {
	fmt.Println("❌ ", err)
}

// -----------------------------------------------------------------------------
// CMD Actions

func solveShareFile(solver *Solver) error {
	fmt.Println("Enter the share file path: ")
	path := ""
	fmt.Scanln(&path)

	secret, err := solver.SolveFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("The secret of %s is %s\n", path, secret.Text(10))
	return nil
}

func showResults(solver *Solver) error {
	if err := solver.ForResults(func(key string, res storage.Result) error {
		fmt.Printf("%s (k = %d, %d shares, %s): secret %s\n",
			res.Source, res.K, res.Shares, res.Fingerprint, res.Secret)
		return nil
	}); err != nil {
		return err
	}
	return nil
}

func exitSolver(*Solver) error {
	os.Exit(0)
	return nil
}
