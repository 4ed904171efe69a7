package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	cli "go.dedis.ch/shamirecon/cmd"
	"go.dedis.ch/shamirecon/httpserver"
)

func main() {
	command := &cobra.Command{
		Use: "shamirecon",
	}
	addSolveCmd(command)
	addCliCmd(command)
	addDaemonCmd(command)

	err := command.Execute()
	if err != nil {
		panic(err)
	}
}

// loadConfig resolves the effective config from the optional config file
// and the worker override flag.
func loadConfig(confPath string, workers int) (cli.Config, error) {
	conf := cli.DefaultConfig()
	if confPath != "" {
		loaded, err := cli.ConfigFromYAML(confPath)
		if err != nil {
			return cli.Config{}, err
		}
		conf = loaded
	}
	if workers > 0 {
		conf.Workers = workers
	}
	return conf, nil
}

// addSolveCmd reconstructs secrets from share files given as arguments
func addSolveCmd(command *cobra.Command) {
	var confPath string
	var workers int

	solveCmd := &cobra.Command{
		Use:   "solve [share files]",
		Short: "Reconstruct the secret of each share file",
		Long:  "Reconstruct the secret of each share file, tolerating corrupted shares by majority vote",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			conf, err := loadConfig(confPath, workers)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			zerolog.SetGlobalLevel(conf.ZerologLevel())

			solver := cli.NewSolver(conf)
			for _, path := range args {
				secret, err := solver.SolveFile(path)
				if err != nil {
					fmt.Printf("Error processing %s: %s\n", path, err)
					os.Exit(1)
				}
				fmt.Printf("Secret for %s: %s\n", path, secret.Text(10))
			}
		},
	}

	solveCmd.Flags().StringVarP(&confPath, "conf", "c", "", "Load solver settings from a YAML file")
	solveCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Interpolate combinations on this many goroutines")

	command.AddCommand(solveCmd)
}

// addCliCmd starts the interactive solver prompt
func addCliCmd(command *cobra.Command) {
	var confPath string
	var workers int

	startCmd := &cobra.Command{
		Use:   "cli",
		Short: "Start the solver with an interactive CLI",
		Long:  "Start the solver with an interactive CLI, reconstruct secrets and browse session results",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			conf, err := loadConfig(confPath, workers)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			zerolog.SetGlobalLevel(zerolog.ErrorLevel)
			cli.StartCMD(conf)
		},
	}

	startCmd.Flags().StringVarP(&confPath, "conf", "c", "", "Load solver settings from a YAML file")
	startCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Interpolate combinations on this many goroutines")

	command.AddCommand(startCmd)
}

// addDaemonCmd starts the solver as an HTTP daemon
func addDaemonCmd(command *cobra.Command) {
	var confPath string
	var workers int
	var addr string

	daemonCmd := &cobra.Command{
		Use:   "daemon",
		Short: "Start the solver as an HTTP daemon",
		Long:  "Start the solver as an HTTP daemon serving reconstruction requests over JSON",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			conf, err := loadConfig(confPath, workers)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			if addr != "" {
				conf.HTTPAddr = addr
			}
			zerolog.SetGlobalLevel(conf.ZerologLevel())

			err = httpserver.Start(conf.HTTPAddr, cli.NewSolver(conf))
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
	}

	daemonCmd.Flags().StringVarP(&confPath, "conf", "c", "", "Load solver settings from a YAML file")
	daemonCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Interpolate combinations on this many goroutines")
	daemonCmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address for the HTTP daemon")

	command.AddCommand(daemonCmd)
}
