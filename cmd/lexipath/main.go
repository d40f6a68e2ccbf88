// Command lexipath is the command-line front end: solve a hidden word
// with an explained search, play a round interactively, compare solver
// configurations, and manage the persistent feedback-graph cache.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
