// Package main runs the scripted container simulations: a printer queue,
// a priority-based customer service desk and a browser history.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/c360/linearkit/simulation"
)

func main() {
	which := flag.String("sim", "all",
		"Simulation to run: printer, customers, browser, all")
	flag.Parse()

	var err error
	switch *which {
	case "printer":
		err = simulation.PrinterQueue(os.Stdout)
	case "customers":
		err = simulation.CustomerService(os.Stdout)
	case "browser":
		err = simulation.BrowserHistory(os.Stdout)
	case "all":
		err = simulation.RunAll(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown simulation: %s\n", *which)
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		os.Exit(1)
	}
}
