package main

import (
	"flag"
	"fmt"
	"os"

	"exam-simulator/internal/cli"
)

func main() {
	poolPath := flag.String("pool", "questions.json", "path to the question pool file")
	discipline := flag.String("discipline", "", "restrict the run to one discipline (default: all)")
	count := flag.Int("n", 10, "number of questions")
	flag.Parse()

	if err := cli.Run(os.Stdin, os.Stdout, *poolPath, *discipline, *count); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
