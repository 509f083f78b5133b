package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"exam-simulator/internal/exam"
	"exam-simulator/internal/poolfile"
)

const maxAttempts = 3

// Run plays one unpersisted practice exam in the terminal against a local
// pool file.
func Run(in io.Reader, out io.Writer, poolPath, discipline string, count int) error {
	raw, err := poolfile.Load(poolPath)
	if err != nil {
		return err
	}
	catalog := exam.BuildCatalog(raw)

	questions, err := exam.BuildPractice(catalog, discipline, count, time.Now().UnixNano())
	if err != nil {
		if errors.Is(err, exam.ErrInsufficientPool) {
			return fmt.Errorf("pool %s cannot supply %d questions", poolPath, count)
		}
		return err
	}

	reader := bufio.NewReader(in)
	score := 0

	for _, question := range questions {
		printQuestion(out, question)

		letter, ok := readAnswer(reader, out, question)
		fmt.Fprintln(out)
		if !ok {
			fmt.Fprintf(out, "Skipping. Correct answer was %s\n\n", question.CorrectLabel)
			continue
		}

		if letter == question.CorrectLabel {
			fmt.Fprintln(out, "Correct!")
			score++
		} else {
			fmt.Fprintf(out, "Wrong. Correct answer was %s\n", question.CorrectLabel)
		}

		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "\nFinal score: %d/%d\n", score, len(questions))
	return nil
}

func printQuestion(out io.Writer, question exam.SnapshotQuestion) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d [%s]: %s\n\n", question.Index+1, question.Discipline, question.Stem)
	for _, option := range question.Options {
		fmt.Fprintf(out, "%s. %s\n", option.Label, option.Text)
	}
	fmt.Fprintln(out)
}

func readAnswer(reader *bufio.Reader, out io.Writer, question exam.SnapshotQuestion) (string, bool) {
	labels := make([]string, 0, len(question.Options))
	for _, option := range question.Options {
		labels = append(labels, option.Label)
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", false
		}

		letter := strings.ToUpper(strings.TrimSpace(line))
		for _, label := range labels {
			if letter == label {
				return letter, true
			}
		}

		if attempt < maxAttempts {
			fmt.Fprintf(out, "\nInvalid input. Please enter one of %s.\n", strings.Join(labels, ", "))
		}
	}

	return "", false
}
