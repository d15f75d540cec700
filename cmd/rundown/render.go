package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"rundown/internal/runorder"
	"rundown/internal/store"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// renderRun writes a human-readable view of a stored run.
func renderRun(out io.Writer, run *store.Run) {
	fmt.Fprintf(out, "Episode %s  run %s  %s\n",
		run.EpisodeID, run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(out, renderResult(run.Result))
}

func renderResult(result runorder.Result) string {
	rows := make([][]string, 0, len(result.Matches))
	for _, boundary := range result.Matches {
		sources := make([]string, 0, len(boundary.Sources))
		for _, source := range boundary.Sources {
			sources = append(sources, string(source))
		}
		rows = append(rows, []string{
			strconv.Itoa(boundary.Position),
			boundary.HomeTeam,
			boundary.AwayTeam,
			boundary.FixtureID,
			formatSpan(boundary.HighlightsStart, boundary.HighlightsEnd),
			formatSeconds(boundary.PostMatchEnd),
			fmt.Sprintf("%.2f", boundary.Confidence),
			strings.Join(sources, ","),
		})
	}

	var b strings.Builder
	b.WriteString(renderTable(
		[]string{"#", "Home", "Away", "Fixture", "Highlights", "End", "Conf", "Sources"},
		rows,
		0, 6,
	))
	b.WriteByte('\n')

	colorize := shouldColorize(os.Stdout)
	b.WriteString(consensusLine(result, colorize))
	for _, disagreement := range result.Disagreements {
		b.WriteByte('\n')
		b.WriteString(fmt.Sprintf("  position %d: scoreboard saw %q, full-time saw %q",
			disagreement.Position, disagreement.Scoreboard, disagreement.FullTime))
	}
	return b.String()
}

func consensusLine(result runorder.Result, colorize bool) string {
	line := fmt.Sprintf("Consensus confidence: %.2f", result.Consensus)
	if len(result.Disagreements) > 0 {
		line += fmt.Sprintf(" (%d ordering disagreement(s), scoreboard order kept)", len(result.Disagreements))
		if colorize {
			return ansiYellow + line + ansiReset
		}
		return line
	}
	if colorize {
		return ansiGreen + line + ansiReset
	}
	return line
}

func formatSpan(start, end float64) string {
	return formatSeconds(start) + "-" + formatSeconds(end)
}

func formatSeconds(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
