package zeros

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

// LCalc runs the lcalc command-line tool to compute the first n positive
// ordinates of the nontrivial zeros of L(s, chi_d).
//
// lcalc is invoked per call as
//
//	lcalc -z <n> --twist-quadratic --start <d> --finish <d>
//
// (the quadratic twist is dropped for |d| = 1, which is the Riemann zeta
// function itself). For a non-fundamental discriminant lcalc emits nothing,
// which surfaces here as a short-read error.
type LCalc struct {
	// Path is the lcalc executable path.
	Path string
}

// NewLCalc creates an LCalc source for the given executable path.
func NewLCalc(path string) *LCalc {
	return &LCalc{Path: path}
}

// Zeros invokes lcalc and parses the ordinates from its output.
// The command inherits ctx, so cancellation kills the subprocess.
func (l *LCalc) Zeros(ctx context.Context, d int64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("zero count must be positive, got %d", n)
	}

	args := []string{"-z", strconv.Itoa(n)}
	if d != 1 && d != -1 {
		args = append(args, "--twist-quadratic")
	}
	args = append(args,
		"--start", strconv.FormatInt(d, 10),
		"--finish", strconv.FormatInt(d, 10),
	)

	slog.Debug("invoking lcalc", "path", l.Path, "d", d, "count", n)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, l.Path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("lcalc %v: %w (stderr: %s)", args, err, strings.TrimSpace(stderr.String()))
	}

	ordinates, err := parseOrdinates(stdout.String(), n)
	if err != nil {
		return nil, fmt.Errorf("parse lcalc output for d=%d: %w", d, err)
	}
	return ordinates, nil
}

// parseOrdinates extracts ordinates from lcalc output: the last
// whitespace-separated token of each line, skipping lines that do not
// parse as floats (headers, warnings).
func parseOrdinates(output string, n int) ([]float64, error) {
	var ordinates []float64
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		gamma, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			continue
		}
		ordinates = append(ordinates, gamma)
	}
	if len(ordinates) < n {
		return nil, fmt.Errorf("expected %d zeros, got %d", n, len(ordinates))
	}
	return ordinates[:n], nil
}
