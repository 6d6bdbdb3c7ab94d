// Package analyze wraps the morphological-analyzer collaborators. The
// preferred analyzer is an external sudachi binary driven over a staging
// file; when none is installed the embedded kagome tokenizer stands in.
// Availability is decided once per run, before any book is processed.
package analyze

import (
	"fmt"
	"os"
	"os/exec"

	"yomistat/internal/token"
)

// Analyzer produces raw morphemes for a book's text. Implementations block
// until analysis completes; a stalled external process stalls the run.
type Analyzer interface {
	Name() string
	Tokenize(text string) ([]*token.Token, error)
}

// Detect picks the analyzer for the whole run. Modes: "auto" (external
// binary if installed, embedded otherwise), "sudachi", "kagome", "none".
// A nil analyzer with nil error means word statistics are skipped.
func Detect(mode string) (Analyzer, error) {
	switch mode {
	case "none":
		return nil, nil
	case "sudachi":
		bin, err := exec.LookPath(sudachiBinary)
		if err != nil {
			// degrade to character statistics only
			return nil, nil
		}
		return &External{bin: bin}, nil
	case "kagome":
		return newKagome()
	case "auto", "":
		if bin, err := exec.LookPath(sudachiBinary); err == nil {
			return &External{bin: bin}, nil
		}
		return newKagome()
	}
	return nil, fmt.Errorf("unknown tokenizer mode %q", mode)
}

const sudachiBinary = "sudachi"

// External invokes the analyzer binary once per book: the text is staged to
// a temp file and the tab-separated annotated output is captured from
// stdout. No timeout; the batch is strictly sequential by design.
type External struct {
	bin string
}

func (e *External) Name() string { return "sudachi" }

func (e *External) Tokenize(text string) ([]*token.Token, error) {
	staging, err := os.CreateTemp("", "yomistat-*.txt")
	if err != nil {
		return nil, fmt.Errorf("create staging file: %w", err)
	}
	defer os.Remove(staging.Name())
	if _, err := staging.WriteString(text); err != nil {
		staging.Close()
		return nil, fmt.Errorf("write staging file: %w", err)
	}
	if err := staging.Close(); err != nil {
		return nil, fmt.Errorf("close staging file: %w", err)
	}

	// -a requests the full annotation fields the token parser expects
	cmd := exec.Command(e.bin, "-a", staging.Name())
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("pipe analyzer output: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start analyzer: %w", err)
	}
	tokens, parseErr := token.ParseLines(out)
	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("analyzer failed: %w", err)
	}
	if parseErr != nil {
		return nil, fmt.Errorf("read analyzer output: %w", parseErr)
	}
	return tokens, nil
}
