package translate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Run discovers every classification file nv produced under dir (matching
// "3-manifolds_{nv}v_*.lex") and rewrites each into a sibling GAP-syntax
// file, printing per-line diagnostics to diag.
func Run(dir string, nv int, diag io.Writer) error {
	pattern := filepath.Join(dir, fmt.Sprintf("3-manifolds_%dv_*.lex", nv))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("translate: glob %s: %w", pattern, err)
	}
	sort.Strings(matches)

	for _, path := range matches {
		if err := translateFile(path, diag); err != nil {
			return err
		}
	}
	return nil
}

func translateFile(path string, diag io.Writer) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("translate: open %s: %w", path, err)
	}
	defer in.Close()

	outPath := strings.TrimSuffix(path, ".lex")
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("translate: create %s: %w", outPath, err)
	}
	defer out.Close()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	index := 0
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		index++

		tets, err := DecodeLine(line)
		if err != nil {
			return fmt.Errorf("translate: %s line %d: %w", path, index, err)
		}

		fmt.Fprintln(diag, Analyze(index, tets))
		if _, err := fmt.Fprintln(out, EncodeGAP(tets)); err != nil {
			return fmt.Errorf("translate: write %s: %w", outPath, err)
		}
		if err := out.Sync(); err != nil {
			return fmt.Errorf("translate: flush %s: %w", outPath, err)
		}
	}
	return scanner.Err()
}
