package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tonalgo/tonal"
	"github.com/tonalgo/tonal/version"
)

// result is one line of CLI output; with -j or -y it is marshaled instead
// of printed as plain text.
type result struct {
	Input     string `yaml:"input" json:"input"`
	Output    string `yaml:"output" json:"output"`
	Semitones int    `yaml:"semitones" json:"semitones"`
}

func main() {
	shift := flag.String("shift", "", "Shift each pitch argument by this interval (e.g. A4, m3, M9).")
	down := flag.Bool("down", false, "Shift downward instead of upward.")
	between := flag.Bool("between", false, "Evaluate the interval from the first pitch argument up to the second.")
	minimal := flag.Bool("minimal", false, "Evaluate the minimal interval between the two pitch arguments.")
	invert := flag.Bool("invert", false, "Invert each interval argument.")
	midi := flag.Bool("midi", false, "Print the note number of each note argument (60 = middle C).")
	jsonOut := flag.Bool("j", false, "Output results as JSON.")
	yamlOut := flag.Bool("y", false, "Output results as YAML.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}
	results, err := run(flag.Args(), *shift, *down, *between, *minimal, *invert, *midi)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := output(results, *jsonOut, *yamlOut); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string, shift string, down, between, minimal, invert, midi bool) ([]result, error) {
	direction := tonal.Up
	if down {
		direction = tonal.Down
	}
	switch {
	case shift != "":
		iv, err := tonal.ParseInterval(shift)
		if err != nil {
			return nil, fmt.Errorf("could not parse interval %q: %w", shift, err)
		}
		var results []result
		for _, arg := range args {
			p, err := tonal.ParsePitch(arg)
			if err != nil {
				return nil, fmt.Errorf("could not parse pitch %q: %w", arg, err)
			}
			shifted, err := p.Shift(iv, direction)
			if err != nil {
				return nil, err
			}
			results = append(results, result{Input: arg, Output: shifted.String(), Semitones: shifted.Number()})
		}
		return results, nil
	case between, minimal:
		if len(args) != 2 {
			return nil, fmt.Errorf("evaluating an interval takes exactly two pitches, got %d", len(args))
		}
		a, err := tonal.ParsePitch(args[0])
		if err != nil {
			return nil, fmt.Errorf("could not parse pitch %q: %w", args[0], err)
		}
		b, err := tonal.ParsePitch(args[1])
		if err != nil {
			return nil, fmt.Errorf("could not parse pitch %q: %w", args[1], err)
		}
		var iv tonal.Interval
		if minimal {
			iv = tonal.MinimalIntervalBetween(a, b)
		} else {
			iv = tonal.IntervalBetween(a, b)
		}
		return []result{{Input: args[0] + " " + args[1], Output: iv.String(), Semitones: iv.Semitones()}}, nil
	case invert:
		var results []result
		for _, arg := range args {
			iv, err := tonal.ParseInterval(arg)
			if err != nil {
				return nil, fmt.Errorf("could not parse interval %q: %w", arg, err)
			}
			inverted := iv.Invert()
			results = append(results, result{Input: arg, Output: inverted.String(), Semitones: inverted.Semitones()})
		}
		return results, nil
	case midi:
		var results []result
		for _, arg := range args {
			n, err := tonal.ParseNote(arg)
			if err != nil {
				return nil, fmt.Errorf("could not parse note %q: %w", arg, err)
			}
			results = append(results, result{Input: arg, Output: n.String(), Semitones: n.Number()})
		}
		return results, nil
	}
	// no operation flag: just canonicalize the pitch arguments
	var results []result
	for _, arg := range args {
		p, err := tonal.ParsePitch(arg)
		if err != nil {
			return nil, fmt.Errorf("could not parse pitch %q: %w", arg, err)
		}
		results = append(results, result{Input: arg, Output: p.String(), Semitones: p.Number()})
	}
	return results, nil
}

func output(results []result, jsonOut, yamlOut bool) error {
	if jsonOut {
		data, err := json.Marshal(results)
		if err != nil {
			return fmt.Errorf("could not marshal results as json: %v", err)
		}
		fmt.Println(string(data))
		return nil
	}
	if yamlOut {
		data, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("could not marshal results as yaml: %v", err)
		}
		fmt.Print(string(data))
		return nil
	}
	for _, r := range results {
		fmt.Printf("%v -> %v (%v)\n", r.Input, r.Output, r.Semitones)
	}
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Pitch and interval calculator. Shifts pitches by intervals, evaluates intervals between pitches and maps notes to note numbers.\nUsage: %s [flags] pitch|interval|note ...\n", os.Args[0])
	flag.PrintDefaults()
}
