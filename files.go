package trackalign

import (
	"fmt"
	"os"
)

// DefaultOutputName is the output filename used by the command-line tool.
const DefaultOutputName = "outData.csv"

// AlignFiles runs Process over files on disk. The output file is created (or
// truncated) before the input headers are validated, so it may be left empty
// when validation fails.
func AlignFiles(trackerPath, refPath, outPath string) (Stats, error) {
	trackerFile, err := os.Open(trackerPath)
	if err != nil {
		return Stats{}, fmt.Errorf("could not open tracker data file: %w", err)
	}
	defer func() { _ = trackerFile.Close() }()

	refFile, err := os.Open(refPath)
	if err != nil {
		return Stats{}, fmt.Errorf("could not open reference data file: %w", err)
	}
	defer func() { _ = refFile.Close() }()

	outFile, err := os.Create(outPath)
	if err != nil {
		return Stats{}, fmt.Errorf("could not create output file: %w", err)
	}

	stats, err := Process(trackerFile, refFile, outFile)
	if closeErr := outFile.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("closing output file: %w", closeErr)
	}
	return stats, err
}
