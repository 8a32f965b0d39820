// Command trackalign interpolates a tracker pose log at the timestamps of a
// second CSV file and writes the aligned dataset to outData.csv.
//
// Usage:
//
//	trackalign tracker.csv reference.csv
//
// The tracker file must start with the header sec,usec,x,y,z,qw,qx,qy,qz;
// the reference file's first two columns must be sec,usec. Any further
// reference columns are copied through to the output unchanged, after the
// interpolated pose columns.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/motiontools/trackalign"
)

const requiredArgs = 2

func main() {
	log.SetFlags(0)
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s tracker.csv reference.csv\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Pass the CSV file containing the tracker reports, then the CSV file")
	fmt.Fprintln(os.Stderr, "containing the other data to interpolate the tracker against.")
	fmt.Fprintf(os.Stderr, "The aligned dataset is written to %s.\n", trackalign.DefaultOutputName)
}

func run() error {
	args := os.Args[1:]
	if len(args) < requiredArgs {
		usage()
		return fmt.Errorf("expected %d arguments, got %d", requiredArgs, len(args))
	}

	stats, err := trackalign.AlignFiles(args[0], args[1], trackalign.DefaultOutputName)
	if err != nil {
		return err
	}

	fmt.Printf("Read %d reference rows, wrote %d aligned rows to %s\n",
		stats.RefRows, stats.RowsWritten, trackalign.DefaultOutputName)
	if stats.SkippedBefore > 0 {
		fmt.Printf("Skipped %d rows before the recorded tracker data\n", stats.SkippedBefore)
	}
	if stats.TrackerExhausted {
		fmt.Println("Tracker data ended before the reference data")
	}
	return nil
}
