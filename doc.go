// Package trackalign aligns a motion-tracker pose log with a second,
// externally-timestamped dataset by sequential interpolation.
//
// The tracker log is an ordered CSV of (timestamp, position, orientation)
// keyframes; the reference dataset is an ordered CSV whose rows carry at
// least a timestamp. For each reference row the engine interpolates the
// tracker pose at that instant (linear interpolation for position,
// shortest-arc spherical interpolation for orientation) and the pipeline
// writes the pose prepended to the row's original fields.
//
// # Design
//
//   - A two-keyframe sliding window advances forward only; both input
//     streams are consumed strictly once, in time order.
//   - Time arithmetic is integral (seconds + microseconds); the blend
//     factor is formed by a single integer-to-float division per query.
//   - Reference rows that precede the tracker data are skipped; rows past
//     the end of the tracker data terminate the run. Neither condition is
//     an error.
//
// # Quick Start
//
// Align two CSV files on disk:
//
//	stats, err := trackalign.AlignFiles("tracker.csv", "reference.csv", "outData.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %d rows\n", stats.RowsWritten)
//
// Or drive the pipeline over arbitrary streams:
//
//	stats, err := trackalign.Process(trackerData, refData, out)
//
// The command-line front end lives in cmd/trackalign.
package trackalign
