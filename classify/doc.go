// Package classify implements the Classifier & Emitter of §4.5: given a
// complete triangulation, compute its Euler characteristic and per-vertex
// link buckets, assemble the classification key, encode the pick list, and
// append one line to the keyed output file.
//
// Contract:
//
//	Classify never mutates the Complex it inspects. Sink owns one *os.File
//	per classification key, opened in append mode on first use and kept
//	open for the lifetime of a Run; every Emit flushes before returning so
//	a SIGTERM mid-run leaves output valid up to the last written line
//	(§5's "Shared resources").
package classify
