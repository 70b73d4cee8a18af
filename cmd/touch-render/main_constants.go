package main

// Default command-line flag values
const (
	defaultOutput  = "stroke.png" // Preview image path
	defaultShape   = "jitter"     // Demo stroke shape
	defaultPoints  = 120          // Demo events per stroke
	defaultStrokes = 3            // Demo stroke count
	defaultSeed    = 1            // Demo jitter seed
)

// Metrics output
const (
	stdoutPath = "-" // Write metrics to stdout
)
