package download

// Package download implements the simulated download pipeline. A submission
// runs a fixed-interval progress ticker from 0 to 100 and records exactly one
// history entry on completion; no data is actually transferred.
