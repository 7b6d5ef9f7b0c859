// Package metrics holds shared metric conventions for the service.
package metrics

// DefaultBuckets is the common set of latency histogram bucket boundaries in
// seconds, reused by every duration instrument in the application.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals
