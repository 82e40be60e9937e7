// Package palette assembles candidate color pools and summarizes their
// pairwise distances. It sits strictly upstream of the selection engine:
// Generate/Random produce the colors a pick.Pool is built from, Metrics
// summarizes a finished selection, and PickDistinct is the one-call
// convenience wrapper tying the two together.
package palette
