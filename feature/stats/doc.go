// Package stats computes aggregate views over resolved catalog data:
// cost-curve buckets (lands excluded), printed-color and color-identity
// buckets, and resolved/unresolved counts. It consumes plain name-to-count
// maps so it stays decoupled from the deck feature.
package stats
