// Package layout implements the sizing primitives for terminal pane trees.
//
// It provides Dimension (min/preferred/max/weight) negotiation, the weighted
// allocation algorithm used by splits, and the integer geometry types shared
// by the rendering core. Types are re-exported through the root pane package
// for public consumption.
package layout
