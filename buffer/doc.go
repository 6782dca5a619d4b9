// Package buffer implements the pure, grapheme-accurate document model that
// hosts the label bolder.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
package buffer
