// Package segment splits source text into the units a text editor moves
// and selects by: grapheme clusters, words, paragraphs and line-break
// opportunities.
//
// All offsets are byte offsets into the source string. Grapheme and word
// segmentation follow UAX #29 (github.com/rivo/uniseg); line-break
// opportunities follow UAX #14 (github.com/go-text/typesetting/segmenter).
package segment
