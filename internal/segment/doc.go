// Package segment turns input text into a sequence of dictionary lookups.
// Space-delimited languages are split into words; languages without word
// boundaries are consumed with a greedy longest-match scan over character
// spans. Tokens without a dictionary entry pass through verbatim.
package segment
