// Package registry defines the set of languages the transcriber supports.
// Each language carries a writing-system family that selects the
// segmentation strategy and a reference to its dictionary data.
package registry
