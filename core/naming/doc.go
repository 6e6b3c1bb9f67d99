// Package naming canonicalizes raw card-name tokens.
//
// Every map key in the engine is a canonical name produced by Normalize, so
// two spellings of the same card that differ only in whitespace or slash-style
// face separators collapse to one key. The package is a leaf shared by the
// deck parser and the catalog resolver.
package naming
