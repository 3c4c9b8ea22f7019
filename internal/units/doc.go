// Package units parses and renders du-style size quantities.
//
// A quantity is a count paired with an optional suffix. Suffixes come in
// three flavours per magnitude, from kilo to exa: the bare letter and the
// "iB" form are powers of 1024, the "B" form is a power of 1000.
package units
