// Package piece is the shape library: the seven standard pieces, their
// rotation, and the sources a game draws new pieces from.
//
// Every catalog template is a square occupancy matrix in spawn orientation.
// Templates are never handed out directly; Lookup and Catalog return copies,
// and rotation always builds a new matrix.
package piece
