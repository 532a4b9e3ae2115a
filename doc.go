// Package hllset implements a HyperLogLog-style set sketch whose registers
// are 32-bit rank bitmasks rather than single max-rank counters. A classical
// HyperLogLog register keeps only the largest rank observed per bin, which is
// enough for cardinality estimation but destroys the evidence needed for set
// algebra. Storing one bit per observed rank keeps union, intersection,
// difference and symmetric difference as exact bitwise operations over
// registers, at the cost of a fixed 32 bits per bin.
//
// Cardinality estimation follows the dense path of "HyperLogLog in Practice:
// Algorithmic Engineering of a State of The Art Cardinality Estimation
// Algorithm" by Heule, Nunkesser and Hall: a harmonic mean over the per-bin
// maximum ranks, the alpha constants from the paper, and empirical bias
// correction by interpolating precomputed breakpoints. There is no sparse
// representation and no linear counting fallback; register bitmasks have to
// exist from the first insertion for the algebra to hold, so estimates for
// very small sets carry about one element of wobble.
//
// Sketches are not safe for concurrent mutation; see the Sketch type for the
// single-writer contract.
//
// The HyperLogLog++ paper is available at
// http://static.googleusercontent.com/media/research.google.com/en/us/pubs/archive/40671.pdf
package hllset
