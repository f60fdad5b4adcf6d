// Package degree samples degree sequences for configuration-model graphs.
//
// A Sequence is an immutable, ordered list of target degrees; index i is the
// degree of node i. The Sampler draws each entry from a Gamma distribution
// (shape 10, scale 1 by default), folds it into [1, maxDegree] with
//
//	d = floor(g) mod maxDegree + 1
//
// and, if the total is odd, adds one to the LAST entry. That single
// adjustment is the only way an entry can reach maxDegree+1; downstream
// consumers that pre-generate one artefact per degree must account for it.
//
// Errors:
//
//	ErrInvalidArgument  – size < 1 or maxDegree < 1
//	ErrBadDistribution  – shape or scale not finite and positive (NewSampler)
//
// A *Sampler owns its random stream and is not safe for concurrent use.
package degree
