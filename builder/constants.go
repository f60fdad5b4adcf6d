// SPDX-License-Identifier: MIT
// Package: confgraph/builder
//
// constants.go - method names and reshuffle bounds shared by constructors.

package builder

// Method names prefix error messages for context.
const (
	// MethodConfigurationModel is the canonical name for the ConfigurationModel constructor.
	MethodConfigurationModel = "ConfigurationModel"
	// MethodRandomRegular is the canonical name for the RandomRegular constructor.
	MethodRandomRegular = "RandomRegular"
	// MethodGenerate is the canonical name for Generate/Run.
	MethodGenerate = "Generate"
)

// maxStubMatchingAttempts bounds the reshuffles of RandomRegular when the
// graph mode forbids loops or multi-edges.
const maxStubMatchingAttempts = 64

// minRRVertices is the smallest n accepted by RandomRegular.
const minRRVertices = 1
