// Package export serializes a generated multigraph into an edge-list
// document for downstream tooling (simulation-model generators, plotting).
//
// A Document carries the run ID, the seed that replays the run, the
// maxDegree bound used for sampling and the bound actually realized (which
// may exceed it by one after parity correction), plus nodes, degrees and
// edges in insertion order.
//
// Encodings are chosen from the file extension:
//
//	.yaml / .yml   YAML (gopkg.in/yaml.v3)
//	.json          JSON
//	<any>.sz       snappy-framed stream of the inner encoding
//
// ReadFile/Read verify that the edge list realizes the recorded degrees, so a
// truncated or hand-edited file is reported as ErrCorruptDocument.
package export
