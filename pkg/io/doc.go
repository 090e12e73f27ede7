// Package io provides JSON and YAML import and JSON export for citation
// graphs, so graphs other than the built-in dataset can be sorted.
//
// # Format
//
//	{
//	  "nodes": [
//	    {"id": "review", "cites": ["study_b", "study_a"]},
//	    {"id": "study_b", "cites": ["study_a"]},
//	    {"id": "study_a"}
//	  ]
//	}
//
// An optional "edges" array of {"from", "to"} objects appends further
// successors to the "from" node. Node order in the file is the key order of
// the resulting [dag.Graph], which in turn fixes the tie-breaking of every
// sorter.
//
// The same document may be written as YAML; [ImportJSON] picks the decoder
// from the file extension.
//
// # Round Trip
//
// [WriteJSON] emits only the "nodes" form. Importing its output yields a
// graph with the same keys, in the same order, with the same successor lists.
package io
