package tsdecl

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Dump writes the node tree to w as YAML. It is a debugging aid for
// generators: the output shows the assembled tree (including attached
// comments), not declaration text. A single node is encoded bare; multiple
// nodes are encoded as a sequence.
func Dump(w io.Writer, nodes ...Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if len(nodes) == 1 {
		if err := enc.Encode(nodes[0]); err != nil {
			return err
		}
	} else {
		if err := enc.Encode(nodes); err != nil {
			return err
		}
	}
	return enc.Close()
}
