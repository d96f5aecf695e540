package core

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// digest hashes the given parts with BLAKE2b-256 and returns the hex
// encoding. It is deterministic for identical inputs, which the
// equality and dedup semantics depend on.
func digest(parts ...string) string {
	h, _ := blake2b.New(32, nil)
	h.Write([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(h.Sum(nil))
}

// structuralHash digests content together with the ordered child
// identifiers and the parent identifier. It changes whenever the
// object's content, child membership, or attachment point changes.
func structuralHash(o Object, content string) string {
	return digest(content, childIDs(o), parentID(o))
}

// childIDs joins the ordered child identifiers into one hash input.
func childIDs(o Object) string {
	children := o.Children()
	ids := make([]string, 0, len(children))
	for _, child := range children {
		ids = append(ids, child.ID())
	}
	return strings.Join(ids, ",")
}

// semanticHash digests content alone; it is invariant under
// reparenting and membership changes.
func semanticHash(content string) string {
	return digest(content)
}

// contentString renders arbitrary payload data into the hash input.
func contentString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
