/*
Package palette assigns visually distinct colors to connection type identifiers.

# Overview

A node-graph editor colors each connection by the type of data it carries.
Types are arbitrary strings and are not registered up front, so colors are
chosen the first time a type is seen:

	a := palette.NewAssigner()

	number := a.Assign("Number") // searched and recorded
	again := a.Assign("Number")  // same color, no search
	text := a.Assign("Text")     // kept away from "Number"

	_, ok := a.Lookup("Bool") // false; Lookup never assigns

# Search

Colors come from a stable hash of the identifier. Starting at seed 50 the
assigner derives an HSL candidate from Hash(typeID, seed), converts it to
RGB and compares it with every color already assigned. A candidate whose
squared RGB distance to any of them is 2000 or less is rejected and the
next lower seed is tried. When seed 0 is reached its candidate is kept
even if it collides, so Assign always returns.

Results are deterministic for a given sequence of calls. Because later
colors avoid earlier ones, assigning "A" then "B" can give "B" a different
color than assigning "B" first.

# Thread Safety

Assigner is not safe for concurrent use. Serialize calls per Assigner or
confine it to one goroutine.
*/
package palette
