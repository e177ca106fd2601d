/*
Package store reads and writes the Store text format used on the xcall wire.

A store is a flat list of `name = value` pairs. Values are delimited strings
("..."), undelimited words, integers, floats, lists in parentheses and nested
blocks in braces:

	message = "disk \"sda\" is full", xcall = { function = "logWarning" }

Encode always produces text the host can read back: string values are quoted
and escaped, keys are quoted whenever they would otherwise be ambiguous.

Decode is the opposite of strict. Host replies are parsed on a best-effort
basis and every field that could be recovered is returned, so a garbled or
empty reply yields a smaller (possibly empty) Record rather than an error.
Parse exposes the same result together with the syntax problems it skipped.
Only one level of nesting is kept; deeper blocks are skipped.
*/
package store
