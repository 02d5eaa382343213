/*
Package ast defines the syntax tree of tlox programs.

Nodes are immutable once the parser has built them. Every node carries the
span of source text it was built from. Name occurrences are represented by
*Ident; the resolver annotates them in a side table keyed by the pointer, so
each occurrence of a name in the source must be a distinct *Ident.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast
