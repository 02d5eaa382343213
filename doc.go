/*
Package tlox is a resolving tree-walking interpreter for a small Lox-like
scripting language.

Programs are run in two phases. A static resolver assigns each variable
reference a lexical address (frames to cross, slot within the frame) or marks
it as global. A tree-walking evaluator then executes the syntax tree against a
chain of runtime frames which mirrors the resolver's scopes one to one, so no
name lookup is necessary for local variables at run time. Package structure is
as follows:

■ scanner: Package scanner tokenizes source text, using lexmachine.

■ ast: Package ast defines the syntax tree consumed by resolver and interpreter.

■ parser: Package parser is a recursive descent parser producing a desugared syntax tree.

■ runtime: Package runtime provides scopes, memory frames, global bindings and the
runtime value model.

■ resolver: Package resolver computes lexical addresses for identifiers.

■ interp: Package interp evaluates resolved programs.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tlox
