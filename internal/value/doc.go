// Package value defines the runtime value model and the interpreter's
// scope stack.
//
// Values are a tagged set: Int, Float, Str, Boolean, Function, BuiltIn
// and Null. Functions are first-class; so are builtins. Each value
// coerces to every scalar kind (ToInt, ToFloat, ToStr, ToBool), and the
// language's operators are total functions over pairs of values:
// combinations with no defined meaning evaluate to Null rather than
// raising an error. That null propagation is the language's answer to
// dynamic typing: adding a function to an integer is not a crash, it
// is null.
//
// ScopeStack holds the variable bindings as a stack of frames. Reads
// search from the innermost frame outward and miss as Null; assignment
// overwrites the nearest existing binding or creates one in the
// innermost frame.
package value
