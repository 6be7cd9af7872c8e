// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// subst provides a substitution algebra for Hindley-Milner type inference.
//
// A substitution maps type-variables to type expressions. Substitutions are immutable values;
// every operation returns a new substitution or an error, and the zero value is the empty
// (identity) substitution. Substitutions are obtained only through validating constructors,
// which reject circular bindings with an occurs check.
//
// A unification driver typically grows a substitution with Extend or Combine as it discovers
// equalities between type-variables and type expressions, and simplifies expressions with Apply
// before comparing them further.
//
//
// Supported Operations:
//
//   * Construction with occurs check (New, Empty)
//   * Lookup and homomorphic application (Lookup, Apply)
//   * Single-binding extension with progressive normalization (Extend)
//   * Composition, equivalent to sequential application (Combine)
//   * Normalization of arbitrary binding sets into idempotent form (Normalize)
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Occurs check: https://en.wikipedia.org/wiki/Occurs_check
package subst
