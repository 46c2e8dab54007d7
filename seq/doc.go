/*
Package seq provides biological sequences encoded over symbol alphabets.

A Sequence is a succession of symbols drawn from a fixed Alphabet. The
alphabet assigns every symbol a code, its position in the alphabet's
ordering, and a sequence stores only those codes, packed into the smallest
unsigned integer width that can represent every code of its alphabet. The
coded form is what alignment engines and substitution matrix indexers
consume; the symbol form is recovered on demand by decoding through the
alphabet.

Sequences of different alphabets can be concatenated when one alphabet
extends the other, i.e. the smaller alphabet's symbol ordering is a prefix
of the larger's. Extension guarantees that every code of the smaller
alphabet means the same symbol under the larger one, so code arrays can be
joined without re-encoding.

Raw code access (Code, SetCode, SetRange) never validates codes against the
alphabet. A sequence holding out-of-range codes reports false from IsValid,
and decoding such a sequence fails. This is deliberate: bulk code
manipulation is the hot path, and callers that bypass symbol encoding are
expected to check validity themselves.
*/
package seq
