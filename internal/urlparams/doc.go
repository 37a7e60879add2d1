// Package urlparams converts URL search and hash strings to and from an
// ordered key/value representation.
//
// Decoding is lenient: it never fails, malformed percent-escapes are kept
// verbatim and values are trimmed. Encoding drops empty values so that
// Serialize followed by SearchParams reproduces every non-empty entry.
//
// The main entry points are [SearchParams], [HashParams], [Serialize],
// [GetOrigin], [UpdateSearchString] and [CleanSearchString].
package urlparams
