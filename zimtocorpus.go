// Package zimtocorpus converts static dumps of encyclopedia-style HTML
// articles into a fault-tolerant, line-oriented corpus. It recovers the
// section hierarchy of each article from loosely nested markup, reduces it
// to a minimal structural document, and re-emits one JSON-encoded rendering
// per line, one compressed output file per input archive.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or format (e.g., goquery/, zim/, jsonl/,
// sqlite/), with batch orchestration in convert/.
package zimtocorpus
