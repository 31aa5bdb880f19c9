// Package adoc classifies regions of AsciiDoc text into syntactic categories
// for presentation. An ordered rule table over pattern descriptors produces
// candidate spans; a span-reservation protocol prevents rules from
// re-claiming text already claimed by a higher-precedence rule, with a
// one-byte retry-on-conflict so a rule can still match later in the region.
//
// One classification pass over one region is single-threaded and runs to
// completion; its reservation tracker is never shared. Callers wanting
// concurrent classification use separate passes over non-overlapping
// regions. Worst-case work is proportional to region length times rule
// count times the one-byte backoff retries, so bound region size to bound
// latency.
package adoc
