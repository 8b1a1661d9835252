// Package pubdate determines the most probable "published" and "last
// updated" dates for an article, given its URL and a parsed markup tree.
// It harvests every plausible date signal (URL path segments, JSON-LD
// structured data, <time> elements, known meta-tag conventions), assigns
// each a heuristic confidence score, and deterministically picks the best
// candidate per date axis.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, dateparse/); the
// extraction pipeline itself lives in extract/.
package pubdate
