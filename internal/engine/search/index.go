package search

import (
	"strings"

	"github.com/loadstone/loadstone/internal/core/domain"
)

// posting records one document's term frequency for a term.
type posting struct {
	doc int
	tf  int
}

// docInfo carries per-document data needed at scoring time.
type docInfo struct {
	key    string // canonical clean name
	name   string // display name
	rec    *domain.ModRecord
	length int // token count of the indexed text
}

// Index is the inverted index over one mod database. Documents are the
// canonical records; each document's text is the concatenation of every
// textual field on the record. The index is immutable once built and safe
// for concurrent searches.
type Index struct {
	docs     map[int]docInfo
	postings map[string][]posting
	df       map[string]int
	avgLen   float64

	// refs counts, per clean name, how many other records name this mod as
	// a requirement or load-after target. Used as the authority signal.
	refs map[string]int
}

// NewIndex builds the inverted index for a database. Documents are assigned
// IDs in sorted key order so the index, and therefore ranking ties, are
// deterministic.
func NewIndex(db *domain.Database) *Index {
	idx := &Index{
		docs:     make(map[int]docInfo),
		postings: make(map[string][]posting),
		df:       make(map[string]int),
		refs:     make(map[string]int),
	}

	totalLen := 0
	for docID, key := range db.CanonicalKeys() {
		rec, _ := db.Get(key)
		tokens := tokenize(documentText(rec))
		idx.docs[docID] = docInfo{key: key, name: rec.Name, rec: rec, length: len(tokens)}
		totalLen += len(tokens)

		tf := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			tf[tok]++
		}
		for term, count := range tf {
			idx.postings[term] = append(idx.postings[term], posting{doc: docID, tf: count})
			idx.df[term]++
		}

		for _, req := range rec.Requirements {
			idx.refs[req]++
		}
		for _, after := range rec.LoadAfter {
			idx.refs[after]++
		}
	}

	if len(idx.docs) > 0 {
		idx.avgLen = float64(totalLen) / float64(len(idx.docs))
	}
	return idx
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	return len(idx.docs)
}

// documentText concatenates every textual field of a record into the single
// string the record is indexed under.
func documentText(rec *domain.ModRecord) string {
	var b strings.Builder
	join := func(parts []string) {
		for _, p := range parts {
			b.WriteByte(' ')
			b.WriteString(p)
		}
	}
	b.WriteString(rec.Name)
	join(rec.Requirements)
	join(rec.Incompatibilities)
	join(rec.LoadAfter)
	join(rec.LoadBefore)
	join(rec.Tags)
	join(rec.Messages)
	for _, patch := range rec.Patches {
		b.WriteByte(' ')
		b.WriteString(patch.For)
		b.WriteByte(' ')
		b.WriteString(patch.Name)
	}
	return b.String()
}
