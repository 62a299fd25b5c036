package search

import (
	"math"
	"sort"
	"strings"

	"github.com/loadstone/loadstone/internal/core/domain"
)

// BM25 parameters and boost constants. The boosts are ad hoc multiplicative
// heuristics layered over BM25's own term-frequency signal; treat them as
// tunables validated by the scenario tests, not as fixed truths.
const (
	k1 = 1.5
	b  = 0.75

	// authorityStep and authorityCap shape the "widely depended upon"
	// boost: 1 + authorityStep * min(refs, authorityCap).
	authorityStep = 0.15
	authorityCap  = 10

	// nameBoost applies when the display name starts with or contains the
	// first query token.
	nameBoost = 1.5

	// trimmedListCap bounds the requirement/incompatibility views copied
	// onto a hit.
	trimmedListCap = 5
)

// Engine scores free-text queries against one index. Construct per database;
// the index may be reused across many queries.
type Engine struct {
	idx *Index
}

// NewEngine builds an Engine (and its index) for a database.
func NewEngine(db *domain.Database) *Engine {
	return &Engine{idx: NewIndex(db)}
}

// NewEngineWithIndex wraps a prebuilt index, for callers that cache the
// index alongside the database.
func NewEngineWithIndex(idx *Index) *Engine {
	return &Engine{idx: idx}
}

// Search returns up to limit hits ranked by boosted BM25 score, ties broken
// by name. Empty and too-short queries, and an empty index, degrade to an
// empty result list.
func (e *Engine) Search(query string, limit int) []domain.SearchHit {
	if limit <= 0 || e.idx.Len() == 0 {
		return nil
	}
	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}
	terms := expand(queryTokens)

	// Candidate generation: only documents holding at least one query term
	// are scored; the corpus is never scanned in full.
	type candidate struct {
		bm25    float64
		matched []string
	}
	candidates := make(map[int]*candidate)
	n := float64(e.idx.Len())

	for _, term := range terms {
		postings, ok := e.idx.postings[term]
		if !ok {
			continue
		}
		idf := math.Log((n-float64(e.idx.df[term])+0.5)/(float64(e.idx.df[term])+0.5) + 1)
		for _, p := range postings {
			c := candidates[p.doc]
			if c == nil {
				c = &candidate{}
				candidates[p.doc] = c
			}
			doc := e.idx.docs[p.doc]
			tf := float64(p.tf)
			norm := tf + k1*(1-b+b*float64(doc.length)/e.idx.avgLen)
			c.bm25 += idf * tf * (k1 + 1) / norm
			c.matched = append(c.matched, term)
		}
	}

	firstToken := queryTokens[0]
	hits := make([]domain.SearchHit, 0, len(candidates))
	for docID, c := range candidates {
		doc := e.idx.docs[docID]

		authority := 1 + authorityStep*float64(min(e.idx.refs[doc.key], authorityCap))
		name := 1.0
		lowerName := strings.ToLower(doc.name)
		if strings.HasPrefix(lowerName, firstToken) || strings.Contains(lowerName, firstToken) {
			name = nameBoost
		}

		sort.Strings(c.matched)
		hits = append(hits, domain.SearchHit{
			ModName:   doc.name,
			CleanName: doc.key,
			Score:     c.bm25 * authority * name,
			Breakdown: domain.ScoreBreakdown{
				BM25:           c.bm25,
				AuthorityBoost: authority,
				NameBoost:      name,
			},
			MatchedTerms:      c.matched,
			Snippet:           snippet(doc.rec, c.matched),
			Requirements:      trim(doc.rec.Requirements),
			Incompatibilities: trim(doc.rec.Incompatibilities),
			Tags:              trim(doc.rec.Tags),
			NexusModID:        doc.rec.NexusModID,
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].ModName < hits[j].ModName
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

// snippet prefers the first advisory message containing a matched term and
// falls back to a synthesized requirements line.
func snippet(rec *domain.ModRecord, matched []string) string {
	for _, msg := range rec.Messages {
		lower := strings.ToLower(msg)
		for _, term := range matched {
			if strings.Contains(lower, term) {
				return msg
			}
		}
	}
	if len(rec.Requirements) > 0 {
		return "Requires: " + strings.Join(trim(rec.Requirements), ", ")
	}
	return ""
}

func trim(list []string) []string {
	if len(list) <= trimmedListCap {
		return list
	}
	return list[:trimmedListCap]
}
