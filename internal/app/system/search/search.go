// Package search ranks directory records against a free-text query.
//
// This is keyword term-frequency scoring, not full-text search: the query
// is split into tokens, each record is scored by how often the tokens
// occur across its searchable text, and the top results come back in
// descending score order. Records that match nothing are excluded.
package search

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fpl-indonesia/direktori/internal/domain/models"
)

// DefaultLimit is the top-K cutoff used when the caller passes limit <= 0.
const DefaultLimit = 5

// minTokenLen drops short fragments ("di", "ke") that would match almost
// every record.
const minTokenLen = 3

var tokenPattern = regexp.MustCompile(`\w+`)

// Match is one scored record. Index is the record's position in the
// slice handed to Rank, so callers can link back to it.
type Match struct {
	Record models.Organization
	Index  int
	Score  int
}

// Tokenize splits a query on non-word characters and keeps the lower-cased
// tokens of length >= 3.
func Tokenize(query string) []string {
	var out []string
	for _, tok := range tokenPattern.FindAllString(query, -1) {
		if len(tok) >= minTokenLen {
			out = append(out, strings.ToLower(tok))
		}
	}
	return out
}

// Rank scores every record by the sum of occurrence counts of each token
// across its name, address, category labels, and services text, drops
// zero-score records, and returns the top limit matches ordered by
// descending score. Ties keep the original relative record order.
func Rank(records []models.Organization, query string, limit int) []Match {
	if limit <= 0 {
		limit = DefaultLimit
	}

	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	var matches []Match
	for i, rec := range records {
		hay := haystack(rec)
		score := 0
		for _, tok := range tokens {
			score += strings.Count(hay, tok)
		}
		if score > 0 {
			matches = append(matches, Match{Record: rec, Index: i, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func haystack(rec models.Organization) string {
	var b strings.Builder
	b.WriteString(rec.Name)
	b.WriteByte(' ')
	b.WriteString(rec.Address)
	for _, c := range rec.Categories {
		b.WriteByte(' ')
		b.WriteString(string(c))
	}
	b.WriteByte(' ')
	b.WriteString(rec.ServicesRaw)
	return strings.ToLower(b.String())
}
