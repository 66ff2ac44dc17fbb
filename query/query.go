// Package query remembers what users search the catalogs for and suggests it back.
package query

import (
	"strings"
	"sync"

	"github.com/huewheel/huewheel/filesystem"
	"github.com/huewheel/huewheel/key"
	"github.com/huewheel/huewheel/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Scope separates histories of different catalogs.
type Scope string

const (
	Library Scope = "library"
	Schemes Scope = "schemes"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
	Scope Scope  `json:"scope"`
}

var cacher = gache.New[map[string]*queryRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var (
	suggestionCache   = make(map[string][]*queryRecord)
	suggestionCacheMu sync.Mutex
)

func recordKey(scope Scope, q string) string {
	return string(scope) + ":" + q
}

// Remember records a query or raises its rank by weight. Blank queries are ignored.
func Remember(scope Scope, q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*queryRecord)
	}

	k := recordKey(scope, q)
	if record, ok := cached[k]; ok {
		record.Rank += weight
	} else {
		cached[k] = &queryRecord{Rank: weight, Query: q, Scope: scope}
	}

	suggestionCacheMu.Lock()
	clear(suggestionCache)
	suggestionCacheMu.Unlock()

	return cacher.Set(cached)
}

// Suggest returns the best ranked past query matching q.
func Suggest(scope Scope, q string) mo.Option[string] {
	suggestions := SuggestMany(scope, q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns past queries fuzzily matching q, highest rank first.
func SuggestMany(scope Scope, q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)
	k := recordKey(scope, q)

	suggestionCacheMu.Lock()
	defer suggestionCacheMu.Unlock()

	records, ok := suggestionCache[k]
	if !ok {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if record.Scope == scope && fuzzy.Match(q, record.Query) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *queryRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})

		suggestionCache[k] = records
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
