package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/michelleon/overwatch-stats/internal/domain/careerstats"
)

// Order is the direction heroes are ranked by time played.
type Order string

const (
	OrderAscending  Order = "asc"
	OrderDescending Order = "desc"
)

func ParseOrder(raw string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(raw))) {
	case "", OrderAscending:
		return OrderAscending, nil
	case OrderDescending:
		return OrderDescending, nil
	default:
		return "", fmt.Errorf("%w: invalid order %q: valid values are %s, %s", ErrInvalidInput, raw, OrderAscending, OrderDescending)
	}
}

const (
	quickPlayKey   = "quickPlayStats"
	topHeroesKey   = "topHeroes"
	careerStatsKey = "careerStats"
	timePlayedKey  = "timePlayedInSeconds"
)

// SelectTopHeroes ranks the heroes under quickPlayStats.topHeroes by
// timePlayedInSeconds. Ascending order keeps the least played hero first.
// Equal play times are ordered by hero name.
func SelectTopHeroes(doc careerstats.Document, order Order) ([]careerstats.TopHero, error) {
	bucket, err := quickPlaySection(doc, topHeroesKey)
	if err != nil {
		return nil, err
	}

	out := make([]careerstats.TopHero, 0, len(bucket))
	for name, raw := range bucket {
		detail, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s.%s is %s, expected object", ErrMalformedDocument, quickPlayKey, topHeroesKey, name, jsonKind(raw))
		}
		seconds, ok := detail[timePlayedKey].(float64)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s.%s.%s is %s, expected number", ErrMalformedDocument, quickPlayKey, topHeroesKey, name, timePlayedKey, jsonKind(detail[timePlayedKey]))
		}
		out = append(out, careerstats.TopHero{
			Name:              name,
			TimePlayedSeconds: seconds,
			Detail:            detail,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TimePlayedSeconds != out[j].TimePlayedSeconds {
			if order == OrderDescending {
				return out[i].TimePlayedSeconds > out[j].TimePlayedSeconds
			}
			return out[i].TimePlayedSeconds < out[j].TimePlayedSeconds
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

// HeroNames returns the names of the first limit heroes. A non-positive limit
// keeps every hero.
func HeroNames(heroes []careerstats.TopHero, limit int) []string {
	if limit <= 0 || limit > len(heroes) {
		limit = len(heroes)
	}
	out := make([]string, 0, limit)
	for _, h := range heroes[:limit] {
		out = append(out, h.Name)
	}
	return out
}

// CareerStats returns quickPlayStats.careerStats. An absent or null section is
// an empty mapping.
func CareerStats(doc careerstats.Document) (map[string]any, error) {
	return quickPlaySection(doc, careerStatsKey)
}

func quickPlaySection(doc careerstats.Document, key string) (map[string]any, error) {
	rawQuickPlay, ok := doc.Raw[quickPlayKey]
	if !ok || rawQuickPlay == nil {
		return map[string]any{}, nil
	}
	quickPlay, ok := rawQuickPlay.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s, expected object", ErrMalformedDocument, quickPlayKey, jsonKind(rawQuickPlay))
	}

	rawSection, ok := quickPlay[key]
	if !ok || rawSection == nil {
		return map[string]any{}, nil
	}
	section, ok := rawSection.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s is %s, expected object", ErrMalformedDocument, quickPlayKey, key, jsonKind(rawSection))
	}
	return section, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64, int, int64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
