package stats

import (
	"math"
	"sort"

	"github-streak-viewer/internal/github"
)

// defaultLanguageColor is used when GitHub has no color for a language.
const defaultLanguageColor = "#888888"

// maxLanguages is how many languages the aggregated list keeps.
const maxLanguages = 8

// AggregateLanguages accumulates byte sizes per language across all
// repositories and returns the top languages ranked by size, with
// percentages of the grand total rounded to one decimal. Repositories
// without a language breakdown contribute nothing. Ties keep their input
// encounter order.
func AggregateLanguages(repos []github.RepositoryNode) []LanguageStat {
	byName := make(map[string]*LanguageStat)
	var order []string
	totalSize := 0

	for _, repo := range repos {
		for _, edge := range repo.Languages.Edges {
			name := edge.Node.Name
			ls, ok := byName[name]
			if !ok {
				color := edge.Node.Color
				if color == "" {
					color = defaultLanguageColor
				}
				ls = &LanguageStat{Name: name, Color: color}
				byName[name] = ls
				order = append(order, name)
			}
			ls.Size += edge.Size
			totalSize += edge.Size
		}
	}

	if len(order) == 0 {
		return nil
	}

	languages := make([]LanguageStat, 0, len(order))
	for _, name := range order {
		ls := *byName[name]
		if totalSize > 0 {
			ls.Percentage = math.Round(float64(ls.Size)/float64(totalSize)*1000) / 10
		}
		languages = append(languages, ls)
	}

	sort.SliceStable(languages, func(i, j int) bool {
		return languages[i].Size > languages[j].Size
	})

	if len(languages) > maxLanguages {
		languages = languages[:maxLanguages]
	}
	return languages
}
