package learnings

import "github.com/dmitrijs2005/softwareslayer/internal/client/models"

// Partition groups items into one section per category, in category order.
// Items keep their relative order; an item whose category is not listed is
// dropped. Matching is exact and case-sensitive.
func Partition(categories []string, items []models.LearningItem) []models.LearningSection {
	sections := make([]models.LearningSection, 0, len(categories))
	for _, c := range categories {
		data := make([]models.LearningItem, 0)
		for _, it := range items {
			if it.Category == c {
				data = append(data, it)
			}
		}
		sections = append(sections, models.LearningSection{Title: c, Data: data})
	}
	return sections
}
