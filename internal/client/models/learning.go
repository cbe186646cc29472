package models

// LearningItem is one unit of tracked learning. IDs are assigned by the server.
type LearningItem struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// LearningSection groups the items of one category for display.
type LearningSection struct {
	Title string
	Data  []LearningItem
}

// CloneSections deep-copies sections so callers can't alias internal state.
func CloneSections(sections []LearningSection) []LearningSection {
	if sections == nil {
		return nil
	}
	out := make([]LearningSection, len(sections))
	for i, s := range sections {
		out[i] = LearningSection{Title: s.Title, Data: append([]LearningItem(nil), s.Data...)}
	}
	return out
}
