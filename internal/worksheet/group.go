package worksheet

import "github.com/abhisek/worksheetgen/internal/exercise"

// Group is the run of records sharing one sub-topic header.
type Group struct {
	Label   string
	Records []exercise.Record
}

// GroupBySubtopic groups records by sub-topic in order of first
// occurrence. Records without a sub-topic go under general. Labels are
// compared exactly, so a record tagged with the general label itself joins
// the same group.
func GroupBySubtopic(records []exercise.Record, general string) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, rec := range records {
		label := rec.Subtopic
		if label == "" {
			label = general
		}
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return groups
}
