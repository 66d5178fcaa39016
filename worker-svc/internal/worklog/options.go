package worklog

import "sitesupply/upstream"

// ProjectNames lists the distinct project names in first-seen order.
func ProjectNames(rows []upstream.ProjectRow) []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, row := range rows {
		if row.ProjectName == "" || seen[row.ProjectName] {
			continue
		}
		seen[row.ProjectName] = true
		names = append(names, row.ProjectName)
	}
	return names
}

// TermsFor lists the distinct term labels recorded under one project. A row
// with an engineering item yields the combined "term - engineeringItem" label.
func TermsFor(rows []upstream.ProjectRow, project string) []string {
	seen := make(map[string]bool)
	terms := []string{}
	for _, row := range rows {
		if row.ProjectName != project || row.Term == "" {
			continue
		}
		label := row.Term
		if row.EngineeringItem != "" {
			label += " - " + row.EngineeringItem
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		terms = append(terms, label)
	}
	return terms
}
