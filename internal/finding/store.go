package finding

// Store holds the findings of one run, one bucket per category. A Store is a
// value: Replace returns an updated copy and never touches the receiver, so a
// snapshot handed out earlier stays valid.
type Store struct {
	Security    []Finding `json:"security" yaml:"security"`
	Performance []Finding `json:"performance" yaml:"performance"`
	Docs        []Finding `json:"docs" yaml:"docs"`
	Debt        []Finding `json:"debt" yaml:"debt"`
}

// Bucket returns the findings recorded for c. Unknown categories have none.
func (s Store) Bucket(c Category) []Finding {
	switch c {
	case CategorySecurity:
		return s.Security
	case CategoryPerformance:
		return s.Performance
	case CategoryDocs:
		return s.Docs
	case CategoryDebt:
		return s.Debt
	}
	return nil
}

// Replace returns a copy of s whose bucket for c holds exactly findings.
// Earlier contents of that bucket are dropped, never appended to. Every
// stored finding has its Category set to c, whatever the producer wrote.
func (s Store) Replace(c Category, findings []Finding) Store {
	bucket := make([]Finding, len(findings))
	copy(bucket, findings)
	for i := range bucket {
		bucket[i].Category = c
	}

	switch c {
	case CategorySecurity:
		s.Security = bucket
	case CategoryPerformance:
		s.Performance = bucket
	case CategoryDocs:
		s.Docs = bucket
	case CategoryDebt:
		s.Debt = bucket
	}
	return s
}

// Flatten concatenates the buckets in fixed category order, keeping each
// bucket's emission order.
func (s Store) Flatten() []Finding {
	all := make([]Finding, 0, s.Len())
	for _, c := range Categories {
		all = append(all, s.Bucket(c)...)
	}
	return all
}

// Len is the total number of findings across all buckets.
func (s Store) Len() int {
	return len(s.Security) + len(s.Performance) + len(s.Docs) + len(s.Debt)
}
