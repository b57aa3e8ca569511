package finding

// SeverityUnspecified is the summary key for findings without a severity.
const SeverityUnspecified = "unspecified"

// Summary counts the findings currently held in a store.
type Summary struct {
	Total      int            `json:"total" yaml:"total"`
	ByCategory map[string]int `json:"by_category" yaml:"by_category"`
	BySeverity map[string]int `json:"by_severity" yaml:"by_severity"`
}

// Summarize enumerates s and counts its findings. Every category appears in
// ByCategory, including empty ones. Severity counts always add up to Total.
func Summarize(s Store) Summary {
	sum := Summary{
		ByCategory: make(map[string]int, len(Categories)),
		BySeverity: make(map[string]int),
	}
	for _, c := range Categories {
		bucket := s.Bucket(c)
		sum.ByCategory[string(c)] = len(bucket)
		sum.Total += len(bucket)
		for _, f := range bucket {
			key := string(f.Severity)
			if key == "" {
				key = SeverityUnspecified
			}
			sum.BySeverity[key]++
		}
	}
	return sum
}
