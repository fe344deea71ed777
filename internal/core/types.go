package core

// CheckResult reports the verdict for one (provider, handle) pair.
//
// When Err is non-empty the verdict is indeterminate: Taken and Available
// are both false and consumers must never treat the handle as claimed.
type CheckResult struct {
	Provider    string `json:"provider"`
	DisplayName string `json:"displayName"`
	URL         string `json:"url,omitempty"`
	Taken       bool   `json:"taken"`
	Available   bool   `json:"available"`
	Err         string `json:"error,omitempty"`
	FromCache   bool   `json:"fromCache,omitempty"`
}

// Summary aggregates verdict counts for one handle.
type Summary struct {
	Available int `json:"available"`
	Taken     int `json:"taken"`
	Errors    int `json:"errors"`
}

// CheckAllResult holds all provider verdicts for a single handle,
// ordered by provider registry order.
type CheckAllResult struct {
	Username string         `json:"username"`
	Results  []*CheckResult `json:"results"`
	Summary  Summary        `json:"summary"`
}

// BulkCheckResult holds one CheckAllResult per input handle, in input order.
type BulkCheckResult struct {
	Results []*CheckAllResult `json:"results"`
}

// Summarize recomputes the aggregate counts from the result list.
func (r *CheckAllResult) Summarize() {
	if r == nil {
		return
	}

	summary := Summary{}
	for _, result := range r.Results {
		if result == nil {
			continue
		}
		switch {
		case result.Err != "":
			summary.Errors++
		case result.Taken:
			summary.Taken++
		default:
			summary.Available++
		}
	}
	r.Summary = summary
}

// FullyAvailable reports whether every provider returned a clean
// "available" verdict. Errors count as not available.
func (r *CheckAllResult) FullyAvailable() bool {
	if r == nil || len(r.Results) == 0 {
		return false
	}
	for _, result := range r.Results {
		if result == nil || result.Taken || result.Err != "" {
			return false
		}
	}
	return true
}

// AnyTaken reports whether at least one provider returned a taken verdict.
func (r *CheckAllResult) AnyTaken() bool {
	if r == nil {
		return false
	}
	for _, result := range r.Results {
		if result != nil && result.Taken {
			return true
		}
	}
	return false
}
