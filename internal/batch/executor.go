// Package batch applies a per-target operation across many targets without
// letting any single failure abort the rest.
package batch

// Failure records one failed target.
type Failure struct {
	TargetID string `json:"targetId"`
	Message  string `json:"message"`
}

// Result aggregates a batch run. Completed counts attempts, not successes,
// and always reaches Total.
type Result struct {
	Total     int       `json:"total"`
	Completed int       `json:"completed"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Errors    []Failure `json:"errors"`
}

// Run applies op to every target sequentially, in the given order, so the
// error list is order-stable and reproducible across runs.
func Run(targetIDs []string, op func(targetID string) error) Result {
	result := Result{Total: len(targetIDs)}
	for _, id := range targetIDs {
		result.Completed++
		if err := op(id); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, Failure{TargetID: id, Message: err.Error()})
			continue
		}
		result.Succeeded++
	}
	return result
}
