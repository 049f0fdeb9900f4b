// Package usage fetches billing-window utilization from the oauth usage
// endpoint.
package usage

// Snapshot mirrors the usage endpoint response. Buckets the account does not
// have come back as null; unknown keys are ignored.
type Snapshot struct {
	FiveHour     *Bucket `json:"five_hour"`
	SevenDay     *Bucket `json:"seven_day"`
	Bonus        *Bucket `json:"bonus"`
	ExtraCredits *Bucket `json:"extra_credits"`
}

// Bucket is one rate-limit window.
type Bucket struct {
	Utilization float64 `json:"utilization"` // 0.0–100.0
	ResetsAt    *string `json:"resets_at"`   // ISO 8601 or null
}
