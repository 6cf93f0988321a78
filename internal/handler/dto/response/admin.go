package response

import (
	"fieldservice/internal/usecase/assignment"
)

type ExpiryScanResponse struct {
	Scanned          int `json:"scanned"`
	Released         int `json:"released"`
	Skipped          int `json:"skipped"`
	FallbackRecorded int `json:"fallback_recorded"`
	Failed           int `json:"failed"`
}

func FromScanResult(r assignment.ScanResult) ExpiryScanResponse {
	var out ExpiryScanResponse
	_ = project(&out, &r)
	return out
}
