package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// RejectionResponse carries the machine-readable reason for a policy
// rejection so the club UI can explain the limiting factor.
type RejectionResponse struct {
	Error  string `json:"error" example:"no studio hours left this month"`
	Reason string `json:"reason" example:"no_hours_left"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
