package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// PausedResponse is returned when order admission is paused.
type PausedResponse struct {
	Message          string `json:"message"`
	ServiceType      string `json:"serviceType"`
	PauseReason      string `json:"pauseReason"`
	RemainingMinutes int    `json:"remainingMinutes"`
}

// MessageResponse carries an informational message.
type MessageResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
