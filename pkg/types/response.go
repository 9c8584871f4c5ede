package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Retryable tells the UI whether to offer a retry affordance.
	Retryable bool `json:"retryable,omitempty"`
	Details   any  `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
