package handler

// baseResponse is the canonical envelope every endpoint returns. Payload
// fields are added by embedding it in endpoint-specific response types.
type baseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ok(message string) baseResponse {
	return baseResponse{Success: true, Message: message}
}
