package dto

// MessageRequest is an inbound text from a messaging endpoint.
type MessageRequest struct {
	EndpointID string `json:"endpoint_id" validate:"required"`
	Text       string `json:"text"`
}

// MessageResponse carries the reply to send back to the endpoint.
type MessageResponse struct {
	Reply string `json:"reply"`
}
