package models

// HealthResponse is the body of the GET /health endpoint.
type HealthResponse struct {
	// Status is "OK" whenever the service is able to answer at all.
	Status string `json:"status"`
}

// ServiceInfoResponse is the body of the root index endpoint. It
// identifies the service and its running version to callers probing
// the API surface.
type ServiceInfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
