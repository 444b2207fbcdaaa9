package model

// Envelope wraps every successful backend response
type Envelope[T any] struct {
	URL     string `json:"url,omitempty"`
	Success bool   `json:"success"`
	Result  T      `json:"result"`
}

// CountResult is the result of the count endpoints
type CountResult struct {
	Count int `json:"count"`
}

// ErrorBody is the structured error the backend sends with 4xx responses
type ErrorBody struct {
	Error *struct {
		Name string `json:"name"`
	} `json:"error"`
}

// Window is an offset/limit slice of a collection
type Window struct {
	Offset int
	Limit  int
}
