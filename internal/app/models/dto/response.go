package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// ListResponse wraps every listing: {"data": [...]}.
type ListResponse struct {
	Data interface{} `json:"data"`
}

// CreatedResponse carries the key assigned by a create.
type CreatedResponse struct {
	ID int64 `json:"id" example:"1"`
}

// ChangesResponse carries the affected-row count of an update, archive or
// delete. Zero means the key did not exist.
type ChangesResponse struct {
	Changes int64 `json:"changes" example:"1"`
}
