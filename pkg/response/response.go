package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	Level    string `json:"level"`
	IsAdmin  bool   `json:"is_admin"`
}

type IDResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// BulkResultResponse reports the outcome of a bulk approve/reject call.
type BulkResultResponse struct {
	Requested int      `json:"requested"`
	Success   int      `json:"success"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
}

type PagedResponse struct {
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Items interface{} `json:"items"`
}
