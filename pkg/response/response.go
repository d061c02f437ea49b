package response

// Response is the envelope of every JSON answer.
type Response struct {
	Status     string      `json:"status"` // "success" or "error"
	StatusCode int         `json:"status_code"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Details    []string    `json:"details,omitempty"` // per-field validation failures
}

func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}

// Invalid reports a rejected payload along with the offending fields.
func Invalid(statusCode int, err string, details []string) Response {
	resp := Error(statusCode, err)
	resp.Details = details
	return resp
}
