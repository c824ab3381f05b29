package domain

// ErrorResponse covers both error shapes the pipeline returns:
// {"error": "..."} from the app and {"detail": "..."} from the framework.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail any    `json:"detail"`
}

func (e *ErrorResponse) Message() string {
	if e == nil {
		return ""
	}
	if e.Error != "" {
		return e.Error
	}

	switch detail := e.Detail.(type) {
	case string:
		return detail
	case nil:
		return ""
	default:
		// validation errors come back as a list of objects
		return "invalid request"
	}
}
