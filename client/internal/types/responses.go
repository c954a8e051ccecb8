package types

// ------------------------------
// Response Types
// ------------------------------

// Page is one page of a paged listing.
type Page[T any] struct {
	Records []T   `json:"records"`
	Total   Count `json:"total"`
	Size    Count `json:"size"`
	Current Count `json:"current"`
	Pages   Count `json:"pages"`
}

// CreatePortraitStyleRedrawTaskResponse acknowledges a queued redraw task.
type CreatePortraitStyleRedrawTaskResponse struct {
	RequestID string         `json:"requestId"`
	Code      string         `json:"code,omitempty"`
	Message   string         `json:"message,omitempty"`
	Output    RedrawTaskInfo `json:"output"`
}

// GetPortraitStyleRedrawTaskResponse reports the state of a redraw task.
type GetPortraitStyleRedrawTaskResponse struct {
	RequestID string         `json:"requestId"`
	Output    RedrawTaskInfo `json:"output"`
}

// RedrawTaskInfo is the task body shared by create and poll responses.
// TaskStatus is one of PENDING, RUNNING, SUSPENDED, SUCCEEDED, FAILED, UNKNOWN.
type RedrawTaskInfo struct {
	TaskID        string         `json:"taskId"`
	TaskStatus    string         `json:"taskStatus"`
	SubmitTime    string         `json:"submitTime,omitempty"`
	ScheduledTime string         `json:"scheduledTime,omitempty"`
	StartTime     string         `json:"startTime,omitempty"`
	EndTime       string         `json:"endTime,omitempty"`
	ErrorCode     int            `json:"errorCode,omitempty"`
	ErrorMessage  string         `json:"errorMessage,omitempty"`
	StyleIndex    int            `json:"styleIndex,omitempty"`
	Results       []RedrawResult `json:"results,omitempty"`
}

// RedrawResult is one generated image.
type RedrawResult struct {
	URL string `json:"url"`
}

// Done reports whether the task reached a terminal state.
func (t RedrawTaskInfo) Done() bool {
	switch t.TaskStatus {
	case "SUCCEEDED", "FAILED", "UNKNOWN":
		return true
	}
	return false
}
