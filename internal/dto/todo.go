package dto

import dom "github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/domain"

// CreateTodoRequest is the JSON body for POST /todos. Emptiness and length
// are validated in the service, after trimming and escaping.
type CreateTodoRequest struct {
	Title string `json:"title"`
}

// TodoResponse is the public item serialization. Title is the stored
// (already escaped) text.
type TodoResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Done   bool   `json:"done"`
	UserID int64  `json:"user_id"`
}

func TodoToResponse(t dom.Todo) TodoResponse {
	return TodoResponse{ID: t.ID, Title: t.Title, Done: t.Done, UserID: t.UserID}
}

func TodosToResponses(list []dom.Todo) []TodoResponse {
	out := make([]TodoResponse, len(list))
	for i := range list {
		out[i] = TodoToResponse(list[i])
	}
	return out
}
