package types

// Task statuses recognized by the build.
const (
	TaskPending   = "pending"
	TaskCompleted = "completed"
)

// Task represents a single follow-up item. Dates are ISO-8601
// YYYY-MM-DD strings; Due and Completed may be empty.
type Task struct {
	Task           string   `json:"task" validate:"required"`
	Status         string   `json:"status" validate:"required,oneof=pending completed"`
	Due            string   `json:"due,omitempty"`
	Created        string   `json:"created,omitempty"`
	Completed      string   `json:"completed,omitempty"`
	LinkedContacts []string `json:"linkedContacts,omitempty"`
	LinkedJobs     []string `json:"linkedJobs,omitempty"` // "Company - Role" references
}

// TasksData is the full tasks document.
type TasksData struct {
	Tasks []Task `json:"tasks"`
}
