package domain

// Project is a tracked engagement as returned by the business API.
// The portal only reads projects; the API owns their lifecycle.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"project_name"`
	Description string `json:"description"`
	ClientName  string `json:"client_name"`
	Status      Status `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type statusView struct {
	label string
	class string
}

const unknownStatusClass = "bg-gray-100 text-gray-500"

var statusConfig = map[Status]statusView{
	StatusOpen:       {label: "新規", class: "bg-green-100 text-green-800"},
	StatusInProgress: {label: "進行中", class: "bg-blue-100 text-blue-800"},
	StatusCompleted:  {label: "完了", class: "bg-gray-100 text-gray-800"},
}

// Known reports whether s is one of the statuses the API documents.
func (s Status) Known() bool {
	_, ok := statusConfig[s]
	return ok
}

// Label is the Japanese display text; unknown statuses render as-is.
func (s Status) Label() string {
	if v, ok := statusConfig[s]; ok {
		return v.label
	}
	return string(s)
}

// Class is the badge style class.
func (s Status) Class() string {
	if v, ok := statusConfig[s]; ok {
		return v.class
	}
	return unknownStatusClass
}
