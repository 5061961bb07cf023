package dto

type TaskOutput struct {
	ID        string
	Text      string
	Completed bool
	DueDate   string
}

type AddInput struct {
	Text string
}
