package dto

type AskInput struct {
	Question string
	Subject  string
}

type AskOutput struct {
	Answer   string
	Degraded bool
}
