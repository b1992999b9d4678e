package dto

type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type Priority struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Status struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
