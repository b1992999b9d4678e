package domain

type Category struct {
	ID          int64
	Name        string
	Description *string
}

type Priority struct {
	ID   int64
	Name string
}

type Status struct {
	ID   int64
	Name string
}
