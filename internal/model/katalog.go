package model

// Grad is a city reference record.
type Grad struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Kategorija is a material category reference record.
type Kategorija struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
