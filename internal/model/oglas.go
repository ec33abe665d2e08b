package model

// Oglas is a classified ad for construction material.
type Oglas struct {
	ID           string   `json:"id"`
	Naslov       string   `json:"naslov"`
	Opis         string   `json:"opis"`
	Materijal    string   `json:"materijal"`
	Cena         float64  `json:"cena"`
	Mesto        string   `json:"mesto"`
	ImageURLs    []string `json:"imageUrls"`
	Kategorija   string   `json:"kategorija"`
	KategorijaID string   `json:"kategorijaId"`
	Grad         string   `json:"grad"`
	GradID       string   `json:"gradId"`
	Prodavac     string   `json:"prodavac"`
	ProdavacID   string   `json:"prodavacId"`
}

// CreateOglas is the payload for creating a listing. Field casing follows
// the backend DTO exactly, including the uppercase ImageUrls.
type CreateOglas struct {
	Naslov       string   `json:"naslov"`
	Opis         string   `json:"opis"`
	Materijal    string   `json:"materijal"`
	Cena         float64  `json:"cena"`
	Mesto        string   `json:"mesto"`
	ImageURLs    []string `json:"ImageUrls"`
	KategorijaID string   `json:"kategorija_Id"`
	GradID       string   `json:"grad_Id"`
}

// OglasFilter narrows a listing search. Zero values mean "no filter";
// pagination defaults are applied by the service.
type OglasFilter struct {
	Page       int
	PageSize   int
	Search     string
	Kategorija string
	Grad       string
	MinPrice   *float64
	MaxPrice   *float64
}

// OglasPage is one page of listing search results.
type OglasPage struct {
	Items      []Oglas `json:"items"`
	TotalCount int     `json:"totalCount"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
}
