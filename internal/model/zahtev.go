package model

// ZahtevOglas is the listing summary embedded in a contact request when the
// request is fetched with its oglas.
type ZahtevOglas struct {
	ID         string  `json:"id"`
	Naslov     string  `json:"naslov"`
	Materijal  string  `json:"materijal"`
	Cena       float64 `json:"cena"`
	Kategorija string  `json:"kategorija"`
}

// Zahtev is a buyer-to-seller contact request.
type Zahtev struct {
	ID                      string       `json:"id"`
	OglasID                 string       `json:"oglas_Id"`
	GradID                  string       `json:"grad_Id"`
	KupacID                 string       `json:"kupac_Id"`
	Kolicina                float64      `json:"kolicina"`
	Poruka                  string       `json:"poruka"`
	Telefon                 string       `json:"telefon"`
	PoslatoVreme            string       `json:"poslatoVreme"`
	Procitano               bool         `json:"procitano"`
	VlasnikOglasaKorisnikID string       `json:"vlasnikOglasa_KorisnikId"`
	Oglas                   *ZahtevOglas `json:"oglas,omitempty"`
	Grad                    *Grad        `json:"grad,omitempty"`
}

// CreateZahtev is the payload for sending a contact request to a seller.
type CreateZahtev struct {
	OglasID  string  `json:"oglasId"`
	GradID   string  `json:"gradId"`
	Kolicina float64 `json:"kolicina"`
	Poruka   string  `json:"poruka"`
	Telefon  string  `json:"telefon"`
}

// ZahtevPage is one page of a seller's inbox.
type ZahtevPage struct {
	Items      []Zahtev `json:"items"`
	TotalCount int      `json:"totalCount"`
	PageNumber int      `json:"pageNumber"`
	PageSize   int      `json:"pageSize"`
}
