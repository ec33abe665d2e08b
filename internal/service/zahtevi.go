package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/DamirBesirovic/tradeflow/internal/gateway"
	"github.com/DamirBesirovic/tradeflow/internal/model"
)

const zahteviPath = "/api/Zahtevi"

const defaultInboxPageSize = 7

// Zahtevi handles buyer-to-seller contact requests.
type Zahtevi struct {
	gw *gateway.Gateway
}

// NewZahtevi creates the contact-request service.
func NewZahtevi(gw *gateway.Gateway) *Zahtevi {
	return &Zahtevi{gw: gw}
}

// Create sends a contact request to a listing's seller.
func (z *Zahtevi) Create(ctx context.Context, req model.CreateZahtev) error {
	if err := z.gw.Post(ctx, zahteviPath, req, nil); err != nil {
		return fmt.Errorf("failed to create zahtev: %w", err)
	}
	return nil
}

// Inbox pages through the authenticated seller's requests. procitano nil
// returns both read and unread requests.
func (z *Zahtevi) Inbox(ctx context.Context, pageNumber, pageSize int, procitano *bool) (model.ZahtevPage, error) {
	if pageNumber <= 0 {
		pageNumber = 1
	}
	if pageSize <= 0 {
		pageSize = defaultInboxPageSize
	}

	query := url.Values{}
	query.Set("pageNumber", strconv.Itoa(pageNumber))
	query.Set("pageSize", strconv.Itoa(pageSize))
	if procitano != nil {
		query.Set("procitano", strconv.FormatBool(*procitano))
	}

	var page model.ZahtevPage
	if err := z.gw.Get(ctx, zahteviPath, query, &page); err != nil {
		return model.ZahtevPage{}, fmt.Errorf("failed to list zahtevi: %w", err)
	}
	return page, nil
}

// MarkAsRead flags a request as read.
func (z *Zahtevi) MarkAsRead(ctx context.Context, id string) error {
	if err := z.gw.Put(ctx, zahteviPath+"/mark-as-read/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to mark zahtev %s as read: %w", id, err)
	}
	return nil
}

// GetWithOglas fetches a request together with its listing summary.
func (z *Zahtevi) GetWithOglas(ctx context.Context, id string) (model.Zahtev, error) {
	var zahtev model.Zahtev
	if err := z.gw.Get(ctx, zahteviPath+"/"+id+"/with-oglas", nil, &zahtev); err != nil {
		return model.Zahtev{}, fmt.Errorf("failed to fetch zahtev %s: %w", id, err)
	}
	return zahtev, nil
}
