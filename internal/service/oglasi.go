package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/DamirBesirovic/tradeflow/internal/gateway"
	"github.com/DamirBesirovic/tradeflow/internal/logger"
	"github.com/DamirBesirovic/tradeflow/internal/model"
)

const oglasiPath = "/api/Oglasi"

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// Oglasi handles listing CRUD and search.
type Oglasi struct {
	gw     *gateway.Gateway
	logger *logger.Logger
}

// NewOglasi creates the listings service.
func NewOglasi(gw *gateway.Gateway, logger *logger.Logger) *Oglasi {
	return &Oglasi{gw: gw, logger: logger}
}

// List searches listings with the given filter.
func (o *Oglasi) List(ctx context.Context, filter model.OglasFilter) (model.OglasPage, error) {
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.PageSize <= 0 {
		filter.PageSize = defaultPageSize
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(filter.Page))
	query.Set("pageSize", strconv.Itoa(filter.PageSize))
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Kategorija != "" {
		query.Set("kategorija", filter.Kategorija)
	}
	if filter.Grad != "" {
		query.Set("grad", filter.Grad)
	}
	if filter.MinPrice != nil {
		query.Set("minPrice", strconv.FormatFloat(*filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice != nil {
		query.Set("maxPrice", strconv.FormatFloat(*filter.MaxPrice, 'f', -1, 64))
	}

	var page model.OglasPage
	if err := o.gw.Get(ctx, oglasiPath, query, &page); err != nil {
		return model.OglasPage{}, fmt.Errorf("failed to list oglasi: %w", err)
	}
	return page, nil
}

// Get fetches a single listing by id.
func (o *Oglasi) Get(ctx context.Context, id string) (model.Oglas, error) {
	var oglas model.Oglas
	if err := o.gw.Get(ctx, oglasiPath+"/"+id, nil, &oglas); err != nil {
		return model.Oglas{}, fmt.Errorf("failed to fetch oglas %s: %w", id, err)
	}
	return oglas, nil
}

// Create publishes a new listing.
func (o *Oglasi) Create(ctx context.Context, oglas model.CreateOglas) error {
	if err := o.gw.Post(ctx, oglasiPath, oglas, nil); err != nil {
		return fmt.Errorf("failed to create oglas: %w", err)
	}
	o.logger.Info("Oglasi service: created oglas", "naslov", oglas.Naslov)
	return nil
}

// Delete removes a listing.
func (o *Oglasi) Delete(ctx context.Context, id string) error {
	if err := o.gw.Delete(ctx, oglasiPath+"/"+id, nil); err != nil {
		return fmt.Errorf("failed to delete oglas %s: %w", id, err)
	}
	return nil
}

// MyAds lists the authenticated seller's own listings.
func (o *Oglasi) MyAds(ctx context.Context, page, pageSize int) (model.OglasPage, error) {
	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	var result model.OglasPage
	if err := o.gw.Get(ctx, oglasiPath+"/my-ads", query, &result); err != nil {
		return model.OglasPage{}, fmt.Errorf("failed to list my ads: %w", err)
	}
	return result, nil
}
