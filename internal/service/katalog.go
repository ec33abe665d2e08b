package service

import (
	"context"
	"fmt"

	"github.com/DamirBesirovic/tradeflow/internal/gateway"
	"github.com/DamirBesirovic/tradeflow/internal/model"
)

const (
	gradoviPath    = "/api/Gradovi"
	kategorijePath = "/api/Kategorije"
)

// Katalog handles the city and category reference data, both the public
// lookups and the admin-panel CRUD.
type Katalog struct {
	gw *gateway.Gateway
}

// NewKatalog creates the reference-data service.
func NewKatalog(gw *gateway.Gateway) *Katalog {
	return &Katalog{gw: gw}
}

// Gradovi lists all cities.
func (k *Katalog) Gradovi(ctx context.Context) ([]model.Grad, error) {
	var gradovi []model.Grad
	if err := k.gw.Get(ctx, gradoviPath, nil, &gradovi); err != nil {
		return nil, fmt.Errorf("failed to list gradovi: %w", err)
	}
	return gradovi, nil
}

// Grad fetches a single city by id.
func (k *Katalog) Grad(ctx context.Context, id string) (model.Grad, error) {
	var grad model.Grad
	if err := k.gw.Get(ctx, gradoviPath+"/"+id, nil, &grad); err != nil {
		return model.Grad{}, fmt.Errorf("failed to fetch grad %s: %w", id, err)
	}
	return grad, nil
}

// CreateGrad adds a city.
func (k *Katalog) CreateGrad(ctx context.Context, name string) error {
	if err := k.gw.Post(ctx, gradoviPath, nameBody{Name: name}, nil); err != nil {
		return fmt.Errorf("failed to create grad: %w", err)
	}
	return nil
}

// UpdateGrad renames a city.
func (k *Katalog) UpdateGrad(ctx context.Context, id, name string) error {
	if err := k.gw.Put(ctx, gradoviPath+"/"+id, nameBody{Name: name}, nil); err != nil {
		return fmt.Errorf("failed to update grad %s: %w", id, err)
	}
	return nil
}

// DeleteGrad removes a city.
func (k *Katalog) DeleteGrad(ctx context.Context, id string) error {
	if err := k.gw.Delete(ctx, gradoviPath+"/"+id, nil); err != nil {
		return fmt.Errorf("failed to delete grad %s: %w", id, err)
	}
	return nil
}

// Kategorije lists all categories.
func (k *Katalog) Kategorije(ctx context.Context) ([]model.Kategorija, error) {
	var kategorije []model.Kategorija
	if err := k.gw.Get(ctx, kategorijePath, nil, &kategorije); err != nil {
		return nil, fmt.Errorf("failed to list kategorije: %w", err)
	}
	return kategorije, nil
}

// CreateKategorija adds a category.
func (k *Katalog) CreateKategorija(ctx context.Context, name string) error {
	if err := k.gw.Post(ctx, kategorijePath, nameBody{Name: name}, nil); err != nil {
		return fmt.Errorf("failed to create kategorija: %w", err)
	}
	return nil
}

// UpdateKategorija renames a category.
func (k *Katalog) UpdateKategorija(ctx context.Context, id, name string) error {
	if err := k.gw.Put(ctx, kategorijePath+"/"+id, nameBody{Name: name}, nil); err != nil {
		return fmt.Errorf("failed to update kategorija %s: %w", id, err)
	}
	return nil
}

// DeleteKategorija removes a category.
func (k *Katalog) DeleteKategorija(ctx context.Context, id string) error {
	if err := k.gw.Delete(ctx, kategorijePath+"/"+id, nil); err != nil {
		return fmt.Errorf("failed to delete kategorija %s: %w", id, err)
	}
	return nil
}

type nameBody struct {
	Name string `json:"name"`
}
