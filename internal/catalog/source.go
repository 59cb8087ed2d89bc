package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"gopkg.in/yaml.v3"

	"allcitybot/core/logger"
	"log/slog"
)

// venuesQuery keeps the load order stable across restarts.
const venuesQuery = `
SELECT id, name, description, opens_at, closes_at, phone, link
FROM venues
ORDER BY position, id`

// LoadYAML reads a venue list from a YAML file.
//
// Expected shape:
//
//	venues:
//	  - id: cafe1
//	    name: Cafe 1
//	    ...
func LoadYAML(path string, pageSize int) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var doc struct {
		Venues []Item `yaml:"venues"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	c, err := New(doc.Venues, pageSize)
	if err != nil {
		return nil, err
	}
	logger.Info(logger.Background(), "catalog", "load",
		slog.String("source", "yaml"),
		slog.String("path", path),
		slog.Int("items", c.Len()),
		slog.Int("pages", c.PageCount()),
	)
	return c, nil
}

// LoadPostgres reads the venue list from the venues table.
func LoadPostgres(ctx context.Context, db *sqlx.DB, pageSize int) (*Catalog, error) {
	var items []Item
	if err := db.SelectContext(ctx, &items, venuesQuery); err != nil {
		return nil, fmt.Errorf("catalog: select venues: %w", err)
	}

	c, err := New(items, pageSize)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "catalog", "load",
		slog.String("source", "postgres"),
		slog.Int("items", c.Len()),
		slog.Int("pages", c.PageCount()),
	)
	return c, nil
}

// Default returns the built-in venue list so the bot can run without
// external catalog data.
func Default(pageSize int) *Catalog {
	c, err := New(defaultVenues(), pageSize)
	if err != nil {
		// The built-in list is known valid; reaching this is a programming fault.
		panic(err)
	}
	return c
}

func defaultVenues() []Item {
	return []Item{
		{ID: "cafe1", Name: "Cafe Name 1", Description: "Cafe description", OpensAt: "10:00", ClosesAt: "23:00", Phone: "+123321456", Link: "https://www.instagram.com/"},
		{ID: "cafe2", Name: "Cafe name 2", Description: "Cafe description", OpensAt: "10:00", ClosesAt: "23:00", Phone: "+123321456", Link: "https://www.instagram.com/"},
		{ID: "cafe3", Name: "Cafe name 3", Description: "Cafe description", OpensAt: "09:00", ClosesAt: "23:00", Phone: "123321456", Link: "https://www.instagram.com/"},
		{ID: "cafe4", Name: "Cafe 4", Description: "Cafe description", OpensAt: "10:00", ClosesAt: "22:00", Phone: "+123321456", Link: "https://www.instagram.com/"},
		{ID: "cafe5", Name: "Cafe 5", Description: "Cafe description", OpensAt: "08:00", ClosesAt: "23:00", Phone: "123321456", Link: "https://instagram.com/"},
		{ID: "cafe6", Name: "Cafe 6", Description: "Cafe Description", OpensAt: "08:30", ClosesAt: "21:00", Phone: "+123321456", Link: "https://instagram.com/"},
		{ID: "cafe7", Name: "Cafe 7", Description: "Cafe description", OpensAt: "10:00", ClosesAt: "22:00", Phone: "+123321456", Link: "https://instagram.com/"},
		{ID: "cafe8", Name: "Cafe 8", Description: "Cafe description", OpensAt: "10:00", ClosesAt: "22:00", Phone: "+123321456", Link: "https://instagram.com/"},
		{ID: "cafe9", Name: "Cafe 9", Description: "Cafe description", OpensAt: "10:00", ClosesAt: "23:00", Phone: "+123321456", Link: "https://instagram.com/"},
	}
}
