package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"event_recommender/internal/domain"
)

// Repo implements the profile, favorite, and item stores on MySQL. The
// original system kept these in a document store; the contract is plain
// key-value lookups, which a relational schema serves just as well.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// EnsureSchema creates the tables and the seed user if they do not exist.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaSQL {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

func (r *Repo) GetFavoriteItemIDs(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, favoriteIDsSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}

func (r *Repo) GetCategories(ctx context.Context, itemID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, categoriesSQL, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) GetFavoriteItems(ctx context.Context, userID string) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, favoriteItemsSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Categories live in their own table; fill them per item.
	for i := range out {
		cats, err := r.GetCategories(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Categories = cats
	}
	return out, nil
}

func (r *Repo) SetFavorites(ctx context.Context, userID string, itemIDs []string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		for _, id := range itemIDs {
			if _, err := tx.ExecContext(ctx, insertFavoriteSQL, userID, id); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repo) UnsetFavorites(ctx context.Context, userID string, itemIDs []string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		for _, id := range itemIDs {
			if _, err := tx.ExecContext(ctx, deleteFavoriteSQL, userID, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveItems upserts items and their category rows. Items without an ID are
// skipped; a provider snapshot always overwrites the stored attributes.
func (r *Repo) SaveItems(ctx context.Context, items []domain.Item) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		for _, it := range items {
			if it.ID == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx, upsertItemSQL,
				it.ID,
				nullStr(it.Name),
				nullStr(it.Description),
				nullStr(it.URL),
				nullStr(it.ImageURL),
				nullStr(it.Date),
				nullStr(it.PriceRange),
				it.Lat,
				it.Lon,
				nullStr(it.Address),
				nullStr(it.City),
				nullStr(it.State),
				nullStr(it.Country),
				nullStr(it.Zip),
			); err != nil {
				return fmt.Errorf("upsert item %s: %w", it.ID, err)
			}
			for _, cat := range it.Categories {
				if _, err := tx.ExecContext(ctx, insertCategorySQL, it.ID, cat); err != nil {
					return fmt.Errorf("insert category for %s: %w", it.ID, err)
				}
			}
		}
		return nil
	})
}

func (r *Repo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func scanItem(rows *sql.Rows) (domain.Item, error) {
	var it domain.Item
	var name, desc, u, img, date, price, addr, city, state, country, zip sql.NullString
	var lat, lon sql.NullFloat64

	if err := rows.Scan(
		&it.ID, &name, &desc, &u, &img,
		&date, &price, &lat, &lon,
		&addr, &city, &state, &country, &zip,
	); err != nil {
		return domain.Item{}, err
	}

	it.Name = name.String
	it.Description = desc.String
	it.URL = u.String
	it.ImageURL = img.String
	it.Date = date.String
	it.PriceRange = price.String
	it.Lat = lat.Float64
	it.Lon = lon.Float64
	it.Address = addr.String
	it.City = city.String
	it.State = state.String
	it.Country = country.String
	it.Zip = zip.String
	return it, nil
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
