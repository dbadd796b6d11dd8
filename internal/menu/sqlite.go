package menu

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"

	"github.com/eakarsu/go_deli/internal/money"
)

// SQLiteRepository persists the menu in SQLite. Prices are stored as
// decimal strings and parsed into cents on read. Customizable items and
// their rule sets are code-defined seed data; only the flat menu lives in
// the database.
type SQLiteRepository struct {
	db           *sql.DB
	customizable []CustomizableItem
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteRepository{db: db, customizable: SeedCustomizableItems()}, nil
}

func (r *SQLiteRepository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

const itemColumns = `id, name, description, price, image, category, tags, available`

func (r *SQLiteRepository) GetAllItems(ctx context.Context) ([]Item, error) {
	query := `SELECT ` + itemColumns + ` FROM menu_items ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *SQLiteRepository) GetItemsByCategory(ctx context.Context, category string) ([]Item, error) {
	query := `SELECT ` + itemColumns + ` FROM menu_items WHERE category = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *SQLiteRepository) GetItem(ctx context.Context, id int64) (Item, error) {
	query := `SELECT ` + itemColumns + ` FROM menu_items WHERE id = $1`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return Item{}, fmt.Errorf("failed to query menu item: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return Item{}, err
	}
	if len(items) == 0 {
		return Item{}, ErrItemNotFound
	}
	return items[0], nil
}

func (r *SQLiteRepository) GetCustomizableItems(_ context.Context) ([]CustomizableItem, error) {
	out := make([]CustomizableItem, len(r.customizable))
	copy(out, r.customizable)
	return out, nil
}

func (r *SQLiteRepository) GetCustomizableItem(_ context.Context, id int64) (CustomizableItem, error) {
	for _, c := range r.customizable {
		if c.ID == id {
			return c, nil
		}
	}
	return CustomizableItem{}, ErrItemNotFound
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanItems(rows *sql.Rows) ([]Item, error) {
	var items []Item
	for rows.Next() {
		var (
			item      Item
			priceStr  string
			tagsJSON  string
			available int
		)
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&priceStr,
			&item.Image,
			&item.Category,
			&tagsJSON,
			&available,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}

		item.Price, err = money.ParseCents(priceStr)
		if err != nil {
			return nil, fmt.Errorf("bad price for item %d: %w", item.ID, err)
		}
		if tagsJSON != "" {
			if err := json.Unmarshal([]byte(tagsJSON), &item.Tags); err != nil {
				return nil, fmt.Errorf("bad tags for item %d: %w", item.ID, err)
			}
		}
		item.Available = available != 0

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return items, nil
}
