// internal/adapters/db/item_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// itemRepository implements ports.ItemRepository
type itemRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *Database, logger *slog.Logger) ports.ItemRepository {
	return &itemRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "item")),
	}
}

const itemColumns = `
	i.id, i.sku_id, i.posting_id, i.acceptance_id,
	s.id, s.status, s.is_reserved`

func scanItem(row pgx.Row) (*domain.Item, error) {
	item := &domain.Item{}
	var postingID, acceptanceID pgtype.UUID

	err := row.Scan(
		&item.ID, &item.SkuID, &postingID, &acceptanceID,
		&item.Stock.ID, &item.Stock.Status, &item.Stock.IsReserved,
	)
	if err != nil {
		return nil, err
	}

	item.Stock.ItemID = item.ID
	if postingID.Valid {
		v := uuid.UUID(postingID.Bytes)
		item.PostingID = &v
	}
	if acceptanceID.Valid {
		v := uuid.UUID(acceptanceID.Bytes)
		item.AcceptanceID = &v
	}

	return item, nil
}

// CreateTx inserts an item and its stock record within an existing transaction.
func (r *itemRepository) CreateTx(ctx context.Context, tx pgx.Tx, item *domain.Item) error {
	itemQuery := `
		INSERT INTO items (id, sku_id, posting_id, acceptance_id)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, itemQuery, item.ID, item.SkuID, item.PostingID, item.AcceptanceID)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	stockQuery := `
		INSERT INTO stocks (id, item_id, status, is_reserved)
		VALUES ($1, $2, $3, $4)`

	_, err = tx.Exec(ctx, stockQuery,
		item.Stock.ID, item.ID, item.Stock.Status, item.Stock.IsReserved)
	if err != nil {
		return fmt.Errorf("failed to create stock record: %w", err)
	}

	r.logger.DebugContext(ctx, "item created",
		slog.String("item_id", item.ID.String()),
		slog.String("sku_id", item.SkuID.String()),
		slog.String("stock_status", string(item.Stock.Status)))

	return nil
}

// FindByID retrieves an item with its stock record and sku, or nil when it
// does not exist.
func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := `
		SELECT` + itemColumns + `,
			k.id, k.created_at, k.base_price, k.actual_price, k.count, k.is_hidden, k.discount_id
		FROM items i
		JOIN stocks s ON s.item_id = i.id
		JOIN skus k ON k.id = i.sku_id
		WHERE i.id = $1`

	item := &domain.Item{Sku: &domain.Sku{}}
	var postingID, acceptanceID, discountID pgtype.UUID

	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.SkuID, &postingID, &acceptanceID,
		&item.Stock.ID, &item.Stock.Status, &item.Stock.IsReserved,
		&item.Sku.ID, &item.Sku.CreatedAt, &item.Sku.BasePrice, &item.Sku.ActualPrice,
		&item.Sku.Count, &item.Sku.IsHidden, &discountID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}

	item.Stock.ItemID = item.ID
	if postingID.Valid {
		v := uuid.UUID(postingID.Bytes)
		item.PostingID = &v
	}
	if acceptanceID.Valid {
		v := uuid.UUID(acceptanceID.Bytes)
		item.AcceptanceID = &v
	}
	if discountID.Valid {
		v := uuid.UUID(discountID.Bytes)
		item.Sku.DiscountID = &v
	}

	return item, nil
}

// FindByIDs retrieves the items matching the given ids with their stock
// records. Unknown ids are silently absent from the result.
func (r *itemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT` + itemColumns + `
		FROM items i
		JOIN stocks s ON s.item_id = i.id
		WHERE i.id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

// FindBySkuID retrieves the items of a sku, optionally narrowed by stock
// status and reservation state.
func (r *itemRepository) FindBySkuID(ctx context.Context, skuID uuid.UUID, filter ports.ItemFilter) ([]domain.Item, error) {
	qb := squirrel.Select(
		"i.id", "i.sku_id", "i.posting_id", "i.acceptance_id",
		"s.id", "s.status", "s.is_reserved",
	).From("items i").
		Join("stocks s ON s.item_id = i.id").
		Where(squirrel.Eq{"i.sku_id": skuID}).
		PlaceholderFormat(squirrel.Dollar)

	if filter.StockStatus != nil {
		qb = qb.Where(squirrel.Eq{"s.status": *filter.StockStatus})
	}
	if filter.Reserved != nil {
		qb = qb.Where(squirrel.Eq{"s.is_reserved": *filter.Reserved})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

// FindByPostingID retrieves the items attached to a posting, loaded with
// their sku and discount reservations so the posting cost can be computed.
func (r *itemRepository) FindByPostingID(ctx context.Context, postingID uuid.UUID) ([]domain.Item, error) {
	query := `
		SELECT` + itemColumns + `,
			k.id, k.created_at, k.base_price, k.actual_price, k.count, k.is_hidden, k.discount_id
		FROM items i
		JOIN stocks s ON s.item_id = i.id
		JOIN skus k ON k.id = i.sku_id
		WHERE i.posting_id = $1`

	rows, err := r.db.Query(ctx, query, postingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query posting items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item := domain.Item{Sku: &domain.Sku{}}
		var pID, aID, dID pgtype.UUID

		err := rows.Scan(
			&item.ID, &item.SkuID, &pID, &aID,
			&item.Stock.ID, &item.Stock.Status, &item.Stock.IsReserved,
			&item.Sku.ID, &item.Sku.CreatedAt, &item.Sku.BasePrice, &item.Sku.ActualPrice,
			&item.Sku.Count, &item.Sku.IsHidden, &dID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan posting item: %w", err)
		}

		item.Stock.ItemID = item.ID
		if pID.Valid {
			v := uuid.UUID(pID.Bytes)
			item.PostingID = &v
		}
		if aID.Valid {
			v := uuid.UUID(aID.Bytes)
			item.AcceptanceID = &v
		}
		if dID.Valid {
			v := uuid.UUID(dID.Bytes)
			item.Sku.DiscountID = &v
		}

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if err := r.attachDiscounts(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

// attachDiscounts loads the item_discount rows for the given items.
func (r *itemRepository) attachDiscounts(ctx context.Context, items []domain.Item) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(items))
	index := make(map[uuid.UUID]*domain.Item, len(items))
	for i := range items {
		ids[i] = items[i].ID
		index[items[i].ID] = &items[i]
	}

	query := `
		SELECT id, item_id, discount_id, type, percentage
		FROM item_discounts
		WHERE item_id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query item discounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d domain.ItemDiscount
		var discountID pgtype.UUID

		if err := rows.Scan(&d.ID, &d.ItemID, &discountID, &d.Type, &d.Percentage); err != nil {
			return fmt.Errorf("failed to scan item discount: %w", err)
		}
		if discountID.Valid {
			v := uuid.UUID(discountID.Bytes)
			d.DiscountID = &v
		}

		if item, ok := index[d.ItemID]; ok {
			item.Discounts = append(item.Discounts, d)
		}
	}

	return rows.Err()
}

// SetReservedTx flips the reservation flag of an item's stock record within
// an existing transaction.
func (r *itemRepository) SetReservedTx(ctx context.Context, tx pgx.Tx, itemID uuid.UUID, reserved bool) error {
	query := `UPDATE stocks SET is_reserved = $2 WHERE item_id = $1`

	tag, err := tx.Exec(ctx, query, itemID, reserved)
	if err != nil {
		return fmt.Errorf("failed to set reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("stock for item %s: %w", itemID, domain.ErrNotFound)
	}

	return nil
}

// SetStockStatus moves an item's stock record to the given status.
func (r *itemRepository) SetStockStatus(ctx context.Context, itemID uuid.UUID, status domain.StockStatus) error {
	query := `UPDATE stocks SET status = $2 WHERE item_id = $1`

	tag, err := r.db.Exec(ctx, query, itemID, status)
	if err != nil {
		return fmt.Errorf("failed to set stock status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("stock for item %s: %w", itemID, domain.ErrNotFound)
	}

	r.logger.InfoContext(ctx, "stock status changed",
		slog.String("item_id", itemID.String()),
		slog.String("status", string(status)))

	return nil
}

// AttachToPostingTx binds a picked item to its posting within an existing
// transaction.
func (r *itemRepository) AttachToPostingTx(ctx context.Context, tx pgx.Tx, itemID, postingID uuid.UUID) error {
	query := `UPDATE items SET posting_id = $2 WHERE id = $1`

	tag, err := tx.Exec(ctx, query, itemID, postingID)
	if err != nil {
		return fmt.Errorf("failed to attach item to posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}

	return nil
}

// ClaimSubstitute reserves any unreserved item whose stock is still findable
// and returns it, or nil when no substitute exists. The candidate row is
// locked with SKIP LOCKED so concurrent fulfillment runs never claim the same
// item.
func (r *itemRepository) ClaimSubstitute(ctx context.Context, tx pgx.Tx) (*domain.Item, error) {
	query := `
		WITH candidate AS (
			SELECT id, item_id
			FROM stocks
			WHERE is_reserved = FALSE AND status <> $1
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		UPDATE stocks st
		SET is_reserved = TRUE
		FROM candidate c
		WHERE st.id = c.id
		RETURNING st.item_id`

	var itemID uuid.UUID
	err := tx.QueryRow(ctx, query, domain.StockNotFound).Scan(&itemID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim substitute: %w", err)
	}

	itemQuery := `
		SELECT` + itemColumns + `
		FROM items i
		JOIN stocks s ON s.item_id = i.id
		WHERE i.id = $1`

	item, err := scanItem(tx.QueryRow(ctx, itemQuery, itemID))
	if err != nil {
		return nil, fmt.Errorf("failed to load claimed substitute: %w", err)
	}

	r.logger.InfoContext(ctx, "substitute item claimed",
		slog.String("item_id", itemID.String()))

	return item, nil
}

// CreateItemDiscount records a discount reservation against an item.
func (r *itemRepository) CreateItemDiscount(ctx context.Context, d *domain.ItemDiscount) error {
	query := `
		INSERT INTO item_discounts (id, item_id, discount_id, type, percentage)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, d.ID, d.ItemID, d.DiscountID, d.Type, d.Percentage)
	if err != nil {
		return fmt.Errorf("failed to create item discount: %w", err)
	}

	r.logger.DebugContext(ctx, "item discount recorded",
		slog.String("item_id", d.ItemID.String()),
		slog.String("type", string(d.Type)),
		slog.Int("percentage", d.Percentage))

	return nil
}

// collectItems drains rows of item+stock columns.
func collectItems(rows pgx.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		item := domain.Item{}
		var postingID, acceptanceID pgtype.UUID

		err := rows.Scan(
			&item.ID, &item.SkuID, &postingID, &acceptanceID,
			&item.Stock.ID, &item.Stock.Status, &item.Stock.IsReserved,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}

		item.Stock.ItemID = item.ID
		if postingID.Valid {
			v := uuid.UUID(postingID.Bytes)
			item.PostingID = &v
		}
		if acceptanceID.Valid {
			v := uuid.UUID(acceptanceID.Bytes)
			item.AcceptanceID = &v
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}
