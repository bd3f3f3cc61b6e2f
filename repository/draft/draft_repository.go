package draft

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

// DraftRepository stores admin order composer drafts and their line items.
type DraftRepository interface {
	Get(ctx context.Context, id string) (*model.Draft, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, d *model.Draft) error
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Draft, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, d *model.Draft) error
	ReplaceItemsTx(ctx context.Context, tx *sqlx.Tx, draftID string, items []model.AdminLineItem) error
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id string, status constant.DraftStatus) error
}

func NewDraftRepository(conn *sqlx.DB) DraftRepository {
	return &SQL{conn: conn}
}

const (
	draftColumns = `id, order_id, user_id, status, buyer_name, buyer_phone, buyer_email,
province_code, province_name, district_code, district_name, ward_code, ward_name,
address_detail, address_note, payment_method, voucher_id, voucher_code, voucher_amount, voucher_min,
points_balance, points_used, shipping_fee, expires_at, updated_at`

	getDraftQuery          = `SELECT ` + draftColumns + ` FROM admin_draft WHERE id = ?`
	getDraftForUpdateQuery = getDraftQuery + ` FOR UPDATE`

	getDraftItemsQuery = `SELECT sku, product_id, variant_id, name, quantity, unit_price
FROM admin_draft_item WHERE draft_id = ? ORDER BY position`

	insertDraftQuery = `INSERT INTO admin_draft (id, order_id, user_id, status, buyer_name, buyer_phone, buyer_email,
province_code, province_name, district_code, district_name, ward_code, ward_name,
address_detail, address_note, payment_method, voucher_id, voucher_code, voucher_amount, voucher_min,
points_balance, points_used, shipping_fee, expires_at, updated_at)
VALUES (:id, :order_id, :user_id, :status, :buyer_name, :buyer_phone, :buyer_email,
:province_code, :province_name, :district_code, :district_name, :ward_code, :ward_name,
:address_detail, :address_note, :payment_method, :voucher_id, :voucher_code, :voucher_amount, :voucher_min,
:points_balance, :points_used, :shipping_fee, :expires_at, NOW())`

	updateDraftQuery = `UPDATE admin_draft SET user_id = :user_id, buyer_name = :buyer_name, buyer_phone = :buyer_phone,
buyer_email = :buyer_email, province_code = :province_code, province_name = :province_name,
district_code = :district_code, district_name = :district_name, ward_code = :ward_code, ward_name = :ward_name,
address_detail = :address_detail, address_note = :address_note, payment_method = :payment_method,
voucher_id = :voucher_id, voucher_code = :voucher_code, voucher_amount = :voucher_amount, voucher_min = :voucher_min,
points_balance = :points_balance, points_used = :points_used, shipping_fee = :shipping_fee, updated_at = NOW()
WHERE id = :id`

	deleteDraftItemsQuery = `DELETE FROM admin_draft_item WHERE draft_id = ?`
	insertDraftItemQuery  = `INSERT INTO admin_draft_item (draft_id, position, sku, product_id, variant_id, name, quantity, unit_price)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	updateDraftStatusQuery = `UPDATE admin_draft SET status = ?, updated_at = NOW() WHERE id = ?`
)

// Get returns the draft with its items, or nil when it does not exist.
func (s *SQL) Get(ctx context.Context, id string) (*model.Draft, error) {
	var d model.Draft
	if err := s.conn.QueryRowxContext(ctx, getDraftQuery, id).StructScan(&d); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := s.conn.SelectContext(ctx, &d.Items, getDraftItemsQuery, id); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, d *model.Draft) error {
	if _, err := tx.NamedExecContext(ctx, insertDraftQuery, d); err != nil {
		return err
	}
	return s.ReplaceItemsTx(ctx, tx, d.ID, d.Items)
}

// GetForUpdateTx locks the draft row for the rest of tx. Nil when absent.
func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Draft, error) {
	var d model.Draft
	if err := tx.QueryRowxContext(ctx, getDraftForUpdateQuery, id).StructScan(&d); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := tx.SelectContext(ctx, &d.Items, getDraftItemsQuery, id); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, d *model.Draft) error {
	_, err := tx.NamedExecContext(ctx, updateDraftQuery, d)
	return err
}

func (s *SQL) ReplaceItemsTx(ctx context.Context, tx *sqlx.Tx, draftID string, items []model.AdminLineItem) error {
	if _, err := tx.ExecContext(ctx, deleteDraftItemsQuery, draftID); err != nil {
		return err
	}
	for i, it := range items {
		if _, err := tx.ExecContext(ctx, insertDraftItemQuery, draftID, i, it.SKU, it.ProductID, it.VariantID, it.Name, it.Quantity, it.UnitPrice); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id string, status constant.DraftStatus) error {
	_, err := tx.ExecContext(ctx, updateDraftStatusQuery, status, id)
	return err
}
