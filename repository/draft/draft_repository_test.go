package draft_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/repository/draft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var draftCols = []string{"id", "order_id", "user_id", "status", "buyer_name", "buyer_phone", "buyer_email",
	"province_code", "province_name", "district_code", "district_name", "ward_code", "ward_name",
	"address_detail", "address_note", "payment_method", "voucher_id", "voucher_code", "voucher_amount", "voucher_min",
	"points_balance", "points_used", "shipping_fee", "expires_at", "updated_at"}

func setup(t *testing.T) (draft.DraftRepository, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	conn := sqlx.NewDb(db, "mysql")
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = conn.Close()
	})
	return draft.NewDraftRepository(conn), conn, mock
}

func TestDraftRepository_Get(t *testing.T) {
	repo, _, mock := setup(t)
	now := time.Now().Truncate(time.Second)

	mock.ExpectQuery(`SELECT .* FROM admin_draft WHERE id = \?`).
		WithArgs("d-1").
		WillReturnRows(sqlmock.NewRows(draftCols).AddRow(
			"d-1", "", 3, 1, "Lan", "0901", "", 79, "Ho Chi Minh", 760, "Quan 1", 26734, "Tan Dinh",
			"12 Le Loi", "", "cod", nil, "", 0, 0, 1000, 200, 30000, now, now))
	mock.ExpectQuery(`SELECT sku, product_id, variant_id, name, quantity, unit_price FROM admin_draft_item`).
		WithArgs("d-1").
		WillReturnRows(sqlmock.NewRows([]string{"sku", "product_id", "variant_id", "name", "quantity", "unit_price"}).
			AddRow("7-71", 7, 71, "Ergo Chair", 2, 2100000).
			AddRow("9", 9, nil, "Desk", 1, 5500000))

	got, err := repo.Get(context.Background(), "d-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, constant.DraftStatusOpen, got.Status)
	assert.Equal(t, 760, got.DistrictCode)
	assert.Nil(t, got.VoucherID)
	require.Len(t, got.Items, 2)
	require.NotNil(t, got.Items[0].VariantID)
	assert.Equal(t, uint64(71), *got.Items[0].VariantID)
	assert.Nil(t, got.Items[1].VariantID)
}

func TestDraftRepository_GetMissing(t *testing.T) {
	repo, _, mock := setup(t)

	mock.ExpectQuery(`SELECT .* FROM admin_draft WHERE id = \?`).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(draftCols))

	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDraftRepository_InsertTx(t *testing.T) {
	repo, conn, mock := setup(t)
	ctx := context.Background()

	d := &model.Draft{
		ID:        "d-2",
		Status:    constant.DraftStatusOpen,
		ExpiresAt: time.Now().Add(time.Hour),
		Items: []model.AdminLineItem{
			{SKU: "9", ProductID: 9, Name: "Desk", Quantity: 1, UnitPrice: 5500000},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO admin_draft \(`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM admin_draft_item WHERE draft_id = \?`).WithArgs("d-2").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO admin_draft_item`).
		WithArgs("d-2", 0, "9", uint64(9), nil, "Desk", 1, int64(5500000)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := conn.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, repo.InsertTx(ctx, tx, d))
	require.NoError(t, tx.Commit())
}

func TestDraftRepository_UpdateStatusTx(t *testing.T) {
	repo, conn, mock := setup(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE admin_draft SET status = \?`).
		WithArgs(constant.DraftStatusExpired, "d-3").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	tx, err := conn.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatusTx(ctx, tx, "d-3", constant.DraftStatusExpired))
	require.NoError(t, tx.Rollback())
}
