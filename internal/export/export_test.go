package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/polkiloo/buyout/internal/domain/model"
)

func sampleOrders() []model.Order {
	track := "YT100"
	purchase := &model.Purchase{ID: 1, Title: "Spring", Exchange: decimal.NewFromInt(80)}
	customer := &model.Customer{ID: 1, Name: "Alice", Tax: 10}
	return []model.Order{
		{
			ID: 1, Title: "Sneakers", URL: "https://dw4.co/t/1", OrderPrice: decimal.NewFromInt(100),
			Exchange: decimal.NewFromInt(85), Status: model.OrderStatusBought, TrackNumber: &track, Weight: 700,
			PurchaseID: 1, CustomerID: 1, Purchase: purchase, Customer: customer,
		},
		{
			ID: 2, Title: "Cap", URL: "https://dw4.co/t/2", OrderPrice: decimal.NewFromInt(20),
			PurchaseID: 1, CustomerID: 1, Purchase: purchase, Customer: customer,
		},
	}
}

func open(t *testing.T, buf *bytes.Buffer) (*excelize.File, string) {
	t.Helper()
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f, f.GetSheetName(0)
}

func TestWriteOrders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOrders(&buf, sampleOrders(), false))

	f, sheet := open(t, &buf)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Title", rows[0][1])
	assert.Equal(t, "Customer", rows[0][12])
	assert.Equal(t, "Sneakers", rows[1][1])
	assert.Equal(t, "Bought", rows[1][3])
	assert.Equal(t, "100", rows[1][4])
	assert.Equal(t, "YT100", rows[1][10])
	assert.Equal(t, "Alice", rows[1][12])

	width, err := f.GetColWidth(sheet, "B")
	require.NoError(t, err)
	assert.Equal(t, 30.0, width)

	styleID, err := f.GetCellStyle(sheet, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
}

func TestWriteOrdersForCustomerUsesPurchaseRate(t *testing.T) {
	var plain, customer bytes.Buffer
	require.NoError(t, WriteOrders(&plain, sampleOrders(), false))
	require.NoError(t, WriteOrders(&customer, sampleOrders(), true))

	f, sheet := open(t, &plain)
	price, err := f.GetCellValue(sheet, "G2")
	require.NoError(t, err)
	assert.Equal(t, "8500", price)

	f, sheet = open(t, &customer)
	price, err = f.GetCellValue(sheet, "G2")
	require.NoError(t, err)
	assert.Equal(t, "8000", price)
}

func TestWriteCargo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCargo(&buf, sampleOrders()))

	f, sheet := open(t, &buf)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Title", "Track number"}, rows[0])
	assert.Equal(t, []string{"Sneakers", "YT100"}, rows[1])
	assert.Equal(t, "Cap", rows[2][0])

	width, err := f.GetColWidth(sheet, "A")
	require.NoError(t, err)
	assert.Equal(t, 50.0, width)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Spring%202024.xlsx", Filename("Spring 2024"))
	assert.Equal(t, "Spring%20-%20track%20numbers.xlsx", CargoFilename("Spring"))
	assert.Equal(t, "a%2Fb.xlsx", Filename("a/b"))
}
