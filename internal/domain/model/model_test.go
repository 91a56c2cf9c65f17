package model

import (
	"testing"
	"time"
)

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value int
	}{
		{"draft", OrderStatusDraft, 0},
		{"bought", OrderStatusBought, 1},
		{"in delivery", OrderStatusInDelivery, 2},
		{"delivered", OrderStatusDelivered, 3},
		{"arrived", OrderStatusArrived, 4},
		{"cancelled", OrderStatusCancelled, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if int(tc.got) != tc.value {
				t.Fatalf("expected %d, got %d", tc.value, tc.got)
			}
			if !tc.got.Valid() {
				t.Fatalf("expected %v to be valid", tc.got)
			}
		})
	}

	if OrderStatus(42).Valid() {
		t.Fatal("unexpected valid status 42")
	}
	if OrderStatus(42).Label() != "Unknown" {
		t.Fatalf("unexpected label %q", OrderStatus(42).Label())
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderStatusDraft, OrderStatusBought, true},
		{OrderStatusDraft, OrderStatusArrived, true},
		{OrderStatusBought, OrderStatusBought, true},
		{OrderStatusInDelivery, OrderStatusBought, false},
		{OrderStatusArrived, OrderStatusDelivered, false},
		{OrderStatusDelivered, OrderStatusCancelled, true},
		{OrderStatusArrived, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusDraft, false},
		{OrderStatusCancelled, OrderStatusArrived, false},
		{OrderStatusDraft, OrderStatus(9), false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%v -> %v: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	if s, ok := ParseOrderStatus(" 3 "); !ok || s != OrderStatusDelivered {
		t.Fatalf("unexpected parse result %v %v", s, ok)
	}
	if _, ok := ParseOrderStatus("x"); ok {
		t.Fatal("expected parse failure")
	}
	if _, ok := ParseOrderStatus("17"); ok {
		t.Fatal("expected unknown status to be rejected")
	}
}

func TestMarketplacePrefixes(t *testing.T) {
	m := Marketplace{URL: "https://aliexpress.com, https://aliexpress.ru,,"}
	got := m.Prefixes()
	if len(got) != 2 || got[0] != "https://aliexpress.com" || got[1] != "https://aliexpress.ru" {
		t.Fatalf("unexpected prefixes %v", got)
	}
	if (Marketplace{}).Prefixes() != nil {
		t.Fatal("expected no prefixes for empty url")
	}
}

func TestPurchaseOpenClose(t *testing.T) {
	p := &Purchase{}
	if !p.IsOpened() {
		t.Fatal("new purchase should be opened")
	}

	today := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	p.Open(today)
	if p.OpenedDate == nil || !p.OpenedDate.Equal(today) {
		t.Fatalf("unexpected opened date %v", p.OpenedDate)
	}

	p.Close(today)
	if p.IsOpened() {
		t.Fatal("closed purchase reported as opened")
	}
}

func TestOrderFilterIsEmpty(t *testing.T) {
	if !(OrderFilter{Query: "  ", Sort: "title"}).IsEmpty() {
		t.Fatal("expected blank filter to be empty")
	}
	status := OrderStatusDraft
	if (OrderFilter{Status: &status}).IsEmpty() {
		t.Fatal("status filter must not be empty")
	}
}

func TestOrderTrack(t *testing.T) {
	o := &Order{}
	if o.Track() != "" {
		t.Fatal("expected empty track")
	}
	track := "LP00123"
	o.TrackNumber = &track
	if o.Track() != track {
		t.Fatalf("unexpected track %q", o.Track())
	}
}
