package catalog

import (
	"testing"
	"time"
)

func TestProductRecordAppliesDefaults(t *testing.T) {
	p := productRecord{ID: 7, Name: "Pixel 9"}.toProduct()

	if p.ID != 7 || p.Name != "Pixel 9" {
		t.Fatalf("unexpected product %+v", p)
	}
	if len(p.Images) != 0 {
		t.Fatalf("empty images column should map to no images, got %v", p.Images)
	}
	if p.Specs.RAM != "" || p.Specs.OS != "" {
		t.Fatalf("absent specs should be empty strings, got %+v", p.Specs)
	}
	if p.Rating != 0 || p.ReviewCount != 0 {
		t.Fatalf("unrated product should default to zero, got %+v", p)
	}
}

func TestProductRecordSplitsImagesCSV(t *testing.T) {
	p := productRecord{Images: " a.jpg , b.jpg,,c.jpg "}.toProduct()
	want := []string{"a.jpg", "b.jpg", "c.jpg"}
	if len(p.Images) != len(want) {
		t.Fatalf("unexpected images %v", p.Images)
	}
	for i, img := range want {
		if p.Images[i] != img {
			t.Fatalf("image %d: want %q got %q", i, img, p.Images[i])
		}
	}
}

func TestOrderRecordDefaultsStatus(t *testing.T) {
	if got := (orderRecord{}).toOrder().OrderStatus; got != "Pending" {
		t.Fatalf("expected Pending default, got %q", got)
	}
	if got := (orderRecord{OrderStatus: "Shipped"}).toOrder().OrderStatus; got != "Shipped" {
		t.Fatalf("expected Shipped, got %q", got)
	}
}

func TestOfferValidAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	cases := []struct {
		name  string
		offer Offer
		want  bool
	}{
		{"open window", Offer{}, true},
		{"inside window", Offer{StartDate: &past, EndDate: &future}, true},
		{"not started", Offer{StartDate: &future}, false},
		{"ended", Offer{EndDate: &past}, false},
		{"only start, started", Offer{StartDate: &past}, true},
		{"only end, not ended", Offer{EndDate: &future}, true},
	}
	for _, tc := range cases {
		if got := tc.offer.ValidAt(now); got != tc.want {
			t.Fatalf("%s: want %v got %v", tc.name, tc.want, got)
		}
	}
}
