package usecase

import "testing"

func priceGrid() [][]string {
	return [][]string{
		{"", "1,1", "1,2"},
		{"2,4", "10.50", "12.00"},
		{"2,5", "11.00", "13.25"},
	}
}

func TestResolveFound(t *testing.T) {
	price, ok := Resolve(priceGrid(), "1,1", "2,4")
	if !ok {
		t.Fatal("narx topilishi kerak edi")
	}
	if price != 10.50 {
		t.Errorf("kutilgan=10.50, natija=%v", price)
	}

	price, ok = Resolve(priceGrid(), "1,2", "2,5")
	if !ok || price != 13.25 {
		t.Errorf("kutilgan=13.25, natija=%v (ok=%v)", price, ok)
	}
}

func TestResolveTrimsHeaderWhitespace(t *testing.T) {
	grid := [][]string{
		{"", " 1,1 ", "1,2"},
		{"2,4 ", " 10.50", "12.00"},
	}
	price, ok := Resolve(grid, "1,1", "2,4")
	if !ok || price != 10.50 {
		t.Errorf("probellar bilan ham topilishi kerak: natija=%v (ok=%v)", price, ok)
	}
}

func TestResolveNotFound(t *testing.T) {
	tests := []struct {
		name   string
		width  string
		height string
	}{
		{"width yo'q", "9,9", "2,4"},
		{"height yo'q", "1,1", "9,9"},
		{"ikkalasi yo'q", "9,9", "9,9"},
	}

	for _, test := range tests {
		if _, ok := Resolve(priceGrid(), test.width, test.height); ok {
			t.Errorf("%s: topilmasligi kerak edi", test.name)
		}
	}
}

func TestResolveNonNumericCell(t *testing.T) {
	grid := [][]string{
		{"", "1,1"},
		{"2,4", "дорого"},
	}
	if _, ok := Resolve(grid, "1,1", "2,4"); ok {
		t.Error("raqam bo'lmagan katakcha topilmadi deb qaytishi kerak")
	}
}

func TestResolveEdgeShapes(t *testing.T) {
	// bo'sh jadval
	if _, ok := Resolve(nil, "1,1", "2,4"); ok {
		t.Error("bo'sh jadvalda narx bo'lmasligi kerak")
	}

	// qator width ustunigacha yetmaydi
	grid := [][]string{
		{"", "1,1", "1,2"},
		{"2,4", "10.50"},
	}
	if _, ok := Resolve(grid, "1,2", "2,4"); ok {
		t.Error("kalta qatorda narx bo'lmasligi kerak")
	}

	// burchak katakchasi width label sifatida qaralmaydi
	grid = [][]string{
		{"1,1", "1,1"},
		{"2,4", "7.00"},
	}
	price, ok := Resolve(grid, "1,1", "2,4")
	if !ok || price != 7.00 {
		t.Errorf("burchakdan keyingi ustun topilishi kerak: natija=%v (ok=%v)", price, ok)
	}
}
