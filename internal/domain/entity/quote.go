package entity

// SizePair foydalanuvchi matnidan olingan (eni, bo'yi) juftligi, sm da
type SizePair struct {
	WidthRaw  string `json:"width_raw"`
	HeightRaw string `json:"height_raw"`
}

// Request bitta xabardan ajratilgan narx so'rovi
type Request struct {
	SheetName  string     `json:"sheet_name"`
	Sizes      []SizePair `json:"sizes"`
	Multiplier int        `json:"multiplier"`
}

// Valid so'rov to'liqmi: list nomi va kamida bitta o'lcham bo'lishi shart
func (r Request) Valid() bool {
	return r.SheetName != "" && len(r.Sizes) > 0
}

// LineItem bitta o'lcham juftligining natijasi
type LineItem struct {
	WidthRaw  string  `json:"width_raw"`
	HeightRaw string  `json:"height_raw"`
	Price     float64 `json:"price"`
	Found     bool    `json:"found"`
}

// Quote bitta so'rov uchun hisoblangan smeta; saqlanmaydi
type Quote struct {
	SheetName  string     `json:"sheet_name"`
	Items      []LineItem `json:"items"`
	Total      float64    `json:"total"`
	Multiplier int        `json:"multiplier"`
}

// GrandTotal jami narx ko'paytiruvchi bilan
func (q Quote) GrandTotal() float64 {
	return q.Total * float64(q.Multiplier)
}
