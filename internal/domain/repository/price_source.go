package repository

import "context"

// PriceSource narx jadvali manbasi bilan ishlash uchun interface.
// Grid berilgan list (sheet) ning to'liq katakchalarini matn sifatida
// qaytaradi; list topilmasa yoki manba ishlamasa error qaytadi.
// Har bir so'rovda jadval qaytadan o'qiladi, kesh yo'q.
type PriceSource interface {
	Grid(ctx context.Context, sheetName string) ([][]string, error)
}
