package constants

// Quote konstantalari
const (
	// DefaultMultiplier agar matnda ko'paytiruvchi bo'lmasa
	DefaultMultiplier = 1

	// MaxQuoteLogList audit ro'yxatida max yozuvlar soni
	MaxQuoteLogList = 50
)

// Telegram konstantalari
const (
	// MessageChunkLimit Telegram xabar limiti (belgi)
	MessageChunkLimit = 4096
)
