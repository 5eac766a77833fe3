package telegram

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-price-bot/internal/domain/constants"
)

// quoteLogEntry bitta inbound/outbound xabar yozuvi
type quoteLogEntry struct {
	RequestID string
	UserID    int64
	ChatID    int64
	Username  string
	Direction string // "in" | "out"
	Text      string
	CreatedAt time.Time
}

// QuoteLog so'rov/javob audit jurnali. Hisoblangan smetalar o'zi
// saqlanmaydi — faqat xabar matni.
type QuoteLog interface {
	Save(ctx context.Context, entry quoteLogEntry) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]quoteLogEntry, error)
}

// memoryQuoteLog fallback (server ish davomida). Save/ListByUser bir
// nechta worker goroutine'dan chaqiriladi.
type memoryQuoteLog struct {
	mu   sync.RWMutex
	data []quoteLogEntry
}

func newMemoryQuoteLog() *memoryQuoteLog {
	return &memoryQuoteLog{data: make([]quoteLogEntry, 0, 256)}
}

func (m *memoryQuoteLog) Save(_ context.Context, entry quoteLogEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append(m.data, entry)
	return nil
}

func (m *memoryQuoteLog) ListByUser(_ context.Context, userID int64, limit int) ([]quoteLogEntry, error) {
	if limit <= 0 {
		limit = constants.MaxQuoteLogList
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var res []quoteLogEntry
	for i := len(m.data) - 1; i >= 0; i-- {
		item := m.data[i]
		if item.UserID == userID {
			res = append(res, item)
			if len(res) >= limit {
				break
			}
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res, nil
}

// postgresQuoteLog persistent jurnal
type postgresQuoteLog struct {
	db *sql.DB
}

func newPostgresQuoteLog(dsn string) (*postgresQuoteLog, error) {
	db, err := openPostgresWithRetry(dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	schema := `
CREATE TABLE IF NOT EXISTS quote_messages (
	id BIGSERIAL PRIMARY KEY,
	request_id TEXT NOT NULL,
	user_id BIGINT NOT NULL,
	chat_id BIGINT NOT NULL,
	username TEXT,
	direction TEXT NOT NULL,
	text TEXT,
	created_at TIMESTAMPTZ DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_quote_messages_user_time ON quote_messages (user_id, created_at DESC);
`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create quote_messages table: %w", err)
	}

	return &postgresQuoteLog{db: db}, nil
}

func (p *postgresQuoteLog) Save(ctx context.Context, entry quoteLogEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := p.db.ExecContext(ctx, `
	INSERT INTO quote_messages (request_id, user_id, chat_id, username, direction, text, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, entry.RequestID, entry.UserID, entry.ChatID, entry.Username, entry.Direction, entry.Text, entry.CreatedAt)
	return err
}

func (p *postgresQuoteLog) ListByUser(ctx context.Context, userID int64, limit int) ([]quoteLogEntry, error) {
	if limit <= 0 {
		limit = constants.MaxQuoteLogList
	}
	rows, err := p.db.QueryContext(ctx, `
	SELECT request_id, user_id, chat_id, username, direction, text, created_at
	FROM quote_messages
	WHERE user_id = $1
	ORDER BY created_at DESC
	LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []quoteLogEntry
	for rows.Next() {
		var entry quoteLogEntry
		if err := rows.Scan(&entry.RequestID, &entry.UserID, &entry.ChatID, &entry.Username, &entry.Direction, &entry.Text, &entry.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, entry)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res, nil
}

// newQuoteLogFromEnv DSN berilsa Postgres, aks holda memory
func newQuoteLogFromEnv() (QuoteLog, error) {
	dsn := strings.TrimSpace(os.Getenv("POSTGRES_DSN"))
	if dsn == "" {
		dsn = buildPostgresDSNFromEnv()
	}
	if dsn == "" {
		return newMemoryQuoteLog(), nil
	}
	store, err := newPostgresQuoteLog(dsn)
	if err != nil {
		log.Printf("quote log: Postgres ulanmadi, memory log ga qaytdi: %v", err)
		return newMemoryQuoteLog(), nil
	}
	return store, nil
}

func buildPostgresDSNFromEnv() string {
	host := strings.TrimSpace(os.Getenv("POSTGRES_HOST"))
	user := strings.TrimSpace(os.Getenv("POSTGRES_USER"))
	password := os.Getenv("POSTGRES_PASSWORD")
	db := strings.TrimSpace(os.Getenv("POSTGRES_DB"))
	port := strings.TrimSpace(os.Getenv("POSTGRES_PORT"))
	sslmode := strings.TrimSpace(os.Getenv("POSTGRES_SSLMODE"))

	if host == "" || user == "" || db == "" {
		return ""
	}
	if port == "" {
		port = "5432"
	}
	if sslmode == "" {
		sslmode = "disable"
	}

	db = strings.TrimPrefix(db, "/")
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + db,
	}
	if password == "" {
		u.User = url.User(user)
	} else {
		u.User = url.UserPassword(user, password)
	}
	q := u.Query()
	q.Set("sslmode", sslmode)
	u.RawQuery = q.Encode()
	return u.String()
}

const (
	postgresConnectAttemptsDefault = 20
	postgresConnectDelayDefault    = 2 * time.Second
)

func openPostgresWithRetry(dsn string) (*sql.DB, error) {
	attempts := getenvInt("POSTGRES_CONNECT_MAX_ATTEMPTS", postgresConnectAttemptsDefault)
	delaySeconds := getenvInt("POSTGRES_CONNECT_RETRY_SECONDS", int(postgresConnectDelayDefault/time.Second))
	delay := time.Duration(delaySeconds) * time.Second
	if attempts <= 0 {
		attempts = postgresConnectAttemptsDefault
	}
	if delay <= 0 {
		delay = postgresConnectDelayDefault
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			if pingErr := db.Ping(); pingErr == nil {
				return db, nil
			} else {
				err = pingErr
			}
		}
		if db != nil {
			_ = db.Close()
		}
		lastErr = err
		if attempt < attempts {
			time.Sleep(delay)
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("postgres connection failed")
	}
	return nil, lastErr
}

func getenvInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}

// logInbound kelgan xabarni jurnalga yozadi
func (h *BotHandler) logInbound(ctx context.Context, message *tgbotapi.Message) {
	if h.quoteLog == nil {
		return
	}
	entry := quoteLogEntry{
		RequestID: uuid.New().String(),
		UserID:    userIDOf(message),
		ChatID:    message.Chat.ID,
		Username:  usernameOf(message),
		Direction: "in",
		Text:      message.Text,
	}
	if err := h.quoteLog.Save(ctx, entry); err != nil {
		log.Printf("quote log: inbound yozilmadi: %v", err)
	}
}

// logOutbound yuborilgan javobni jurnalga yozadi
func (h *BotHandler) logOutbound(req *quoteRequest, reply string) {
	if h.quoteLog == nil || req == nil {
		return
	}
	entry := quoteLogEntry{
		RequestID: uuid.New().String(),
		UserID:    req.userID,
		ChatID:    req.chatID,
		Username:  req.username,
		Direction: "out",
		Text:      reply,
	}
	if err := h.quoteLog.Save(context.Background(), entry); err != nil {
		log.Printf("quote log: outbound yozilmadi: %v", err)
	}
}
