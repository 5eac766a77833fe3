package telegram

import (
	"context"
	"log"
	"sync"
	"time"
)

// quoteRequest represents one inbound pricing message to be processed
type quoteRequest struct {
	ctx      context.Context
	chatID   int64
	userID   int64
	username string
	text     string
}

// workerPool manages parallel processing of quote requests
type workerPool struct {
	requestQueue chan *quoteRequest
	workerCount  int
	handler      *BotHandler
	wg           sync.WaitGroup

	// Rate limiting per user
	rateLimiter   map[int64]*userRateLimit
	rateLimiterMu sync.RWMutex
}

// userRateLimit tracks rate limiting per user
type userRateLimit struct {
	lastRequest  time.Time
	requestCount int
	mu           sync.Mutex
}

const (
	maxRequestsPerSecond   = 3
	requestQueueSize       = 100
	defaultWorkerCount     = 10
	quoteRequestTimeout    = 30 * time.Second
	rateLimiterCleanupTime = 5 * time.Minute
	rateLimiterMaxIdleTime = 10 * time.Minute
)

// newWorkerPool creates a new worker pool
func newWorkerPool(handler *BotHandler, workerCount int) *workerPool {
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}

	return &workerPool{
		requestQueue: make(chan *quoteRequest, requestQueueSize),
		workerCount:  workerCount,
		handler:      handler,
		rateLimiter:  make(map[int64]*userRateLimit),
	}
}

// start starts all workers
func (wp *workerPool) start(ctx context.Context) {
	log.Printf("Starting %d workers for parallel quote processing", wp.workerCount)

	for i := 0; i < wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}

	go wp.cleanupRateLimits(ctx)
}

// worker processes requests from the queue
func (wp *workerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Worker %d shutting down", id)
			return
		case req, ok := <-wp.requestQueue:
			if !ok {
				log.Printf("Worker %d shutting down (queue closed)", id)
				return
			}
			if req == nil {
				continue
			}

			if !wp.checkRateLimit(req.userID) {
				wp.handler.sendMessage(req.chatID, "⚠️ Слишком много запросов. Пожалуйста, подождите немного.")
				continue
			}

			wp.processRequestWithTimeout(req)
		}
	}
}

// processRequestWithTimeout processes one request with context timeout
func (wp *workerPool) processRequestWithTimeout(req *quoteRequest) {
	ctx, cancel := context.WithTimeout(req.ctx, quoteRequestTimeout)
	defer cancel()

	if wp.handler == nil || wp.handler.quoteUseCase == nil {
		log.Printf("worker pool: handler is not wired, skipping request user=%d", req.userID)
		return
	}

	// Panic recovery: bitta yomon so'rov serverni yiqitmasligi kerak
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic in quote processing for user %d: %v", req.userID, r)
			wp.handler.sendMessage(req.chatID, "⚠️ Внутренняя ошибка. Пожалуйста, попробуйте ещё раз.")
		}
	}()

	reply := wp.handler.quoteUseCase.Reply(ctx, req.text)
	if ctx.Err() == context.DeadlineExceeded {
		log.Printf("Quote request timeout for user %d after %v", req.userID, quoteRequestTimeout)
	}

	wp.handler.sendMessage(req.chatID, reply)
	wp.handler.logOutbound(req, reply)
}

// checkRateLimit checks if user is within rate limit
func (wp *workerPool) checkRateLimit(userID int64) bool {
	wp.rateLimiterMu.Lock()
	defer wp.rateLimiterMu.Unlock()

	limiter, exists := wp.rateLimiter[userID]
	if !exists {
		wp.rateLimiter[userID] = &userRateLimit{
			lastRequest:  time.Now(),
			requestCount: 1,
		}
		return true
	}

	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	now := time.Now()
	if now.Sub(limiter.lastRequest) >= time.Second {
		limiter.requestCount = 1
		limiter.lastRequest = now
		return true
	}

	if limiter.requestCount >= maxRequestsPerSecond {
		log.Printf("Rate limit exceeded for user %d", userID)
		return false
	}

	limiter.requestCount++
	return true
}

// cleanupRateLimits removes old rate limit entries
func (wp *workerPool) cleanupRateLimits(ctx context.Context) {
	ticker := time.NewTicker(rateLimiterCleanupTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			toDelete := []int64{}

			wp.rateLimiterMu.RLock()
			for userID, limiter := range wp.rateLimiter {
				limiter.mu.Lock()
				if now.Sub(limiter.lastRequest) > rateLimiterMaxIdleTime {
					toDelete = append(toDelete, userID)
				}
				limiter.mu.Unlock()
			}
			wp.rateLimiterMu.RUnlock()

			if len(toDelete) > 0 {
				wp.rateLimiterMu.Lock()
				for _, userID := range toDelete {
					delete(wp.rateLimiter, userID)
				}
				wp.rateLimiterMu.Unlock()
				log.Printf("Cleaned up %d inactive rate limiters", len(toDelete))
			}
		}
	}
}

// submit submits a request to the worker pool
func (wp *workerPool) submit(req *quoteRequest) bool {
	select {
	case wp.requestQueue <- req:
		return true
	default:
		// Queue is full
		log.Printf("Worker pool queue is full (%d/%d), rejecting request from user %d", len(wp.requestQueue), requestQueueSize, req.userID)
		wp.handler.sendMessage(req.chatID, "⚠️ Бот перегружен. Пожалуйста, подождите немного.")
		return false
	}
}

// shutdown gracefully shuts down the worker pool
func (wp *workerPool) shutdown() {
	log.Printf("Shutting down worker pool, %d requests in queue", len(wp.requestQueue))
	close(wp.requestQueue)
	wp.wg.Wait()
	log.Println("Worker pool shut down successfully")
}
