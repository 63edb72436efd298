package security

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CORS 中间件 只对白名单里的前端Origin回显并允许携带凭据，
// 预检请求在这里短路
func CORS(allowedOrigins []string) gin.HandlerFunc {
	originSet := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originSet[o] = true
	}

	return func(c *gin.Context) {
		if origin := c.Request.Header.Get("Origin"); originSet[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Secure 给每个响应补安全头。接口只吐JSON，帧保护直接DENY
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		}

		c.Next()
	}
}

// client 单个IP的令牌桶和最后活跃时间
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterPool IP到令牌桶的映射，后台定期回收不活跃条目
type limiterPool struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
}

func newLimiterPool(maxRequests int, window time.Duration) *limiterPool {
	p := &limiterPool{
		clients: make(map[string]*client),
		limit:   rate.Every(window / time.Duration(maxRequests)),
		burst:   maxRequests,
	}

	expiry := window * 3
	if expiry < time.Minute {
		expiry = time.Minute
	}
	go p.janitor(expiry)

	return p
}

func (p *limiterPool) get(ip string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	cl, ok := p.clients[ip]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(p.limit, p.burst)}
		p.clients[ip] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter
}

func (p *limiterPool) janitor(expiry time.Duration) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		p.mu.Lock()
		for ip, cl := range p.clients {
			if time.Since(cl.lastSeen) > expiry {
				delete(p.clients, ip)
			}
		}
		p.mu.Unlock()
	}
}

// RateLimiter 通用按IP限流，额度来自配置
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return rateLimitWith(maxRequests, window, "too many requests from this IP, please try again later")
}

// AuthRateLimiter 认证接口的更严限流。游客身份创建没有任何凭据门槛，
// 不限的话一个客户端就能刷出海量用户行
func AuthRateLimiter() gin.HandlerFunc {
	return rateLimitWith(10, 15*time.Minute, "too many authentication attempts, please try again later")
}

// QuizRateLimiter 出题和判分接口限流，挡住脚本刷题
func QuizRateLimiter() gin.HandlerFunc {
	return rateLimitWith(30, time.Minute, "too many quiz requests, please slow down")
}

func rateLimitWith(maxRequests int, window time.Duration, message string) gin.HandlerFunc {
	pool := newLimiterPool(maxRequests, window)

	// 超限后等一个令牌周期再来
	retryAfter := int((window / time.Duration(maxRequests)).Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}

	return func(c *gin.Context) {
		limiter := pool.get(c.ClientIP())

		c.Header("RateLimit-Limit", strconv.Itoa(maxRequests))

		if !limiter.Allow() {
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": message,
			})
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		c.Header("RateLimit-Remaining", strconv.Itoa(remaining))

		c.Next()
	}
}
