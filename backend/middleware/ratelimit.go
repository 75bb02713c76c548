package middleware

import (
	"sync"
	"time"

	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// client хранит лимитер одного IP и время последнего запроса,
// чтобы старые записи можно было вычищать.
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit — token-bucket лимитер на каждый IP. Раз в минуту фоновая
// горутина удаляет клиентов, которых не было видно больше трёх минут.
func RateLimit(rps float64, burst int) fiber.Handler {
	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	go func() {
		for {
			time.Sleep(time.Minute)
			mu.Lock()
			for ip, cl := range clients {
				if time.Since(cl.lastSeen) > 3*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *fiber.Ctx) error {
		ip := c.IP()

		mu.Lock()
		cl, found := clients[ip]
		if !found {
			cl = &client{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			return utils.TooManyRequests(c)
		}
		return c.Next()
	}
}
