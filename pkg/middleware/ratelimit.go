package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/pkg/log"
	"golang.org/x/time/rate"
)

// idleLimiterTTL é o tempo sem requisições após o qual o limitador do cliente é descartado
const idleLimiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limita requisições por cliente (IP) com um token bucket
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	trusted []*net.IPNet
	now     func() time.Time
}

// NewRateLimiter cria um limitador com perMinute requisições por minuto e rajada burst.
// X-Forwarded-For só é lido quando a conexão vem de um dos trustedProxies (IP ou CIDR).
func NewRateLimiter(perMinute, burst int, trustedProxies ...string) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   burst,
		trusted: parseTrustedProxies(trustedProxies),
		now:     time.Now,
	}
}

func parseTrustedProxies(entries []string) []*net.IPNet {
	var nets []*net.IPNet
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			if ip := net.ParseIP(entry); ip != nil {
				bits := 8 * net.IPv6len
				if ip.To4() != nil {
					ip, bits = ip.To4(), 8*net.IPv4len
				}
				nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
				continue
			}
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			logrus.WithError(err).Warnf("Proxy confiável ignorado: %q", entry)
			continue
		}
		nets = append(nets, ipNet)
	}
	return nets
}

func (rl *RateLimiter) isTrusted(host string) bool {
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	for _, n := range rl.trusted {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// Allow informa se o cliente ainda pode fazer uma requisição
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > idleLimiterTTL {
			delete(rl.clients, key)
		}
	}

	c, ok := rl.clients[client]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[client] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// Middleware devolve AUTH_010 quando o cliente excede o limite
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := rl.clientIP(r)
			if !rl.Allow(client) {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warnf("Limite de tentativas excedido para %s", client)
				w.Header().Set("Retry-After", "60")
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Muitas tentativas, aguarde antes de tentar novamente", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP usa o endereço da conexão; atrás de proxy confiável, percorre o
// X-Forwarded-For da direita para a esquerda e fica com o primeiro salto não confiável
func (rl *RateLimiter) clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if !rl.isTrusted(host) {
		return host
	}

	var hops []string
	for _, header := range r.Header.Values("X-Forwarded-For") {
		hops = append(hops, strings.Split(header, ",")...)
	}
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if !rl.isTrusted(hop) {
			return hop
		}
		host = hop
	}
	return host
}
