package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const callerKey = "caller"

// Claims is the token payload issued by the mini-app login flow.
type Claims struct {
	UserZaloID string `json:"user_zalo_id"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate attaches the bearer token's identity to the request when present.
// Requests without a token continue as anonymous; a bad token is rejected.
func Authenticate(secret string) ginext.HandlerFunc {
	key := []byte(secret)
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			abort(c, http.StatusUnauthorized, "Token không hợp lệ")
			return
		}

		claims, err := parseToken(raw, key)
		if err != nil {
			c.Set("error", err.Error())
			if errors.Is(err, jwt.ErrTokenExpired) {
				abort(c, http.StatusUnauthorized, "Phiên đăng nhập đã hết hạn")
				return
			}
			abort(c, http.StatusUnauthorized, "Token không hợp lệ")
			return
		}

		c.Set(callerKey, domain.Caller{
			UserZaloID: claims.UserZaloID,
			Phone:      claims.Phone,
			Role:       claims.Role,
		})
		c.Next()
	}
}

func parseToken(raw string, key []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserZaloID == "" {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

// CallerFrom returns the identity set by Authenticate, or an anonymous caller.
func CallerFrom(c *ginext.Context) domain.Caller {
	v, ok := c.Get(callerKey)
	if !ok {
		return domain.Caller{}
	}
	caller, _ := v.(domain.Caller)
	return caller
}

func RequireAuth() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if !CallerFrom(c).IsAuthenticated() {
			abort(c, http.StatusUnauthorized, "Vui lòng đăng nhập")
			return
		}
		c.Next()
	}
}

func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		caller := CallerFrom(c)
		if !caller.IsAuthenticated() {
			abort(c, http.StatusUnauthorized, "Vui lòng đăng nhập")
			return
		}
		if !caller.IsAdmin() {
			abort(c, http.StatusForbidden, "Bạn không có quyền thực hiện thao tác này")
			return
		}
		c.Next()
	}
}

func RequireSuperAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		caller := CallerFrom(c)
		if !caller.IsAuthenticated() {
			abort(c, http.StatusUnauthorized, "Vui lòng đăng nhập")
			return
		}
		if !caller.IsSuperAdmin() {
			abort(c, http.StatusForbidden, "Bạn không có quyền thực hiện thao tác này")
			return
		}
		c.Next()
	}
}

func abort(c *ginext.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ginext.H{"success": false, "message": message})
}
