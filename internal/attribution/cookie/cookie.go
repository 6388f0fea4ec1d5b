package cookie

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrExpiredCookie = errors.New("attribution cookie expired")
	ErrInvalidCookie = errors.New("invalid attribution cookie")
)

// Claims is the payload carried inside the signed attribution cookie.
// CapturedAt is the click timestamp; the attribution window is measured
// from it, not from the cookie's own expiry.
type Claims struct {
	CreatorID  uuid.UUID `json:"creator_id"`
	LinkID     uuid.UUID `json:"link_id"`
	ClickToken string    `json:"click_token"`
	CapturedAt time.Time `json:"captured_at"`
	jwt.RegisteredClaims
}

// Codec signs and verifies attribution cookies with HS256. The cookie TTL
// matches the attribution window, but the window check against CapturedAt is
// the authoritative one: Decode verifies expiry only with leeway, so a cookie
// captured exactly at the window edge still decodes. NumericDates are
// second-truncated, so without leeway the edge cookie would be rejected.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// expiryLeeway is applied when verifying the exp claim. The caller's window
// check on CapturedAt rejects anything past the window regardless.
const expiryLeeway = time.Minute

func NewCodec(secret string, ttl time.Duration) Codec {
	return Codec{secret: []byte(secret), ttl: ttl}
}

func (c Codec) Encode(creatorID, linkID uuid.UUID, clickToken string, capturedAt time.Time) (string, error) {
	claims := Claims{
		CreatorID:  creatorID,
		LinkID:     linkID,
		ClickToken: clickToken,
		CapturedAt: capturedAt,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "affiliate-server",
			IssuedAt:  jwt.NewNumericDate(capturedAt),
			ExpiresAt: jwt.NewNumericDate(capturedAt.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign attribution cookie: %w", err)
	}
	return signed, nil
}

func (c Codec) Decode(value string) (Claims, error) {
	var claims Claims
	t, err := jwt.ParseWithClaims(value, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithLeeway(expiryLeeway))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredCookie
		}
		return Claims{}, ErrInvalidCookie
	}
	if !t.Valid {
		return Claims{}, ErrInvalidCookie
	}
	return claims, nil
}

// TTL is the configured cookie lifetime in seconds, as http.SetCookie wants it.
func (c Codec) TTL() int {
	return int(c.ttl / time.Second)
}
