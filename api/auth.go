package api

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"recouvra/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type SupabaseJWT struct {
	Aal                   string                 `json:"aal"`
	AuthenticationMethods []AuthenticationMethod `json:"amr"`
	AppMetadata           AppMetadata            `json:"app_metadata"`
	Audience              string                 `json:"aud"`
	Email                 *string                `json:"email"`
	ExpiresAt             int64                  `json:"exp"`
	IssuedAt              int64                  `json:"iat"`
	IsAnonymous           bool                   `json:"is_anonymous"`
	Issuer                string                 `json:"iss"`
	PhoneNumber           *string                `json:"phone"`
	Role                  string                 `json:"role"`
	SessionID             string                 `json:"session_id"`
	Subject               string                 `json:"sub"`
	UserMetadata          UserMetadata           `json:"user_metadata"`
	Name                  string                 `json:"name"`
}

type AuthenticationMethod struct {
	Method    string `json:"method"`
	Timestamp int64  `json:"timestamp"`
}

type AppMetadata struct {
	Provider  string   `json:"provider"`
	Providers []string `json:"providers"`
}

type UserMetadata struct {
	EmailVerified bool   `json:"email_verified"`
	PhoneVerified bool   `json:"phone_verified"`
	Subject       string `json:"sub"`
}

type jwksResponse struct {
	Keys []jwkKey `json:"keys"`
}

// Minimal subset of JWK fields needed for ES256 verification.
type jwkKey struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	Use string `json:"use"`
	Kid string `json:"kid"`
	X   string `json:"x"`
	Y   string `json:"y"`
	Alg string `json:"alg"`
}

var (
	jwksCacheMu sync.RWMutex
	// cache key: jwksURL + "|" + kid
	jwksKeyCache = map[string]*ecdsa.PublicKey{}
)

func base64URLDecodeToBigInt(s string) (*big.Int, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

func getES256PublicKey(jwksURL string, kid string) (*ecdsa.PublicKey, error) {
	cacheKey := jwksURL + "|" + kid
	jwksCacheMu.RLock()
	if k, ok := jwksKeyCache[cacheKey]; ok {
		jwksCacheMu.RUnlock()
		return k, nil
	}
	jwksCacheMu.RUnlock()

	resp, err := http.Get(jwksURL) // #nosec G107 - JWKS URL derived from token issuer; network call is expected.
	if err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch JWKS: http %d", resp.StatusCode)
	}

	var jwks jwksResponse
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return nil, fmt.Errorf("failed to decode JWKS: %w", err)
	}

	for _, k := range jwks.Keys {
		if k.Kid != kid {
			continue
		}
		if k.Kty != "EC" || k.Crv != "P-256" {
			return nil, fmt.Errorf("unsupported JWK key type/curve: kty=%s crv=%s", k.Kty, k.Crv)
		}
		x, err := base64URLDecodeToBigInt(k.X)
		if err != nil {
			return nil, fmt.Errorf("failed to decode JWK x: %w", err)
		}
		y, err := base64URLDecodeToBigInt(k.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to decode JWK y: %w", err)
		}
		pub := &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}

		jwksCacheMu.Lock()
		jwksKeyCache[cacheKey] = pub
		jwksCacheMu.Unlock()

		return pub, nil
	}

	return nil, fmt.Errorf("kid not found in JWKS: %s", kid)
}

func decodeJWTHeaderAndClaimsUnverified(jwtStr string) (map[string]any, *SupabaseJWT, error) {
	parts := strings.Split(jwtStr, ".")
	if len(parts) < 2 {
		return nil, nil, fmt.Errorf("invalid JWT format")
	}

	headerBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT header: %w", err)
	}
	var header map[string]any
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JWT header: %w", err)
	}

	claimsBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT claims: %w", err)
	}
	var parsedJWT SupabaseJWT
	if err := json.Unmarshal(claimsBytes, &parsedJWT); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JWT claims: %w", err)
	}

	return header, &parsedJWT, nil
}

func parseSupabaseJWT(jwtStr string, decodeToken string) (*SupabaseJWT, error) {
	// First attempt: legacy HS256 (shared secret).
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})

	// If the token isn't HS*, try ES256 verification via Supabase JWKS.
	if err != nil {
		// Decode unverified to get issuer + kid for JWKS URL.
		header, unverifiedClaims, decodeErr := decodeJWTHeaderAndClaimsUnverified(jwtStr)
		if decodeErr != nil {
			return nil, fmt.Errorf("failed to parse token: %w", err)
		}
		alg, _ := header["alg"].(string)
		if alg != "ES256" {
			return nil, fmt.Errorf("failed to parse token: %w", err)
		}
		kid, _ := header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("failed to parse token: missing kid")
		}
		if unverifiedClaims.Issuer == "" {
			return nil, fmt.Errorf("failed to parse token: missing iss")
		}

		jwksURL := strings.TrimRight(unverifiedClaims.Issuer, "/") + "/.well-known/jwks.json"
		esToken, esErr := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
				return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
			}
			return getES256PublicKey(jwksURL, kid)
		})
		if esErr != nil {
			return nil, fmt.Errorf("failed to parse token: %w", esErr)
		}
		token = esToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("Failed to parse claims")
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("Error marshalling claims: %w", err)
	}

	var parsedJWT SupabaseJWT
	if err := json.Unmarshal(claimsJSON, &parsedJWT); err != nil {
		return nil, fmt.Errorf("Error unmarshalling into JWT struct: %w", err)
	}

	if time.Now().UTC().Unix() > parsedJWT.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &parsedJWT, nil
}

// authMiddleware verifies the bearer token, resolves the caller's
// application role, and computes the row-level store scope. An owner only
// ever sees their assigned stores; an admin is unscoped. A user without a
// role row is forbidden outright.
func (m ApiHandler) authMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, 401)
		return
	}

	parsedJWT, err := parseSupabaseJWT(strings.TrimPrefix(authHeader, "Bearer "), m.JwtDecodeToken)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	userID, err := uuid.Parse(parsedJWT.Subject)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("misformatted user id in token: %w", err), c, 401)
		return
	}

	role, err := m.UserRoleRepository.GetRole(m.Db, userID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("no role assigned"), c, 403)
		return
	}

	c.Set("userAccountID", userID.String())
	c.Set("userRole", string(role))

	if role == domain.RoleOwner {
		storeIDs, err := m.StoreOwnerRepository.ListStoreIDsForUser(m.Db, userID)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		// an owner with no stores keeps an empty (non-nil) scope and
		// sees nothing, not everything
		if storeIDs == nil {
			storeIDs = []uuid.UUID{}
		}
		c.Set("scopeStoreIDs", storeIDs)
	}

	c.Next()
}

// requireMutate gates the mutating routes on the caller's role.
func (m ApiHandler) requireMutate(c *gin.Context) {
	role, ok := userRole(c)
	if !ok || !domain.CanMutate(role) {
		returnErrorJsonCode(fmt.Errorf("insufficient permissions"), c, 403)
		return
	}
	c.Next()
}

func userAccountID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get("userAccountID")
	if !ok {
		return uuid.Nil, false
	}
	s, ok := v.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func userRole(c *gin.Context) (domain.Role, bool) {
	v, ok := c.Get("userRole")
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return domain.Role(s), true
}

// scopeStoreIDs returns the caller's row-level scope; nil means unscoped.
func scopeStoreIDs(c *gin.Context) []uuid.UUID {
	v, ok := c.Get("scopeStoreIDs")
	if !ok {
		return nil
	}
	ids, ok := v.([]uuid.UUID)
	if !ok {
		return nil
	}
	return ids
}
