// Package telegram verifies Telegram WebApp initData payloads. The
// verification is a pure function of the payload and the bot token; the
// server never trusts any identity claim that is not covered by the
// signature.
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/greenpatch/sprout/internal/domain"
)

// signingLabel is the fixed HMAC key used to derive the per-bot signing
// key, per the Telegram mini-app validation scheme:
// https://core.telegram.org/bots/webapps#validating-data-received-via-the-mini-app
const signingLabel = "WebAppData"

// Identity is the verified result of an initData payload.
type Identity struct {
	UserID   int64
	Username string
	AuthDate int64
}

type webAppUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// VerifyInitData validates a signed WebApp initData payload against the
// bot token and extracts the authenticated user. The check string is the
// remaining key=value pairs sorted by key and joined with newlines; both
// the ordering and the separator are part of the signed material, so any
// deviation fails verification.
func VerifyInitData(initData, botToken string) (*Identity, error) {
	if initData == "" {
		return nil, domain.ErrMissingInitData
	}
	if botToken == "" {
		return nil, domain.ErrMissingBotToken
	}

	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMissingSignature, err)
	}
	hash := values.Get("hash")
	if hash == "" {
		return nil, domain.ErrMissingSignature
	}
	values.Del("hash")

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var check strings.Builder
	for i, k := range keys {
		if i > 0 {
			check.WriteByte('\n')
		}
		check.WriteString(k)
		check.WriteByte('=')
		check.WriteString(values.Get(k))
	}

	// secret_key = HMAC_SHA256("WebAppData", bot_token)
	secret := hmacSHA256([]byte(signingLabel), []byte(botToken))
	computed := hex.EncodeToString(hmacSHA256(secret, []byte(check.String())))

	if !hmac.Equal([]byte(computed), []byte(hash)) {
		return nil, domain.ErrInvalidSignature
	}

	userJSON := values.Get("user")
	if userJSON == "" {
		return nil, domain.ErrMissingUser
	}
	var user webAppUser
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, domain.ErrBadUserPayload
	}
	if user.ID == 0 {
		return nil, domain.ErrMissingUserID
	}

	// auth_date defaults to zero when absent or malformed; staleness
	// policy is the caller's concern.
	authDate, _ := strconv.ParseInt(values.Get("auth_date"), 10, 64)

	return &Identity{UserID: user.ID, Username: user.Username, AuthDate: authDate}, nil
}

func hmacSHA256(key, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}
