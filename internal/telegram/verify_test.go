package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenpatch/sprout/internal/domain"
)

const testBotToken = "123456:TEST-TOKEN"

// signInitData builds a correctly signed initData payload from the
// given fields, mirroring what Telegram clients produce.
func signInitData(t *testing.T, botToken string, fields map[string]string) string {
	t.Helper()

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+fields[k])
	}
	check := strings.Join(pairs, "\n")

	secretMac := hmac.New(sha256.New, []byte("WebAppData"))
	secretMac.Write([]byte(botToken))
	secret := secretMac.Sum(nil)

	sigMac := hmac.New(sha256.New, secret)
	sigMac.Write([]byte(check))
	hash := hex.EncodeToString(sigMac.Sum(nil))

	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}
	values.Set("hash", hash)
	return values.Encode()
}

func TestVerifyInitData_Valid(t *testing.T) {
	initData := signInitData(t, testBotToken, map[string]string{
		"user":      `{"id":42,"username":"farmer"}`,
		"auth_date": "1700000000",
		"query_id":  "AAE42",
	})

	identity, err := VerifyInitData(initData, testBotToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.UserID)
	assert.Equal(t, "farmer", identity.Username)
	assert.Equal(t, int64(1700000000), identity.AuthDate)
}

func TestVerifyInitData_Deterministic(t *testing.T) {
	initData := signInitData(t, testBotToken, map[string]string{
		"user":      `{"id":7}`,
		"auth_date": "1700000000",
	})

	first, err := VerifyInitData(initData, testBotToken)
	require.NoError(t, err)
	second, err := VerifyInitData(initData, testBotToken)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVerifyInitData_MissingAuthDate(t *testing.T) {
	initData := signInitData(t, testBotToken, map[string]string{
		"user": `{"id":7,"username":"x"}`,
	})

	identity, err := VerifyInitData(initData, testBotToken)
	require.NoError(t, err)
	assert.Equal(t, int64(0), identity.AuthDate)
}

func TestVerifyInitData_TamperedHash(t *testing.T) {
	initData := signInitData(t, testBotToken, map[string]string{
		"user":      `{"id":7}`,
		"auth_date": "1700000000",
	})

	// Flip one hex character of the signature.
	idx := strings.LastIndex(initData, "hash=")
	require.NotEqual(t, -1, idx)
	pos := idx + len("hash=")
	flipped := byte('0')
	if initData[pos] == '0' {
		flipped = '1'
	}
	tampered := initData[:pos] + string(flipped) + initData[pos+1:]

	_, err := VerifyInitData(tampered, testBotToken)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestVerifyInitData_TamperedPayload(t *testing.T) {
	initData := signInitData(t, testBotToken, map[string]string{
		"user":      `{"id":7}`,
		"auth_date": "1700000000",
	})
	tampered := strings.Replace(initData, "1700000000", "1700000001", 1)

	_, err := VerifyInitData(tampered, testBotToken)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestVerifyInitData_WrongToken(t *testing.T) {
	initData := signInitData(t, testBotToken, map[string]string{
		"user":      `{"id":7}`,
		"auth_date": "1700000000",
	})

	_, err := VerifyInitData(initData, "999999:OTHER-TOKEN")
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestVerifyInitData_Errors(t *testing.T) {
	tests := []struct {
		name     string
		initData string
		botToken string
		wantErr  error
	}{
		{
			name:     "empty initData",
			initData: "",
			botToken: testBotToken,
			wantErr:  domain.ErrMissingInitData,
		},
		{
			name:     "empty bot token",
			initData: "auth_date=1&hash=ab",
			botToken: "",
			wantErr:  domain.ErrMissingBotToken,
		},
		{
			name:     "missing hash",
			initData: "auth_date=1700000000&user=%7B%22id%22%3A7%7D",
			botToken: testBotToken,
			wantErr:  domain.ErrMissingSignature,
		},
		{
			name: "missing user",
			initData: signInitData(t, testBotToken, map[string]string{
				"auth_date": "1700000000",
			}),
			botToken: testBotToken,
			wantErr:  domain.ErrMissingUser,
		},
		{
			name: "bad user JSON",
			initData: signInitData(t, testBotToken, map[string]string{
				"user":      `{not-json`,
				"auth_date": "1700000000",
			}),
			botToken: testBotToken,
			wantErr:  domain.ErrBadUserPayload,
		},
		{
			name: "missing user id",
			initData: signInitData(t, testBotToken, map[string]string{
				"user":      `{"username":"ghost"}`,
				"auth_date": "1700000000",
			}),
			botToken: testBotToken,
			wantErr:  domain.ErrMissingUserID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyInitData(tt.initData, tt.botToken)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
